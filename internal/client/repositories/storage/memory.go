package storage

import "context"

// MemoryRepository is a map-backed Repository used in tests.
type MemoryRepository struct {
	slots map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{slots: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, ok := r.slots[key]
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (r *MemoryRepository) Set(ctx context.Context, key string, value []byte) error {
	// Copy so callers mutating their slice do not corrupt the stored state.
	v := make([]byte, len(value))
	copy(v, value)
	r.slots[key] = v
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, key string) error {
	delete(r.slots, key)
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	r.slots = make(map[string][]byte)
	return nil
}
