// Package categorizer maps an account's name and description to a
// best-guess category and confidence via an external generative text
// service. Each call is a single templated request-response round trip:
// no retries, no caching, no rate limiting.
package categorizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCategorization is the sentinel wrapped into every failure of a
// categorization call: unreachable service, timeout, or a reply that does
// not carry the two required fields. Match with errors.Is.
var ErrCategorization = errors.New("categorization failed")

// Result is the categorizer's output. Confidence is in [0,1].
type Result struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Categorizer is implemented by clients of the external service.
type Categorizer interface {
	Categorize(ctx context.Context, name, description string) (*Result, error)
}

const promptTemplate = `You are an expert account categorizer. You will categorize the account based on its name and description.

Account Name: %s
Account Description: %s

Respond with a category and a confidence level between 0 and 1.
The confidence level represents how confident you are in the categorization.
Example: { "category": "Email", "confidence": 0.95 }`

// BuildPrompt embeds name and description verbatim into the fixed template.
func BuildPrompt(name, description string) string {
	return fmt.Sprintf(promptTemplate, name, description)
}

// ParseResult validates a raw service reply against the expected shape.
// The category must be a non-empty string; confidence outside [0,1] is
// clamped rather than rejected.
func ParseResult(raw []byte) (*Result, error) {
	var r Result
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("%w: unparsable response: %w", ErrCategorization, err)
	}
	if r.Category == "" {
		return nil, fmt.Errorf("%w: response is missing a category", ErrCategorization)
	}
	if r.Confidence < 0 {
		r.Confidence = 0
	}
	if r.Confidence > 1 {
		r.Confidence = 1
	}
	return &r, nil
}
