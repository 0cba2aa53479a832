// Package cli implements the interactive Account Butler terminal client:
// a small read–eval–print loop over the session and account services.
// Commands that mutate the collection run one at a time; while a
// submission waits on the categorization round trip, no other command can
// run against the store.
package cli
