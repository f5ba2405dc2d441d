// Package pipeline runs the ordered stages of a pack or unpack run.
// A Pipeline is a one-shot, strictly sequential state machine: each stage
// runs exactly once, the first failure aborts the remaining stages, and
// nothing is retried.
package pipeline

import "context"

// Stage is one named step of a run. Name is used in logs and in the error
// returned when the step fails.
//
// Example:
//
//	pipeline.Stage{Name: "deriving key", Run: func(ctx context.Context) error {
//	    key = envelope.DeriveKey(password)
//	    return nil
//	}}
type Stage struct {
	Name string
	Run  func(ctx context.Context) error
}
