package generator

import (
	"errors"
	"fmt"
)

// ErrEmptyTopic rejects a generation request before any persona lookup or
// LLM call happens.
var ErrEmptyTopic = errors.New("topic must not be empty")

// GenerationError reports which stage's LLM call produced empty or unusable
// output. Stage failures are never retried.
type GenerationError struct {
	Stage Stage
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed at stage %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// PersistenceError wraps a post-store failure after all three stages
// succeeded. The LLM calls are not repeated.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist post: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
