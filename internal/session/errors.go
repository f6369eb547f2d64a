package session

import "fmt"

// InvalidStateError indicates an operation was attempted in a state that
// does not permit it, e.g. submitting an answer after completion. The
// operation is rejected before any session data is touched, so the
// answers/feedback/scores alignment can never be corrupted by a bad call.
type InvalidStateError struct {
	Op    string
	State State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state transition: %s not allowed in state %s", e.Op, e.State)
}

// GenerationError indicates question generation failed before any
// fallback could apply (the gateway call itself failed).
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("question generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("question generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
