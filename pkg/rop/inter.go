package rop

import "github.com/google/uuid"

// Outcome is the read side shared by Result and MutableResult.
type Outcome[V, E any] interface {
	// IsSuccess reports which branch the result holds
	IsSuccess() bool
	// Value returns the success value; panics on failure
	Value() V
	// Error returns the failure payload; panics on success
	Error() E
	// Id identifies the result
	Id() uuid.UUID
}

var (
	_ Outcome[int, error] = Result[int, error]{}
	_ Outcome[int, error] = MutableResult[int, error]{}
)
