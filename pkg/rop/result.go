package rop

import (
	"github.com/google/uuid"
)

// Result holds either a success value of type V or a failure payload of type E.
// The zero Result is empty: it was not built by Success or Failure and
// reports IsEmpty.
type Result[V, E any] struct {
	id        uuid.UUID
	value     V
	err       E
	isSuccess bool
}

func Success[V, E any](v V) Result[V, E] {
	return Result[V, E]{
		id:        uuid.New(),
		value:     v,
		isSuccess: true,
	}
}

func Failure[V, E any](err E) Result[V, E] {
	return Result[V, E]{
		id:        uuid.New(),
		err:       err,
		isSuccess: false,
	}
}

// FailureFrom re-tags a failed result under another success type.
// The error and the id are carried over unchanged.
func FailureFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		id:        from.id,
		err:       from.Error(),
		isSuccess: false,
	}
}

func (r Result[V, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[V, E]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success value. It panics with an Error class error
// when r is a failure.
func (r Result[V, E]) Value() V {
	if !r.isSuccess {
		panic(Error.New("value requested from failed result %s", r.id))
	}
	return r.value
}

// Error returns the failure payload. It panics with an Error class error
// when r is a success.
func (r Result[V, E]) Error() E {
	if r.isSuccess {
		panic(Error.New("error requested from successful result %s", r.id))
	}
	return r.err
}

// Get returns the success value and true, or the zero V and false.
func (r Result[V, E]) Get() (V, bool) {
	if !r.isSuccess {
		var zero V
		return zero, false
	}
	return r.value, true
}

func (r Result[V, E]) ValueOr(def V) V {
	if !r.isSuccess {
		return def
	}
	return r.value
}

// Then binds a stage that keeps the success type.
func (r Result[V, E]) Then(stage func(V) Result[V, E]) Result[V, E] {
	return Bind(r, stage)
}

func (r Result[V, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[V, E]) IsEmpty() bool {
	return r.id == uuid.Nil
}
