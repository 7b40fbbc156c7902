package rop

import "github.com/google/uuid"

// MutableResult holds either a success value of type V or a failure payload of
// type E. The success value lives behind a pointer: copies of a MutableResult
// share it, and InPlaceBind changes it for every copy.
//
// A MutableResult is owned by one pipeline at a time and is not safe for
// concurrent use.
type MutableResult[V, E any] struct {
	id        uuid.UUID
	value     *V
	err       E
	isSuccess bool
}

// MutableSuccess stores a copy of value. Reference types inside V (slices,
// maps, pointers) are shared with the caller.
func MutableSuccess[V, E any](value V) MutableResult[V, E] {
	stored := value
	return MutableResult[V, E]{
		id:        uuid.New(),
		value:     &stored,
		isSuccess: true,
	}
}

func MutableFailure[V, E any](err E) MutableResult[V, E] {
	return MutableResult[V, E]{
		id:        uuid.New(),
		err:       err,
		isSuccess: false,
	}
}

// ToMutable moves r into a MutableResult with the same id.
func ToMutable[V, E any](r Result[V, E]) MutableResult[V, E] {
	if !r.isSuccess {
		return MutableResult[V, E]{id: r.id, err: r.err}
	}
	stored := r.value
	return MutableResult[V, E]{id: r.id, value: &stored, isSuccess: true}
}

// InPlaceBind calls mutate with the stored value when r is a success and
// does nothing otherwise.
func (r MutableResult[V, E]) InPlaceBind(mutate func(v *V)) MutableResult[V, E] {
	if r.isSuccess && r.value != nil {
		mutate(r.value)
	}
	return r
}

// ReadOnlyBind calls observe with a copy of the stored value when r is a
// success and does nothing otherwise.
func (r MutableResult[V, E]) ReadOnlyBind(observe func(v V)) MutableResult[V, E] {
	if r.isSuccess && r.value != nil {
		observe(*r.value)
	}
	return r
}

// Snapshot copies the current state into an immutable Result with the same id.
func (r MutableResult[V, E]) Snapshot() Result[V, E] {
	if !r.isSuccess || r.value == nil {
		return Result[V, E]{id: r.id, err: r.err}
	}
	return Result[V, E]{id: r.id, value: *r.value, isSuccess: true}
}

func (r MutableResult[V, E]) IsSuccess() bool {
	return r.isSuccess && r.value != nil
}

func (r MutableResult[V, E]) IsFailure() bool {
	return !r.IsSuccess()
}

func (r MutableResult[V, E]) Value() V {
	if !r.IsSuccess() {
		panic(Error.New("value requested from failed result %s", r.id))
	}
	return *r.value
}

func (r MutableResult[V, E]) Error() E {
	if r.IsSuccess() {
		panic(Error.New("error requested from successful result %s", r.id))
	}
	return r.err
}

func (r MutableResult[V, E]) Get() (V, bool) {
	if !r.IsSuccess() {
		var zero V
		return zero, false
	}
	return *r.value, true
}

func (r MutableResult[V, E]) ValueOr(def V) V {
	if !r.IsSuccess() {
		return def
	}
	return *r.value
}

func (r MutableResult[V, E]) Id() uuid.UUID {
	return r.id
}

func (r MutableResult[V, E]) IsEmpty() bool {
	return r.id == uuid.Nil
}
