package rop

// Bind runs stage with the value of r when r is a success and returns what
// stage returns. A failed r is re-tagged to the stage's success type and
// stage is not called.
func Bind[V, U, E any](r Result[V, E], stage func(V) Result[U, E]) Result[U, E] {
	if r.isSuccess {
		return stage(r.value)
	}
	return FailureFrom[V, U](r)
}

// Map is Bind for stages that cannot fail.
func Map[V, U, E any](r Result[V, E], f func(V) U) Result[U, E] {
	if r.isSuccess {
		return Success[U, E](f(r.value))
	}
	return FailureFrom[V, U](r)
}

// Tee calls onSuccess for a successful r and returns r unchanged.
func Tee[V, E any](r Result[V, E], onSuccess func(V)) Result[V, E] {
	if r.isSuccess {
		onSuccess(r.value)
	}
	return r
}

// Finally collapses r into a single value.
func Finally[V, E, Out any](r Result[V, E], onSuccess func(V) Out, onFailure func(E) Out) Out {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Of builds a Result from the usual (value, error) pair.
func Of[V any](v V, err error) Result[V, error] {
	if err != nil {
		return Failure[V](err)
	}
	return Success[V, error](v)
}
