package chain

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/core"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[V, E any] struct {
	ctx    context.Context
	result rop.Result[V, E]
	stage  int
	next   string
}

// Start creates a new chain from a rop.Result
func Start[V, E any](ctx context.Context, result rop.Result[V, E]) *Chain[V, E] {
	return &Chain[V, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[V, E any](ctx context.Context, value V) *Chain[V, E] {
	return Start(ctx, rop.Success[V, E](value))
}

// Result returns the underlying rop.Result
func (c *Chain[V, E]) Result() rop.Result[V, E] {
	return c.result
}

// Named labels the next stage in traces
func (c *Chain[V, E]) Named(name string) *Chain[V, E] {
	return &Chain[V, E]{
		ctx:    c.ctx,
		result: c.result,
		stage:  c.stage,
		next:   name,
	}
}

// Then chains a function that returns rop.Result[U, E]
func Then[V, U, E any](c *Chain[V, E], onSuccess func(context.Context, V) rop.Result[U, E]) *Chain[U, E] {
	return advance(c, func(in rop.Result[V, E]) rop.Result[U, E] {
		return solo.Switch(c.ctx, in, onSuccess)
	})
}

// ThenTry chains a function that returns (U, error)
func ThenTry[V, U any](c *Chain[V, error], tryOnSuccess func(context.Context, V) (U, error)) *Chain[U, error] {
	return advance(c, func(in rop.Result[V, error]) rop.Result[U, error] {
		return solo.Try(c.ctx, in, tryOnSuccess)
	})
}

// Map chains a pure transformation function
func Map[V, U, E any](c *Chain[V, E], onSuccess func(context.Context, V) U) *Chain[U, E] {
	return advance(c, func(in rop.Result[V, E]) rop.Result[U, E] {
		return solo.Map(c.ctx, in, onSuccess)
	})
}

// Ensure performs a side effect without changing the result
func (c *Chain[V, E]) Ensure(onSuccess func(context.Context, V)) *Chain[V, E] {
	return &Chain[V, E]{
		ctx:    c.ctx,
		result: solo.Tee(c.ctx, c.result, onSuccess),
		stage:  c.stage,
		next:   c.next,
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[V, E, Out any](c *Chain[V, E], onSuccess func(context.Context, V) Out,
	onFailure func(context.Context, E) Out) Out {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}

func advance[V, U, E any](c *Chain[V, E], step func(rop.Result[V, E]) rop.Result[U, E]) *Chain[U, E] {
	stage := core.StageName(c.next, c.stage+1)
	out := step(c.result)

	if c.result.IsSuccess() {
		core.Trace[U, E](c.ctx, stage, out)
	} else {
		core.TraceSkipped(c.ctx, stage, c.result.Id())
	}

	return &Chain[U, E]{
		ctx:    c.ctx,
		result: out,
		stage:  c.stage + 1,
	}
}
