package tiny

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/core"
)

type Chain[V, E any] struct {
	ctx   context.Context
	res   rop.MutableResult[V, E]
	stage int
}

func Start[V, E any](ctx context.Context, r rop.MutableResult[V, E]) Chain[V, E] {
	return Chain[V, E]{ctx: ctx, res: r}
}

func FromValue[V, E any](ctx context.Context, v V) Chain[V, E] {
	return Start(ctx, rop.MutableSuccess[V, E](v))
}

func (c Chain[V, E]) Result() rop.MutableResult[V, E] {
	return c.res
}

// Mutate edits the held value in place
func (c Chain[V, E]) Mutate(mutate func(ctx context.Context, v *V)) Chain[V, E] {
	return c.step(func() rop.MutableResult[V, E] {
		return c.res.InPlaceBind(func(v *V) { mutate(c.ctx, v) })
	})
}

// Inspect hands a copy of the held value to observe
func (c Chain[V, E]) Inspect(observe func(ctx context.Context, v V)) Chain[V, E] {
	c.res.ReadOnlyBind(func(v V) { observe(c.ctx, v) })
	return c
}

// Then replaces the result with the one onSuccess returns
func (c Chain[V, E]) Then(onSuccess func(ctx context.Context, v V) rop.MutableResult[V, E]) Chain[V, E] {
	return c.step(func() rop.MutableResult[V, E] {
		return onSuccess(c.ctx, c.res.Value())
	})
}

// Validate fails the chain with the returned error when validate reports
// the value as invalid
func (c Chain[V, E]) Validate(validate func(ctx context.Context, v V) (valid bool, err E)) Chain[V, E] {
	return c.step(func() rop.MutableResult[V, E] {
		if valid, err := validate(c.ctx, c.res.Value()); !valid {
			return rop.MutableFailure[V](err)
		}
		return c.res
	})
}

// RepeatUntil runs onSuccess at least once and stops when done reports true
// or the chain fails
func (c Chain[V, E]) RepeatUntil(onSuccess func(ctx context.Context, v V) rop.MutableResult[V, E],
	done func(ctx context.Context, v V) bool) Chain[V, E] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || done(c.ctx, c.res.Value()) {
			return c
		}
	}
}

// While runs onSuccess as long as the chain succeeds and while holds
func (c Chain[V, E]) While(onSuccess func(ctx context.Context, v V) rop.MutableResult[V, E],
	while func(ctx context.Context, v V) bool) Chain[V, E] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain among c and alternatives,
// or c when none succeeded
func (c Chain[V, E]) Or(alternatives ...Chain[V, E]) Chain[V, E] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and required,
// or the last one when all succeeded
func (c Chain[V, E]) And(required ...Chain[V, E]) Chain[V, E] {
	last := c
	for _, ch := range append([]Chain[V, E]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[V, E]) Ensure(onSuccess func(context.Context, V), onFailure func(context.Context, E)) Chain[V, E] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Error())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value
func Finally[V, E, Out any](c Chain[V, E],
	onSuccess func(context.Context, V) Out,
	onFailure func(context.Context, E) Out) Out {

	if c.res.IsSuccess() {
		return onSuccess(c.ctx, c.res.Value())
	}
	return onFailure(c.ctx, c.res.Error())
}

func (c Chain[V, E]) step(run func() rop.MutableResult[V, E]) Chain[V, E] {
	c.stage++
	stage := core.StageName("", c.stage)

	if c.res.IsFailure() {
		core.TraceSkipped(c.ctx, stage, c.res.Id())
		return c
	}

	c.res = run()
	core.Trace[V, E](c.ctx, stage, c.res)
	return c
}
