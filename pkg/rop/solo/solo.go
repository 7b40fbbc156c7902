package solo

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
)

func Succeed[V, E any](input V) rop.Result[V, E] {
	return rop.Success[V, E](input)
}

func Fail[V, E any](err E) rop.Result[V, E] {
	return rop.Failure[V](err)
}

func Validate[V, E any](ctx context.Context, input V,
	validate func(ctx context.Context, in V) (isValid bool, err E)) rop.Result[V, E] {
	return AndValidate(ctx, Succeed[V, E](input), validate)
}

func AndValidate[V, E any](ctx context.Context, input rop.Result[V, E],
	validate func(ctx context.Context, in V) (isValid bool, err E)) rop.Result[V, E] {

	if input.IsSuccess() {
		if isValid, err := validate(ctx, input.Value()); !isValid {
			return rop.Failure[V](err)
		}
	}
	return input
}

func Switch[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) rop.Result[Out, E] {

	return rop.Bind(input, func(r In) rop.Result[Out, E] {
		return onSuccess(ctx, r)
	})
}

func Map[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, E] {

	return rop.Map(input, func(r In) Out {
		return onSuccess(ctx, r)
	})
}

func Tee[V, E any](ctx context.Context,
	input rop.Result[V, E],
	onSuccess func(ctx context.Context, r V)) rop.Result[V, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

func TeeIf[V, E any](ctx context.Context,
	input rop.Result[V, E],
	condition func(ctx context.Context, r V) bool,
	onSuccessAndCondition func(ctx context.Context, r V)) rop.Result[V, E] {

	if input.IsSuccess() && condition(ctx, input.Value()) {
		onSuccessAndCondition(ctx, input.Value())
	}
	return input
}

func DoubleTee[V, E any](ctx context.Context, input rop.Result[V, E],
	onSuccess func(ctx context.Context, r V),
	onFailure func(ctx context.Context, err E)) rop.Result[V, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onFailure(ctx, input.Error())
	}
	return input
}

// DoubleMap maps a success like Map and reports a failure to onFailure
// before passing it on.
func DoubleMap[In, Out, E any](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err E)) rop.Result[Out, E] {

	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(ctx, input.Value()))
	}

	onFailure(ctx, input.Error())
	return rop.FailureFrom[In, Out](input)
}

func Try[In, Out any](ctx context.Context, input rop.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out, error] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Value())
		return rop.Of(out, err)
	}
	return rop.FailureFrom[In, Out](input)
}

func FailOnError[V any](ctx context.Context, input rop.Result[V, error],
	maybeErr func(ctx context.Context, in V) error) rop.Result[V, error] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Value()); err != nil {
			return rop.Failure[V](err)
		}
	}
	return input
}

func Finally[In, E, Out any](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Error())
}
