package result

import "context"

// Combinators never raise on their own: on an Ok they invoke the supplied
// transform, on anything else they propagate the input with its failure,
// frozen trace and identity intact. A transform that panics is not the
// combinator's concern; put a capture adapter around it if that matters.

// Map applies f to the Ok payload and wraps the outcome in a fresh Ok.
func Map[In any, Out any](input Result[In], f func(r In) Out) Result[Out] {
	if input.IsOk() {
		return Ok(f(input.value))
	}
	return ErrFrom[Out](input)
}

// AndThen chains f over the Ok payload; f's Result is returned exactly as
// produced, never re-wrapped.
func AndThen[In any, Out any](input Result[In], f func(r In) Result[Out]) Result[Out] {
	if input.IsOk() {
		return f(input.value)
	}
	return ErrFrom[Out](input)
}

// Flatten collapses one level of nesting: Ok(inner) is inner exactly as
// stored, a failure crosses the type change untouched. Deeper nesting
// flattens by composing Flatten calls.
func Flatten[T any](input Result[Result[T]]) Result[T] {
	if input.IsOk() {
		return input.value
	}
	return ErrFrom[T](input)
}

// MapContext is Map for a transform that may block. The context passes
// through to the transform untouched; the combinator adds no suspension
// and no cancellation handling of its own.
func MapContext[In any, Out any](ctx context.Context, input Result[In],
	f func(ctx context.Context, r In) Out) Result[Out] {

	if input.IsOk() {
		return Ok(f(ctx, input.value))
	}
	return ErrFrom[Out](input)
}

// AndThenContext is AndThen for a transform that may block.
func AndThenContext[In any, Out any](ctx context.Context, input Result[In],
	f func(ctx context.Context, r In) Result[Out]) Result[Out] {

	if input.IsOk() {
		return f(ctx, input.value)
	}
	return ErrFrom[Out](input)
}

// Match folds both arms into one value. The zero Result takes the error
// arm with ErrZeroResult.
func Match[In any, Out any](input Result[In],
	onOk func(r In) Out,
	onErr func(err error) Out) Out {

	if input.IsOk() {
		return onOk(input.value)
	}
	if input.IsZero() {
		return onErr(ErrZeroResult)
	}
	return onErr(input.err)
}

// Tee runs a side effect on the Ok payload and returns the input unchanged.
func Tee[T any](input Result[T], onOk func(r T)) Result[T] {
	if input.IsOk() {
		onOk(input.value)
	}

	return input
}

// TeeErr runs a side effect on the captured failure and returns the input
// unchanged.
func TeeErr[T any](input Result[T], onErr func(err error)) Result[T] {
	if input.IsErr() {
		onErr(input.err)
	}

	return input
}

// Map is the same-type method form; the package-level Map changes the
// payload type.
func (r Result[T]) Map(f func(r T) T) Result[T] {
	return Map(r, f)
}

// AndThen is the same-type method form of the package-level AndThen.
func (r Result[T]) AndThen(f func(r T) Result[T]) Result[T] {
	return AndThen(r, f)
}

// MapContext is the same-type method form of the package-level MapContext.
func (r Result[T]) MapContext(ctx context.Context, f func(ctx context.Context, r T) T) Result[T] {
	return MapContext(ctx, r, f)
}

// AndThenContext is the same-type method form of the package-level
// AndThenContext.
func (r Result[T]) AndThenContext(ctx context.Context, f func(ctx context.Context, r T) Result[T]) Result[T] {
	return AndThenContext(ctx, r, f)
}
