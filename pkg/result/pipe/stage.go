package pipe

import (
	"context"

	"github.com/cyeganeh01248/safe-result/pkg/result"
)

// Stage processes one Result. A non-nil error is the escape signal: the
// stage refuses to produce for this input and the pipeline policy applies
// (cancellation winds the worker down, anything else is fatal). Stages
// propagate non-Ok inputs unchanged without invoking their function.
type Stage[In, Out any] func(ctx context.Context, in result.Result[In]) (result.Result[Out], error)

// Map builds a stage from a pure transformation.
func Map[In, Out any](f func(ctx context.Context, in In) Out) Stage[In, Out] {
	return func(ctx context.Context, in result.Result[In]) (result.Result[Out], error) {
		if !in.IsOk() {
			return result.ErrFrom[Out](in), nil
		}
		return result.Ok(f(ctx, in.Value())), nil
	}
}

// Then builds a stage from a Result-returning function; its Result is
// emitted as produced.
func Then[In, Out any](f func(ctx context.Context, in In) result.Result[Out]) Stage[In, Out] {
	return func(ctx context.Context, in result.Result[In]) (result.Result[Out], error) {
		if !in.IsOk() {
			return result.ErrFrom[Out](in), nil
		}
		return f(ctx, in.Value()), nil
	}
}

// Try builds a capture stage from a fallible function: a returned failure
// becomes an Err on the stream, except the cancellation signal, which
// escapes.
func Try[In, Out any](f func(ctx context.Context, in In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, in result.Result[In]) (result.Result[Out], error) {
		if !in.IsOk() {
			return result.ErrFrom[Out](in), nil
		}
		v, err := f(ctx, in.Value())
		if err != nil && !result.IsNil(err) {
			if result.IsCancellationError(err) {
				return result.Result[Out]{}, err
			}
			return result.Err[Out](err), nil
		}
		return result.Ok(v), nil
	}
}

// TryWith builds a restricted capture stage: only failures matching a
// declared class become Err values; cancellation and undeclared failures
// escape. Panics when called with no classes.
func TryWith[In, Out any](classes ...result.Class) func(f func(ctx context.Context, in In) (Out, error)) Stage[In, Out] {
	if len(classes) == 0 {
		panic("pipe: the capture class set must not be empty")
	}
	return func(f func(ctx context.Context, in In) (Out, error)) Stage[In, Out] {
		return func(ctx context.Context, in result.Result[In]) (result.Result[Out], error) {
			if !in.IsOk() {
				return result.ErrFrom[Out](in), nil
			}
			v, err := f(ctx, in.Value())
			if err != nil && !result.IsNil(err) {
				if result.IsCancellationError(err) || !catches(classes, err) {
					return result.Result[Out]{}, err
				}
				return result.Err[Out](err), nil
			}
			return result.Ok(v), nil
		}
	}
}

// Tee builds a stage that runs a side effect on Ok values and passes every
// input through unchanged.
func Tee[In any](f func(ctx context.Context, in In)) Stage[In, In] {
	return func(ctx context.Context, in result.Result[In]) (result.Result[In], error) {
		if in.IsOk() {
			f(ctx, in.Value())
		}
		return in, nil
	}
}

func catches(classes []result.Class, err error) bool {
	for _, c := range classes {
		if c.Catches(err) {
			return true
		}
	}
	return false
}
