package pipe

import (
	"context"

	"github.com/cyeganeh01248/safe-result/pkg/result"
)

// Emit lifts plain values into a Result stream of Ok values. The stream
// closes after the last value, or early when the context dies.
func Emit[T any](ctx context.Context, values ...T) <-chan result.Result[T] {
	out := make(chan result.Result[T])

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {
			select {
			case out <- result.Ok(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// EmitResults streams already-built Results.
func EmitResults[T any](ctx context.Context, rs ...result.Result[T]) <-chan result.Result[T] {
	out := make(chan result.Result[T])

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			return
		}

		for _, r := range rs {
			select {
			case out <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect drains in into a slice, stopping at close or when the context
// dies.
func Collect[T any](ctx context.Context, in <-chan result.Result[T]) []result.Result[T] {
	res := make([]result.Result[T], 0)

	for {
		select {
		case r, ok := <-in:
			if !ok {
				return res
			}
			res = append(res, r)
		case <-ctx.Done():
			return res
		}
	}
}

// First returns the first Result off in, or the zero Result when the
// stream closes empty or the context dies first.
func First[T any](ctx context.Context, in <-chan result.Result[T]) result.Result[T] {
	select {
	case r, ok := <-in:
		if !ok {
			return result.Result[T]{}
		}
		return r
	case <-ctx.Done():
		return result.Result[T]{}
	}
}
