package chain

import (
	"context"
	"errors"

	"github.com/cyeganeh01248/safe-result/pkg/result"
)

// Chain wraps a result.Result with context to enable fluent chaining.
// escaped holds a failure that refused capture; while it is set the chain
// is dead and every step no-ops.
type Chain[T any] struct {
	ctx     context.Context
	res     result.Result[T]
	escaped error
}

// Start creates a new chain from a result.Result.
func Start[T any](ctx context.Context, res result.Result[T]) Chain[T] {
	return Chain[T]{
		ctx: ctx,
		res: res,
	}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, value T) Chain[T] {
	return Chain[T]{
		ctx: ctx,
		res: result.Ok(value),
	}
}

func (c Chain[T]) alive() bool {
	return c.escaped == nil && c.res.IsOk()
}

// dead carries a finished chain across a payload type change.
func dead[T, U any](c Chain[T]) Chain[U] {
	return Chain[U]{
		ctx:     c.ctx,
		res:     result.ErrFrom[U](c.res),
		escaped: c.escaped,
	}
}

// Then chains a function that returns result.Result[U].
func Then[T, U any](c Chain[T], onOk func(context.Context, T) result.Result[U]) Chain[U] {
	if !c.alive() {
		return dead[T, U](c)
	}
	return Chain[U]{
		ctx: c.ctx,
		res: onOk(c.ctx, c.res.Value()),
	}
}

// ThenTry chains a function that returns (U, error). A returned failure is
// captured as Err; the cooperative cancellation signal instead escapes and
// kills the chain. ThenTry refuses to start once the context is done.
func ThenTry[T, U any](c Chain[T], tryOnOk func(context.Context, T) (U, error)) Chain[U] {
	if !c.alive() {
		return dead[T, U](c)
	}
	if err := c.ctx.Err(); err != nil {
		return Chain[U]{ctx: c.ctx, escaped: err}
	}
	v, err := tryOnOk(c.ctx, c.res.Value())
	if err != nil && !result.IsNil(err) {
		if result.IsCancellationError(err) {
			return Chain[U]{ctx: c.ctx, escaped: err}
		}
		return Chain[U]{ctx: c.ctx, res: result.Err[U](err)}
	}
	return Chain[U]{ctx: c.ctx, res: result.Ok(v)}
}

// Map chains a pure transformation function.
func Map[T, U any](c Chain[T], onOk func(context.Context, T) U) Chain[U] {
	if !c.alive() {
		return dead[T, U](c)
	}
	return Chain[U]{
		ctx: c.ctx,
		res: result.Ok(onOk(c.ctx, c.res.Value())),
	}
}

// Then chains a same-type step returning result.Result[T].
func (c Chain[T]) Then(onOk func(context.Context, T) result.Result[T]) Chain[T] {
	return Then[T, T](c, onOk)
}

// ThenTry chains a same-type step returning (T, error).
func (c Chain[T]) ThenTry(tryOnOk func(context.Context, T) (T, error)) Chain[T] {
	return ThenTry[T, T](c, tryOnOk)
}

// Map chains a same-type pure transformation.
func (c Chain[T]) Map(onOk func(context.Context, T) T) Chain[T] {
	return Map[T, T](c, onOk)
}

// Check validates the running value, turning a predicate miss into an Err.
func (c Chain[T]) Check(pred func(context.Context, T) bool, errMsg string) Chain[T] {
	if !c.alive() {
		return c
	}
	if !pred(c.ctx, c.res.Value()) {
		return Chain[T]{ctx: c.ctx, res: result.Err[T](errors.New(errMsg))}
	}
	return c
}

// CheckAll runs every predicate and joins all misses into a single Err, so
// the caller sees the full list of violations rather than the first one.
func (c Chain[T]) CheckAll(preds ...func(context.Context, T) (bool, string)) Chain[T] {
	if !c.alive() {
		return c
	}
	var failures []error
	for _, pred := range preds {
		if ok, msg := pred(c.ctx, c.res.Value()); !ok {
			failures = append(failures, errors.New(msg))
		}
	}
	if len(failures) > 0 {
		return Chain[T]{ctx: c.ctx, res: result.Err[T](errors.Join(failures...))}
	}
	return c
}

// Ensure performs side effects without changing the outcome. Handlers may
// be nil; only the arm matching the chain's state runs.
func (c Chain[T]) Ensure(onOk func(context.Context, T), onErr func(context.Context, error), onEscaped func(context.Context, error)) Chain[T] {
	switch {
	case c.escaped != nil:
		if onEscaped != nil {
			onEscaped(c.ctx, c.escaped)
		}
	case c.res.IsOk():
		if onOk != nil {
			onOk(c.ctx, c.res.Value())
		}
	case c.res.IsErr():
		if onErr != nil {
			onErr(c.ctx, c.res.Err())
		}
	}
	return c
}

// Or picks the first healthy chain, preferring c over alt. When neither is
// healthy an escaped chain wins over a captured failure.
func (c Chain[T]) Or(alt Chain[T]) Chain[T] {
	if c.alive() {
		return c
	}
	if alt.alive() {
		return alt
	}
	if c.escaped != nil {
		return c
	}
	if alt.escaped != nil {
		return alt
	}
	return c
}

// And returns next if c is healthy, otherwise c's failure.
func (c Chain[T]) And(next Chain[T]) Chain[T] {
	if !c.alive() {
		return c
	}
	return next
}

// While keeps applying step while pred holds on the running value. The loop
// stops on the first captured failure or escape.
func (c Chain[T]) While(pred func(context.Context, T) bool, step func(context.Context, T) (T, error)) Chain[T] {
	cur := c
	for cur.alive() && pred(cur.ctx, cur.res.Value()) {
		cur = cur.ThenTry(step)
	}
	return cur
}

// Result returns the underlying result.Result. It is the zero Result when
// the chain escaped.
func (c Chain[T]) Result() result.Result[T] {
	return c.res
}

// Escaped returns the failure that refused capture, or nil.
func (c Chain[T]) Escaped() error {
	return c.escaped
}

// Unwrap collapses the chain to a conventional (value, error) pair. An
// escaped signal takes the error slot.
func (c Chain[T]) Unwrap() (T, error) {
	if c.escaped != nil {
		var zero T
		return zero, c.escaped
	}
	return c.res.AsTuple()
}

// Finally collapses the chain into a final value via state handlers.
func Finally[T, U any](c Chain[T], onOk func(context.Context, T) U, onErr func(context.Context, error) U, onEscaped func(context.Context, error) U) U {
	switch {
	case c.escaped != nil:
		return onEscaped(c.ctx, c.escaped)
	case c.res.IsOk():
		return onOk(c.ctx, c.res.Value())
	default:
		_, err := c.res.AsTuple()
		return onErr(c.ctx, err)
	}
}
