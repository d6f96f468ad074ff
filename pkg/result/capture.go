package result

import "context"

// The capture adapters are the only boundary that converts failures into
// Results. Whatever an adapter refuses to capture propagates unchanged on
// the channel it arrived on: refused returned errors come back on the
// adapted function's error return, refused panics re-panic with the
// original payload. The cancellation signal is always refused.
//
// The boundary is the adapted call itself. When fn returns a lazy value (a
// channel, an iterator, a closure), failures raised later while consuming
// it happen outside the boundary and are not captured.

// Safe adapts fn into a total function: a returned error or a panic inside
// fn becomes an Err, a normal return becomes an Ok. The adapted function
// itself never fails. The one failure Safe refuses is the cancellation
// signal; having no error return to surface it on, the adapted function
// re-raises it as a panic. Context-aware code belongs with SafeContext.
func Safe[T any](fn func() (T, error)) func() Result[T] {
	return func() (res Result[T]) {
		defer func() {
			if rec := recover(); rec != nil {
				res = capturePanic[T](rec, nil)
			}
		}()
		v, err := fn()
		if err != nil && !IsNil(err) {
			if IsCancellationError(err) {
				panic(err)
			}
			return Err[T](err)
		}
		return Ok(v)
	}
}

// SafeWith builds an adapter that captures only failures some declared
// class catches. Undeclared failures and the cancellation signal escape:
// returned errors on the error return, panics as re-panics. Decoration
// with an empty class set is a programming error and panics outright.
func SafeWith[T any](classes ...Class) func(fn func() (T, error)) func() (Result[T], error) {
	mustHaveClasses(classes)
	return func(fn func() (T, error)) func() (Result[T], error) {
		return func() (res Result[T], escaped error) {
			defer func() {
				if rec := recover(); rec != nil {
					res = capturePanic[T](rec, classes)
				}
			}()
			v, err := fn()
			if err != nil && !IsNil(err) {
				if IsCancellationError(err) || !anyCatches(classes, err) {
					return Result[T]{}, err
				}
				return Err[T](err), nil
			}
			return Ok(v), nil
		}
	}
}

// SafeContext is Safe for context-aware code. The cancellation signal
// comes back on the adapted function's error return for the caller to
// observe directly; every other failure is captured into the Result.
func SafeContext[T any](fn func(context.Context) (T, error)) func(context.Context) (Result[T], error) {
	return func(ctx context.Context) (res Result[T], escaped error) {
		defer func() {
			if rec := recover(); rec != nil {
				res = capturePanic[T](rec, nil)
			}
		}()
		v, err := fn(ctx)
		if err != nil && !IsNil(err) {
			if IsCancellationError(err) {
				return Result[T]{}, err
			}
			return Err[T](err), nil
		}
		return Ok(v), nil
	}
}

// SafeContextWith combines SafeContext and SafeWith: the cancellation
// signal always escapes, declared classes are captured, everything else
// escapes on its arrival channel.
func SafeContextWith[T any](classes ...Class) func(fn func(context.Context) (T, error)) func(context.Context) (Result[T], error) {
	mustHaveClasses(classes)
	return func(fn func(context.Context) (T, error)) func(context.Context) (Result[T], error) {
		return func(ctx context.Context) (res Result[T], escaped error) {
			defer func() {
				if rec := recover(); rec != nil {
					res = capturePanic[T](rec, classes)
				}
			}()
			v, err := fn(ctx)
			if err != nil && !IsNil(err) {
				if IsCancellationError(err) || !anyCatches(classes, err) {
					return Result[T]{}, err
				}
				return Err[T](err), nil
			}
			return Ok(v), nil
		}
	}
}

// capturePanic converts a recovered panic into an Err. Cancellation-valued
// panics re-panic, as does any failure no declared class catches when the
// class set is restricted (non-nil).
func capturePanic[T any](rec any, classes []Class) Result[T] {
	err := toError(rec)
	if IsCancellationError(err) {
		panic(rec)
	}
	if classes != nil && !anyCatches(classes, err) {
		panic(rec)
	}
	return Err[T](err)
}

func mustHaveClasses(classes []Class) {
	if len(classes) == 0 {
		panic("result: the capture class set must not be empty")
	}
}
