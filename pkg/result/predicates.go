package result

import "errors"

// IsOk reports whether r is the Ok variant; the free-function twin of the
// method, shaped like the other diagnostics below.
func IsOk[T any](r Result[T]) bool {
	return r.IsOk()
}

// IsErrOfType reports whether r is an Err whose failure matches E by
// errors.As semantics: subtypes and wrapped errors count.
func IsErrOfType[E error, T any](r Result[T]) bool {
	_, ok := ErrAs[E](r)
	return ok
}

// ErrAs is the narrowing twin of IsErrOfType: it extracts the failure as E
// when it matches.
func ErrAs[E error, T any](r Result[T]) (E, bool) {
	var target E
	if !r.IsErr() || r.err == nil {
		return target, false
	}
	ok := errors.As(r.err, &target)
	return target, ok
}

// IsErrOf reports whether r is an Err caught by the given class.
func IsErrOf[T any](r Result[T], c Class) bool {
	return r.IsErr() && c.Catches(r.err)
}

// TracebackOf returns the stack-trace text frozen when the Err was
// constructed, or "" for anything that is not an Err.
func TracebackOf[T any](r Result[T]) string {
	return r.trace
}
