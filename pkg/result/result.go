package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type variant uint8

const (
	variantZero variant = iota
	variantOk
	variantErr
)

// Result is the outcome of an operation that can fail: either an Ok
// carrying a value or an Err carrying the failure object. Values are
// immutable after construction and safe to share across goroutines.
// The zero Result is neither variant; IsZero reports it.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	trace     string
	v         variant
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		v:         variantOk,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err builds the failure variant. The originating call stack is rendered
// once, here, and stays frozen for the lifetime of the value.
func Err[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		trace:     captureTrace(err),
		v:         variantErr,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromTuple lifts a conventional (value, error) pair: a nil error (typed
// nils included) means Ok. Lifting applies no cancellation policy; that
// belongs to the capture adapters.
func FromTuple[T any](v T, err error) Result[T] {
	if err == nil || IsNil(err) {
		return Ok(v)
	}
	return Err[T](err)
}

// ErrFrom converts a non-Ok Result across payload types, keeping the
// failure, its frozen trace, id and createdAt. Panics on an Ok input,
// which has a payload that cannot be carried over.
func ErrFrom[Out, In any](from Result[In]) Result[Out] {
	if from.v == variantOk {
		panic("result: ErrFrom called on an Ok Result")
	}
	return Result[Out]{
		err:       from.err,
		trace:     from.trace,
		v:         from.v,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) IsOk() bool {
	return r.v == variantOk
}

func (r Result[T]) IsErr() bool {
	return r.v == variantErr
}

// IsZero reports the unconstructed zero Result.
func (r Result[T]) IsZero() bool {
	return r.v == variantZero
}

// Value returns the Ok payload, or the zero value of T otherwise.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the captured failure, or nil otherwise.
func (r Result[T]) Err() error {
	return r.err
}

// Get is the comma-ok form of Value.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.v == variantOk
}

// Unwrap returns the Ok payload. On an Err it panics with the captured
// error object itself, original type and message intact; on the zero
// Result it panics with ErrZeroResult.
func (r Result[T]) Unwrap() T {
	switch r.v {
	case variantOk:
		return r.value
	case variantErr:
		panic(r.err)
	default:
		panic(ErrZeroResult)
	}
}

// UnwrapOr returns the Ok payload or def. The variant alone decides: an Ok
// holding an empty or zero value still wins over def.
func (r Result[T]) UnwrapOr(def T) T {
	if r.v == variantOk {
		return r.value
	}
	return def
}

// AsTuple unlifts to a conventional (value, error) pair. The zero Result
// reports ErrZeroResult.
func (r Result[T]) AsTuple() (T, error) {
	switch r.v {
	case variantOk:
		return r.value, nil
	case variantErr:
		var zero T
		return zero, r.err
	default:
		var zero T
		return zero, ErrZeroResult
	}
}

func (r Result[T]) String() string {
	switch r.v {
	case variantOk:
		return fmt.Sprintf("Ok(%v)", r.value)
	case variantErr:
		return fmt.Sprintf("Err(%v)", r.err)
	default:
		return "Result{}"
	}
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) ID() uuid.UUID {
	return r.id
}
