package result

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// ErrZeroResult is raised when the unconstructed zero Result is used where
// a constructed variant is required.
var ErrZeroResult = errors.New("result: zero Result")

// PanicError wraps a recovered panic payload that is not itself an error,
// so the capture adapters can store it inside an Err like any other
// failure. The original payload stays reachable through Value.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// toError shapes a recovered panic payload into an error.
func toError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return &PanicError{Value: recovered}
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Errors splits an error joined from several failures into its parts.
// A plain error comes back as a one-element slice.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellationError reports whether err carries the cooperative
// cancellation signal. Such failures are never captured into a Result
// anywhere in this module.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
