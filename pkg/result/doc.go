// Package result implements the Result pattern: operations that can fail
// return a first-class Ok/Err value that callers inspect, instead of
// raising through the stack. An Err freezes the failure's stack trace at
// the moment of capture, and equality between failures is defined by
// dynamic type plus message text rather than identity.
//
// Key operations:
// - Ok/Err/FromTuple: construct, or lift a conventional (value, error) pair
// - Unwrap/UnwrapOr/Get/AsTuple: extract the payload or the failure
// - Map/AndThen/Flatten (+Context forms): compose without leaving the rails
// - Safe/SafeWith/SafeContext/SafeContextWith: adapt fallible functions so
//   failures arrive as Err values; undeclared failures and the cooperative
//   cancellation signal are never captured and propagate unchanged
// - IsOk/IsErrOfType/ErrAs/TracebackOf: predicates and diagnostics
//
// Subpackages build on the same value: chain provides fluent synchronous
// composition, pipe runs Results through concurrent channel stages.
package result
