// Package chain provides a fluent wrapper around result.Result[T] for
// building synchronous railway pipelines without branching at every step.
//
// A Chain carries a context, the running Result, and an escape slot: once
// a step's failure refuses capture (the cooperative cancellation signal),
// the chain is dead and later steps no-op. The escaped signal surfaces
// through Escaped, Unwrap or the Finally arms instead of ever being stored
// as an Err.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or a plain value
// - Then/ThenTry/Map: compose result-returning, fallible or pure steps
// - Check/CheckAll: validate the running value, joining failures
// - Ensure: run side effects without changing the outcome
// - Or/And: pick between finished chains
// - While: keep applying a step while a predicate holds
// - Finally: collapse into a final value via ok/err/escaped handlers
//
// Package-level Then, ThenTry, Map and Finally change the payload type;
// the methods keep it.
package chain
