// Package pipe runs Result values through channel pipelines with worker
// pools, built from stages.
//
// A Stage processes one Result and either produces the next Result or
// escapes with a non-nil error. The cooperative cancellation signal is the
// ordinary escape: workers drop the item and wind down, and the output
// channel closes after the drain. Cancellation is observed through the
// context, never through fabricated Err values on the stream. Any other
// escape panics the worker; failures a stage refuses to capture stay fatal
// and visible.
//
// Key operations:
// - Map/Then/Try/TryWith/Tee: build stages from plain functions
// - Run/RunWith: fan a stage out over N workers
// - Emit/EmitResults: lift values into a Result stream
// - Collect/First: read a stream back
// - FanIn: multiplex streams into one
// - Buffer: decouple producer and consumer with an unbounded FIFO
// - Fold: collapse a Result stream into plain values via handlers
//
// Worker counts can ride the context: WithWorkers/WorkersFrom.
package pipe
