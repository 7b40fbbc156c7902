// Package chain provides a fluent wrapper around rop.Result[V, E]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Each stage may change the success type while the error type stays fixed
// for the whole chain. Once a stage fails, later stages are skipped and the
// failure reaches Result or Finally unchanged.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[V, E] or value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (V -> U)
// - Named: label the next stage in traces
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Stages are traced at debug level through the logger set with
// core.WithLogger.
package chain
