// Package solo contains single-value, synchronous ROP primitives that operate
// on rop.Result[V, E] and pass a context to every callback. They are the
// building blocks the chain package is made of.
//
// Highlights:
// - Succeed/Fail: construct Result[V, E]
// - Validate/AndValidate: turn a predicate into a failure on invalid input
// - Switch: move from Result[In, E] to Result[Out, E]
// - Map/DoubleMap: transform successful values
// - Try/FailOnError: bridge functions returning error into Result[V, error]
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
