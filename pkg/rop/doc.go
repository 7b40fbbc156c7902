// Package rop provides the two result containers used to build
// short-circuiting pipelines.
//
// Result[V, E] is immutable. Bind feeds the success value to the next stage,
// which may return a different success type; a failure skips every later
// stage and carries its error to the end of the chain unchanged.
//
// MutableResult[V, E] keeps its success type for the whole pipeline. Stages
// edit the held value through InPlaceBind or look at it through ReadOnlyBind.
//
// Neither container logs or panics on failure. Value and Error panic with an
// Error class error when asked for the branch the result does not hold.
package rop
