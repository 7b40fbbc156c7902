// Package core contains pipeline plumbing shared by chain and tiny: options
// carried in the context and the stage tracer. It does not define business
// logic and the result containers in package rop do not depend on it.
package core
