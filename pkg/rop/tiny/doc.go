// Package tiny provides a minimal fluent Chain[V, E] over rop.MutableResult
// for pipelines that enrich one value instead of turning it into new types.
//
// It parallels the chain package but keeps the success type fixed:
// - Start/FromValue: create a Chain
// - Mutate/Inspect: edit or observe the held value in place
// - Then/Validate: replace the result or fail it
// - RepeatUntil/While: loop a stage
// - Or/And: pick between chains
// - Ensure: trigger side effects
// - Finally: reduce to a concrete value via handlers
//
// Tiny is ideal for small services or tests where lightweight synchronous
// chaining improves readability.
package tiny
