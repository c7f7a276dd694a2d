// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: construction-time validation via a
// constructor guard, then a handler that loads aggregates, applies domain
// behavior and persists the result.
//
// Handlers depend on the repository ports directly. The collection store
// replaces a whole collection per write, so each repository call is already
// atomic and no unit-of-work wrapper is needed; cross-aggregate updates rely
// on the order aggregate's version check to reject stale writers.
package commands
