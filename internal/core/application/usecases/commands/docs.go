// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: constructor validation, domain
// transitions, and conditional persistence through the repositories.
//
// Write races on the same order are resolved by the store's versioned
// conditional writes: handlers pass errs.ErrConcurrentModification through to
// the caller, who either retries or surfaces the conflict.
package commands
