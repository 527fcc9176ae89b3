// Package queries contains read operations for retrieving system state.
// Implements the Query side of the CQRS split: read models are plain structs
// built from the repositories, with all filtering done in-process since prefix
// scans are the store's only query mechanism.
//
// Order read models never carry the one-time code. The only read path that
// surfaces it is the creation response to the purchaser.
package queries
