// Package order contains the order aggregate and its supporting value objects.
//
// An order moves through a role-gated state machine:
//
//	pending ──> on_the_way ──> delivered
//	   │
//	   └──────> cancelled
//
// delivered and cancelled are terminal; no further transitions are permitted.
// A purchaser creates an order, a fulfillment agent claims it and completes it
// by presenting the one-time code minted at creation, and an operator may
// cancel it while it is still pending.
package order
