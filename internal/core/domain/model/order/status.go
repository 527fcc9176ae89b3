package order

import (
	"fmt"

	"darkstore/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow:
//
//	pending ──> on_the_way ──> delivered
//	   │
//	   └──────> cancelled
//
// delivered and cancelled are terminal states. Status values use their wire
// representation directly so they persist and serialize without mapping.
type Status string

const (
	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be claimed by a fulfillment agent.
	Pending Status = "pending"

	// OnTheWay indicates the order has been claimed by a fulfillment agent
	// and is out for delivery.
	OnTheWay Status = "on_the_way"

	// Delivered indicates the hand-off was confirmed with the one-time code.
	// This is a terminal state.
	Delivered Status = "delivered"

	// Cancelled indicates an operator aborted the order while it was pending.
	// This is a terminal state.
	Cancelled Status = "cancelled"
)

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	switch s {
	case Pending, OnTheWay, Delivered, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Claim transitions the status to OnTheWay.
//
// Valid transitions:
//   - pending -> on_the_way
//
// Any other source status returns an invalid-state error; a second claim on an
// already claimed order is rejected here rather than silently reassigned.
func (s Status) Claim() (Status, error) {
	if s != Pending {
		return "", errs.NewInvalidStateError("claim", s.String())
	}

	return OnTheWay, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - on_the_way -> delivered
//
// Completion from any other status is rejected, which makes a repeated
// verification after success fail cleanly instead of re-transitioning.
func (s Status) Complete() (Status, error) {
	if s != OnTheWay {
		return "", errs.NewInvalidStateError("complete", s.String())
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - pending -> cancelled
//
// In-flight orders cannot be cancelled: once an agent has claimed the order
// the only way out is delivery.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return "", errs.NewInvalidStateError("cancel", s.String())
	}

	return Cancelled, nil
}

// ValidateCanHaveAgent validates consistency between order status and agent
// assignment: an agent is assigned if and only if the order has been claimed.
func (s Status) ValidateCanHaveAgent(hasAgent bool) error {
	if hasAgent && s != OnTheWay && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have an assigned agent", s))
	}

	if !hasAgent && (s == OnTheWay || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no assigned agent", s))
	}

	return nil
}
