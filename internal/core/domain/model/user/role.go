package user

import (
	"fmt"

	"darkstore/internal/pkg/errs"
)

// Role determines which order transitions and resources a user may touch.
// It is fixed at signup.
type Role string

const (
	// Consumer places orders and sees only their own.
	Consumer Role = "consumer"

	// DeliveryPartner claims pending orders and confirms hand-off with the
	// one-time code.
	DeliveryPartner Role = "delivery_partner"

	// Manager administers the catalog, cancels pending orders and reads
	// analytics and bug reports.
	Manager Role = "manager"
)

// Validate checks that the role is one of the defined roles.
func (r Role) Validate() error {
	switch r {
	case Consumer, DeliveryPartner, Manager:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// CanPlaceOrders reports whether the role may create orders.
func (r Role) CanPlaceOrders() bool {
	return r == Consumer
}

// CanClaimOrders reports whether the role may claim pending orders and verify
// one-time codes.
func (r Role) CanClaimOrders() bool {
	return r == DeliveryPartner
}

// CanViewAllOrders reports whether the role may list every order.
func (r Role) CanViewAllOrders() bool {
	return r == DeliveryPartner || r == Manager
}

// CanAdministrate reports whether the role may manage the catalog, cancel
// orders and read analytics.
func (r Role) CanAdministrate() bool {
	return r == Manager
}
