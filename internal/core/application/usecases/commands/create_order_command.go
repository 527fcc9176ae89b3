package commands

import (
	"errors"
	"fmt"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/order"
	"darkstore/internal/pkg/errs"
	"darkstore/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new purchase order.
// Line items carry price snapshots taken at order time; the expected total, if
// the client supplied one, is checked against the recomputed sum so a stale or
// tampered client total is rejected instead of trusted.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	items         []order.LineItem
	location      order.DeliveryLocation
	expectedTotal *float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// expectedTotal is optional; pass nil when the client did not state one.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	items []order.LineItem,
	location order.DeliveryLocation,
	expectedTotal *float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
		cmd.setLocation(location),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if expectedTotal != nil {
		total := *expectedTotal
		cmd.expectedTotal = &total
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the purchaser's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the order's line items.
func (c CreateOrderCommand) Items() []order.LineItem {
	items := make([]order.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Location returns the delivery destination.
func (c CreateOrderCommand) Location() order.DeliveryLocation {
	return c.location
}

// ExpectedTotal returns the client-stated total, or nil if none was supplied.
func (c CreateOrderCommand) ExpectedTotal() *float64 {
	return c.expectedTotal
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]order.LineItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setLocation(location order.DeliveryLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

// validateExpectedTotal rejects a client-stated total that disagrees with the
// sum recomputed from the line items.
func (c CreateOrderCommand) validateExpectedTotal() error {
	if c.expectedTotal == nil {
		return nil
	}

	computed := order.TotalOf(c.items)
	if *c.expectedTotal != computed {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("client total %.2f does not match computed total %.2f", *c.expectedTotal, computed))
	}

	return nil
}
