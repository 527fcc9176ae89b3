package order

import (
	"errors"
	"fmt"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/pkg/errs"
	"darkstore/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when attempting to use an improperly
// initialized LineItem.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
	"line item must be created via NewLineItem constructor")

// LineItem is one position of an order: a product reference, the unit price
// snapshotted at order time, and a quantity. The snapshot price is never
// recomputed from the live catalog, so later price changes do not alter
// historical orders.
type LineItem struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	price     float64
	quantity  int
	guard     guard.ConstructorGuard
}

// NewLineItem creates a LineItem with the given product, snapshot unit price
// and quantity. Quantity must be positive and price must not be negative.
func NewLineItem(productID kernel.UUID, price float64, quantity int) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate checks that the LineItem was created through the constructor.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (i LineItem) ProductID() kernel.UUID {
	return i.productID
}

// Price returns the unit price snapshotted at order time.
func (i LineItem) Price() float64 {
	return i.price
}

// Quantity returns the ordered quantity.
func (i LineItem) Quantity() int {
	return i.quantity
}

// Subtotal returns price multiplied by quantity.
func (i LineItem) Subtotal() float64 {
	return i.price * float64(i.quantity)
}

func (i *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is negative", price))
	}
	i.price = price
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

// TotalOf sums the subtotals of the given line items. It is the single source
// of truth for an order's total; creation rejects client-supplied totals that
// disagree with it.
func TotalOf(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
