package commands

import (
	"errors"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/product"
	"darkstore/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents an operator's request to replace a catalog
// product's attributes. Historical orders keep their price snapshots.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	details   product.Details

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update the given product.
func NewUpdateProductCommand(productID kernel.UUID, details product.Details) (UpdateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID: productID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Details returns the replacement attributes.
func (c UpdateProductCommand) Details() product.Details {
	return c.details
}
