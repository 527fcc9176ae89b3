package commands

import (
	"errors"

	"darkstore/internal/core/domain/model/product"
	"darkstore/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents an operator's request to add a catalog
// product.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	details product.Details

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a product with the given
// details. Detail validation happens in the product constructor.
func NewCreateProductCommand(details product.Details) (CreateProductCommand, error) {
	return CreateProductCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Details returns the product attributes to store.
func (c CreateProductCommand) Details() product.Details {
	return c.details
}
