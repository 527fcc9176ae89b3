package commands

import (
	"context"

	"darkstore/internal/core/domain/model/product"
	"darkstore/internal/core/ports"
)

// UpdateProductCommandHandler replaces a product's operator-editable
// attributes.
type UpdateProductCommandHandler struct {
	products ports.ProductRepository
}

// NewUpdateProductCommandHandler creates a handler for catalog updates.
func NewUpdateProductCommandHandler(products ports.ProductRepository) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{products: products}
}

// Handle updates the product and returns the stored aggregate.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.products.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(cmd.Details()); err != nil {
		return nil, err
	}

	if err = h.products.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
