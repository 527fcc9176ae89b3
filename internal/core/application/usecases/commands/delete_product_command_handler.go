package commands

import (
	"context"

	"darkstore/internal/core/ports"
)

// DeleteProductCommandHandler removes products from the catalog.
type DeleteProductCommandHandler struct {
	products ports.ProductRepository
}

// NewDeleteProductCommandHandler creates a handler for catalog deletions.
func NewDeleteProductCommandHandler(products ports.ProductRepository) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{products: products}
}

// Handle deletes the product.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.products.Delete(ctx, cmd.ProductID())
}
