package commands

import (
	"context"
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/product"
	"darkstore/internal/core/ports"
)

// CreateProductCommandHandler adds products to the catalog.
type CreateProductCommandHandler struct {
	products ports.ProductRepository
}

// NewCreateProductCommandHandler creates a handler for catalog additions.
func NewCreateProductCommandHandler(products ports.ProductRepository) CreateProductCommandHandler {
	return CreateProductCommandHandler{products: products}
}

// Handle creates the product and returns the stored aggregate.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := product.NewProduct(kernel.NewUUID(), cmd.Details(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = h.products.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
