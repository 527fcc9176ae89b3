package ports

import (
	"context"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update replaces an existing product's stored state.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves the whole catalog.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// Delete removes a product from the catalog.
	// Returns errs.ErrObjectNotFound if the product does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
