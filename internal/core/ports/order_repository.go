package ports

import (
	"context"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate. The order's key must not already
	// exist in the store.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order through a conditional
	// write on the aggregate's version. A lost race returns
	// errs.ErrConcurrentModification; callers re-read and retry or surface
	// the conflict.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves all orders placed by the given customer.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order in the store.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
