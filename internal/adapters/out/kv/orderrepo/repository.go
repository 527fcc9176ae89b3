package orderrepo

import (
	"context"
	"encoding/json"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/order"
	"darkstore/internal/core/ports"
)

// Repository implements ports.OrderRepository on top of the key-value store.
type Repository struct {
	store ports.KVStore
}

// NewRepository creates a new order repository.
func NewRepository(store ports.KVStore) *Repository {
	return &Repository{store: store}
}

func key(id kernel.UUID) string {
	return ports.OrderKeyPrefix + id.String()
}

// Add persists a new order. The write is conditional on the key being absent
// so a duplicated order ID is rejected instead of silently overwritten.
func (r *Repository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	value, err := json.Marshal(fromDomain(aggregate))
	if err != nil {
		return err
	}

	_, err = r.store.Swap(ctx, key(aggregate.ID()), value, ports.InsertVersion)
	return err
}

// Update persists a state transition conditionally on the version the
// aggregate was restored at. A lost race surfaces as
// errs.ErrConcurrentModification.
func (r *Repository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	value, err := json.Marshal(fromDomain(aggregate))
	if err != nil {
		return err
	}

	_, err = r.store.Swap(ctx, key(aggregate.ID()), value, aggregate.Version())
	return err
}

// Get retrieves an order by ID.
func (r *Repository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, err := r.store.Get(ctx, key(id))
	if err != nil {
		return nil, err
	}

	var dto orderDTO
	if err = json.Unmarshal(record.Value, &dto); err != nil {
		return nil, err
	}

	return toDomain(dto, record.Version)
}

// GetByCustomer retrieves all orders placed by the given customer.
func (r *Repository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(all))
	for _, aggregate := range all {
		if aggregate.CustomerID().IsEqual(customerID) {
			orders = append(orders, aggregate)
		}
	}

	return orders, nil
}

// GetAll retrieves every order in the store.
func (r *Repository) GetAll(ctx context.Context) ([]*order.Order, error) {
	records, err := r.store.ScanByPrefix(ctx, ports.OrderKeyPrefix)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(records))
	for _, record := range records {
		var dto orderDTO
		if err = json.Unmarshal(record.Value, &dto); err != nil {
			return nil, err
		}

		aggregate, err := toDomain(dto, record.Version)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
