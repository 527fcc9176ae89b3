// Package productrepo persists catalog products as JSON documents in the
// key-value store under the "product:" prefix.
package productrepo

import (
	"context"
	"encoding/json"
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/product"
	"darkstore/internal/core/ports"
)

type productDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

func fromDomain(aggregate *product.Product) productDTO {
	return productDTO{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Category:    aggregate.Category(),
		Image:       aggregate.Image(),
		Stock:       aggregate.Stock(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto productDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, product.Details{
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		Category:    dto.Category,
		Image:       dto.Image,
		Stock:       dto.Stock,
	}, dto.CreatedAt)
}

// Repository implements ports.ProductRepository on top of the key-value store.
type Repository struct {
	store ports.KVStore
}

// NewRepository creates a new product repository.
func NewRepository(store ports.KVStore) *Repository {
	return &Repository{store: store}
}

func key(id kernel.UUID) string {
	return ports.ProductKeyPrefix + id.String()
}

// Add persists a new product. A duplicated product ID is rejected.
func (r *Repository) Add(ctx context.Context, aggregate *product.Product) error {
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

// Update replaces an existing product's stored state.
// Returns errs.ErrObjectNotFound if the product does not exist.
func (r *Repository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.store.Get(ctx, key(aggregate.ID())); err != nil {
		return err
	}

	value, err := json.Marshal(fromDomain(aggregate))
	if err != nil {
		return err
	}

	_, err = r.store.Set(ctx, key(aggregate.ID()), value)
	return err
}

// Get retrieves a product by ID.
func (r *Repository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, err := r.store.Get(ctx, key(id))
	if err != nil {
		return nil, err
	}

	var dto productDTO
	if err = json.Unmarshal(record.Value, &dto); err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the whole catalog.
func (r *Repository) GetAll(ctx context.Context) ([]*product.Product, error) {
	records, err := r.store.ScanByPrefix(ctx, ports.ProductKeyPrefix)
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(records))
	for _, record := range records {
		var dto productDTO
		if err = json.Unmarshal(record.Value, &dto); err != nil {
			return nil, err
		}

		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, aggregate)
	}

	return products, nil
}

// Delete removes a product from the catalog.
func (r *Repository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.store.Delete(ctx, key(id))
}
