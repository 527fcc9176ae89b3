package queries

import (
	"context"

	"darkstore/internal/core/ports"
)

// GetProductsQueryHandler retrieves the catalog.
type GetProductsQueryHandler struct {
	products ports.ProductRepository
}

// NewGetProductsQueryHandler creates a handler for catalog listings.
func NewGetProductsQueryHandler(products ports.ProductRepository) GetProductsQueryHandler {
	return GetProductsQueryHandler{products: products}
}

// Handle returns read models for every catalog product.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, ProductResponse{
			ID:          aggregate.ID(),
			Name:        aggregate.Name(),
			Description: aggregate.Description(),
			Price:       aggregate.Price(),
			Category:    aggregate.Category(),
			Image:       aggregate.Image(),
			Stock:       aggregate.Stock(),
			CreatedAt:   aggregate.CreatedAt(),
		})
	}

	return responses, nil
}
