package queries

import (
	"context"

	"darkstore/internal/core/ports"
)

// GetAllOrdersQueryHandler retrieves the complete order list.
type GetAllOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for the full order listing.
func NewGetAllOrdersQueryHandler(orders ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

// Handle returns read models for every order.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, NewOrderResponse(aggregate))
	}

	return responses, nil
}
