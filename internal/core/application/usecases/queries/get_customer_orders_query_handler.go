package queries

import (
	"context"

	"darkstore/internal/core/ports"
)

// GetCustomerOrdersQueryHandler retrieves a customer's own orders.
type GetCustomerOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetCustomerOrdersQueryHandler creates a handler for the customer order
// listing.
func NewGetCustomerOrdersQueryHandler(orders ports.OrderRepository) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{orders: orders}
}

// Handle returns read models for every order the customer has placed.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.orders.GetByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, NewOrderResponse(aggregate))
	}

	return responses, nil
}
