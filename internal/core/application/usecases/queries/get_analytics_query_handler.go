package queries

import (
	"context"

	"darkstore/internal/core/domain/model/order"
	"darkstore/internal/core/domain/model/user"
	"darkstore/internal/core/ports"
)

// GetAnalyticsQueryHandler computes operator rollups with a full scan over
// orders and users. The store's only query primitive is a prefix scan, so the
// rollup is recomputed per request rather than maintained incrementally.
type GetAnalyticsQueryHandler struct {
	orders ports.OrderRepository
	users  ports.UserRepository
}

// NewGetAnalyticsQueryHandler creates a handler for analytics rollups.
func NewGetAnalyticsQueryHandler(orders ports.OrderRepository, users ports.UserRepository) GetAnalyticsQueryHandler {
	return GetAnalyticsQueryHandler{
		orders: orders,
		users:  users,
	}
}

// Handle computes the rollup.
func (h GetAnalyticsQueryHandler) Handle(ctx context.Context, query GetAnalyticsQuery) (AnalyticsResponse, error) {
	if err := query.Validate(); err != nil {
		return AnalyticsResponse{}, err
	}

	aggregates, err := h.orders.GetAll(ctx)
	if err != nil {
		return AnalyticsResponse{}, err
	}

	response := AnalyticsResponse{TotalOrders: len(aggregates)}
	for _, aggregate := range aggregates {
		response.TotalRevenue += aggregate.Total()

		switch aggregate.Status() {
		case order.Pending:
			response.PendingOrders++
		case order.OnTheWay:
			response.OnTheWayOrders++
		case order.Delivered:
			response.DeliveredOrders++
		case order.Cancelled:
			response.CancelledOrders++
		}
	}

	profiles, err := h.users.GetAll(ctx)
	if err != nil {
		return AnalyticsResponse{}, err
	}

	for _, profile := range profiles {
		if profile.Role() == user.Consumer {
			response.TotalCustomers++
		}
	}

	return response, nil
}
