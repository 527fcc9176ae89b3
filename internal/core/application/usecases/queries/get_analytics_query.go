package queries

import (
	"errors"

	"darkstore/internal/pkg/guard"
)

var ErrGetAnalyticsQueryIsNotConstructed = errors.New(
	"GetAnalyticsQuery must be created via NewGetAnalyticsQuery constructor",
)

// GetAnalyticsQuery retrieves operator rollups over orders and users.
type GetAnalyticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAnalyticsQuery creates a query for the analytics rollup.
func NewGetAnalyticsQuery() GetAnalyticsQuery {
	return GetAnalyticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetAnalyticsQueryIsNotConstructed)
}

// AnalyticsResponse is the operator rollup. Revenue sums every order's total
// regardless of status; per-status counts break the same population down.
type AnalyticsResponse struct {
	TotalOrders     int
	TotalRevenue    float64
	DeliveredOrders int
	CancelledOrders int
	PendingOrders   int
	OnTheWayOrders  int
	TotalCustomers  int
}
