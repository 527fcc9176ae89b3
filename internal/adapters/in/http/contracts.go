package http

import (
	"time"

	"darkstore/internal/core/application/usecases/queries"
)

// Wire contracts for the REST surface. Domain identifiers travel as canonical
// UUID strings.

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SignupRequest registers a profile for a gateway-vouched identity.
type SignupRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// ProfileResponse is the stored profile.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateProfileRequest changes the display name.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// ProductRequest carries the operator-editable product attributes.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
}

// ProductResponse is one catalog entry.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OrderItemRequest is one position of a new order.
type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CreateOrderRequest places a new order. Total is optional; when present it is
// checked against the recomputed sum.
type CreateOrderRequest struct {
	Items     []OrderItemRequest `json:"items"`
	Total     *float64           `json:"total,omitempty"`
	Address   string             `json:"address"`
	Latitude  float64            `json:"latitude"`
	Longitude float64            `json:"longitude"`
}

// OrderItemResponse is one position of a returned order.
type OrderItemResponse struct {
	ProductID string  `json:"productId"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// OrderResponse is the order payload for every read path. It never carries
// the one-time code.
type OrderResponse struct {
	ID                 string              `json:"id"`
	CustomerID         string              `json:"customerId"`
	Items              []OrderItemResponse `json:"items"`
	Total              float64             `json:"total"`
	Status             string              `json:"status"`
	Latitude           float64             `json:"latitude"`
	Longitude          float64             `json:"longitude"`
	Address            string              `json:"address"`
	EtaMinutes         int                 `json:"etaMinutes"`
	AgentID            *string             `json:"agentId,omitempty"`
	CancellationReason string              `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	DeliveredAt        *time.Time          `json:"deliveredAt,omitempty"`
}

// CreateOrderResponse is the creation payload: the only place the code is
// surfaced, and only to the purchaser.
type CreateOrderResponse struct {
	Order OrderResponse `json:"order"`
	Otp   string        `json:"otp"`
}

// UpdateOrderRequest requests a lifecycle transition: "on_the_way" claims the
// order for the calling agent, "cancelled" aborts it with a reason.
type UpdateOrderRequest struct {
	Status             string `json:"status"`
	CancellationReason string `json:"cancellationReason,omitempty"`
}

// VerifyOtpRequest confirms the hand-off with the one-time code.
type VerifyOtpRequest struct {
	Otp string `json:"otp"`
}

// FeedbackRequest submits a rating and comment.
type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// FeedbackResponse acknowledges a stored feedback record.
type FeedbackResponse struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// BugReportRequest files a defect report.
type BugReportRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BugReportResponse is one filed report.
type BugReportResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AnalyticsResponse is the operator rollup.
type AnalyticsResponse struct {
	TotalOrders     int     `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	DeliveredOrders int     `json:"deliveredOrders"`
	CancelledOrders int     `json:"cancelledOrders"`
	PendingOrders   int     `json:"pendingOrders"`
	OnTheWayOrders  int     `json:"onTheWayOrders"`
	TotalCustomers  int     `json:"totalCustomers"`
}

func toOrderResponse(model queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID.String(),
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	var agentID *string
	if model.AgentID != nil {
		s := model.AgentID.String()
		agentID = &s
	}

	return OrderResponse{
		ID:                 model.ID.String(),
		CustomerID:         model.CustomerID.String(),
		Items:              items,
		Total:              model.Total,
		Status:             model.Status.String(),
		Latitude:           model.Latitude,
		Longitude:          model.Longitude,
		Address:            model.Address,
		EtaMinutes:         model.EtaMinutes,
		AgentID:            agentID,
		CancellationReason: model.CancellationReason,
		CreatedAt:          model.CreatedAt,
		DeliveredAt:        model.DeliveredAt,
	}
}
