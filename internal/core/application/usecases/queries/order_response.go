package queries

import (
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/order"
)

// OrderResponse is the order read model. It deliberately omits the one-time
// code.
type OrderResponse struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	Items              []OrderItemResponse
	Total              float64
	Status             order.Status
	Latitude           float64
	Longitude          float64
	Address            string
	EtaMinutes         int
	AgentID            *kernel.UUID
	CancellationReason string
	CreatedAt          time.Time
	DeliveredAt        *time.Time
}

// OrderItemResponse is one line item of an order read model.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Price     float64
	Quantity  int
}

// NewOrderResponse builds the read model from an order aggregate.
func NewOrderResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderResponse{
		ID:                 aggregate.ID(),
		CustomerID:         aggregate.CustomerID(),
		Items:              items,
		Total:              aggregate.Total(),
		Status:             aggregate.Status(),
		Latitude:           aggregate.Location().Point().Latitude(),
		Longitude:          aggregate.Location().Point().Longitude(),
		Address:            aggregate.Location().Address(),
		EtaMinutes:         aggregate.EtaMinutes(),
		AgentID:            aggregate.AgentID(),
		CancellationReason: aggregate.CancellationReason(),
		CreatedAt:          aggregate.CreatedAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
	}
}
