// Package orderrepo persists order aggregates as JSON documents in the
// key-value store under the "order:" prefix. Conditional writes carry the
// aggregate's version so concurrent state transitions on the same order
// resolve to a single winner.
package orderrepo

import (
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/order"
)

// orderDTO is the JSON document stored per order. The persistence version
// lives on the store record, not in the document.
type orderDTO struct {
	ID                 string        `json:"id"`
	CustomerID         string        `json:"customerId"`
	Items              []lineItemDTO `json:"items"`
	Total              float64       `json:"total"`
	Status             string        `json:"status"`
	Latitude           float64       `json:"latitude"`
	Longitude          float64       `json:"longitude"`
	Address            string        `json:"address"`
	EtaMinutes         int           `json:"etaMinutes"`
	Otp                string        `json:"otp"`
	OtpAttempts        int           `json:"otpAttempts"`
	AgentID            *string       `json:"agentId,omitempty"`
	CancellationReason string        `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
	DeliveredAt        *time.Time    `json:"deliveredAt,omitempty"`
}

type lineItemDTO struct {
	ProductID string  `json:"productId"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// fromDomain converts an order aggregate to its stored document.
func fromDomain(aggregate *order.Order) orderDTO {
	items := make([]lineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, lineItemDTO{
			ProductID: item.ProductID().String(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		})
	}

	var agentID *string
	if id := aggregate.AgentID(); id != nil {
		s := id.String()
		agentID = &s
	}

	return orderDTO{
		ID:                 aggregate.ID().String(),
		CustomerID:         aggregate.CustomerID().String(),
		Items:              items,
		Total:              aggregate.Total(),
		Status:             aggregate.Status().String(),
		Latitude:           aggregate.Location().Point().Latitude(),
		Longitude:          aggregate.Location().Point().Longitude(),
		Address:            aggregate.Location().Address(),
		EtaMinutes:         aggregate.EtaMinutes(),
		Otp:                aggregate.Otp().Code(),
		OtpAttempts:        aggregate.OtpAttempts(),
		AgentID:            agentID,
		CancellationReason: aggregate.CancellationReason(),
		CreatedAt:          aggregate.CreatedAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
	}
}

// toDomain reconstructs an order aggregate from its stored document and the
// record version it was read at.
func toDomain(dto orderDTO, version int64) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromString(itemDTO.ProductID)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(productID, itemDTO.Price, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	location, err := order.NewDeliveryLocation(point, dto.Address)
	if err != nil {
		return nil, err
	}

	otp, err := order.OTPFromString(dto.Otp)
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromString(*dto.AgentID)
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 id,
		CustomerID:         customerID,
		Items:              items,
		Location:           location,
		EtaMinutes:         dto.EtaMinutes,
		Otp:                otp,
		Status:             order.Status(dto.Status),
		AgentID:            agentID,
		CancellationReason: dto.CancellationReason,
		CreatedAt:          dto.CreatedAt,
		DeliveredAt:        dto.DeliveredAt,
		OtpAttempts:        dto.OtpAttempts,
		Version:            version,
	})
}
