package commands

import (
	"context"
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/order"
	"darkstore/internal/core/domain/services"
	"darkstore/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing orders:
// total verification, delivery estimation and one-time code minting.
type CreateOrderCommandHandler struct {
	orders ports.OrderRepository
	eta    *services.ETACalculator
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(orders ports.OrderRepository, eta *services.ETACalculator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders: orders,
		eta:    eta,
	}
}

// Handle places a new order in the pending status and returns the created
// aggregate. The returned aggregate is the only read path that may surface the
// raw one-time code to the purchaser.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := cmd.validateExpectedTotal(); err != nil {
		return nil, err
	}

	etaMinutes, err := h.eta.EstimateMinutes(cmd.Location().Point())
	if err != nil {
		return nil, err
	}

	otp, err := order.GenerateOTP()
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.Items(),
		cmd.Location(),
		etaMinutes,
		otp,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.orders.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
