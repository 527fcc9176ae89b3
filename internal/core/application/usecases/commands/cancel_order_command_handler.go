package commands

import (
	"context"

	"darkstore/internal/core/domain/model/order"
	"darkstore/internal/core/ports"
)

// CancelOrderCommandHandler aborts pending orders. Claimed and terminal
// orders reject the transition in the domain; a cancel racing a claim is
// resolved by the store's conditional write.
type CancelOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(orders ports.OrderRepository) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{orders: orders}
}

// Handle cancels the order and returns the updated aggregate.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(cmd.Reason()); err != nil {
		return nil, err
	}

	if err = h.orders.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
