package commands

import (
	"context"

	"darkstore/internal/core/domain/model/order"
	"darkstore/internal/core/ports"
)

// ClaimOrderCommandHandler assigns a pending order to a fulfillment agent.
//
// Two agents racing for the same order both pass the in-memory transition; the
// store's conditional write then lets exactly one Update through. The loser
// gets errs.ErrConcurrentModification and must pick another order.
type ClaimOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewClaimOrderCommandHandler creates a handler for order claiming.
func NewClaimOrderCommandHandler(orders ports.OrderRepository) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{orders: orders}
}

// Handle claims the order for the agent and returns the updated aggregate.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Claim(cmd.AgentID()); err != nil {
		return nil, err
	}

	if err = h.orders.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
