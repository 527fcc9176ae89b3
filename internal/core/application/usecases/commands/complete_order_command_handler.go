package commands

import (
	"context"
	"errors"
	"time"

	"darkstore/internal/core/domain/model/order"
	"darkstore/internal/core/ports"
	"darkstore/internal/pkg/errs"
)

// CompleteOrderCommandHandler confirms delivery hand-offs. Only the agent the
// order was claimed by may complete it. Failed code checks are persisted so
// the attempt budget holds across requests and process restarts.
type CompleteOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewCompleteOrderCommandHandler creates a handler for hand-off confirmation.
func NewCompleteOrderCommandHandler(orders ports.OrderRepository) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{orders: orders}
}

// Handle verifies the submitted code and, on success, marks the order
// delivered and returns the updated aggregate.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if agentID := aggregate.AgentID(); agentID != nil && !agentID.IsEqual(cmd.AgentID()) {
		return nil, errs.NewForbiddenError("delivery_partner", "complete an order claimed by another agent")
	}

	completeErr := aggregate.Complete(cmd.SubmittedCode(), time.Now().UTC())
	if completeErr != nil && !errors.Is(completeErr, order.ErrOtpMismatch) {
		return nil, completeErr
	}

	// Persist both outcomes: the delivered state on success, the incremented
	// attempt counter on mismatch.
	if err = h.orders.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if completeErr != nil {
		return nil, completeErr
	}

	return aggregate, nil
}
