package commands

import (
	"errors"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents a fulfillment agent's request to take a pending
// order out for delivery.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command to claim an order for the given agent.
func NewClaimOrderCommand(orderID kernel.UUID, agentID kernel.UUID) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), agentID.Validate()); err != nil {
		return ClaimOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.agentID = agentID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the order to claim.
func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the claiming agent.
func (c ClaimOrderCommand) AgentID() kernel.UUID {
	return c.agentID
}
