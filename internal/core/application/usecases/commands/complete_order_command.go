package commands

import (
	"errors"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/pkg/errs"
	"darkstore/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a fulfillment agent's attempt to confirm the
// hand-off with the one-time code the purchaser received at order time.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	agentID       kernel.UUID
	submittedCode string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to confirm delivery of an order.
func NewCompleteOrderCommand(orderID kernel.UUID, agentID kernel.UUID, submittedCode string) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), agentID.Validate()); err != nil {
		return CompleteOrderCommand{}, err
	}
	if submittedCode == "" {
		return CompleteOrderCommand{}, errs.NewValueIsRequiredError("otp")
	}

	cmd.orderID = orderID
	cmd.agentID = agentID
	cmd.submittedCode = submittedCode
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to complete.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the agent confirming the hand-off.
func (c CompleteOrderCommand) AgentID() kernel.UUID {
	return c.agentID
}

// SubmittedCode returns the code presented by the agent.
func (c CompleteOrderCommand) SubmittedCode() string {
	return c.submittedCode
}
