package commands

import (
	"context"
	"time"

	"darkstore/internal/core/domain/model/user"
	"darkstore/internal/core/ports"
)

// RegisterUserCommandHandler stores signup profiles. A repeated signup under
// the same identity is rejected by the store's insert-only write, so a second
// request can never change the stored role.
type RegisterUserCommandHandler struct {
	users ports.UserRepository
}

// NewRegisterUserCommandHandler creates a handler for signups.
func NewRegisterUserCommandHandler(users ports.UserRepository) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{users: users}
}

// Handle stores the profile and returns the created aggregate.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := user.NewUser(cmd.UserID(), cmd.Email(), cmd.Name(), cmd.Role(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = h.users.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
