package commands

import (
	"context"

	"darkstore/internal/core/domain/model/user"
	"darkstore/internal/core/ports"
)

// UpdateProfileCommandHandler renames user profiles.
type UpdateProfileCommandHandler struct {
	users ports.UserRepository
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(users ports.UserRepository) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{users: users}
}

// Handle renames the profile and returns the updated aggregate.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.users.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Rename(cmd.Name()); err != nil {
		return nil, err
	}

	if err = h.users.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
