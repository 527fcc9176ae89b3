package queries

import (
	"context"

	"darkstore/internal/core/ports"
)

// GetProfileQueryHandler retrieves stored profiles.
type GetProfileQueryHandler struct {
	users ports.UserRepository
}

// NewGetProfileQueryHandler creates a handler for profile reads.
func NewGetProfileQueryHandler(users ports.UserRepository) GetProfileQueryHandler {
	return GetProfileQueryHandler{users: users}
}

// Handle returns the profile read model.
func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (ProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return ProfileResponse{}, err
	}

	aggregate, err := h.users.Get(ctx, query.UserID())
	if err != nil {
		return ProfileResponse{}, err
	}

	return ProfileResponse{
		ID:        aggregate.ID(),
		Email:     aggregate.Email(),
		Name:      aggregate.Name(),
		Role:      aggregate.Role(),
		CreatedAt: aggregate.CreatedAt(),
	}, nil
}
