package ports

import (
	"context"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for identity profiles.
type UserRepository interface {
	// Add persists a new profile. The profile's key must not already exist.
	Add(ctx context.Context, aggregate *user.User) error

	// Update replaces an existing profile's stored state.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a profile by the gateway-resolved user ID.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetAll retrieves every stored profile.
	GetAll(ctx context.Context) ([]*user.User, error)
}
