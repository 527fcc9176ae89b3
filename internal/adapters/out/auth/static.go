package auth

import (
	"context"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/pkg/errs"
)

// StaticGateway treats the bearer token as the user's UUID. It exists for
// local development and tests, where no external provider is running.
type StaticGateway struct{}

// NewStaticGateway creates a gateway that accepts UUID-shaped tokens.
func NewStaticGateway() *StaticGateway {
	return &StaticGateway{}
}

// ResolveToken parses the token as a UUID and returns it as the user ID.
func (g *StaticGateway) ResolveToken(_ context.Context, token string) (kernel.UUID, error) {
	if token == "" {
		return kernel.UUID{}, errs.NewUnauthorizedError("missing bearer token")
	}

	userID, err := kernel.UUIDFromString(token)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthorizedErrorWithCause("token is not a valid user id", err)
	}

	return userID, nil
}
