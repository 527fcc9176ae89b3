package ports

import (
	"context"

	"darkstore/internal/core/domain/model/kernel"
)

// AuthGateway resolves bearer tokens to user identities. Credential issuance
// and verification live outside the core; this port is the only surface the
// core sees of the external authentication provider.
type AuthGateway interface {
	// ResolveToken verifies a bearer token and returns the user ID it belongs
	// to. Returns errs.ErrUnauthorized for missing, malformed or rejected
	// tokens.
	ResolveToken(ctx context.Context, token string) (kernel.UUID, error)
}
