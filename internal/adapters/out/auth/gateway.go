// Package auth provides adapters for the external authentication provider.
// The provider owns credentials and token issuance; this package only resolves
// bearer tokens to user IDs.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/pkg/errs"
)

const resolveTimeout = 5 * time.Second

// HTTPGateway resolves tokens against the provider's user-info endpoint.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGateway creates a gateway that verifies tokens at baseURL.
func NewHTTPGateway(baseURL string) (*HTTPGateway, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &HTTPGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: resolveTimeout},
	}, nil
}

// ResolveToken asks the provider who the token belongs to. The provider
// returns 200 with {"id": "<uuid>"} for a valid token and 401 otherwise.
func (g *HTTPGateway) ResolveToken(ctx context.Context, token string) (kernel.UUID, error) {
	if token == "" {
		return kernel.UUID{}, errs.NewUnauthorizedError("missing bearer token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return kernel.UUID{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("resolving token: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return kernel.UUID{}, errs.NewUnauthorizedError("token rejected by auth provider")
	default:
		return kernel.UUID{}, fmt.Errorf("auth provider returned status %d", resp.StatusCode)
	}

	var body struct {
		ID string `json:"id"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return kernel.UUID{}, fmt.Errorf("decoding auth provider response: %w", err)
	}

	userID, err := kernel.UUIDFromString(body.ID)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthorizedErrorWithCause("auth provider returned invalid user id", err)
	}

	return userID, nil
}
