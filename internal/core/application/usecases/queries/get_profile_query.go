package queries

import (
	"errors"
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/user"
	"darkstore/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery retrieves one user's stored profile.
type GetProfileQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a query for the given user's profile.
func NewGetProfileQuery(userID kernel.UUID) (GetProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetProfileQuery{}, err
	}

	return GetProfileQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// UserID returns the profile owner.
func (q GetProfileQuery) UserID() kernel.UUID {
	return q.userID
}

// ProfileResponse is the profile read model.
type ProfileResponse struct {
	ID        kernel.UUID
	Email     string
	Name      string
	Role      user.Role
	CreatedAt time.Time
}
