// Package user contains the identity profile read by the core for
// authorization decisions. Credential issuance and verification live in the
// external authentication gateway; the core only stores the profile keyed by
// the gateway-resolved user ID.
package user

import (
	"errors"
	"strings"
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is a stored identity profile.
type User struct {
	id        kernel.UUID
	email     string
	name      string
	role      Role
	createdAt time.Time

	isConstructed bool
}

// NewUser creates a profile. The role is fixed here and never changes.
func NewUser(id kernel.UUID, email string, name string, role Role, createdAt time.Time) (*User, error) {
	u := &User{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a profile from persistence.
func RestoreUser(id kernel.UUID, email string, name string, role Role, createdAt time.Time) (*User, error) {
	return NewUser(id, email, name, role, createdAt)
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// Rename updates the display name.
func (u *User) Rename(name string) error {
	return u.setName(name)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the signup email.
func (u *User) Email() string { return u.email }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Role returns the fixed role.
func (u *User) Role() Role { return u.role }

// CreatedAt returns the signup timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
