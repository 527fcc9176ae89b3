package commands

import (
	"errors"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/user"
	"darkstore/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a signup: storing the profile for an identity
// the authentication gateway already vouched for. The role is fixed here and
// never changes afterwards.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	email  string
	name   string
	role   user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register the given identity.
func NewRegisterUserCommand(userID kernel.UUID, email string, name string, role user.Role) (RegisterUserCommand, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		userID: userID,
		email:  email,
		name:   name,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the gateway-resolved identity to register.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the signup email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Name returns the display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Role returns the role the profile is fixed to.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}
