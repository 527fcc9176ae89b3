package commands

import (
	"errors"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/pkg/errs"
	"darkstore/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents a user's request to change their display
// name. Email and role are fixed at signup.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	name   string

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to rename the given user.
func NewUpdateProfileCommand(userID kernel.UUID, name string) (UpdateProfileCommand, error) {
	if err := userID.Validate(); err != nil {
		return UpdateProfileCommand{}, err
	}
	if name == "" {
		return UpdateProfileCommand{}, errs.NewValueIsRequiredError("name")
	}

	return UpdateProfileCommand{
		userID: userID,
		name:   name,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// UserID returns the profile owner.
func (c UpdateProfileCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the new display name.
func (c UpdateProfileCommand) Name() string {
	return c.name
}
