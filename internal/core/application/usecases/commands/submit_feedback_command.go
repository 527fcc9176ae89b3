package commands

import (
	"errors"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/pkg/guard"
)

var ErrSubmitFeedbackCommandIsNotConstructed = errors.New(
	"SubmitFeedbackCommand must be created via NewSubmitFeedbackCommand constructor",
)

// SubmitFeedbackCommand represents a user's rating and comment.
type SubmitFeedbackCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	rating  int
	comment string

	guard guard.ConstructorGuard
}

// NewSubmitFeedbackCommand creates a command to record feedback. Rating
// bounds are enforced by the feedback constructor.
func NewSubmitFeedbackCommand(userID kernel.UUID, rating int, comment string) (SubmitFeedbackCommand, error) {
	if err := userID.Validate(); err != nil {
		return SubmitFeedbackCommand{}, err
	}

	return SubmitFeedbackCommand{
		userID:  userID,
		rating:  rating,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrSubmitFeedbackCommandIsNotConstructed)
}

// UserID returns the submitting user.
func (c SubmitFeedbackCommand) UserID() kernel.UUID {
	return c.userID
}

// Rating returns the submitted rating.
func (c SubmitFeedbackCommand) Rating() int {
	return c.rating
}

// Comment returns the free-text comment.
func (c SubmitFeedbackCommand) Comment() string {
	return c.comment
}
