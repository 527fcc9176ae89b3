package commands

import (
	"errors"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/pkg/errs"
	"darkstore/internal/pkg/guard"
)

var ErrReportBugCommandIsNotConstructed = errors.New(
	"ReportBugCommand must be created via NewReportBugCommand constructor",
)

// ReportBugCommand represents a user-filed defect report.
type ReportBugCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	title       string
	description string

	guard guard.ConstructorGuard
}

// NewReportBugCommand creates a command to file a bug report.
func NewReportBugCommand(userID kernel.UUID, title string, description string) (ReportBugCommand, error) {
	if err := userID.Validate(); err != nil {
		return ReportBugCommand{}, err
	}
	if title == "" {
		return ReportBugCommand{}, errs.NewValueIsRequiredError("title")
	}

	return ReportBugCommand{
		userID:      userID,
		title:       title,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportBugCommand) Validate() error {
	return c.guard.Validate(ErrReportBugCommandIsNotConstructed)
}

// UserID returns the reporting user.
func (c ReportBugCommand) UserID() kernel.UUID {
	return c.userID
}

// Title returns the report title.
func (c ReportBugCommand) Title() string {
	return c.title
}

// Description returns the report body.
func (c ReportBugCommand) Description() string {
	return c.description
}
