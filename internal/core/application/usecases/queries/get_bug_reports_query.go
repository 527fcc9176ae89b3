package queries

import (
	"errors"
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/pkg/guard"
)

var ErrGetBugReportsQueryIsNotConstructed = errors.New(
	"GetBugReportsQuery must be created via NewGetBugReportsQuery constructor",
)

// GetBugReportsQuery retrieves every filed bug report for operator triage.
type GetBugReportsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBugReportsQuery creates a query for the bug report listing.
func NewGetBugReportsQuery() GetBugReportsQuery {
	return GetBugReportsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBugReportsQuery) Validate() error {
	return q.guard.Validate(ErrGetBugReportsQueryIsNotConstructed)
}

// BugReportResponse is the bug report read model.
type BugReportResponse struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	Title       string
	Description string
	Status      string
	CreatedAt   time.Time
}
