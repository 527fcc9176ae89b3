package ports

import (
	"context"

	"darkstore/internal/core/domain/model/support"
)

// SupportRepository defines the persistence contract for feedback and bug
// reports. Both families are append-only.
type SupportRepository interface {
	// AddFeedback persists a feedback record.
	AddFeedback(ctx context.Context, feedback *support.Feedback) error

	// AddBugReport persists a bug report.
	AddBugReport(ctx context.Context, report *support.BugReport) error

	// GetAllFeedback retrieves every feedback record.
	GetAllFeedback(ctx context.Context) ([]*support.Feedback, error)

	// GetAllBugReports retrieves every bug report.
	GetAllBugReports(ctx context.Context) ([]*support.BugReport, error)
}
