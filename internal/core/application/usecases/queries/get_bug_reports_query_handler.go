package queries

import (
	"context"

	"darkstore/internal/core/ports"
)

// GetBugReportsQueryHandler retrieves filed bug reports.
type GetBugReportsQueryHandler struct {
	support ports.SupportRepository
}

// NewGetBugReportsQueryHandler creates a handler for bug report listings.
func NewGetBugReportsQueryHandler(support ports.SupportRepository) GetBugReportsQueryHandler {
	return GetBugReportsQueryHandler{support: support}
}

// Handle returns read models for every bug report.
func (h GetBugReportsQueryHandler) Handle(ctx context.Context, query GetBugReportsQuery) ([]BugReportResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reports, err := h.support.GetAllBugReports(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]BugReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, BugReportResponse{
			ID:          report.ID,
			UserID:      report.UserID,
			Title:       report.Title,
			Description: report.Description,
			Status:      string(report.Status),
			CreatedAt:   report.CreatedAt,
		})
	}

	return responses, nil
}
