package commands

import (
	"context"
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/support"
	"darkstore/internal/core/ports"
)

// ReportBugCommandHandler files bug reports for manager triage.
type ReportBugCommandHandler struct {
	support ports.SupportRepository
}

// NewReportBugCommandHandler creates a handler for bug reports.
func NewReportBugCommandHandler(support ports.SupportRepository) ReportBugCommandHandler {
	return ReportBugCommandHandler{support: support}
}

// Handle files the report and returns the stored record.
func (h *ReportBugCommandHandler) Handle(ctx context.Context, cmd ReportBugCommand) (*support.BugReport, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	report, err := support.NewBugReport(kernel.NewUUID(), cmd.UserID(), cmd.Title(), cmd.Description(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = h.support.AddBugReport(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}
