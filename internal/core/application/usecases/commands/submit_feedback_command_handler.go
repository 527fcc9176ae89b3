package commands

import (
	"context"
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/support"
	"darkstore/internal/core/ports"
)

// SubmitFeedbackCommandHandler records user feedback.
type SubmitFeedbackCommandHandler struct {
	support ports.SupportRepository
}

// NewSubmitFeedbackCommandHandler creates a handler for feedback submission.
func NewSubmitFeedbackCommandHandler(support ports.SupportRepository) SubmitFeedbackCommandHandler {
	return SubmitFeedbackCommandHandler{support: support}
}

// Handle records the feedback and returns the stored record.
func (h *SubmitFeedbackCommandHandler) Handle(ctx context.Context, cmd SubmitFeedbackCommand) (*support.Feedback, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	feedback, err := support.NewFeedback(kernel.NewUUID(), cmd.UserID(), cmd.Rating(), cmd.Comment(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = h.support.AddFeedback(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}
