// Package supportrepo persists feedback and bug reports as JSON documents in
// the key-value store under the "feedback:" and "bug:" prefixes. Both
// families are append-only.
package supportrepo

import (
	"context"
	"encoding/json"
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/support"
	"darkstore/internal/core/ports"
)

type feedbackDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type bugReportDTO struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Repository implements ports.SupportRepository on top of the key-value store.
type Repository struct {
	store ports.KVStore
}

// NewRepository creates a new support repository.
func NewRepository(store ports.KVStore) *Repository {
	return &Repository{store: store}
}

// AddFeedback persists a feedback record.
func (r *Repository) AddFeedback(ctx context.Context, feedback *support.Feedback) error {
	value, err := json.Marshal(feedbackDTO{
		ID:        feedback.ID.String(),
		UserID:    feedback.UserID.String(),
		Rating:    feedback.Rating,
		Comment:   feedback.Comment,
		CreatedAt: feedback.CreatedAt,
	})
	if err != nil {
		return err
	}

	_, err = r.store.Swap(ctx, ports.FeedbackKeyPrefix+feedback.ID.String(), value, ports.InsertVersion)
	return err
}

// AddBugReport persists a bug report.
func (r *Repository) AddBugReport(ctx context.Context, report *support.BugReport) error {
	value, err := json.Marshal(bugReportDTO{
		ID:          report.ID.String(),
		UserID:      report.UserID.String(),
		Title:       report.Title,
		Description: report.Description,
		Status:      string(report.Status),
		CreatedAt:   report.CreatedAt,
	})
	if err != nil {
		return err
	}

	_, err = r.store.Swap(ctx, ports.BugKeyPrefix+report.ID.String(), value, ports.InsertVersion)
	return err
}

// GetAllFeedback retrieves every feedback record.
func (r *Repository) GetAllFeedback(ctx context.Context) ([]*support.Feedback, error) {
	records, err := r.store.ScanByPrefix(ctx, ports.FeedbackKeyPrefix)
	if err != nil {
		return nil, err
	}

	feedbacks := make([]*support.Feedback, 0, len(records))
	for _, record := range records {
		var dto feedbackDTO
		if err = json.Unmarshal(record.Value, &dto); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromString(dto.ID)
		if idErr != nil {
			return nil, idErr
		}
		userID, idErr := kernel.UUIDFromString(dto.UserID)
		if idErr != nil {
			return nil, idErr
		}

		feedback, restoreErr := support.NewFeedback(id, userID, dto.Rating, dto.Comment, dto.CreatedAt)
		if restoreErr != nil {
			return nil, restoreErr
		}
		feedbacks = append(feedbacks, feedback)
	}

	return feedbacks, nil
}

// GetAllBugReports retrieves every bug report.
func (r *Repository) GetAllBugReports(ctx context.Context) ([]*support.BugReport, error) {
	records, err := r.store.ScanByPrefix(ctx, ports.BugKeyPrefix)
	if err != nil {
		return nil, err
	}

	reports := make([]*support.BugReport, 0, len(records))
	for _, record := range records {
		var dto bugReportDTO
		if err = json.Unmarshal(record.Value, &dto); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromString(dto.ID)
		if idErr != nil {
			return nil, idErr
		}
		userID, idErr := kernel.UUIDFromString(dto.UserID)
		if idErr != nil {
			return nil, idErr
		}

		report, restoreErr := support.NewBugReport(id, userID, dto.Title, dto.Description, dto.CreatedAt)
		if restoreErr != nil {
			return nil, restoreErr
		}
		report.Status = support.BugStatus(dto.Status)
		reports = append(reports, report)
	}

	return reports, nil
}
