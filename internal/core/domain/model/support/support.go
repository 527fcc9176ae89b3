// Package support contains the lightweight feedback and bug-report entities.
// Both are append-only records; bug reports carry a status for triage but no
// transition rules.
package support

import (
	"errors"
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/pkg/errs"
)

// BugStatus is the triage state of a bug report. New reports are Open.
type BugStatus string

const (
	BugOpen     BugStatus = "open"
	BugResolved BugStatus = "resolved"
)

const (
	minRating = 1
	maxRating = 5
)

// Feedback is a rating and comment submitted by any authenticated user.
type Feedback struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// NewFeedback creates a feedback record. Rating must be within [1, 5].
func NewFeedback(id kernel.UUID, userID kernel.UUID, rating int, comment string, createdAt time.Time) (*Feedback, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	if rating < minRating || rating > maxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}

	return &Feedback{
		ID:        id,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: createdAt,
	}, nil
}

// BugReport is a user-filed defect report, opened for manager triage.
type BugReport struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	Title       string
	Description string
	Status      BugStatus
	CreatedAt   time.Time
}

// NewBugReport creates a bug report in the open state.
func NewBugReport(id kernel.UUID, userID kernel.UUID, title string, description string, createdAt time.Time) (*BugReport, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}

	return &BugReport{
		ID:          id,
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      BugOpen,
		CreatedAt:   createdAt,
	}, nil
}
