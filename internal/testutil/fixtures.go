package testutil

import (
	"time"

	"github.com/alexanderramin/studytimer/internal/domain"
	"github.com/google/uuid"
)

// SubjectOption customizes a fixture subject.
type SubjectOption func(*domain.Subject)

func WithDifficulty(d domain.Difficulty) SubjectOption {
	return func(s *domain.Subject) {
		s.Difficulty = d
	}
}

// WithReviewDates seeds the review history and stamps LastReviewed with
// the final date.
func WithReviewDates(dates ...time.Time) SubjectOption {
	return func(s *domain.Subject) {
		for _, at := range dates {
			_ = s.RecordReview(at)
		}
	}
}

func WithLastReviewed(at time.Time) SubjectOption {
	return func(s *domain.Subject) {
		s.MarkReviewed(at)
	}
}

func NewTestSubject(name string, opts ...SubjectOption) *domain.Subject {
	s := &domain.Subject{
		ID:         uuid.New().String(),
		Name:       name,
		Difficulty: domain.DifficultyMedium,
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestReview builds a review event for subjectID at the given time.
func NewTestReview(subjectID string, at time.Time) *domain.ReviewEvent {
	return &domain.ReviewEvent{
		ID:         uuid.New().String(),
		SubjectID:  subjectID,
		ReviewedAt: at,
	}
}
