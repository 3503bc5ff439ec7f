package service

import (
	"context"
	"time"

	"github.com/alexanderramin/studytimer/internal/domain"
)

type SubjectService interface {
	Add(ctx context.Context, name string, difficulty domain.Difficulty) (*domain.Subject, error)
	GetByID(ctx context.Context, id string) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
	// RecordReview appends at to the subject's history and stamps
	// LastReviewed in one transaction.
	RecordReview(ctx context.Context, id string, at time.Time) (*domain.Subject, error)
	// MarkReviewed stamps LastReviewed only.
	MarkReviewed(ctx context.Context, id string, at time.Time) (*domain.Subject, error)
}

type ReviewService interface {
	// Scan returns the complete set of subjects due at now.
	Scan(ctx context.Context, now time.Time) ([]domain.ReviewNotification, error)
}
