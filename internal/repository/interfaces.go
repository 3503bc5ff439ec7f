package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/studytimer/internal/domain"
)

// SubjectRepo stores subjects. Loaded subjects carry their full review
// history in ReviewDates.
type SubjectRepo interface {
	Create(ctx context.Context, s *domain.Subject) error
	GetByID(ctx context.Context, id string) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
	UpdateLastReviewed(ctx context.Context, id string, at time.Time) error
}

// ReviewRepo stores the append-only review history.
type ReviewRepo interface {
	Create(ctx context.Context, r *domain.ReviewEvent) error
	ListBySubject(ctx context.Context, subjectID string) ([]*domain.ReviewEvent, error)
	CountBySubject(ctx context.Context, subjectID string) (int, error)
}
