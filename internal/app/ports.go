package app

import (
	"context"
	"time"

	"github.com/alexanderramin/studytimer/internal/domain"
)

// SubjectUseCase is the subject store the controller drives.
type SubjectUseCase interface {
	Add(ctx context.Context, name string, difficulty domain.Difficulty) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
	RecordReview(ctx context.Context, id string, at time.Time) (*domain.Subject, error)
	MarkReviewed(ctx context.Context, id string, at time.Time) (*domain.Subject, error)
}

// ReviewUseCase computes the due-for-review set.
type ReviewUseCase interface {
	Scan(ctx context.Context, now time.Time) ([]domain.ReviewNotification, error)
}

// Clock abstracts time to keep the controller deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
