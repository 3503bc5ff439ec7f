package service

import (
	"context"
	"time"

	"github.com/alexanderramin/studytimer/internal/domain"
	"github.com/alexanderramin/studytimer/internal/repository"
	"github.com/alexanderramin/studytimer/internal/scheduler"
)

type reviewService struct {
	subjects repository.SubjectRepo
	observer UseCaseObserver
}

func NewReviewService(subjects repository.SubjectRepo, observers ...UseCaseObserver) ReviewService {
	return &reviewService{subjects: subjects, observer: useCaseObserverOrNoop(observers)}
}

func (s *reviewService) Scan(ctx context.Context, now time.Time) (due []domain.ReviewNotification, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "scan-reviews", time.Now(), fields, &err)

	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	due = scheduler.DueForReview(subjects, now)
	fields["subjects"] = len(subjects)
	fields["due"] = len(due)
	return due, nil
}
