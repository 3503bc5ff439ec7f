package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studytimer/internal/db"
	"github.com/alexanderramin/studytimer/internal/domain"
	"github.com/alexanderramin/studytimer/internal/repository"
	"github.com/google/uuid"
)

// ErrEmptyName is returned by Add when the name is blank after trimming.
var ErrEmptyName = errors.New("subject name is empty")

type subjectService struct {
	subjects repository.SubjectRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewSubjectService(subjects repository.SubjectRepo, uow db.UnitOfWork, observers ...UseCaseObserver) SubjectService {
	return &subjectService{
		subjects: subjects,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Add stores a new subject. The name is kept as typed; only its trimmed
// form is checked for emptiness.
func (s *subjectService) Add(ctx context.Context, name string, difficulty domain.Difficulty) (subject *domain.Subject, err error) {
	defer observe(ctx, s.observer, "add-subject", time.Now(), map[string]any{
		"difficulty": string(difficulty),
	}, &err)

	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !difficulty.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, difficulty)
	}

	subject = &domain.Subject{
		ID:         uuid.New().String(),
		Name:       name,
		Difficulty: difficulty,
		CreatedAt:  s.now(),
	}
	if err = s.subjects.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *subjectService) GetByID(ctx context.Context, id string) (*domain.Subject, error) {
	return s.subjects.GetByID(ctx, id)
}

func (s *subjectService) List(ctx context.Context) ([]*domain.Subject, error) {
	return s.subjects.List(ctx)
}

func (s *subjectService) RecordReview(ctx context.Context, id string, at time.Time) (subject *domain.Subject, err error) {
	fields := map[string]any{"subject_id": id}
	defer observe(ctx, s.observer, "record-review", time.Now(), fields, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSubjects := repository.NewSQLiteSubjectRepo(tx)
		txReviews := repository.NewSQLiteReviewRepo(tx)

		loaded, err := txSubjects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := loaded.RecordReview(at); err != nil {
			return err
		}
		if err := txReviews.Create(ctx, &domain.ReviewEvent{
			ID:         uuid.New().String(),
			SubjectID:  id,
			ReviewedAt: at,
		}); err != nil {
			return err
		}
		if err := txSubjects.UpdateLastReviewed(ctx, id, at); err != nil {
			return err
		}
		subject = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["review_count"] = subject.ReviewCount()
	return subject, nil
}

func (s *subjectService) MarkReviewed(ctx context.Context, id string, at time.Time) (subject *domain.Subject, err error) {
	defer observe(ctx, s.observer, "mark-reviewed", time.Now(), map[string]any{"subject_id": id}, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSubjects := repository.NewSQLiteSubjectRepo(tx)

		loaded, err := txSubjects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		loaded.MarkReviewed(at)
		if err := txSubjects.UpdateLastReviewed(ctx, id, *loaded.LastReviewed); err != nil {
			return err
		}
		subject = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return subject, nil
}
