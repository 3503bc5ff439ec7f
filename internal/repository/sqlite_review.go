package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studytimer/internal/db"
	"github.com/alexanderramin/studytimer/internal/domain"
)

// SQLiteReviewRepo implements ReviewRepo using a SQLite database.
type SQLiteReviewRepo struct {
	db db.DBTX
}

// NewSQLiteReviewRepo creates a new SQLiteReviewRepo.
func NewSQLiteReviewRepo(db db.DBTX) *SQLiteReviewRepo {
	return &SQLiteReviewRepo{db: db}
}

func (r *SQLiteReviewRepo) Create(ctx context.Context, ev *domain.ReviewEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO subject_reviews (id, subject_id, reviewed_at) VALUES (?, ?, ?)`,
		ev.ID, ev.SubjectID, formatTime(ev.ReviewedAt))
	if err != nil {
		return fmt.Errorf("inserting review: %w", err)
	}
	return nil
}

func (r *SQLiteReviewRepo) ListBySubject(ctx context.Context, subjectID string) ([]*domain.ReviewEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, subject_id, reviewed_at FROM subject_reviews
		WHERE subject_id = ? ORDER BY reviewed_at, rowid`, subjectID)
	if err != nil {
		return nil, fmt.Errorf("listing reviews by subject: %w", err)
	}
	defer rows.Close()

	var events []*domain.ReviewEvent
	for rows.Next() {
		var ev domain.ReviewEvent
		var reviewedAtStr string
		if err := rows.Scan(&ev.ID, &ev.SubjectID, &reviewedAtStr); err != nil {
			return nil, fmt.Errorf("scanning review row: %w", err)
		}
		if ev.ReviewedAt, err = parseTime("reviewed_at", reviewedAtStr); err != nil {
			return nil, err
		}
		events = append(events, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reviews: %w", err)
	}
	return events, nil
}

func (r *SQLiteReviewRepo) CountBySubject(ctx context.Context, subjectID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subject_reviews WHERE subject_id = ?`, subjectID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting reviews: %w", err)
	}
	return n, nil
}
