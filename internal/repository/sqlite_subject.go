package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/studytimer/internal/db"
	"github.com/alexanderramin/studytimer/internal/domain"
)

// SQLiteSubjectRepo implements SubjectRepo using a SQLite database.
type SQLiteSubjectRepo struct {
	db db.DBTX
}

// NewSQLiteSubjectRepo creates a new SQLiteSubjectRepo.
func NewSQLiteSubjectRepo(db db.DBTX) *SQLiteSubjectRepo {
	return &SQLiteSubjectRepo{db: db}
}

func (r *SQLiteSubjectRepo) Create(ctx context.Context, s *domain.Subject) error {
	query := `INSERT INTO subjects (id, name, difficulty, last_reviewed, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		string(s.Difficulty),
		nullableTimeToString(s.LastReviewed),
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting subject: %w", err)
	}
	return nil
}

func (r *SQLiteSubjectRepo) GetByID(ctx context.Context, id string) (*domain.Subject, error) {
	query := `SELECT id, name, difficulty, last_reviewed, created_at
		FROM subjects WHERE id = ?`
	s, err := r.scanSubject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	dates, err := r.reviewDates(ctx, `SELECT subject_id, reviewed_at FROM subject_reviews
		WHERE subject_id = ? ORDER BY reviewed_at, rowid`, id)
	if err != nil {
		return nil, err
	}
	s.ReviewDates = dates[s.ID]
	return s, nil
}

// List returns all subjects in insertion order.
func (r *SQLiteSubjectRepo) List(ctx context.Context) ([]*domain.Subject, error) {
	query := `SELECT id, name, difficulty, last_reviewed, created_at
		FROM subjects ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}
	subjects, err := r.scanSubjects(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	// The pool holds one connection, so the subject cursor is closed before
	// the review history is read.
	dates, err := r.reviewDates(ctx, `SELECT subject_id, reviewed_at FROM subject_reviews
		ORDER BY reviewed_at, rowid`)
	if err != nil {
		return nil, err
	}
	for _, s := range subjects {
		s.ReviewDates = dates[s.ID]
	}
	return subjects, nil
}

func (r *SQLiteSubjectRepo) UpdateLastReviewed(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE subjects SET last_reviewed = ? WHERE id = ?`, formatTime(at), id)
	if err != nil {
		return fmt.Errorf("updating last reviewed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating last reviewed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("subject %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSubjectRepo) reviewDates(ctx context.Context, query string, args ...any) (map[string][]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing review dates: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]time.Time)
	for rows.Next() {
		var subjectID, reviewedAtStr string
		if err := rows.Scan(&subjectID, &reviewedAtStr); err != nil {
			return nil, fmt.Errorf("scanning review date: %w", err)
		}
		at, err := parseTime("reviewed_at", reviewedAtStr)
		if err != nil {
			return nil, err
		}
		out[subjectID] = append(out[subjectID], at)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating review dates: %w", err)
	}
	return out, nil
}

func (r *SQLiteSubjectRepo) scanSubject(row *sql.Row) (*domain.Subject, error) {
	var s domain.Subject
	var difficulty, createdAtStr string
	var lastReviewed sql.NullString

	if err := row.Scan(&s.ID, &s.Name, &difficulty, &lastReviewed, &createdAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("subject: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning subject: %w", err)
	}
	return r.populateSubject(&s, difficulty, lastReviewed, createdAtStr)
}

func (r *SQLiteSubjectRepo) scanSubjects(rows *sql.Rows) ([]*domain.Subject, error) {
	var subjects []*domain.Subject
	for rows.Next() {
		var s domain.Subject
		var difficulty, createdAtStr string
		var lastReviewed sql.NullString

		if err := rows.Scan(&s.ID, &s.Name, &difficulty, &lastReviewed, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning subject row: %w", err)
		}
		subject, err := r.populateSubject(&s, difficulty, lastReviewed, createdAtStr)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subjects: %w", err)
	}
	return subjects, nil
}

// populateSubject fills in parsed fields on a Subject after scanning raw strings.
func (r *SQLiteSubjectRepo) populateSubject(s *domain.Subject, difficulty string, lastReviewed sql.NullString, createdAtStr string) (*domain.Subject, error) {
	s.Difficulty = domain.Difficulty(difficulty)

	var err error
	if s.LastReviewed, err = parseNullableTime("last_reviewed", lastReviewed); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
		return nil, err
	}
	return s, nil
}
