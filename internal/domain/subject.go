package domain

import (
	"errors"
	"time"
)

// ErrReviewOutOfOrder is returned when a review would break the
// chronological order of a subject's review history.
var ErrReviewOutOfOrder = errors.New("review timestamp precedes last recorded review")

// Subject is a user-defined topic tracked for spaced review.
// ReviewDates is append-only and chronological; LastReviewed, when set,
// is never earlier than the final review date.
type Subject struct {
	ID           string
	Name         string
	Difficulty   Difficulty
	LastReviewed *time.Time
	ReviewDates  []time.Time
	CreatedAt    time.Time
}

// ReviewCount is the number of completed study cycles recorded so far.
func (s *Subject) ReviewCount() int {
	return len(s.ReviewDates)
}

// LastReviewDate returns the most recent entry in ReviewDates.
func (s *Subject) LastReviewDate() (time.Time, bool) {
	if len(s.ReviewDates) == 0 {
		return time.Time{}, false
	}
	return s.ReviewDates[len(s.ReviewDates)-1], true
}

// RecordReview appends at to the history and stamps LastReviewed with it.
func (s *Subject) RecordReview(at time.Time) error {
	if last, ok := s.LastReviewDate(); ok && at.Before(last) {
		return ErrReviewOutOfOrder
	}
	s.ReviewDates = append(s.ReviewDates, at)
	stamp := at
	s.LastReviewed = &stamp
	return nil
}

// MarkReviewed stamps LastReviewed without touching the review history.
// It never moves the stamp backwards.
func (s *Subject) MarkReviewed(at time.Time) {
	if s.LastReviewed != nil && at.Before(*s.LastReviewed) {
		return
	}
	stamp := at
	s.LastReviewed = &stamp
}

// ReviewNotification names a subject that is due for review.
type ReviewNotification struct {
	SubjectID string
	Name      string
}

// ReviewEvent is one completed study cycle recorded against a subject.
type ReviewEvent struct {
	ID         string
	SubjectID  string
	ReviewedAt time.Time
}
