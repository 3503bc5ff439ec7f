package scheduler

import (
	"time"

	"github.com/alexanderramin/studytimer/internal/domain"
)

// intervalHours is the fixed review table, indexed by how many reviews a
// subject already has. Indexes past the end reuse the last entry.
var intervalHours = map[domain.Difficulty][]int{
	domain.DifficultyEasy:   {24, 72, 168, 336, 730},
	domain.DifficultyMedium: {12, 36, 96, 192, 384},
	domain.DifficultyHard:   {6, 24, 72, 144, 288},
}

// IntervalFor returns the wait after the latest review before a subject of
// the given difficulty is due again. reviewCount is the number of reviews
// recorded so far. Unknown difficulties use the medium row.
func IntervalFor(d domain.Difficulty, reviewCount int) time.Duration {
	row, ok := intervalHours[d]
	if !ok {
		row = intervalHours[domain.DifficultyMedium]
	}
	idx := reviewCount
	if idx < 0 {
		idx = 0
	}
	if idx > len(row)-1 {
		idx = len(row) - 1
	}
	return time.Duration(row[idx]) * time.Hour
}

// Intervals returns a copy of the table row for d.
func Intervals(d domain.Difficulty) []time.Duration {
	row := intervalHours[d]
	out := make([]time.Duration, len(row))
	for i, h := range row {
		out[i] = time.Duration(h) * time.Hour
	}
	return out
}

// NextReview returns when s is next due. The wait is looked up with the
// number of reviews that preceded the latest one, so a single review uses
// the first interval of the row. Subjects that were never reviewed have no
// schedule.
func NextReview(s *domain.Subject) (time.Time, bool) {
	last, ok := s.LastReviewDate()
	if !ok {
		return time.Time{}, false
	}
	return last.Add(IntervalFor(s.Difficulty, s.ReviewCount()-1)), true
}

// IsDue reports whether s should be reviewed at now. The boundary is
// inclusive.
func IsDue(s *domain.Subject, now time.Time) bool {
	next, ok := NextReview(s)
	if !ok {
		return false
	}
	return !next.After(now)
}

// DueForReview returns a fresh notification list for every subject due at
// now, in the order given. The result is meant to replace any previous
// list wholesale.
func DueForReview(subjects []*domain.Subject, now time.Time) []domain.ReviewNotification {
	due := make([]domain.ReviewNotification, 0)
	for _, s := range subjects {
		if IsDue(s, now) {
			due = append(due, domain.ReviewNotification{SubjectID: s.ID, Name: s.Name})
		}
	}
	return due
}
