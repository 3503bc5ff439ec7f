package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject_RecordReview_AppendsAndStamps(t *testing.T) {
	s := &Subject{ID: "s1", Name: "Go", Difficulty: DifficultyMedium}
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordReview(at))

	assert.Equal(t, 1, s.ReviewCount())
	require.NotNil(t, s.LastReviewed)
	assert.True(t, s.LastReviewed.Equal(at))
	last, ok := s.LastReviewDate()
	require.True(t, ok)
	assert.True(t, last.Equal(*s.LastReviewed))
}

func TestSubject_RecordReview_RejectsOutOfOrder(t *testing.T) {
	s := &Subject{ID: "s1"}
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.RecordReview(at))

	err := s.RecordReview(at.Add(-time.Minute))
	assert.ErrorIs(t, err, ErrReviewOutOfOrder)
	assert.Equal(t, 1, s.ReviewCount())
}

func TestSubject_MarkReviewed_DoesNotAppend(t *testing.T) {
	s := &Subject{ID: "s1"}
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	s.MarkReviewed(at)

	assert.Equal(t, 0, s.ReviewCount())
	require.NotNil(t, s.LastReviewed)
	assert.True(t, s.LastReviewed.Equal(at))
}

func TestSubject_MarkReviewed_NeverMovesBackwards(t *testing.T) {
	s := &Subject{ID: "s1"}
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.RecordReview(at))

	s.MarkReviewed(at.Add(-time.Hour))

	assert.True(t, s.LastReviewed.Equal(at))
}

func TestSubject_LastReviewDate_Empty(t *testing.T) {
	s := &Subject{}
	_, ok := s.LastReviewDate()
	assert.False(t, ok)
}

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"easy":     DifficultyEasy,
		" Medium ": DifficultyMedium,
		"HARD":     DifficultyHard,
	}
	for in, want := range cases {
		got, err := ParseDifficulty(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseDifficulty("brutal")
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}

func TestMode_Label(t *testing.T) {
	assert.Equal(t, "Study Time", ModeStudy.Label())
	assert.Equal(t, "Break Time", ModeBreak.Label())
}

func TestDurations_Validate(t *testing.T) {
	assert.NoError(t, DefaultDurations().Validate())
	assert.NoError(t, Durations{StudyMin: 1, BreakMin: 1, LongBreakMin: 5}.Validate())
	assert.NoError(t, Durations{StudyMin: 60, BreakMin: 30, LongBreakMin: 60}.Validate())

	bad := []Durations{
		{StudyMin: 0, BreakMin: 5, LongBreakMin: 15},
		{StudyMin: 61, BreakMin: 5, LongBreakMin: 15},
		{StudyMin: 25, BreakMin: 31, LongBreakMin: 15},
		{StudyMin: 25, BreakMin: 5, LongBreakMin: 4},
	}
	for _, d := range bad {
		assert.ErrorIs(t, d.Validate(), ErrDurationOutOfRange, "%+v", d)
	}
}

func TestDurations_Seconds(t *testing.T) {
	d := DefaultDurations()
	assert.Equal(t, 1500, d.StudySeconds())
	assert.Equal(t, 300, d.BreakSeconds())
	assert.Equal(t, 900, d.LongBreakSeconds())
}

func TestPickBreakSuggestion_FromList(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		assert.Contains(t, BreakSuggestions, PickBreakSuggestion(rng))
	}
}
