package service

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/studytimer/internal/domain"
	"github.com/alexanderramin/studytimer/internal/repository"
	"github.com/alexanderramin/studytimer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_Scan(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSubjectRepo(database)
	subjects := NewSubjectService(repo, testutil.NewTestUoW(database))
	reviews := NewReviewService(repo)
	ctx := context.Background()
	t0 := time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)

	med, err := subjects.Add(ctx, "Statistics", domain.DifficultyMedium)
	require.NoError(t, err)
	_, err = subjects.Add(ctx, "Untouched", domain.DifficultyHard)
	require.NoError(t, err)
	_, err = subjects.RecordReview(ctx, med.ID, t0)
	require.NoError(t, err)

	due, err := reviews.Scan(ctx, t0.Add(12*time.Hour-time.Second))
	require.NoError(t, err)
	assert.Empty(t, due)

	due, err = reviews.Scan(ctx, t0.Add(12*time.Hour))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, domain.ReviewNotification{SubjectID: med.ID, Name: "Statistics"}, due[0])
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, ev UseCaseEvent) {
	r.events = append(r.events, ev)
}

func TestObserver_ReceivesUseCaseEvents(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSubjectRepo(database)
	obs := &recordingObserver{}
	subjects := NewSubjectService(repo, testutil.NewTestUoW(database), obs)
	reviews := NewReviewService(repo, obs)
	ctx := context.Background()

	_, err := subjects.Add(ctx, " ", domain.DifficultyEasy)
	require.Error(t, err)
	_, err = subjects.Add(ctx, "Poetry", domain.DifficultyEasy)
	require.NoError(t, err)
	_, err = reviews.Scan(ctx, time.Now())
	require.NoError(t, err)

	require.Len(t, obs.events, 3)
	assert.Equal(t, "add-subject", obs.events[0].Name)
	assert.False(t, obs.events[0].Success)
	assert.ErrorIs(t, obs.events[0].Err, ErrEmptyName)
	assert.True(t, obs.events[1].Success)
	assert.Equal(t, "scan-reviews", obs.events[2].Name)
	assert.Equal(t, 1, obs.events[2].Fields["subjects"])
	assert.Equal(t, 0, obs.events[2].Fields["due"])
}

func TestLogUseCaseObserver_WritesText(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "add-subject", Success: true})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "scan-reviews", Success: true})

	out := buf.String()
	assert.Contains(t, out, "use_case=add-subject")
	assert.NotContains(t, out, "scan-reviews", "scans are logged at debug")
}

func TestLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil, slog.LevelInfo))
}
