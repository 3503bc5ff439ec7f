package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/studytimer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState(t *testing.T) *SharedState {
	t.Helper()
	a := testApp(t)
	ctrl, err := a.newController(context.Background(), a.Config.Timer)
	require.NoError(t, err)
	return &SharedState{App: a, Ctrl: ctrl}
}

func TestApplyAddSubject(t *testing.T) {
	state := testState(t)

	msg := applyAddSubject(state, &addSubjectFields{name: "Physics", difficulty: "hard"})
	out, ok := msg.(cmdOutputMsg)
	require.True(t, ok, "expected cmdOutputMsg, got %T", msg)
	assert.Contains(t, out.output, "Added")

	subjects := state.Ctrl.Snapshot().Subjects
	require.Len(t, subjects, 1)
	assert.Equal(t, domain.DifficultyHard, subjects[0].Difficulty)
}

func TestApplyAddSubject_BlankNameIgnored(t *testing.T) {
	state := testState(t)

	msg := applyAddSubject(state, &addSubjectFields{name: "  ", difficulty: "easy"})
	out, ok := msg.(cmdOutputMsg)
	require.True(t, ok)
	assert.Contains(t, out.output, "nothing added")
	assert.Empty(t, state.Ctrl.Snapshot().Subjects)
}

func TestApplyAddSubject_BadDifficulty(t *testing.T) {
	state := testState(t)

	msg := applyAddSubject(state, &addSubjectFields{name: "Physics", difficulty: "brutal"})
	out, ok := msg.(cmdOutputMsg)
	require.True(t, ok)
	assert.Contains(t, out.output, "Error:")
}

func TestApplyDurations(t *testing.T) {
	state := testState(t)

	msg := applyDurations(state, &durationFields{study: "50", brk: "10", longBreak: "30"})
	out, ok := msg.(cmdOutputMsg)
	require.True(t, ok)
	assert.Contains(t, out.output, "Durations set")
	assert.Equal(t, domain.Durations{StudyMin: 50, BreakMin: 10, LongBreakMin: 30}, state.Ctrl.Snapshot().Durations)
	assert.Equal(t, "25:00", state.Ctrl.Snapshot().Clock, "running countdown is not rescaled")
}

func TestApplyDurations_RefusedWhileActive(t *testing.T) {
	state := testState(t)
	state.Ctrl.Start()

	msg := applyDurations(state, &durationFields{study: "50", brk: "10", longBreak: "30"})
	out, ok := msg.(cmdOutputMsg)
	require.True(t, ok)
	assert.Contains(t, out.output, "Pause the timer")
	assert.Equal(t, domain.DefaultDurations(), state.Ctrl.Snapshot().Durations)
}

func TestApplyDurations_OutOfRange(t *testing.T) {
	state := testState(t)

	msg := applyDurations(state, &durationFields{study: "25", brk: "31", longBreak: "15"})
	out, ok := msg.(cmdOutputMsg)
	require.True(t, ok)
	assert.Contains(t, out.output, "Error:")
	assert.Equal(t, domain.DefaultDurations(), state.Ctrl.Snapshot().Durations)
}

func TestNewDurationFields(t *testing.T) {
	f := newDurationFields(domain.Durations{StudyMin: 40, BreakMin: 8, LongBreakMin: 20})
	d, err := f.durations()
	require.NoError(t, err)
	assert.Equal(t, domain.Durations{StudyMin: 40, BreakMin: 8, LongBreakMin: 20}, d)

	f.brk = "x"
	_, err = f.durations()
	assert.Error(t, err)
}

func TestValidateMinutes(t *testing.T) {
	v := validateMinutes(domain.MinLongBreakMin, domain.MaxLongBreakMin)

	assert.NoError(t, v("5"))
	assert.NoError(t, v(" 60 "))
	assert.Error(t, v("4"))
	assert.Error(t, v("61"))
	assert.Error(t, v(""))
	assert.Error(t, v("ten"))
}
