package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/studytimer/internal/domain"
	"github.com/alexanderramin/studytimer/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	every time.Duration
	ch    chan time.Time

	mu      sync.Mutex
	stopped bool
}

func (f *fakeTicker) Chan() <-chan time.Time { return f.ch }

func (f *fakeTicker) Stop() {
	f.mu.Lock()
	f.stopped = true
	f.mu.Unlock()
}

func (f *fakeTicker) Stopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

type fakeTickers struct {
	mu      sync.Mutex
	created []*fakeTicker
}

func (f *fakeTickers) New(d time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTicker{every: d, ch: make(chan time.Time)}
	f.created = append(f.created, t)
	return t
}

// latest returns the most recently created ticker with period d.
func (f *fakeTickers) latest(d time.Duration) *fakeTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.created) - 1; i >= 0; i-- {
		if f.created[i].every == d {
			return f.created[i]
		}
	}
	return nil
}

func (f *fakeTickers) count(d time.Duration) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.created {
		if t.every == d {
			n++
		}
	}
	return n
}

const reviewEvery = time.Minute

type runnerSetup struct {
	controllerSetup
	runner  *Runner
	tickers *fakeTickers
	cancel  context.CancelFunc
	exited  chan error
}

func startRunner(t *testing.T, d domain.Durations) *runnerSetup {
	t.Helper()
	cs := newControllerSetup(t, d)
	tickers := &fakeTickers{}
	r := NewRunner(cs.ctrl, reviewEvery, WithTickerFactory(tickers.New))

	ctx, cancel := context.WithCancel(context.Background())
	exited := make(chan error, 1)
	go func() {
		exited <- r.Run(ctx)
		close(exited)
	}()

	rs := &runnerSetup{controllerSetup: cs, runner: r, tickers: tickers, cancel: cancel, exited: exited}
	t.Cleanup(rs.stop)
	// Barrier: Run has started once the first command completes.
	rs.do(t, func(context.Context, *Controller) error { return nil })
	return rs
}

func (rs *runnerSetup) stop() {
	rs.cancel()
	select {
	case <-rs.exited:
	case <-time.After(time.Second):
	}
}

func (rs *runnerSetup) do(t *testing.T, fn func(context.Context, *Controller) error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, rs.runner.Do(ctx, fn))
}

func (rs *runnerSetup) fire(t *testing.T, tk *fakeTicker) {
	t.Helper()
	select {
	case tk.ch <- time.Now():
	case <-time.After(time.Second):
		t.Fatal("ticker was not being read")
	}
	rs.do(t, func(context.Context, *Controller) error { return nil })
}

func TestRunner_NoCountdownWhileInactive(t *testing.T) {
	rs := startRunner(t, oneMinute())

	assert.Equal(t, 0, rs.tickers.count(time.Second))
	assert.Equal(t, 1, rs.tickers.count(reviewEvery))
}

func TestRunner_CountdownFollowsActiveState(t *testing.T) {
	rs := startRunner(t, oneMinute())

	rs.do(t, func(_ context.Context, c *Controller) error { c.Toggle(); return nil })
	countdown := rs.tickers.latest(time.Second)
	require.NotNil(t, countdown)

	rs.fire(t, countdown)
	rs.fire(t, countdown)

	var snap Snapshot
	rs.do(t, func(_ context.Context, c *Controller) error { snap = c.Snapshot(); return nil })
	assert.Equal(t, "00:58", snap.Clock)

	rs.do(t, func(_ context.Context, c *Controller) error { c.Toggle(); return nil })
	assert.True(t, countdown.Stopped())

	rs.do(t, func(_ context.Context, c *Controller) error { c.Toggle(); return nil })
	assert.Equal(t, 2, rs.tickers.count(time.Second))
}

func TestRunner_SubjectChangeRestartsReviewTicker(t *testing.T) {
	rs := startRunner(t, oneMinute())
	first := rs.tickers.latest(reviewEvery)

	rs.do(t, func(ctx context.Context, c *Controller) error {
		_, err := c.AddSubject(ctx, "Geography", domain.DifficultyEasy)
		return err
	})

	assert.True(t, first.Stopped())
	assert.Equal(t, 2, rs.tickers.count(reviewEvery))
}

func TestRunner_ReviewTickRescans(t *testing.T) {
	rs := startRunner(t, oneMinute())

	var id string
	rs.do(t, func(ctx context.Context, c *Controller) error {
		s, err := c.AddSubject(ctx, "Music", domain.DifficultyMedium)
		if err != nil {
			return err
		}
		id = s.ID
		if err := c.SelectSubject(ctx, id); err != nil {
			return err
		}
		c.Start()
		return nil
	})
	countdown := rs.tickers.latest(time.Second)
	for i := 0; i < 60; i++ {
		rs.fire(t, countdown)
	}
	rs.do(t, func(_ context.Context, c *Controller) error { c.Reset(); return nil })

	rs.clock.Advance(12 * time.Hour)
	rs.fire(t, rs.tickers.latest(reviewEvery))

	var notes []domain.ReviewNotification
	rs.do(t, func(_ context.Context, c *Controller) error { notes = c.Notifications(); return nil })
	require.Len(t, notes, 1)
	assert.Equal(t, id, notes[0].SubjectID)
}

func TestRunner_OnChangeReceivesSnapshots(t *testing.T) {
	cs := newControllerSetup(t, oneMinute())
	tickers := &fakeTickers{}
	r := NewRunner(cs.ctrl, reviewEvery, WithTickerFactory(tickers.New))

	var mu sync.Mutex
	var got []Snapshot
	r.OnChange = func(s Snapshot) {
		mu.Lock()
		got = append(got, s)
		mu.Unlock()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = r.Run(ctx) }()

	require.NoError(t, r.Do(ctx, func(_ context.Context, c *Controller) error { c.Start(); return nil }))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
	assert.False(t, got[0].Active)
	assert.True(t, got[1].Active)
}

func TestRunner_StopsTickersOnExit(t *testing.T) {
	rs := startRunner(t, oneMinute())
	rs.do(t, func(_ context.Context, c *Controller) error { c.Start(); return nil })
	countdown := rs.tickers.latest(time.Second)
	review := rs.tickers.latest(reviewEvery)

	rs.cancel()
	select {
	case err := <-rs.exited:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("runner did not exit")
	}
	assert.True(t, countdown.Stopped())
	assert.True(t, review.Stopped())

	err := rs.runner.Do(context.Background(), func(context.Context, *Controller) error { return nil })
	assert.ErrorIs(t, err, ErrRunnerStopped)
}

func TestRunner_DoPropagatesError(t *testing.T) {
	rs := startRunner(t, oneMinute())

	err := rs.runner.Do(context.Background(), func(ctx context.Context, c *Controller) error {
		return c.SelectSubject(ctx, "nope")
	})
	assert.Error(t, err)
}

func TestRunner_OnTransitionFiresOnModeSwitch(t *testing.T) {
	cs := newControllerSetup(t, oneMinute())
	tickers := &fakeTickers{}
	r := NewRunner(cs.ctrl, reviewEvery, WithTickerFactory(tickers.New))

	var mu sync.Mutex
	var seen []timer.Transition
	r.OnTransition = func(tr timer.Transition) {
		mu.Lock()
		seen = append(seen, tr)
		mu.Unlock()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = r.Run(ctx) }()
	rs := &runnerSetup{controllerSetup: cs, runner: r, tickers: tickers, cancel: cancel}

	rs.do(t, func(_ context.Context, c *Controller) error { c.Start(); return nil })
	countdown := tickers.latest(time.Second)
	for i := 0; i < 60; i++ {
		rs.fire(t, countdown)
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 1)
	assert.True(t, seen[0].CompletedStudy())
	assert.Equal(t, 1, seen[0].Cycles)
}
