package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/alexanderramin/studytimer/internal/timer"
)

// ErrRunnerStopped is returned by Do once the run loop has exited.
var ErrRunnerStopped = errors.New("runner stopped")

// Ticker is the subset of *time.Ticker the runner needs.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type stdTicker struct{ t *time.Ticker }

func (s stdTicker) Chan() <-chan time.Time { return s.t.C }
func (s stdTicker) Stop()                  { s.t.Stop() }

// NewStdTicker wraps time.NewTicker.
func NewStdTicker(d time.Duration) Ticker {
	return stdTicker{t: time.NewTicker(d)}
}

type command struct {
	fn    func(context.Context, *Controller) error
	reply chan error
}

// Runner serializes every controller mutation onto a single goroutine. It
// owns two periodic tasks: a one-second countdown that exists only while
// the timer is active, and a review scan restarted whenever the subject
// collection changes.
type Runner struct {
	ctrl           *Controller
	commands       chan command
	done           chan struct{}
	countdownEvery time.Duration
	reviewEvery    time.Duration
	newTicker      TickerFactory
	logger         *slog.Logger

	// OnChange receives a snapshot after every handled event.
	OnChange func(Snapshot)
	// OnTransition is called when the countdown switches modes, before
	// OnChange.
	OnTransition func(timer.Transition)
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

func WithTickerFactory(f TickerFactory) RunnerOption {
	return func(r *Runner) { r.newTicker = f }
}

func WithCountdownInterval(d time.Duration) RunnerOption {
	return func(r *Runner) { r.countdownEvery = d }
}

func WithRunnerLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner drives ctrl. reviewEvery is the review scan period.
func NewRunner(ctrl *Controller, reviewEvery time.Duration, opts ...RunnerOption) *Runner {
	r := &Runner{
		ctrl:           ctrl,
		commands:       make(chan command),
		done:           make(chan struct{}),
		countdownEvery: time.Second,
		reviewEvery:    reviewEvery,
		newTicker:      NewStdTicker,
		logger:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do runs fn on the loop goroutine and waits for it to finish.
func (r *Runner) Do(ctx context.Context, fn func(context.Context, *Controller) error) error {
	cmd := command{fn: fn, reply: make(chan error, 1)}
	select {
	case r.commands <- cmd:
	case <-r.done:
		return ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.reply:
		return err
	case <-r.done:
		return ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run blocks until ctx is cancelled. All tickers are stopped on return.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)

	var countdown Ticker
	review := r.newTicker(r.reviewEvery)
	version := r.ctrl.SubjectsVersion()
	defer func() {
		if countdown != nil {
			countdown.Stop()
		}
		review.Stop()
	}()

	resync := func() {
		switch active := r.ctrl.Active(); {
		case active && countdown == nil:
			countdown = r.newTicker(r.countdownEvery)
		case !active && countdown != nil:
			countdown.Stop()
			countdown = nil
		}
		if v := r.ctrl.SubjectsVersion(); v != version {
			version = v
			review.Stop()
			review = r.newTicker(r.reviewEvery)
		}
		if r.OnChange != nil {
			r.OnChange(r.ctrl.Snapshot())
		}
	}
	resync()

	for {
		var countdownC <-chan time.Time
		if countdown != nil {
			countdownC = countdown.Chan()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case cmd := <-r.commands:
			err := cmd.fn(ctx, r.ctrl)
			resync()
			cmd.reply <- err

		case <-countdownC:
			tr, err := r.ctrl.Tick(ctx)
			if err != nil {
				r.logger.Error("tick_failed", "error", err)
			}
			if tr.Expired && r.OnTransition != nil {
				r.OnTransition(tr)
			}
			resync()

		case <-review.Chan():
			if err := r.ctrl.ScanReviews(ctx); err != nil {
				r.logger.Error("review_scan_failed", "error", err)
			}
			resync()
		}
	}
}
