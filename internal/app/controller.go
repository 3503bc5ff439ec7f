// Package app owns the study session: a Controller holding every piece of
// mutable state, and a Runner that drives its two periodic tasks.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/alexanderramin/studytimer/internal/domain"
	"github.com/alexanderramin/studytimer/internal/repository"
	"github.com/alexanderramin/studytimer/internal/service"
	"github.com/alexanderramin/studytimer/internal/timer"
)

// Controller is the single owner of session state. It is not safe for
// concurrent use; callers serialize access (Runner loop or bubbletea Update).
type Controller struct {
	engine   *timer.Engine
	subjects SubjectUseCase
	reviews  ReviewUseCase
	clock    Clock
	rng      *rand.Rand
	logger   *slog.Logger

	currentSubject  string
	subjectCache    []*domain.Subject
	notifications   []domain.ReviewNotification
	breakSuggestion string
	version         int
}

// Option configures a Controller.
type Option func(*Controller)

func WithClock(c Clock) Option {
	return func(ctrl *Controller) { ctrl.clock = c }
}

func WithRand(r *rand.Rand) Option {
	return func(ctrl *Controller) { ctrl.rng = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(ctrl *Controller) {
		if l != nil {
			ctrl.logger = l
		}
	}
}

// NewController builds a controller with a fresh, inactive study period.
func NewController(subjects SubjectUseCase, reviews ReviewUseCase, durations domain.Durations, opts ...Option) *Controller {
	c := &Controller{
		engine:        timer.New(durations),
		subjects:      subjects,
		reviews:       reviews,
		clock:         SystemClock{},
		logger:        slog.New(slog.DiscardHandler),
		notifications: []domain.ReviewNotification{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(c.clock.Now().UnixNano()))
	}
	return c
}

// Load reads the subject collection and runs the startup review scan.
func (c *Controller) Load(ctx context.Context) error {
	if err := c.refreshSubjects(ctx); err != nil {
		return err
	}
	return c.ScanReviews(ctx)
}

func (c *Controller) Active() bool      { return c.engine.Active() }
func (c *Controller) Mode() domain.Mode { return c.engine.Mode() }

// SubjectsVersion changes whenever the subject collection or any review
// history changes. Schedulers restart their review timer when it moves.
func (c *Controller) SubjectsVersion() int { return c.version }

func (c *Controller) Toggle() {
	c.engine.Toggle()
	c.logger.Debug("timer_toggled", "active", c.engine.Active(), "time_left", c.engine.TimeLeft())
}

func (c *Controller) Start() { c.engine.Start() }
func (c *Controller) Pause() { c.engine.Pause() }

func (c *Controller) Reset() {
	c.engine.Reset()
	c.breakSuggestion = ""
	c.logger.Debug("timer_reset")
}

// SetDurations is refused while the timer runs.
func (c *Controller) SetDurations(d domain.Durations) error {
	if err := c.engine.SetDurations(d); err != nil {
		return err
	}
	c.logger.Info("durations_changed", "study_min", d.StudyMin, "break_min", d.BreakMin, "long_break_min", d.LongBreakMin)
	return nil
}

// Tick advances the countdown by one second. Finishing a study period with
// a subject selected records a review for it, which changes the subject
// collection and triggers an immediate review scan.
func (c *Controller) Tick(ctx context.Context) (timer.Transition, error) {
	tr := c.engine.Tick()
	if !tr.Expired {
		return tr, nil
	}

	c.logger.Info("mode_switched", "from", tr.From, "to", tr.To, "cycles", tr.Cycles, "long_break", tr.LongBreak)
	if tr.To == domain.ModeBreak {
		c.breakSuggestion = domain.PickBreakSuggestion(c.rng)
	} else {
		c.breakSuggestion = ""
	}

	if !tr.CompletedStudy() || c.currentSubject == "" {
		return tr, nil
	}
	if _, err := c.subjects.RecordReview(ctx, c.currentSubject, c.clock.Now()); err != nil {
		return tr, fmt.Errorf("recording review: %w", err)
	}
	if err := c.subjectsChanged(ctx); err != nil {
		return tr, err
	}
	return tr, nil
}

// AddSubject stores a new subject. A blank name is ignored and reported
// as (nil, nil).
func (c *Controller) AddSubject(ctx context.Context, name string, difficulty domain.Difficulty) (*domain.Subject, error) {
	s, err := c.subjects.Add(ctx, name, difficulty)
	if errors.Is(err, service.ErrEmptyName) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := c.subjectsChanged(ctx); err != nil {
		return s, err
	}
	return s, nil
}

// SelectSubject makes id the current subject and dismisses its
// notification. During an active study period it also stamps the
// subject's last-reviewed time; the review history is left alone.
func (c *Controller) SelectSubject(ctx context.Context, id string) error {
	if c.findSubject(id) == nil {
		return fmt.Errorf("subject %s: %w", id, repository.ErrNotFound)
	}
	c.currentSubject = id

	if c.engine.Active() && c.engine.Mode() == domain.ModeStudy {
		updated, err := c.subjects.MarkReviewed(ctx, id, c.clock.Now())
		if err != nil {
			return fmt.Errorf("marking subject reviewed: %w", err)
		}
		c.replaceCached(updated)
	}

	c.dismiss(id)
	return nil
}

// ScanReviews replaces the notification set with the subjects due now.
func (c *Controller) ScanReviews(ctx context.Context) error {
	due, err := c.reviews.Scan(ctx, c.clock.Now())
	if err != nil {
		return fmt.Errorf("scanning reviews: %w", err)
	}
	c.notifications = due
	return nil
}

// Notifications returns a copy of the current notification set.
func (c *Controller) Notifications() []domain.ReviewNotification {
	out := make([]domain.ReviewNotification, len(c.notifications))
	copy(out, c.notifications)
	return out
}

func (c *Controller) subjectsChanged(ctx context.Context) error {
	c.version++
	if err := c.refreshSubjects(ctx); err != nil {
		return err
	}
	return c.ScanReviews(ctx)
}

func (c *Controller) refreshSubjects(ctx context.Context) error {
	list, err := c.subjects.List(ctx)
	if err != nil {
		return fmt.Errorf("loading subjects: %w", err)
	}
	c.subjectCache = list
	return nil
}

func (c *Controller) findSubject(id string) *domain.Subject {
	for _, s := range c.subjectCache {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (c *Controller) replaceCached(s *domain.Subject) {
	for i, cached := range c.subjectCache {
		if cached.ID == s.ID {
			c.subjectCache[i] = s
			return
		}
	}
}

func (c *Controller) dismiss(id string) {
	kept := make([]domain.ReviewNotification, 0, len(c.notifications))
	for _, n := range c.notifications {
		if n.SubjectID != id {
			kept = append(kept, n)
		}
	}
	c.notifications = kept
}
