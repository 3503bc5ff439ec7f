package app

import (
	"time"

	"github.com/alexanderramin/studytimer/internal/domain"
	"github.com/alexanderramin/studytimer/internal/scheduler"
	"github.com/alexanderramin/studytimer/internal/timer"
)

// SubjectView is the read-only projection of a subject for display.
type SubjectView struct {
	ID           string
	Name         string
	Difficulty   domain.Difficulty
	LastReviewed *time.Time
	ReviewCount  int
	NextReview   *time.Time
	Selected     bool
}

// Snapshot is everything a presentation layer needs to draw the session.
type Snapshot struct {
	Clock            string
	TimeLeft         int
	Mode             domain.Mode
	Active           bool
	Cycles           int
	Durations        domain.Durations
	CurrentSubjectID string
	Subjects         []SubjectView
	Notifications    []domain.ReviewNotification
	BreakSuggestion  string
	TakenAt          time.Time
}

// CurrentSubjectName returns the selected subject's name, or "".
func (s Snapshot) CurrentSubjectName() string {
	for _, v := range s.Subjects {
		if v.Selected {
			return v.Name
		}
	}
	return ""
}

// Snapshot copies the current state.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Clock:            timer.FormatClock(c.engine.TimeLeft()),
		TimeLeft:         c.engine.TimeLeft(),
		Mode:             c.engine.Mode(),
		Active:           c.engine.Active(),
		Cycles:           c.engine.Cycles(),
		Durations:        c.engine.Durations(),
		CurrentSubjectID: c.currentSubject,
		Notifications:    c.Notifications(),
		BreakSuggestion:  c.breakSuggestion,
		TakenAt:          c.clock.Now(),
		Subjects:         make([]SubjectView, 0, len(c.subjectCache)),
	}
	for _, s := range c.subjectCache {
		v := SubjectView{
			ID:           s.ID,
			Name:         s.Name,
			Difficulty:   s.Difficulty,
			LastReviewed: s.LastReviewed,
			ReviewCount:  s.ReviewCount(),
			Selected:     s.ID == c.currentSubject,
		}
		if next, ok := scheduler.NextReview(s); ok {
			v.NextReview = &next
		}
		snap.Subjects = append(snap.Subjects, v)
	}
	return snap
}
