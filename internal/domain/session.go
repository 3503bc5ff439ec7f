package domain

import (
	"errors"
	"fmt"
)

// ErrDurationOutOfRange is returned when a duration falls outside the
// bounds accepted by the settings form.
var ErrDurationOutOfRange = errors.New("duration out of range")

// Bounds, in minutes, accepted by the settings surface.
const (
	MinStudyMin     = 1
	MaxStudyMin     = 60
	MinBreakMin     = 1
	MaxBreakMin     = 30
	MinLongBreakMin = 5
	MaxLongBreakMin = 60
)

// Durations holds the configurable lengths of each mode, in minutes.
type Durations struct {
	StudyMin     int `yaml:"study_min"`
	BreakMin     int `yaml:"break_min"`
	LongBreakMin int `yaml:"long_break_min"`
}

// DefaultDurations returns the classic 25/5/15 Pomodoro split.
func DefaultDurations() Durations {
	return Durations{StudyMin: 25, BreakMin: 5, LongBreakMin: 15}
}

// Validate checks every field against its bounds.
func (d Durations) Validate() error {
	if err := checkRange("study duration", d.StudyMin, MinStudyMin, MaxStudyMin); err != nil {
		return err
	}
	if err := checkRange("break duration", d.BreakMin, MinBreakMin, MaxBreakMin); err != nil {
		return err
	}
	return checkRange("long break duration", d.LongBreakMin, MinLongBreakMin, MaxLongBreakMin)
}

// StudySeconds returns the study length in seconds.
func (d Durations) StudySeconds() int { return d.StudyMin * 60 }

// BreakSeconds returns the short break length in seconds.
func (d Durations) BreakSeconds() int { return d.BreakMin * 60 }

// LongBreakSeconds returns the long break length in seconds.
func (d Durations) LongBreakSeconds() int { return d.LongBreakMin * 60 }

func checkRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s must be between %d and %d minutes, got %d", ErrDurationOutOfRange, field, lo, hi, v)
	}
	return nil
}
