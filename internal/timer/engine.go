// Package timer implements the study/break countdown as a plain value that
// advances one second per Tick. It knows nothing about subjects or wall
// clocks; callers drive it and react to the Transition it reports.
package timer

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/studytimer/internal/domain"
)

// LongBreakEvery is the cycle cadence at which the long break replaces the
// short one.
const LongBreakEvery = 4

// ErrTimerActive is returned when durations are edited while the countdown runs.
var ErrTimerActive = errors.New("timer is running; pause it before changing durations")

// Transition describes the outcome of a single Tick.
type Transition struct {
	Expired   bool
	From      domain.Mode
	To        domain.Mode
	Cycles    int
	LongBreak bool
}

// CompletedStudy reports whether this tick finished a study period.
func (t Transition) CompletedStudy() bool {
	return t.Expired && t.From == domain.ModeStudy
}

// Engine is the countdown state machine.
type Engine struct {
	mode      domain.Mode
	timeLeft  int
	active    bool
	cycles    int
	durations domain.Durations
}

// New returns an inactive engine in study mode with a full study countdown.
func New(d domain.Durations) *Engine {
	return &Engine{
		mode:      domain.ModeStudy,
		timeLeft:  d.StudySeconds(),
		durations: d,
	}
}

func (e *Engine) Mode() domain.Mode           { return e.mode }
func (e *Engine) TimeLeft() int               { return e.timeLeft }
func (e *Engine) Active() bool                { return e.active }
func (e *Engine) Cycles() int                 { return e.cycles }
func (e *Engine) Durations() domain.Durations { return e.durations }

// Toggle flips between running and paused. The countdown is left as is.
func (e *Engine) Toggle() {
	e.active = !e.active
}

func (e *Engine) Start() { e.active = true }
func (e *Engine) Pause() { e.active = false }

// Reset stops the timer and returns to a fresh study period with no
// completed cycles. Durations are kept.
func (e *Engine) Reset() {
	e.active = false
	e.mode = domain.ModeStudy
	e.timeLeft = e.durations.StudySeconds()
	e.cycles = 0
}

// SetDurations replaces all three durations. The running countdown is not
// rescaled; new values apply from the next transition or reset.
func (e *Engine) SetDurations(d domain.Durations) error {
	if e.active {
		return ErrTimerActive
	}
	if err := d.Validate(); err != nil {
		return err
	}
	e.durations = d
	return nil
}

func (e *Engine) SetStudyDuration(min int) error {
	d := e.durations
	d.StudyMin = min
	return e.SetDurations(d)
}

func (e *Engine) SetBreakDuration(min int) error {
	d := e.durations
	d.BreakMin = min
	return e.SetDurations(d)
}

func (e *Engine) SetLongBreakDuration(min int) error {
	d := e.durations
	d.LongBreakMin = min
	return e.SetDurations(d)
}

// Tick advances the countdown by one second. When the last second elapses
// the engine switches mode and loads the next period's length; it stays
// active across the switch. Ticking a paused engine does nothing.
func (e *Engine) Tick() Transition {
	if !e.active {
		return Transition{}
	}
	if e.timeLeft > 1 {
		e.timeLeft--
		return Transition{}
	}

	tr := Transition{Expired: true, From: e.mode}
	switch e.mode {
	case domain.ModeStudy:
		e.cycles++
		if e.cycles%LongBreakEvery == 0 {
			e.timeLeft = e.durations.LongBreakSeconds()
			tr.LongBreak = true
		} else {
			e.timeLeft = e.durations.BreakSeconds()
		}
		e.mode = domain.ModeBreak
	default:
		e.timeLeft = e.durations.StudySeconds()
		e.mode = domain.ModeStudy
	}
	tr.To = e.mode
	tr.Cycles = e.cycles
	return tr
}

// FormatClock renders seconds as zero-padded MM:SS. Minutes are not
// wrapped at 60.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
