package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studytimer/internal/app"
	"github.com/alexanderramin/studytimer/internal/domain"
	"github.com/alexanderramin/studytimer/internal/scheduler"
	"github.com/alexanderramin/studytimer/internal/timer"
)

// periodSeconds is the full length of the period the snapshot is in.
func periodSeconds(s app.Snapshot) int {
	if s.Mode == domain.ModeStudy {
		return s.Durations.StudySeconds()
	}
	// Cycles was already incremented when the break started.
	if s.Cycles > 0 && s.Cycles%timer.LongBreakEvery == 0 {
		return s.Durations.LongBreakSeconds()
	}
	return s.Durations.BreakSeconds()
}

// FormatTimer renders the clock, mode, cycle count and break suggestion.
func FormatTimer(s app.Snapshot) string {
	var b strings.Builder

	state := StyleYellow.Render("○ paused")
	if s.Active {
		state = StyleGreen.Render("● running")
	}
	b.WriteString(ModeStyle(s.Mode).Render(s.Mode.Label()) + "  " + state + "\n\n")
	b.WriteString(StyleBold.Render(s.Clock) + "  ")
	b.WriteString(RenderProgress(Elapsed(s.TimeLeft, periodSeconds(s)), 24, ModeStyle(s.Mode)) + "\n\n")
	b.WriteString(fmt.Sprintf("%s %d", Dim("Cycles completed:"), s.Cycles))

	if name := s.CurrentSubjectName(); name != "" {
		b.WriteString("\n" + Dim("Studying: ") + StyleBlue.Render(name))
	}
	if s.Mode == domain.ModeBreak && s.BreakSuggestion != "" {
		b.WriteString("\n\n" + StylePurple.Render("Break idea: ") + s.BreakSuggestion)
	}
	return b.String()
}

// FormatDurations renders "Study 25m · Break 5m · Long break 15m".
func FormatDurations(d domain.Durations) string {
	return Dim(fmt.Sprintf("Study %s · Break %s · Long break %s",
		FormatMinutes(d.StudyMin), FormatMinutes(d.BreakMin), FormatMinutes(d.LongBreakMin)))
}

// FormatSubjects renders the subject list. cursor < 0 hides the cursor.
func FormatSubjects(subjects []app.SubjectView, cursor int, now time.Time) string {
	if len(subjects) == 0 {
		return Dim("No subjects yet. Press a to add one.")
	}

	var b strings.Builder
	for i, s := range subjects {
		pointer := "  "
		if i == cursor {
			pointer = StyleHeader.Render("› ")
		}
		name := StyleFg.Render(s.Name)
		if s.Selected {
			name = StyleBlue.Bold(true).Render(s.Name + " ✔")
		}
		line := fmt.Sprintf("%s%s  %s  %s", pointer, name, DifficultyBadge(s.Difficulty), Dim(ReviewStatus(s.LastReviewed)))
		if s.NextReview != nil {
			line += Dim(" · next " + RelativeFrom(*s.NextReview, now))
		}
		b.WriteString(line)
		if i < len(subjects)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatNotifications renders numbered "<name> needs review now" lines.
func FormatNotifications(notes []domain.ReviewNotification) string {
	if len(notes) == 0 {
		return Dim("Nothing due for review.")
	}
	lines := make([]string, len(notes))
	for i, n := range notes {
		lines[i] = fmt.Sprintf("%s %s", StyleYellow.Render(fmt.Sprintf("[%d]", i+1)), NeedsReview(n.Name))
	}
	return strings.Join(lines, "\n")
}

// FormatIntervals renders the review table for the given difficulties.
func FormatIntervals(ds []domain.Difficulty) string {
	maxLen := 0
	for _, d := range ds {
		maxLen = max(maxLen, len(scheduler.Intervals(d)))
	}

	headers := []string{"DIFFICULTY"}
	for i := 1; i <= maxLen; i++ {
		headers = append(headers, fmt.Sprintf("#%d", i))
	}

	rows := make([][]string, 0, len(ds))
	for _, d := range ds {
		row := []string{DifficultyBadge(d)}
		for _, iv := range scheduler.Intervals(d) {
			row = append(row, FormatInterval(iv))
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

// FormatTransition is the one-line report the headless runner prints when a
// period ends.
func FormatTransition(tr timer.Transition, subject string) string {
	if !tr.CompletedStudy() {
		return "Break over. Back to study."
	}
	msg := fmt.Sprintf("Study cycle %d complete.", tr.Cycles)
	if subject != "" {
		msg += fmt.Sprintf(" Review recorded for %s.", subject)
	}
	if tr.LongBreak {
		msg += " Long break."
	}
	return msg
}
