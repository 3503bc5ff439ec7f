package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/studytimer/internal/cli/formatter"
	"github.com/alexanderramin/studytimer/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// studyHuhTheme returns a huh theme using the Gruvbox palette.
func studyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// ── add subject ──────────────────────────────────────────────────────────────

type addSubjectFields struct {
	name       string
	difficulty string
}

func addSubjectForm(fields *addSubjectFields) *huh.Form {
	if fields.difficulty == "" {
		fields.difficulty = string(domain.DifficultyMedium)
	}
	options := make([]huh.Option[string], 0, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		options = append(options, huh.NewOption(strings.ToUpper(string(d)[:1])+string(d)[1:], string(d)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Placeholder("Organic chemistry").
				Value(&fields.name),
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(options...).
				Value(&fields.difficulty),
		),
	).WithTheme(studyHuhTheme()).WithShowHelp(false)
}

func addSubjectWizard(state *SharedState) tea.Cmd {
	fields := &addSubjectFields{}
	return pushView(newWizardView(state, "Add subject", addSubjectForm(fields), func() tea.Cmd {
		msg := applyAddSubject(state, fields)
		return func() tea.Msg { return msg }
	}))
}

// applyAddSubject stores the subject. A blank name is ignored.
func applyAddSubject(state *SharedState, fields *addSubjectFields) tea.Msg {
	d, err := domain.ParseDifficulty(fields.difficulty)
	if err != nil {
		return cmdOutputMsg{output: formatter.StyleRed.Render("Error: " + err.Error())}
	}
	s, err := state.Ctrl.AddSubject(context.Background(), fields.name, d)
	if err != nil {
		return cmdOutputMsg{output: formatter.StyleRed.Render("Error: " + err.Error())}
	}
	if s == nil {
		return cmdOutputMsg{output: formatter.Dim("Subject name was empty; nothing added.")}
	}
	return cmdOutputMsg{output: "Added " + formatter.StyleBlue.Render(s.Name) + " " + formatter.DifficultyBadge(s.Difficulty)}
}

// ── settings ─────────────────────────────────────────────────────────────────

type durationFields struct {
	study     string
	brk       string
	longBreak string
}

func newDurationFields(d domain.Durations) *durationFields {
	return &durationFields{
		study:     strconv.Itoa(d.StudyMin),
		brk:       strconv.Itoa(d.BreakMin),
		longBreak: strconv.Itoa(d.LongBreakMin),
	}
}

func (f *durationFields) durations() (domain.Durations, error) {
	var d domain.Durations
	var err error
	if d.StudyMin, err = strconv.Atoi(strings.TrimSpace(f.study)); err != nil {
		return d, fmt.Errorf("study minutes: %w", err)
	}
	if d.BreakMin, err = strconv.Atoi(strings.TrimSpace(f.brk)); err != nil {
		return d, fmt.Errorf("break minutes: %w", err)
	}
	if d.LongBreakMin, err = strconv.Atoi(strings.TrimSpace(f.longBreak)); err != nil {
		return d, fmt.Errorf("long break minutes: %w", err)
	}
	return d, nil
}

func settingsForm(fields *durationFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			minutesInput("Study minutes", domain.MinStudyMin, domain.MaxStudyMin, &fields.study),
			minutesInput("Break minutes", domain.MinBreakMin, domain.MaxBreakMin, &fields.brk),
			minutesInput("Long break minutes", domain.MinLongBreakMin, domain.MaxLongBreakMin, &fields.longBreak),
		),
	).WithTheme(studyHuhTheme()).WithShowHelp(false)
}

func settingsWizard(state *SharedState) tea.Cmd {
	fields := newDurationFields(state.Ctrl.Snapshot().Durations)
	return pushView(newWizardView(state, "Settings", settingsForm(fields), func() tea.Cmd {
		msg := applyDurations(state, fields)
		return func() tea.Msg { return msg }
	}))
}

// applyDurations sets all three durations. The engine refuses while the
// timer runs.
func applyDurations(state *SharedState, fields *durationFields) tea.Msg {
	d, err := fields.durations()
	if err == nil {
		err = state.Ctrl.SetDurations(d)
	}
	switch {
	case settingsRefused(err):
		return cmdOutputMsg{output: formatter.StyleYellow.Render("Pause the timer to change durations.")}
	case err != nil:
		return cmdOutputMsg{output: formatter.StyleRed.Render("Error: " + err.Error())}
	}
	return cmdOutputMsg{output: "Durations set: " + formatter.FormatDurations(d) + formatter.Dim(" (applies from the next period)")}
}
