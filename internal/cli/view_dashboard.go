package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/studytimer/internal/cli/formatter"
	"github.com/alexanderramin/studytimer/internal/timer"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardKeyMap struct {
	Toggle   key.Binding
	Reset    key.Binding
	Settings key.Binding
	Add      key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Quit     key.Binding
}

var dashboardKeys = dashboardKeyMap{
	Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
	Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add subject")),
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "study subject")),
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// dashboardView is the home screen: the timer box on the left, subjects and
// review notifications on the right.
type dashboardView struct {
	state  *SharedState
	cursor int
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "" }

func (v *dashboardView) ShortHelp() []key.Binding {
	help := []key.Binding{dashboardKeys.Toggle, dashboardKeys.Reset}
	if !v.state.Ctrl.Active() {
		help = append(help, dashboardKeys.Settings)
	}
	return append(help, dashboardKeys.Add, dashboardKeys.Select,
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1-9", "review")),
		dashboardKeys.Quit)
}

func (v *dashboardView) Init() tea.Cmd { return nil }

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	ctrl := v.state.Ctrl
	ctx := context.Background()

	switch {
	case key.Matches(keyMsg, dashboardKeys.Toggle):
		ctrl.Toggle()
		return v, nil

	case key.Matches(keyMsg, dashboardKeys.Reset):
		ctrl.Reset()
		return v, output(formatter.Dim("Timer reset."))

	case key.Matches(keyMsg, dashboardKeys.Settings):
		if ctrl.Active() {
			return v, output(formatter.StyleYellow.Render("Pause the timer to change durations."))
		}
		return v, settingsWizard(v.state)

	case key.Matches(keyMsg, dashboardKeys.Add):
		return v, addSubjectWizard(v.state)

	case key.Matches(keyMsg, dashboardKeys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case key.Matches(keyMsg, dashboardKeys.Down):
		if v.cursor < len(ctrl.Snapshot().Subjects)-1 {
			v.cursor++
		}
		return v, nil

	case key.Matches(keyMsg, dashboardKeys.Select):
		subjects := ctrl.Snapshot().Subjects
		if v.cursor >= len(subjects) {
			return v, nil
		}
		return v, selectSubject(ctx, v.state, subjects[v.cursor].ID)
	}

	if r := keyMsg.Runes; keyMsg.Type == tea.KeyRunes && len(r) == 1 && r[0] >= '1' && r[0] <= '9' {
		notes := ctrl.Notifications()
		n := int(r[0] - '1')
		if n < len(notes) {
			return v, selectSubject(ctx, v.state, notes[n].SubjectID)
		}
	}
	return v, nil
}

func selectSubject(ctx context.Context, state *SharedState, id string) tea.Cmd {
	if err := state.Ctrl.SelectSubject(ctx, id); err != nil {
		return output(formatter.StyleRed.Render("Error: " + err.Error()))
	}
	return output("Studying " + formatter.StyleBlue.Render(state.Ctrl.Snapshot().CurrentSubjectName()))
}

func (v *dashboardView) View() string {
	snap := v.state.Ctrl.Snapshot()
	if v.cursor >= len(snap.Subjects) {
		v.cursor = max(len(snap.Subjects)-1, 0)
	}

	left := formatter.RenderBox("Timer", formatter.FormatTimer(snap)+"\n\n"+formatter.FormatDurations(snap.Durations))

	right := strings.Join([]string{
		formatter.Header("Subjects"),
		formatter.FormatSubjects(snap.Subjects, v.cursor, snap.TakenAt),
		"",
		formatter.Header("Due for review"),
		formatter.FormatNotifications(snap.Notifications),
	}, "\n")

	if v.state.Width > 0 && v.state.Width < 100 {
		return left + "\n\n" + right
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)
}

// settingsRefused reports whether err means the form was opened too late.
func settingsRefused(err error) bool {
	return errors.Is(err, timer.ErrTimerActive)
}
