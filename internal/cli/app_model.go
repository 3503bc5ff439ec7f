package cli

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/studytimer/internal/app"
	"github.com/alexanderramin/studytimer/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI. It manages a view stack
// and the two periodic ticks. Every controller mutation happens inside
// Update, so the bubbletea loop is the single execution context.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient feedback from the last action.
	lastOutput string

	countdownEvery time.Duration
	reviewEvery    time.Duration

	countdownGen   int
	countdownArmed bool
	reviewGen      int
	subjectsSeen   int
}

func newAppModel(a *App, ctrl *app.Controller) appModel {
	state := &SharedState{App: a, Ctrl: ctrl}
	return appModel{
		state:          state,
		viewStack:      []View{newDashboardView(state)},
		countdownEvery: time.Second,
		reviewEvery:    a.Config.ReviewPoll(),
		reviewGen:      1,
		subjectsSeen:   ctrl.SubjectsVersion(),
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	cmds = append(cmds, scheduleReview(m.reviewGen, m.reviewEvery))
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, tea.Batch(cmd, m.syncTimers())
}

// syncTimers arms the countdown when the timer runs and invalidates it when
// it stops, and restarts the review tick after the subject set changed.
func (m *appModel) syncTimers() tea.Cmd {
	if m.quitting {
		return nil
	}
	ctrl := m.state.Ctrl
	var cmds []tea.Cmd

	switch active := ctrl.Active(); {
	case active && !m.countdownArmed:
		m.countdownGen++
		m.countdownArmed = true
		cmds = append(cmds, scheduleCountdown(m.countdownGen, m.countdownEvery))
	case !active && m.countdownArmed:
		m.countdownGen++
		m.countdownArmed = false
	}

	if v := ctrl.SubjectsVersion(); v != m.subjectsSeen {
		m.subjectsSeen = v
		m.reviewGen++
		cmds = append(cmds, scheduleReview(m.reviewGen, m.reviewEvery))
	}
	return tea.Batch(cmds...)
}

func (m *appModel) update(msg tea.Msg) tea.Cmd {
	ctx := context.Background()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case countdownTickMsg:
		if msg.gen != m.countdownGen || !m.countdownArmed {
			return nil
		}
		m.countdownArmed = false
		if _, err := m.state.Ctrl.Tick(ctx); err != nil {
			m.state.App.logger().Error("tick_failed", "error", err)
			m.lastOutput = formatter.StyleRed.Render("Error: " + err.Error())
		}
		return nil

	case reviewTickMsg:
		if msg.gen != m.reviewGen {
			return nil
		}
		if err := m.state.Ctrl.ScanReviews(ctx); err != nil {
			m.state.App.logger().Error("review_scan_failed", "error", err)
		}
		return scheduleReview(m.reviewGen, m.reviewEvery)

	case pushViewMsg:
		m.lastOutput = ""
		m.viewStack = append(m.viewStack, msg.view)
		return msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return nil

	case wizardCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		m.lastOutput = ""
		return msg.nextCmd

	case cmdOutputMsg:
		m.lastOutput = msg.output
		return nil
	}

	return m.forward(msg)
}

func (m *appModel) forward(msg tea.Msg) tea.Cmd {
	v := m.activeView()
	if v == nil {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return cmd
}

func (m *appModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return tea.Quit
	}

	// Forms receive every key, including q and digits.
	if v := m.activeView(); v != nil && v.ID() == ViewForm {
		return m.forward(msg)
	}

	m.lastOutput = ""
	switch {
	case msg.String() == "q":
		m.quitting = true
		return tea.Quit
	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return nil
	}
	return m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("studytimer")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	snap := m.state.Ctrl.Snapshot()
	header += "  " + formatter.Dim("[") + formatter.ModeStyle(snap.Mode).Render(snap.Clock) + formatter.Dim("]")

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return m.lastOutput + "\n" + sep + "\n" + strings.Join(hints, "  ")
}
