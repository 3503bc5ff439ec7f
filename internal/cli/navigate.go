package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack.
type popViewMsg struct{}

// cmdOutputMsg carries a one-line result shown above the status bar until
// the next key press.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// countdownTickMsg and reviewTickMsg carry the generation that scheduled
// them. A tick whose generation is no longer current is dropped.
type countdownTickMsg struct{ gen int }

type reviewTickMsg struct{ gen int }

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func output(text string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: text} }
}

func scheduleCountdown(gen int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg { return countdownTickMsg{gen: gen} })
}

func scheduleReview(gen int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg { return reviewTickMsg{gen: gen} })
}
