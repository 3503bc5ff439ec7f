package cli

import (
	"github.com/alexanderramin/studytimer/internal/app"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App  *App
	Ctrl *app.Controller

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines) and status bar (3 lines).
func (s *SharedState) ContentHeight() int {
	return max(s.Height-5, 1)
}
