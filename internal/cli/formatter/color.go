package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studytimer/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ModeStyle colors study time orange and break time green.
func ModeStyle(mode domain.Mode) lipgloss.Style {
	if mode == domain.ModeBreak {
		return StyleGreen.Bold(true)
	}
	return StyleHeader
}

// DifficultyColor maps easy/medium/hard to green/yellow/red.
func DifficultyColor(d domain.Difficulty) lipgloss.Style {
	switch d {
	case domain.DifficultyEasy:
		return StyleGreen
	case domain.DifficultyMedium:
		return StyleYellow
	case domain.DifficultyHard:
		return StyleRed
	default:
		return StyleDim
	}
}

// DifficultyBadge renders a colored "● medium" style label.
func DifficultyBadge(d domain.Difficulty) string {
	return DifficultyColor(d).Render("● " + string(d))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
