package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// ReviewStatus is the per-subject review line: "Not reviewed yet" or
// "Last review: <date>".
func ReviewStatus(lastReviewed *time.Time) string {
	if lastReviewed == nil {
		return "Not reviewed yet"
	}
	return "Last review: " + lastReviewed.Local().Format("Jan 2, 2006")
}

// NeedsReview is the notification line for a due subject.
func NeedsReview(name string) string {
	return name + " needs review now"
}

// RelativeFrom returns a short relative offset such as "in 12h", "in 3d"
// or "2d ago".
func RelativeFrom(t, now time.Time) string {
	diff := t.Sub(now)
	past := diff < 0
	if past {
		diff = -diff
	}

	var s string
	switch {
	case diff < time.Minute:
		return "now"
	case diff < time.Hour:
		s = fmt.Sprintf("%dm", int(diff.Minutes()))
	case diff < 48*time.Hour:
		s = fmt.Sprintf("%dh", int(math.Round(diff.Hours())))
	default:
		s = fmt.Sprintf("%dd", int(math.Round(diff.Hours()/24)))
	}
	if past {
		return s + " ago"
	}
	return "in " + s
}

// FormatInterval renders a review interval in whole hours or days.
func FormatInterval(d time.Duration) string {
	h := int(d.Hours())
	if h < 24 || h%24 != 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dd", h/24)
}

// FormatMinutes converts raw minutes into "1h 30m" form.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}
