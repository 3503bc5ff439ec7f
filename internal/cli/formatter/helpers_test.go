package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReviewStatus(t *testing.T) {
	assert.Equal(t, "Not reviewed yet", ReviewStatus(nil))

	at := time.Date(2025, 9, 30, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "Last review: Sep 30, 2025", ReviewStatus(&at))
}

func TestNeedsReview(t *testing.T) {
	assert.Equal(t, "Biology needs review now", NeedsReview("Biology"))
}

func TestRelativeFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"same instant", now, "now"},
		{"minutes ahead", now.Add(25 * time.Minute), "in 25m"},
		{"twelve hours", now.Add(12 * time.Hour), "in 12h"},
		{"three days", now.Add(72 * time.Hour), "in 3d"},
		{"two days ago", now.Add(-48 * time.Hour), "2d ago"},
		{"hours ago", now.Add(-5 * time.Hour), "5h ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeFrom(tt.input, now))
		})
	}
}

func TestFormatInterval(t *testing.T) {
	assert.Equal(t, "12h", FormatInterval(12*time.Hour))
	assert.Equal(t, "36h", FormatInterval(36*time.Hour))
	assert.Equal(t, "1d", FormatInterval(24*time.Hour))
	assert.Equal(t, "14d", FormatInterval(336*time.Hour))
	assert.Equal(t, "730h", FormatInterval(730*time.Hour))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "25m", FormatMinutes(25))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

func TestElapsed(t *testing.T) {
	assert.InDelta(t, 0.0, Elapsed(1500, 1500), 1e-9)
	assert.InDelta(t, 0.5, Elapsed(750, 1500), 1e-9)
	assert.InDelta(t, 0.0, Elapsed(10, 0), 1e-9)
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{{"wide cell", "x"}})
	assert.Contains(t, out, "wide cell")
	assert.Contains(t, out, "─────────")
	assert.Empty(t, RenderTable(nil, nil))
}
