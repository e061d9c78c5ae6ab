package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/ui/theme"
)

// ProgressBar draws a topic's progress as a line of filled and empty cells.
type ProgressBar struct {
	Label string
	// Percent is in [0, 100].
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// Filled returns how many of n cells are filled.
func (p ProgressBar) Filled(n int) int {
	pct := min(100, max(0, p.Percent))
	return int(float64(n) * pct / 100)
}

// View renders the bar.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}
	barWidth := max(4, p.Width-lipgloss.Width(result)-percentWidth)
	filled := p.Filled(barWidth)

	result += theme.ProgressFilled.Render(strings.Repeat("━", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat("─", barWidth-filled))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent)))
	}
	return result
}
