package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/ui/components"
	"github.com/abhisek/mathlab/internal/ui/theme"
)

const arcadeTitleFull = ` ███╗   ███╗ █████╗ ████████╗██╗  ██╗██╗      █████╗ ██████╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║██║     ██╔══██╗██╔══██╗
 ██╔████╔██║███████║   ██║   ███████║██║     ███████║██████╔╝
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║██║     ██╔══██║██╔══██╗
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║███████╗██║  ██║██████╔╝
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═════╝`

const arcadeTitleCompact = "M · A · T · H · L · A · B"

// titleWidth is the width of the full title art.
const titleWidth = 62

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	art := arcadeTitleFull
	if compact || cw < titleWidth {
		art = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar sums up the topics in a double-bordered box.
func renderStatsBar(done, started, total, cw int) string {
	doneStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	startedStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	stats := fmt.Sprintf("%s  %s  %s",
		doneStyle.Render(fmt.Sprintf("★ %d COMPLETE", done)),
		startedStyle.Render(fmt.Sprintf("▶ %d STARTED", started)),
		dimStyle.Render(fmt.Sprintf("%d TOPICS", total)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// topicRow is one line of the topic list.
type topicRow struct {
	title    string
	progress float64
	levels   int
}

// renderTopicList draws each topic with its progress bar. The selected row
// carries the cursor.
func renderTopicList(rows []topicRow, selected, cw int) string {
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.title))
	}
	labelWidth += lipgloss.Width(components.Cursor)

	lines := make([]string, 0, len(rows)*2)
	for i, r := range rows {
		prefix := "  "
		style := theme.Unselected
		if i == selected {
			prefix = components.Cursor
			style = theme.Selected
		}
		label := style.Width(labelWidth).Render(prefix + r.title)
		bar := components.NewProgressBar("", r.progress, true, cw-labelWidth-2).View()
		lines = append(lines, label+"  "+bar)

		sub := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %d levels", r.levels))
		lines = append(lines, sub)
	}
	return strings.Join(lines, "\n")
}

// renderQuit draws the last menu entry.
func renderQuit(selected bool) string {
	if selected {
		return theme.Selected.Render(components.Cursor + "Quit")
	}
	return theme.Unselected.Render("  Quit")
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
