package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/problem"
	"github.com/abhisek/mathlab/internal/progress"
	"github.com/abhisek/mathlab/internal/topics"
	"github.com/abhisek/mathlab/internal/ui/components"
	"github.com/abhisek/mathlab/internal/ui/theme"
)

// textWidth caps the width of prose so long questions wrap.
const textWidth = 76

func (p *PracticeScreen) View(width, height int) string {
	p.sync()
	prob := p.machine.Problem()
	if prob == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No problem available.")
	}

	tw := min(width-4, textWidth)
	var b strings.Builder

	b.WriteString(p.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(0, width-4))))
	b.WriteString("\n\n")

	b.WriteString(indent(theme.Question.Width(tw).Render(p.format.Text(prob.Question))))
	b.WriteString("\n\n")

	b.WriteString(indent(p.renderAnswer(prob)))
	b.WriteString("\n")

	if hints := p.renderHints(prob, tw); hints != "" {
		b.WriteString("\n")
		b.WriteString(indent(hints))
		b.WriteString("\n")
	}

	if p.feedback != "" {
		b.WriteString("\n")
		b.WriteString(indent(p.feedbackStyle().Width(tw).Render(p.feedback)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(indent(p.renderActions()))
	return b.String()
}

// renderInfoLine shows the level on the left and the pass rule on the right.
func (p *PracticeScreen) renderInfoLine(width int) string {
	m := p.machine
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %d/%d  %s", m.Level()+1, m.LevelCount(), m.Category()))

	var rule string
	if p.topic.Rule.Kind == topics.Streak {
		rule = fmt.Sprintf("in a row %d/%d", m.LevelStreak(), m.Required())
	} else if m.MadeMistake() {
		rule = "keep trying"
	}
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(rule)

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if pad < 1 {
		return left
	}
	return left + strings.Repeat(" ", pad) + right
}

func (p *PracticeScreen) renderAnswer(prob *problem.Problem) string {
	if prob.Kind != problem.KindInput {
		return strings.TrimRight(p.choices.View(), "\n")
	}
	prompt := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Answer: ")
	if prob.Input == problem.InputInequality {
		picker := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("x " + p.op.Symbol() + " ")
		return prompt + picker + p.input.View()
	}
	return prompt + p.input.View()
}

func (p *PracticeScreen) renderHints(prob *problem.Problem, tw int) string {
	revealed := p.machine.Revealed()
	if len(revealed) == 0 {
		return ""
	}
	label := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(tw - 4)

	parts := make([]string, 0, len(revealed))
	for _, i := range revealed {
		text := p.format.Text(prob.Hints[i])
		parts = append(parts, label.Render(fmt.Sprintf("Hint %d/%d", i+1, len(prob.Hints)))+"\n"+body.Render(text))
	}
	return theme.HintCard.Render(strings.Join(parts, "\n\n"))
}

func (p *PracticeScreen) feedbackStyle() lipgloss.Style {
	switch p.feedbackKind {
	case feedbackGood:
		return theme.Correct
	case feedbackBad:
		return theme.Incorrect
	default:
		return lipgloss.NewStyle().Foreground(theme.Accent)
	}
}

var actionLabels = map[progress.Action]string{
	progress.ActionSubmit:      "Check",
	progress.ActionNextLevel:   "Next level",
	progress.ActionNextProblem: "Next problem",
	progress.ActionRepeat:      "New problem",
}

func (p *PracticeScreen) renderActions() string {
	var buttons []components.Button
	for i, a := range p.machine.Actions() {
		if a == progress.ActionHint {
			buttons = append(buttons, components.NewButton("Hint", "?", false, nil))
			continue
		}
		buttons = append(buttons, components.NewButton(actionLabels[a], "enter", i == 0, nil))
	}
	buttons = append(buttons, components.NewButton("Levels", "L", false, nil))
	return components.ButtonRow(buttons...)
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
