// Package complete congratulates the learner on finishing a topic.
package complete

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/content"
	"github.com/abhisek/mathlab/internal/progress"
	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/screen"
	"github.com/abhisek/mathlab/internal/topics"
	"github.com/abhisek/mathlab/internal/ui/components"
	"github.com/abhisek/mathlab/internal/ui/layout"
	"github.com/abhisek/mathlab/internal/ui/theme"
)

const trophy = `   ___________
  '._==_==_=_.'
  .-\:      /-.
 | (|:.     |) |
  '-|:.     |-'
    \::.    /
     '::. .'
       ) (
     _.' '._
    '-------'`

// CompleteScreen is shown once the last level of a topic is passed.
type CompleteScreen struct {
	topic   topics.Topic
	machine *progress.Machine
	format  *content.Formatter
}

var _ screen.Screen = (*CompleteScreen)(nil)

// New creates the completion screen.
func New(topic topics.Topic, machine *progress.Machine, format *content.Formatter) *CompleteScreen {
	return &CompleteScreen{topic: topic, machine: machine, format: format}
}

func (c *CompleteScreen) Init() tea.Cmd {
	return nil
}

// Update returns to the level view on Enter.
func (c *CompleteScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "space", " ", "q":
			c.machine.LeaveComplete()
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return c, nil
}

func (c *CompleteScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(trophy),
		"",
		theme.Title.Width(cw).Render(c.format.Message("feedback.game.complete", c.topic.Title)),
		"",
		components.NewProgressBar("", c.machine.Progress(), true, cw-10).View(),
		"",
		theme.Hint.Render("press Enter to return to the levels"),
	}
	card := components.ArcadeCard(strings.Join(sections, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (c *CompleteScreen) Title() string {
	return "Topic complete"
}

func (c *CompleteScreen) Status() *layout.Status {
	return &layout.Status{Streak: c.machine.Streak(), Progress: c.machine.Progress()}
}

func (c *CompleteScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to levels"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
