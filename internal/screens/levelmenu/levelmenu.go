// Package levelmenu lets the learner jump to any unlocked level of a topic.
package levelmenu

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/progress"
	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/screen"
	"github.com/abhisek/mathlab/internal/topics"
	"github.com/abhisek/mathlab/internal/ui/components"
	"github.com/abhisek/mathlab/internal/ui/layout"
	"github.com/abhisek/mathlab/internal/ui/theme"
)

// LevelMenuScreen lists the levels of one topic.
type LevelMenuScreen struct {
	topic   topics.Topic
	machine *progress.Machine
	menu    components.Menu
}

var _ screen.Screen = (*LevelMenuScreen)(nil)

// New builds the menu with the current level highlighted. Locked levels
// are shown but cannot be chosen.
func New(topic topics.Topic, machine *progress.Machine) *LevelMenuScreen {
	s := &LevelMenuScreen{topic: topic, machine: machine}

	cats := machine.Categories()
	items := make([]components.MenuItem, len(cats))
	for i, cat := range cats {
		items[i] = components.MenuItem{
			Label:    cat,
			Detail:   s.detail(i),
			Disabled: i > machine.MaxLevel(),
			Action:   s.choose(i),
		}
	}
	s.menu = components.NewMenu(items)
	s.menu.Select(machine.Level())
	return s
}

func (s *LevelMenuScreen) detail(i int) string {
	switch {
	case i == s.machine.Level():
		return "current"
	case i > s.machine.MaxLevel():
		return "locked"
	case i < s.machine.MaxLevel():
		return "passed"
	}
	return ""
}

func (s *LevelMenuScreen) choose(i int) func() tea.Cmd {
	return func() tea.Cmd {
		if err := s.machine.SelectLevel(i); err != nil {
			return nil
		}
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
}

func (s *LevelMenuScreen) Init() tea.Cmd {
	return nil
}

func (s *LevelMenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LevelMenuScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	heading := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("%s: %d of %d levels unlocked", s.topic.Title, s.machine.MaxLevel()+1, s.machine.LevelCount()))

	menu := lipgloss.NewStyle().
		Width(cw).
		Render(strings.TrimRight(s.menu.View(), "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, heading, "", menu))
}

func (s *LevelMenuScreen) Title() string {
	return "Levels"
}

func (s *LevelMenuScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play level"},
		{Key: "Esc", Description: "Back"},
	}
}
