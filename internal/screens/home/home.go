// Package home lists the topics with their progress.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/mathlab/internal/content"
	"github.com/abhisek/mathlab/internal/progress"
	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/screen"
	"github.com/abhisek/mathlab/internal/screens/practice"
	"github.com/abhisek/mathlab/internal/screens/welcome"
	"github.com/abhisek/mathlab/internal/topics"
	"github.com/abhisek/mathlab/internal/ui/components"
	"github.com/abhisek/mathlab/internal/ui/layout"
)

// MachineFunc returns the progress machine of a topic. Repeated calls for
// the same topic return the same machine.
type MachineFunc func(topics.Topic) *progress.Machine

// HomeScreen is the topic list.
type HomeScreen struct {
	topics  []topics.Topic
	machine MachineFunc
	format  *content.Formatter
	log     logrus.FieldLogger
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(reg *topics.Registry, machine MachineFunc, format *content.Formatter, log logrus.FieldLogger) *HomeScreen {
	h := &HomeScreen{
		topics:  reg.All(),
		machine: machine,
		format:  format,
		log:     log,
	}

	items := make([]components.MenuItem, 0, len(h.topics)+1)
	for _, t := range h.topics {
		items = append(items, components.MenuItem{Label: t.Title, Action: func() tea.Cmd {
			return h.openCmd(t)
		}})
	}
	items = append(items, components.MenuItem{Label: "Quit", Action: func() tea.Cmd {
		return tea.Quit
	}})
	h.menu = components.NewMenu(items)
	return h
}

// Open returns the command that opens the topic with the given ID.
func (h *HomeScreen) Open(id string) (tea.Cmd, error) {
	for i, t := range h.topics {
		if strings.EqualFold(t.ID, id) {
			h.menu.Select(i)
			return h.openCmd(t), nil
		}
	}
	return nil, topics.ErrUnknownTopic
}

// openCmd pushes the level view of t, behind its welcome message while
// that is still due.
func (h *HomeScreen) openCmd(t topics.Topic) tea.Cmd {
	m := h.machine(t)
	next := func() screen.Screen { return practice.New(t, m, h.format, h.log) }

	var s screen.Screen
	if m.ShowWelcome() {
		s = welcome.New(t, m, h.format, next)
	} else {
		s = next()
	}
	h.log.WithField("topic", t.ID).Debug("open topic")
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		k := kmsg.String()
		if k == "q" {
			return h, tea.Quit
		}
		// Digits open a topic directly.
		if len(k) == 1 && k[0] >= '1' && int(k[0]-'1') < len(h.topics) {
			i := int(k[0] - '1')
			h.menu.Select(i)
			return h, h.openCmd(h.topics[i])
		}
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) rows() ([]topicRow, []float64) {
	rows := make([]topicRow, len(h.topics))
	progress := make([]float64, len(h.topics))
	for i, t := range h.topics {
		progress[i] = h.machine(t).Progress()
		rows[i] = topicRow{title: t.Title, progress: progress[i], levels: t.Levels.Count()}
	}
	return rows, progress
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and gaps.
	termHeight := height + 8
	compact := termHeight < 34 || width < 100

	cw := components.ContentWidth(width)
	rows, progress := h.rows()

	done, started := 0, 0
	for _, p := range progress {
		switch {
		case p >= 100:
			done++
		case p > 0:
			started++
		}
	}

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(progress), cw))
	}
	sections = append(sections, renderStatsBar(done, started, len(h.topics), cw))
	sections = append(sections, renderTopicList(rows, h.menu.Selected, cw)+"\n\n"+renderQuit(h.menu.Selected == len(h.topics)))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Topics"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Practice"},
		{Key: "1-4", Description: "Open topic"},
		{Key: "q", Description: "Quit"},
	}
}
