// Package welcome introduces a topic the first time it is opened. Once
// dismissed it is not shown again.
package welcome

import (
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/content"
	"github.com/abhisek/mathlab/internal/progress"
	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/screen"
	"github.com/abhisek/mathlab/internal/topics"
	"github.com/abhisek/mathlab/internal/ui/components"
	"github.com/abhisek/mathlab/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	sparkleStart = 300 * time.Millisecond
	textStart    = 600 * time.Millisecond
	totalDur     = 1500 * time.Millisecond
)

const mascotArt = `╭───────────╮
│  ┌─────┐  │
│  │ ◉ ◉ │  │
│  │  ▽  │  │
│  ├─────┤  │
│  │ ≤ ∞ │  │
│  └─────┘  │
╰───────────╯`

var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen is the introduction of one topic. Any key dismisses it for
// good and replaces it with the screen built by next.
type WelcomeScreen struct {
	topic   topics.Topic
	machine *progress.Machine
	format  *content.Formatter
	next    func() screen.Screen

	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the welcome screen of topic.
func New(topic topics.Topic, machine *progress.Machine, format *content.Formatter, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		topic:   topic,
		machine: machine,
		format:  format,
		next:    next,
	}
}

func (w *WelcomeScreen) Title() string {
	return w.topic.Title
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.tickCount++
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	w.machine.DismissWelcome()
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// rules lists how levels are passed in this topic.
func (w *WelcomeScreen) rules() []string {
	first := w.format.Message("welcome.rule.clean")
	if w.topic.Rule.Kind == topics.Streak {
		first = w.format.Message("welcome.rule.streak", strconv.Itoa(w.topic.Rule.Required()))
	}
	out := []string{first, w.format.Message("welcome.rule.hints")}
	if w.topic.Rule.PenalizeMistakes {
		out = append(out, w.format.Message("welcome.rule.mistakes"))
	}
	return out
}

func (w *WelcomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	art := lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotArt)
	if w.elapsed >= sparkleStart {
		s := sparkleFrames[w.tickCount%len(sparkleFrames)]
		a := lipgloss.NewStyle().Foreground(theme.Accent).Render(s)
		b := lipgloss.NewStyle().Foreground(theme.Secondary).Render(s)
		lines := strings.Split(art, "\n")
		lines[0] = a + "  " + lines[0] + "  " + b
		lines[3] = b + "  " + lines[3] + "  " + a
		for i := range lines {
			if i != 0 && i != 3 {
				lines[i] = "   " + lines[i] + "   "
			}
		}
		art = strings.Join(lines, "\n")
	}
	sections := []string{art}

	if w.elapsed >= textStart {
		body := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 8)
		rule := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 8)
		sections = append(sections,
			"",
			theme.Title.Render(w.format.Message("welcome.title")),
			"",
			body.Render(w.format.Message("welcome.intro."+w.topic.ID)),
			"",
		)
		for _, r := range w.rules() {
			sections = append(sections, rule.Render("• "+r))
		}
		sections = append(sections,
			"",
			theme.Hint.Render(w.format.Message("welcome.start", strconv.Itoa(w.machine.Level()+1))),
		)
	}

	card := components.ArcadeCard(strings.Join(sections, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
