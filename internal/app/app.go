// Package app is the root Bubble Tea model of the terminal UI.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/mathlab/internal/content"
	"github.com/abhisek/mathlab/internal/problem"
	"github.com/abhisek/mathlab/internal/progress"
	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/screen"
	"github.com/abhisek/mathlab/internal/screens/home"
	"github.com/abhisek/mathlab/internal/topics"
	"github.com/abhisek/mathlab/internal/ui/layout"
)

// Deps are the services the UI runs on.
type Deps struct {
	Topics  *topics.Registry
	Format  *content.Formatter
	Storage progress.Storage
	Log     logrus.FieldLogger

	// Seed makes problem generation reproducible when non-zero.
	Seed int64
}

// Options tune a single run.
type Options struct {
	// StartTopic opens a topic right away instead of the topic list.
	StartTopic string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps     Deps
	router   *router.Router
	home     *home.HomeScreen
	machines map[string]*progress.Machine
	start    tea.Cmd
	width    int
	height   int
}

// New creates the model with the topic list at the bottom of the stack.
func New(deps Deps, opts Options) (*AppModel, error) {
	if deps.Log == nil {
		deps.Log = logrus.StandardLogger()
	}
	m := &AppModel{
		deps:     deps,
		machines: make(map[string]*progress.Machine),
	}
	m.home = home.New(deps.Topics, m.machine, deps.Format, deps.Log)
	m.router = router.New(m.home)

	if opts.StartTopic != "" {
		cmd, err := m.home.Open(opts.StartTopic)
		if err != nil {
			return nil, fmt.Errorf("%w %q (want one of %v)", err, opts.StartTopic, deps.Topics.IDs())
		}
		m.start = cmd
	}
	return m, nil
}

// machine returns the cached machine of t, creating it on first use.
func (m *AppModel) machine(t topics.Topic) *progress.Machine {
	if pm, ok := m.machines[t.ID]; ok {
		return pm
	}
	opts := []progress.Option{progress.WithLogger(m.deps.Log)}
	if m.deps.Seed != 0 {
		opts = append(opts, progress.WithRand(problem.NewRand(m.deps.Seed+int64(len(m.machines)))))
	}
	pm := progress.New(progress.ConfigFor(t), m.deps.Storage, opts...)
	m.machines[t.ID] = pm
	return pm
}

func (m *AppModel) Init() tea.Cmd {
	return m.start
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	return m, m.router.Update(msg)
}

// Active returns the screen on top of the stack.
func (m *AppModel) Active() screen.Screen {
	return m.router.Active()
}

func (m *AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m *AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the frame around the active screen.
func (m *AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var status *layout.Status
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the terminal UI and blocks until it exits.
func Run(deps Deps, opts Options) error {
	model, err := New(deps, opts)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}
