package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/ui/theme"
)

// MultiChoice lists answer options. In single mode the highlighted option
// is the answer; in multi mode Space toggles options on and off.
//
// Options may span several lines (number lines); continuation lines are
// indented under the label.
type MultiChoice struct {
	Options  []string
	Multi    bool
	Selected int
	Checked  []bool

	// Locked freezes the list after the answer is accepted. Correct marks
	// the options to draw as right answers.
	Locked  bool
	Correct []bool
}

// NewMultiChoice creates an option list.
func NewMultiChoice(options []string, multi bool) MultiChoice {
	return MultiChoice{
		Options: options,
		Multi:   multi,
		Checked: make([]bool, len(options)),
		Correct: make([]bool, len(options)),
	}
}

func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the highlight. Digit keys jump to an option and, in multi
// mode, toggle it.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch k := kmsg.String(); k {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "space", " ", "x":
		if m.Multi {
			m.Toggle(m.Selected)
		}
	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			i := int(k[0] - '1')
			if i < len(m.Options) {
				m.Selected = i
				if m.Multi {
					m.Toggle(i)
				}
			}
		}
	}
	return m, nil
}

// Toggle flips option i in multi mode.
func (m *MultiChoice) Toggle(i int) {
	if i >= 0 && i < len(m.Checked) {
		m.Checked[i] = !m.Checked[i]
	}
}

// Chosen returns the indices that make up the answer: the checked ones in
// multi mode, the highlighted one otherwise.
func (m MultiChoice) Chosen() []int {
	if !m.Multi {
		if len(m.Options) == 0 {
			return nil
		}
		return []int{m.Selected}
	}
	var out []int
	for i, c := range m.Checked {
		if c {
			out = append(out, i)
		}
	}
	return out
}

// Lock freezes the list and marks the correct options.
func (m *MultiChoice) Lock(correct []bool) {
	m.Locked = true
	copy(m.Correct, correct)
}

func (m MultiChoice) marker(i int) string {
	if !m.Multi {
		return ""
	}
	if m.Checked[i] {
		return "[x] "
	}
	return "[ ] "
}

// View renders the list.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Locked {
			prefix = Cursor
		}
		head := fmt.Sprintf("%s%d) %s", prefix, i+1, m.marker(i))
		indent := strings.Repeat(" ", lipgloss.Width(head))

		lines := strings.Split(opt, "\n")
		for j := 1; j < len(lines); j++ {
			lines[j] = indent + lines[j]
		}
		text := head + strings.Join(lines, "\n")

		var style lipgloss.Style
		switch {
		case m.Locked && m.Correct[i]:
			style = theme.Correct
		case m.Locked && m.chosen(i):
			style = theme.Incorrect
		case m.Locked:
			style = theme.Locked
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(text))
		b.WriteString("\n")
		if len(lines) > 1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m MultiChoice) chosen(i int) bool {
	if m.Multi {
		return m.Checked[i]
	}
	return i == m.Selected
}
