package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/expr"
	"github.com/abhisek/mathlab/internal/ui/theme"
)

// TextInput wraps bubbles/textinput for answer entry.
type TextInput struct {
	Model textinput.Model
	// NumericOnly drops keys that cannot be part of a decimal number.
	NumericOnly bool
	MaxWidth    int
	submitted   bool
	valid       bool
}

// NewTextInput creates a focused input.
func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
		ti.SetWidth(maxWidth)
	}

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
		MaxWidth:    maxWidth,
	}
}

func (t TextInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards editing keys to the model.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			if k := kmsg.String(); len(k) == 1 && !numericKey(k[0]) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func numericKey(c byte) bool {
	return c >= '0' && c <= '9' || c == '-' || c == '.' || c == ','
}

// View renders the input with a mark once it was judged.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the typed text.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue parses the typed text with either decimal separator.
func (t TextInput) NumericValue() (float64, bool) {
	return expr.ParseNum(t.Model.Value())
}

// Submit marks the input as judged.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Reset clears the text and the judgement.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.submitted = false
	t.valid = false
}

// ClearMark drops the judgement mark while the learner edits the answer.
func (t *TextInput) ClearMark() {
	t.submitted = false
}
