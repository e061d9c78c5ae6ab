// Package practice is the level view of a topic: one problem at a time,
// with hints, feedback and the controls to move on.
package practice

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/mathlab/internal/content"
	"github.com/abhisek/mathlab/internal/expr"
	"github.com/abhisek/mathlab/internal/problem"
	"github.com/abhisek/mathlab/internal/progress"
	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/screen"
	"github.com/abhisek/mathlab/internal/screens/complete"
	"github.com/abhisek/mathlab/internal/screens/levelmenu"
	"github.com/abhisek/mathlab/internal/topics"
	"github.com/abhisek/mathlab/internal/ui/components"
	"github.com/abhisek/mathlab/internal/ui/layout"
)

type feedbackKind int

const (
	feedbackNone feedbackKind = iota
	feedbackGood
	feedbackBad
	feedbackInfo
)

// inputWidth bounds typed answers.
const inputWidth = 12

// PracticeScreen shows the current problem of a topic's machine.
type PracticeScreen struct {
	topic   topics.Topic
	machine *progress.Machine
	format  *content.Formatter
	log     logrus.FieldLogger

	// problemID is the problem the widgets below were built for.
	problemID string
	choices   components.MultiChoice
	input     components.TextInput
	op        expr.Op

	feedback     string
	feedbackKind feedbackKind
}

var _ screen.Screen = (*PracticeScreen)(nil)

// New creates the level view of topic.
func New(topic topics.Topic, machine *progress.Machine, format *content.Formatter, log logrus.FieldLogger) *PracticeScreen {
	p := &PracticeScreen{
		topic:   topic,
		machine: machine,
		format:  format,
		log:     log.WithField("topic", topic.ID),
	}
	p.sync()
	return p
}

func (p *PracticeScreen) Title() string {
	return p.topic.Title
}

// Status feeds the header.
func (p *PracticeScreen) Status() *layout.Status {
	return &layout.Status{Streak: p.machine.Streak(), Progress: p.machine.Progress()}
}

func (p *PracticeScreen) Init() tea.Cmd {
	if p.typed() {
		return p.input.Init()
	}
	return nil
}

// sync rebuilds the answer widgets when the machine has moved to another
// problem, which also happens behind the screen's back in the level menu.
func (p *PracticeScreen) sync() {
	prob := p.machine.Problem()
	if prob == nil || prob.ID == p.problemID {
		return
	}
	p.problemID = prob.ID
	p.feedback = ""
	p.feedbackKind = feedbackNone
	p.op = expr.Lt

	switch prob.Kind {
	case problem.KindChoice, problem.KindMultiSelect:
		opts := make([]string, len(prob.Options))
		for i, o := range prob.Options {
			opts[i] = p.format.Option(prob, o)
		}
		p.choices = components.NewMultiChoice(opts, prob.Kind == problem.KindMultiSelect)
	case problem.KindInput:
		p.input = components.NewTextInput("?", true, inputWidth)
	}
}

func (p *PracticeScreen) typed() bool {
	prob := p.machine.Problem()
	return prob != nil && prob.Kind == problem.KindInput
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Back from the completion screen.
	if p.machine.GameComplete() {
		p.machine.LeaveComplete()
	}
	p.sync()

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		return p, p.handleKey(kmsg)
	}
	if p.typed() {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	k := msg.String()
	switch k {
	case "L":
		return p.openLevels()
	case "?":
		p.revealHint()
		return nil
	}

	if p.machine.Phase().Answered() || p.machine.HintsExhausted() {
		switch k {
		case "enter", "n", "r":
			return p.advance()
		}
		return nil
	}

	if k == "enter" {
		p.submit()
		return nil
	}

	prob := p.machine.Problem()
	if prob.Kind != problem.KindInput {
		p.choices, _ = p.choices.Update(msg)
		return nil
	}
	if prob.Input == problem.InputInequality && p.pickOp(k) {
		return nil
	}
	p.input.ClearMark()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// pickOp drives the inequality symbol picker. "<" and ">" choose the
// direction, a second press or "=" toggles strictness, Tab cycles.
func (p *PracticeScreen) pickOp(k string) bool {
	switch k {
	case "<":
		if p.op.Less() {
			p.op = p.op.ToggleStrict()
		} else {
			p.op = expr.Lt
		}
	case ">":
		if !p.op.Less() {
			p.op = p.op.ToggleStrict()
		} else {
			p.op = expr.Gt
		}
	case "=":
		p.op = p.op.ToggleStrict()
	case "tab":
		for i, o := range expr.Ops {
			if o == p.op {
				p.op = expr.Ops[(i+1)%len(expr.Ops)]
				break
			}
		}
	default:
		return false
	}
	return true
}

// answerText composes the submission of a typed problem.
func (p *PracticeScreen) answerText() string {
	v := strings.TrimSpace(p.input.Value())
	if v == "" {
		return ""
	}
	if p.machine.Problem().Input == problem.InputInequality {
		return "x " + p.op.ASCII() + " " + v
	}
	return v
}

func (p *PracticeScreen) submit() {
	prob := p.machine.Problem()

	var out progress.Outcome
	switch prob.Kind {
	case problem.KindMultiSelect:
		chosen := p.choices.Chosen()
		values := make([]string, len(chosen))
		for i, c := range chosen {
			values[i] = prob.Options[c]
		}
		out = p.machine.SubmitSet(values)
	case problem.KindChoice:
		chosen := p.choices.Chosen()
		if len(chosen) == 0 {
			return
		}
		out = p.machine.Submit(prob.Options[chosen[0]])
	default:
		text := p.answerText()
		if text == "" {
			return
		}
		out = p.machine.Submit(text)
	}
	if out.Ignored {
		return
	}

	p.feedback = p.format.Text(out.Feedback)
	if !out.Result.Correct {
		p.feedbackKind = feedbackBad
		if prob.Kind == problem.KindInput {
			p.input.Submit(false)
		}
		return
	}

	p.feedbackKind = feedbackGood
	p.lockAnswer(true)
	if u := out.Transition.Unlocked; u >= 0 {
		p.feedback += "\n" + p.format.Message("feedback.unlocked", strconv.Itoa(u+1))
	}
}

// lockAnswer freezes the answer widgets once the problem is settled.
func (p *PracticeScreen) lockAnswer(correct bool) {
	prob := p.machine.Problem()
	if prob.Kind == problem.KindInput {
		p.input.Submit(correct)
		p.input.Model.Blur()
		return
	}
	p.choices.Lock(correctOptions(prob))
}

// correctOptions marks the options that belong to the answer.
func correctOptions(prob *problem.Problem) []bool {
	answers := []string{prob.Answer}
	if prob.Kind == problem.KindMultiSelect {
		answers = prob.AnswerSet
	}
	out := make([]bool, len(prob.Options))
	for i, o := range prob.Options {
		for _, a := range answers {
			if sameToken(o, a) {
				out[i] = true
			}
		}
	}
	return out
}

func sameToken(a, b string) bool {
	if a == b {
		return true
	}
	x, okA := expr.ParseNum(a)
	y, okB := expr.ParseNum(b)
	return okA && okB && x == y
}

func (p *PracticeScreen) revealHint() {
	if _, ok := p.machine.RevealHint(); !ok {
		return
	}
	if p.machine.HintsExhausted() {
		p.feedback = p.format.Message("feedback.hints.spent")
		p.feedbackKind = feedbackInfo
		p.lockAnswer(false)
	}
}

// advance runs the forward action offered after a problem is settled.
func (p *PracticeScreen) advance() tea.Cmd {
	actions := p.machine.Actions()
	if len(actions) == 0 {
		return nil
	}
	switch actions[0] {
	case progress.ActionNextLevel:
		if err := p.machine.NextLevel(); err != nil {
			p.log.WithError(err).Warn("next level refused")
			return nil
		}
		if p.machine.GameComplete() {
			done := complete.New(p.topic, p.machine, p.format)
			return func() tea.Msg { return router.PushScreenMsg{Screen: done} }
		}
	case progress.ActionNextProblem:
		p.machine.NextProblem()
	case progress.ActionRepeat:
		p.machine.Repeat()
	default:
		return nil
	}
	p.sync()
	return p.Init()
}

func (p *PracticeScreen) openLevels() tea.Cmd {
	menu := levelmenu.New(p.topic, p.machine)
	return func() tea.Msg { return router.PushScreenMsg{Screen: menu} }
}

// KeyHints depend on how the current problem is answered.
func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	prob := p.machine.Problem()
	var hints []layout.KeyHint
	if !p.machine.Phase().Answered() && !p.machine.HintsExhausted() {
		switch {
		case prob.Kind == problem.KindMultiSelect:
			hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Move"}, layout.KeyHint{Key: "Space", Description: "Pick"})
		case prob.Kind == problem.KindChoice:
			hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Move"})
		case prob.Input == problem.InputInequality:
			hints = append(hints, layout.KeyHint{Key: "< > =", Description: "Symbol"})
		}
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Check"}, layout.KeyHint{Key: "?", Description: "Hint"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Continue"})
	}
	return append(hints,
		layout.KeyHint{Key: "L", Description: "Levels"},
		layout.KeyHint{Key: "Esc", Description: "Topics"},
	)
}
