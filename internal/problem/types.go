package problem

import (
	"strings"

	"github.com/abhisek/mathlab/internal/expr"
)

// Kind determines how the learner answers and how the answer is checked.
type Kind string

const (
	// KindChoice means the learner picks exactly one option.
	KindChoice Kind = "CHOICE"

	// KindInput means the learner types the answer.
	KindInput Kind = "INPUT"

	// KindMultiSelect means the learner picks every option that satisfies
	// the question. Checked as set equality.
	KindMultiSelect Kind = "MULTI_SELECT"
)

// OptionRender tells the presentation layer how to draw option tokens.
type OptionRender string

const (
	RenderPlain      OptionRender = "plain"
	RenderMath       OptionRender = "math"
	RenderNumberLine OptionRender = "numberline" // tokens are bracket-notation intervals
)

// InputKind describes the input affordance of a KindInput problem.
type InputKind string

const (
	InputNone       InputKind = ""
	InputNumber     InputKind = "number"
	InputInequality InputKind = "inequality" // composed as "x <op> <value>"
)

// Figure is a number-line drawing attached to a question or hint.
type Figure struct {
	Interval *expr.Interval
	Points   []float64
}

// Text is a displayable paragraph: a catalog key plus the literal values
// substituted into it. Args hold numbers and TeX-lite markup, never prose.
type Text struct {
	Key    string
	Args   []string
	Figure *Figure
}

// T builds a Text.
func T(key string, args ...string) Text {
	return Text{Key: key, Args: args}
}

// WithFigure attaches a number-line figure.
func (t Text) WithFigure(f *Figure) Text {
	t.Figure = f
	return t
}

// LastArg returns the final argument, or "" when there are none.
func (t Text) LastArg() string {
	if len(t.Args) == 0 {
		return ""
	}
	return t.Args[len(t.Args)-1]
}

// Problem is one generated exercise. It is not modified after generation.
type Problem struct {
	// ID is an opaque unique token.
	ID string

	// Category is the level label, identical for every problem of a level.
	Category string

	Kind Kind

	// Options is populated for KindChoice and KindMultiSelect.
	Options      []string
	OptionRender OptionRender

	// Input is set for KindInput problems.
	Input InputKind

	Question Text

	// Answer is the canonical answer for KindChoice and KindInput.
	Answer string

	// AnswerSet is the canonical answer for KindMultiSelect.
	AnswerSet []string

	// Hints are ordered from least to most revealing. The last hint states
	// the answer and its last argument is FinalAnswer().
	Hints []Text
}

// FinalAnswer returns the answer as the last hint states it.
func (p *Problem) FinalAnswer() string {
	if p.Kind == KindMultiSelect {
		return strings.Join(p.AnswerSet, ", ")
	}
	return p.Answer
}

// Generator produces a fresh problem from the random source.
type Generator func(r *Rand) *Problem

// Yes/no and true/false option tokens.
const (
	Yes   = "Yes"
	No    = "No"
	True  = "True"
	False = "False"
)

// YesNo returns Yes when cond holds.
func YesNo(cond bool) string {
	if cond {
		return Yes
	}
	return No
}

// TrueFalse returns True when cond holds.
func TrueFalse(cond bool) string {
	if cond {
		return True
	}
	return False
}
