// Package intervals generates problems that move between inequality
// notation, bracket notation and number-line graphs.
//
// Bracket rules: a strict bound takes a parenthesis, a non-strict bound a
// square bracket, and an infinite end always a parenthesis.
package intervals

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/mathlab/internal/expr"
	"github.com/abhisek/mathlab/internal/levels"
	"github.com/abhisek/mathlab/internal/problem"
)

// Sequence returns the intervals ladder.
func Sequence() *levels.Sequence {
	return levels.New(
		levels.Level{Category: "Level 1: Picking values", Generate: ValueSelection},
		levels.Level{Category: "Level 2: Inequalities to intervals", Generate: ToInterval},
		levels.Level{Category: "Level 3: Intervals to inequalities", Generate: ToInequality},
		levels.Level{Category: "Level 4: Inequalities to graphs", Generate: ToGraph},
		levels.Level{Category: "Level 5: Graphs to inequalities", Generate: FromGraph},
	)
}

// graphShapes are the shapes drawn in the graph levels.
var graphShapes = []expr.Shape{
	expr.ShapeOpen, expr.ShapeClosed,
	expr.ShapeAbove, expr.ShapeAboveOrEqual,
	expr.ShapeBelow, expr.ShapeBelowOrEqual,
}

// toggleStrict swaps open and closed ends keeping the direction.
func toggleStrict(s expr.Shape) expr.Shape {
	switch s {
	case expr.ShapeOpen:
		return expr.ShapeClosed
	case expr.ShapeClosed:
		return expr.ShapeOpen
	case expr.ShapeClosedOpen:
		return expr.ShapeOpenClosed
	case expr.ShapeOpenClosed:
		return expr.ShapeClosedOpen
	case expr.ShapeAbove:
		return expr.ShapeAboveOrEqual
	case expr.ShapeAboveOrEqual:
		return expr.ShapeAbove
	case expr.ShapeBelow:
		return expr.ShapeBelowOrEqual
	default:
		return expr.ShapeBelow
	}
}

// flipDirection points a ray the other way. A bounded interval becomes the
// ray x > a.
func flipDirection(s expr.Shape) expr.Shape {
	switch s {
	case expr.ShapeAbove:
		return expr.ShapeBelow
	case expr.ShapeAboveOrEqual:
		return expr.ShapeBelowOrEqual
	case expr.ShapeBelow:
		return expr.ShapeAbove
	case expr.ShapeBelowOrEqual:
		return expr.ShapeAboveOrEqual
	default:
		return expr.ShapeAbove
	}
}

// ValueSelection asks for every candidate satisfying a one-sided
// inequality. The boundary is always a candidate.
func ValueSelection(r *problem.Rand) *problem.Problem {
	boundary := r.Int(-10, 10)
	op := problem.Pick(r, expr.Ops)
	for {
		seen := map[int]bool{boundary: true}
		candidates := []int{boundary}
		for len(candidates) < 4 {
			c := boundary + r.Int(-5, 5)
			if !seen[c] {
				seen[c] = true
				candidates = append(candidates, c)
			}
		}
		if p := valueSelection(op, boundary, candidates); len(p.AnswerSet) > 0 {
			return p
		}
	}
}

func valueSelection(op expr.Op, boundary int, candidates []int) *problem.Problem {
	sort.Ints(candidates)
	options := make([]string, len(candidates))
	var answers []string
	for i, c := range candidates {
		options[i] = expr.Int(c)
		if op.Holds(float64(c), float64(boundary)) {
			answers = append(answers, options[i])
		}
	}
	first := candidates[0]
	return problem.MultiSelect(
		problem.T("iv.values.question", fmt.Sprintf("x %s %d", op.Markup(), boundary)),
		answers,
		options,
		problem.T("iv.values.hint.substitute"),
		problem.T("iv.values.hint.example",
			fmt.Sprintf("%d %s %d", first, op.Markup(), boundary),
			problem.YesNo(op.Holds(float64(first), float64(boundary)))),
		problem.T("iv.values.hint.answer", strings.Join(answers, ", ")),
	)
}

// bounds samples a < b, on a half-unit grid half of the time.
func bounds(r *problem.Rand) (float64, float64) {
	if r.Chance(0.5) {
		a := float64(r.Int(-20, 16)) / 2
		return a, a + float64(r.Int(1, 10))/2
	}
	a := float64(r.Int(-10, 10))
	return a, a + float64(r.Int(1, 10))
}

// ToInterval gives an inequality and asks for its bracket notation.
func ToInterval(r *problem.Rand) *problem.Problem {
	a, b := bounds(r)
	return toInterval(r, expr.Interval{Shape: expr.Shape(r.Int(0, 7)), A: a, B: b})
}

// family returns the four notations sharing iv's bounds: every bracket
// pair for a bounded interval, every ray otherwise.
func family(iv expr.Interval) []expr.Interval {
	shapes := []expr.Shape{expr.ShapeAbove, expr.ShapeAboveOrEqual, expr.ShapeBelow, expr.ShapeBelowOrEqual}
	if iv.Shape.Bounded() {
		shapes = []expr.Shape{expr.ShapeOpen, expr.ShapeClosed, expr.ShapeClosedOpen, expr.ShapeOpenClosed}
	}
	out := make([]expr.Interval, len(shapes))
	for i, s := range shapes {
		out[i] = expr.Interval{Shape: s, A: iv.A, B: iv.B}
	}
	return out
}

func toInterval(r *problem.Rand, iv expr.Interval) *problem.Problem {
	var options []string
	for _, o := range family(iv) {
		options = append(options, o.String())
	}
	problem.Shuffle(r, options)
	ans := iv.String()
	return problem.MathChoice(
		problem.T("iv.tointerval.question", iv.Inequality()),
		ans,
		options,
		problem.T("iv.tointerval.hint.strict"),
		problem.T("iv.tointerval.hint.nonstrict"),
		problem.T(fmt.Sprintf("iv.tointerval.hint.shape%d", iv.Shape), iv.Inequality(), ans),
	)
}

// ToInequality gives bracket notation and asks for the inequality.
func ToInequality(r *problem.Rand) *problem.Problem {
	a, b := bounds(r)
	return toInequality(r, expr.Interval{Shape: expr.Shape(r.Int(0, 7)), A: a, B: b})
}

func toInequality(r *problem.Rand, iv expr.Interval) *problem.Problem {
	var options []string
	for _, o := range family(iv) {
		options = append(options, o.Inequality())
	}
	problem.Shuffle(r, options)
	ans := iv.Inequality()
	return problem.MathChoice(
		problem.T("iv.toinequality.question", iv.String()),
		ans,
		options,
		problem.T("iv.toinequality.hint.parens"),
		problem.T("iv.toinequality.hint.brackets"),
		problem.T(fmt.Sprintf("iv.toinequality.hint.shape%d", iv.Shape), iv.String(), ans),
	)
}

// graphInterval samples the bounds and shape drawn in the graph levels.
func graphInterval(r *problem.Rand) expr.Interval {
	a := r.Int(-5, 5)
	return expr.Interval{
		Shape: problem.Pick(r, graphShapes),
		A:     float64(a),
		B:     float64(a + r.Int(2, 5)),
	}
}

// ToGraph gives an inequality and asks to pick its number line. Option
// tokens are bracket notation, drawn as graphs.
func ToGraph(r *problem.Rand) *problem.Problem {
	return toGraph(r, graphInterval(r))
}

func toGraph(r *problem.Rand, iv expr.Interval) *problem.Problem {
	shifted := iv
	shifted.A += float64(r.Sign())
	if shifted.Shape.Bounded() && shifted.A >= shifted.B {
		shifted.A = iv.A - 1
	}
	candidates := []expr.Interval{
		{Shape: toggleStrict(iv.Shape), A: iv.A, B: iv.B},
		{Shape: flipDirection(iv.Shape), A: iv.A, B: iv.B},
		shifted,
	}
	ans := iv.String()
	next := 0
	options := problem.Distractors(r, ans, 4,
		func() string {
			c := candidates[next%len(candidates)]
			next++
			return c.String()
		},
		func(i int) string {
			return expr.Interval{Shape: iv.Shape, A: iv.A - float64(i+1), B: iv.B}.String()
		},
	)
	p := problem.Choice(
		problem.T("iv.tograph.question", iv.Inequality()),
		ans,
		options,
		problem.T("iv.tograph.hint.strictness"),
		problem.T("iv.tograph.hint.circles"),
		problem.T("iv.tograph.hint.answer", iv.Inequality(), ans).WithFigure(&problem.Figure{Interval: &iv}),
	)
	p.OptionRender = problem.RenderNumberLine
	return p
}

// FromGraph draws a number line and asks to pick its inequality.
func FromGraph(r *problem.Rand) *problem.Problem {
	return fromGraph(r, graphInterval(r))
}

func fromGraph(r *problem.Rand, iv expr.Interval) *problem.Problem {
	ans := iv.Inequality()
	fixed := []string{
		expr.Interval{Shape: toggleStrict(iv.Shape), A: iv.A, B: iv.B}.Inequality(),
		expr.Interval{Shape: flipDirection(iv.Shape), A: iv.A, B: iv.B}.Inequality(),
	}
	next := 0
	options := problem.Distractors(r, ans, 4,
		func() string {
			if next < len(fixed) {
				next++
				return fixed[next-1]
			}
			return expr.Interval{Shape: expr.Shape(r.Int(0, 7)), A: iv.A, B: iv.B}.Inequality()
		},
		func(i int) string {
			return expr.Interval{Shape: iv.Shape, A: iv.A + float64(i), B: iv.B + float64(i)}.Inequality()
		},
	)
	return problem.MathChoice(
		problem.T("iv.fromgraph.question").WithFigure(&problem.Figure{Interval: &iv}),
		ans,
		options,
		problem.T("iv.fromgraph.hint.circles"),
		problem.T("iv.fromgraph.hint.shading"),
		problem.T("iv.fromgraph.hint.answer", ans),
	)
}
