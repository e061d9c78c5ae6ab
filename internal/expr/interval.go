package expr

import (
	"fmt"
	"strings"
)

// Shape enumerates the eight interval forms.
type Shape int

const (
	ShapeOpen         Shape = iota // (a; b)    a < x < b
	ShapeClosed                    // [a; b]    a ≤ x ≤ b
	ShapeClosedOpen                // [a; b)    a ≤ x < b
	ShapeOpenClosed                // (a; b]    a < x ≤ b
	ShapeAbove                     // (a; +∞)   x > a
	ShapeAboveOrEqual              // [a; +∞)   x ≥ a
	ShapeBelow                     // (-∞; a)   x < a
	ShapeBelowOrEqual              // (-∞; a]   x ≤ a
)

// Bounded reports whether both ends are finite.
func (s Shape) Bounded() bool {
	return s <= ShapeOpenClosed
}

// Interval is a set of reals on a number line. B is ignored for rays.
type Interval struct {
	Shape Shape
	A, B  float64
}

// Ray returns the interval of solutions of x op a.
func Ray(op Op, a float64) Interval {
	switch op {
	case Gt:
		return Interval{Shape: ShapeAbove, A: a}
	case Ge:
		return Interval{Shape: ShapeAboveOrEqual, A: a}
	case Lt:
		return Interval{Shape: ShapeBelow, A: a}
	default:
		return Interval{Shape: ShapeBelowOrEqual, A: a}
	}
}

// LowClosed reports whether the lower finite end is included.
func (iv Interval) LowClosed() bool {
	switch iv.Shape {
	case ShapeClosed, ShapeClosedOpen, ShapeAboveOrEqual:
		return true
	}
	return false
}

// HighClosed reports whether the upper finite end is included. For rays
// bounded above the bound is A.
func (iv Interval) HighClosed() bool {
	switch iv.Shape {
	case ShapeClosed, ShapeOpenClosed, ShapeBelowOrEqual:
		return true
	}
	return false
}

// String renders bracket notation with "; " between the ends. Infinite
// ends always take a parenthesis.
func (iv Interval) String() string {
	a := Num(iv.A)
	switch iv.Shape {
	case ShapeOpen:
		return fmt.Sprintf("(%s; %s)", a, Num(iv.B))
	case ShapeClosed:
		return fmt.Sprintf("[%s; %s]", a, Num(iv.B))
	case ShapeClosedOpen:
		return fmt.Sprintf("[%s; %s)", a, Num(iv.B))
	case ShapeOpenClosed:
		return fmt.Sprintf("(%s; %s]", a, Num(iv.B))
	case ShapeAbove:
		return fmt.Sprintf("(%s; +∞)", a)
	case ShapeAboveOrEqual:
		return fmt.Sprintf("[%s; +∞)", a)
	case ShapeBelow:
		return fmt.Sprintf("(-∞; %s)", a)
	default:
		return fmt.Sprintf("(-∞; %s]", a)
	}
}

// Inequality renders the equivalent inequality in x as markup.
func (iv Interval) Inequality() string {
	a := Num(iv.A)
	b := Num(iv.B)
	switch iv.Shape {
	case ShapeOpen:
		return a + " < x < " + b
	case ShapeClosed:
		return a + ` \le x \le ` + b
	case ShapeClosedOpen:
		return a + ` \le x < ` + b
	case ShapeOpenClosed:
		return a + ` < x \le ` + b
	case ShapeAbove:
		return "x > " + a
	case ShapeAboveOrEqual:
		return `x \ge ` + a
	case ShapeBelow:
		return "x < " + a
	default:
		return `x \le ` + a
	}
}

// Contains reports whether v lies in the interval.
func (iv Interval) Contains(v float64) bool {
	switch iv.Shape {
	case ShapeOpen:
		return v > iv.A && v < iv.B
	case ShapeClosed:
		return v >= iv.A && v <= iv.B
	case ShapeClosedOpen:
		return v >= iv.A && v < iv.B
	case ShapeOpenClosed:
		return v > iv.A && v <= iv.B
	case ShapeAbove:
		return v > iv.A
	case ShapeAboveOrEqual:
		return v >= iv.A
	case ShapeBelow:
		return v < iv.A
	default:
		return v <= iv.A
	}
}

// ParseInterval reads bracket notation as produced by String.
func ParseInterval(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	if len(s) < 5 {
		return Interval{}, fmt.Errorf("interval %q too short", s)
	}
	lb, rb := s[0], s[len(s)-1]
	body := s[1 : len(s)-1]
	lo, hi, ok := strings.Cut(body, ";")
	if !ok {
		return Interval{}, fmt.Errorf("interval %q: missing ';'", s)
	}
	lo, hi = strings.TrimSpace(lo), strings.TrimSpace(hi)
	loInf := strings.Contains(lo, "∞")
	hiInf := strings.Contains(hi, "∞")

	switch {
	case loInf && hiInf:
		return Interval{}, fmt.Errorf("interval %q: both ends infinite", s)
	case hiInf:
		a, ok := ParseNum(lo)
		if !ok {
			return Interval{}, fmt.Errorf("interval %q: bad bound %q", s, lo)
		}
		if lb == '[' {
			return Interval{Shape: ShapeAboveOrEqual, A: a}, nil
		}
		return Interval{Shape: ShapeAbove, A: a}, nil
	case loInf:
		a, ok := ParseNum(hi)
		if !ok {
			return Interval{}, fmt.Errorf("interval %q: bad bound %q", s, hi)
		}
		if rb == ']' {
			return Interval{Shape: ShapeBelowOrEqual, A: a}, nil
		}
		return Interval{Shape: ShapeBelow, A: a}, nil
	}

	a, okA := ParseNum(lo)
	b, okB := ParseNum(hi)
	if !okA || !okB {
		return Interval{}, fmt.Errorf("interval %q: bad bounds", s)
	}
	shape := ShapeOpen
	switch {
	case lb == '[' && rb == ']':
		shape = ShapeClosed
	case lb == '[':
		shape = ShapeClosedOpen
	case rb == ']':
		shape = ShapeOpenClosed
	}
	return Interval{Shape: shape, A: a, B: b}, nil
}
