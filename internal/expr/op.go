package expr

import "strings"

// Op is a comparison operator of a linear inequality.
type Op int

const (
	Lt Op = iota // <
	Gt           // >
	Le           // ≤
	Ge           // ≥
)

// Ops lists every operator in display order.
var Ops = []Op{Lt, Gt, Le, Ge}

// Markup returns the TeX-lite spelling.
func (o Op) Markup() string {
	switch o {
	case Gt:
		return ">"
	case Le:
		return `\le`
	case Ge:
		return `\ge`
	default:
		return "<"
	}
}

// Symbol returns the Unicode spelling.
func (o Op) Symbol() string {
	switch o {
	case Gt:
		return ">"
	case Le:
		return "≤"
	case Ge:
		return "≥"
	default:
		return "<"
	}
}

// ASCII returns the keyboard spelling.
func (o Op) ASCII() string {
	switch o {
	case Gt:
		return ">"
	case Le:
		return "<="
	case Ge:
		return ">="
	default:
		return "<"
	}
}

func (o Op) String() string { return o.Symbol() }

// Flip reverses the direction: < ↔ >, ≤ ↔ ≥. Applied when both sides are
// multiplied by a negative number or when the sides are swapped.
func (o Op) Flip() Op {
	switch o {
	case Lt:
		return Gt
	case Gt:
		return Lt
	case Le:
		return Ge
	default:
		return Le
	}
}

// FlipIf flips when cond holds.
func (o Op) FlipIf(cond bool) Op {
	if cond {
		return o.Flip()
	}
	return o
}

// Strict reports whether the operator excludes equality.
func (o Op) Strict() bool {
	return o == Lt || o == Gt
}

// ToggleStrict swaps strictness keeping direction: < ↔ ≤, > ↔ ≥.
func (o Op) ToggleStrict() Op {
	switch o {
	case Lt:
		return Le
	case Le:
		return Lt
	case Gt:
		return Ge
	default:
		return Gt
	}
}

// Less reports whether the operator points towards smaller values of the
// right-hand side (x < a, x ≤ a).
func (o Op) Less() bool {
	return o == Lt || o == Le
}

// Holds evaluates a o b.
func (o Op) Holds(a, b float64) bool {
	switch o {
	case Lt:
		return a < b
	case Gt:
		return a > b
	case Le:
		return a <= b
	default:
		return a >= b
	}
}

// ParseOp recognises every spelling of an operator: ASCII ("<=", ">="),
// Unicode ("≤", "≥") and TeX-lite (`\le`, `\leq`, `\ge`, `\geq`).
func ParseOp(s string) (Op, bool) {
	switch strings.TrimSpace(s) {
	case "<":
		return Lt, true
	case ">":
		return Gt, true
	case "<=", "≤", `\le`, `\leq`, "=<":
		return Le, true
	case ">=", "≥", `\ge`, `\geq`, "=>":
		return Ge, true
	}
	return 0, false
}
