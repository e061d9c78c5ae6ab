// Package answer decides whether a submitted answer matches the canonical
// one.
package answer

import (
	"sort"
	"strings"
	"unicode"

	"github.com/abhisek/mathlab/internal/expr"
	"github.com/abhisek/mathlab/internal/problem"
)

// Mismatch classifies a wrong MULTI_SELECT submission.
type Mismatch string

const (
	MismatchNone    Mismatch = ""
	MismatchMissing Mismatch = "missing" // some required values were not picked
	MismatchExtra   Mismatch = "extra"   // some picked values are not solutions
	MismatchBoth    Mismatch = "both"
)

// Result is the outcome of a check.
type Result struct {
	Correct  bool
	Mismatch Mismatch
	Missing  []string
	Extra    []string
}

// Check compares a typed or chosen answer against the problem's canonical
// answer. See IsCorrect for the rules.
func Check(p *problem.Problem, submitted string) Result {
	if p.Kind == problem.KindMultiSelect {
		return CheckSet(p.AnswerSet, splitSet(submitted))
	}
	return Result{Correct: IsCorrect(submitted, p.Answer, p.Kind)}
}

// IsCorrect compares submitted against canonical.
//
// Normalization rules:
// - Whitespace is trimmed and comparison is case-insensitive
// - An empty or malformed submission is simply not correct
// - For INPUT answers, numbers compare numerically with either decimal
//   separator ("5,5" matches "5.5" and "5.50")
// - For INPUT inequalities ("x > 5"), the reversed form with the operator
//   flipped is accepted ("5 < x"), and every operator spelling is
//   recognised ("<=", "≤", `\le`)
func IsCorrect(submitted, canonical string, kind problem.Kind) bool {
	submitted = strings.TrimSpace(submitted)
	canonical = strings.TrimSpace(canonical)
	if submitted == "" || canonical == "" {
		return false
	}
	if strings.EqualFold(submitted, canonical) {
		return true
	}
	if kind != problem.KindInput {
		return false
	}

	if want, ok := parseInequality(canonical); ok {
		got, ok := parseInequality(submitted)
		return ok && got.equivalent(want)
	}

	a, okA := expr.ParseNum(submitted)
	b, okB := expr.ParseNum(canonical)
	return okA && okB && sameNumber(a, b)
}

// CheckSet compares an unordered selection against the canonical set.
// Duplicates are ignored; there is no partial credit.
func CheckSet(canonical, submitted []string) Result {
	want := toSet(canonical)
	got := toSet(submitted)

	var res Result
	for k, label := range want {
		if _, ok := got[k]; !ok {
			res.Missing = append(res.Missing, label)
		}
	}
	for k, label := range got {
		if _, ok := want[k]; !ok {
			res.Extra = append(res.Extra, label)
		}
	}
	sortNumeric(res.Missing)
	sortNumeric(res.Extra)

	switch {
	case len(res.Missing) == 0 && len(res.Extra) == 0:
		res.Correct = len(want) > 0
	case len(res.Missing) > 0 && len(res.Extra) > 0:
		res.Mismatch = MismatchBoth
	case len(res.Missing) > 0:
		res.Mismatch = MismatchMissing
	default:
		res.Mismatch = MismatchExtra
	}
	return res
}

// toSet keys values by their normalized form, keeping the first spelling.
func toSet(values []string) map[string]string {
	out := make(map[string]string, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if n, ok := expr.ParseNum(v); ok {
			key = expr.Num(n)
		}
		if _, dup := out[key]; !dup {
			out[key] = v
		}
	}
	return out
}

// splitSet reads the string form of a selection. Values are separated by
// ";", whitespace, or a comma followed by whitespace ("1; 2", "1, 2").
// A comma between digits is a decimal separator, so "1,2" is one value.
func splitSet(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || unicode.IsSpace(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSuffix(f, ","); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func sortNumeric(vs []string) {
	sort.SliceStable(vs, func(i, j int) bool {
		a, okA := expr.ParseNum(vs[i])
		b, okB := expr.ParseNum(vs[j])
		if okA && okB {
			return a < b
		}
		return vs[i] < vs[j]
	})
}

func sameNumber(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
