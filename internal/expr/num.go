// Package expr formats the numbers, polynomial terms, inequality operators
// and intervals that problem text is built from. Output is TeX-lite markup
// (see internal/mathtext) using "." as the decimal separator; the content
// layer swaps the separator for the display locale.
package expr

import (
	"math"
	"strconv"
	"strings"
)

// Num formats v with the fewest decimals needed. Negative zero prints as "0".
func Num(v float64) string {
	if v == 0 {
		return "0"
	}
	// Round away binary noise such as 2.4999999999999996.
	r := math.Round(v*1e9) / 1e9
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Int formats an integer.
func Int(v int) string {
	return strconv.Itoa(v)
}

// Paren wraps negative numbers in parentheses so they can follow an
// operator, e.g. "3 \cdot (-2)".
func Paren(v float64) string {
	if v < 0 {
		return "(" + Num(v) + ")"
	}
	return Num(v)
}

// ParenInt is Paren for integers.
func ParenInt(v int) string {
	return Paren(float64(v))
}

// Plus renders "+ v" or "- |v|" for appending v to an expression.
func Plus(v float64) string {
	if v < 0 {
		return "- " + Num(-v)
	}
	return "+ " + Num(v)
}

// PlusInt is Plus for integers.
func PlusInt(v int) string {
	return Plus(float64(v))
}

// ParseNum parses a number written with either "." or "," as the decimal
// separator. Surrounding whitespace and a leading "+" are accepted.
func ParseNum(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	s = strings.ReplaceAll(s, "−", "-")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// IsInteger reports whether v has no fractional part (within rounding noise).
func IsInteger(v float64) bool {
	return math.Abs(v-math.Round(v)) < 1e-9
}

// Join joins numbers with ", ".
func Join(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Num(v)
	}
	return strings.Join(parts, ", ")
}

// JoinInts joins integers with ", ".
func JoinInts(vs ...int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// Round rounds v to the given number of decimals.
func Round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}

// Approx renders "= v" when v has at most three decimals and
// "\approx v" rounded to three decimals otherwise.
func Approx(v float64) string {
	r := Round(v, 3)
	if math.Abs(r-v) < 1e-9 {
		return "= " + Num(v)
	}
	return `\approx ` + Num(r)
}
