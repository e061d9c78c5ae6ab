package expr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Term is coef·v^pow for some variable v.
type Term struct {
	Coef int
	Pow  int
}

// Poly formats a polynomial in v. Zero terms are dropped, a coefficient of
// 1 or -1 is written as a bare (signed) variable and signs are merged into
// the joining operator: Poly("n", Term{1,2}, Term{-1,1}, Term{0,0}) is
// "n^2 - n". An all-zero polynomial prints as "0".
func Poly(v string, terms ...Term) string {
	var b strings.Builder
	for _, t := range terms {
		if t.Coef == 0 {
			continue
		}
		coef := t.Coef
		if b.Len() == 0 {
			if coef < 0 {
				b.WriteString("-")
				coef = -coef
			}
		} else if coef < 0 {
			b.WriteString(" - ")
			coef = -coef
		} else {
			b.WriteString(" + ")
		}
		b.WriteString(monomial(v, coef, t.Pow))
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// Linear formats a·v + c.
func Linear(v string, a, c int) string {
	return Poly(v, Term{Coef: a, Pow: 1}, Term{Coef: c, Pow: 0})
}

func monomial(v string, coef, pow int) string {
	if pow == 0 {
		return strconv.Itoa(coef)
	}
	s := v
	if pow > 1 {
		s += Power(pow)
	}
	if coef == 1 {
		return s
	}
	return strconv.Itoa(coef) + s
}

// Power renders an exponent suffix: "^2" or "^{12}".
func Power(p int) string {
	if p >= 0 && p < 10 {
		return "^" + strconv.Itoa(p)
	}
	return "^{" + strconv.Itoa(p) + "}"
}

var monomialPattern = regexp.MustCompile(`^(\d*)([a-z])?(?:\^\{?(\d+)\}?)?$`)

// ParsePoly reads back a polynomial produced by Poly. Terms of equal power
// are summed.
func ParsePoly(s, v string) (map[int]int, error) {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return nil, fmt.Errorf("empty polynomial")
	}
	out := make(map[int]int)
	start := 0
	for i := 1; i <= len(s); i++ {
		if i < len(s) && s[i] != '+' && s[i] != '-' {
			continue
		}
		if err := parseMonomial(s[start:i], v, out); err != nil {
			return nil, err
		}
		start = i
	}
	return out, nil
}

func parseMonomial(tok, v string, out map[int]int) error {
	sign := 1
	switch {
	case strings.HasPrefix(tok, "-"):
		sign = -1
		tok = tok[1:]
	case strings.HasPrefix(tok, "+"):
		tok = tok[1:]
	}
	m := monomialPattern.FindStringSubmatch(tok)
	if m == nil || (m[1] == "" && m[2] == "") {
		return fmt.Errorf("malformed term %q", tok)
	}
	if m[2] != "" && m[2] != v {
		return fmt.Errorf("unexpected variable %q in %q", m[2], tok)
	}
	coef := 1
	if m[1] != "" {
		c, err := strconv.Atoi(m[1])
		if err != nil {
			return fmt.Errorf("coefficient %q: %w", m[1], err)
		}
		coef = c
	}
	pow := 0
	if m[2] != "" {
		pow = 1
		if m[3] != "" {
			p, err := strconv.Atoi(m[3])
			if err != nil {
				return fmt.Errorf("power %q: %w", m[3], err)
			}
			pow = p
		}
	}
	out[pow] += sign * coef
	return nil
}

// EvalPoly evaluates parsed terms at x.
func EvalPoly(terms map[int]int, x int) int {
	total := 0
	for pow, coef := range terms {
		total += coef * IntPow(x, pow)
	}
	return total
}

// IntPow computes base^exp for exp ≥ 0.
func IntPow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}
