// Package mathtext turns the TeX-lite markup used in problem text into
// plain Unicode for the terminal.
//
// Supported: $ delimiters (dropped), \cdot \times \le \ge \neq \infty
// \Rightarrow and friends, \frac{a}{b}, ^ and _ scripts (single rune or
// braced group), \text{...}, \left/\right delimiters, \{ \} and spacing
// commands. Malformed markup never fails: Render falls back to the input
// with the $ delimiters stripped.
package mathtext

import (
	"errors"
	"strings"
	"unicode"
)

var errUnbalanced = errors.New("unbalanced braces")
var errMissingArg = errors.New("missing argument")

var symbols = map[string]string{
	"cdot":       "·",
	"times":      "×",
	"div":        "÷",
	"le":         "≤",
	"leq":        "≤",
	"ge":         "≥",
	"geq":        "≥",
	"neq":        "≠",
	"ne":         "≠",
	"approx":     "≈",
	"infty":      "∞",
	"pm":         "±",
	"in":         "∈",
	"notin":      "∉",
	"Rightarrow": "⇒",
	"rightarrow": "→",
	"to":         "→",
	"quad":       "  ",
	"qquad":      "    ",
	"ldots":      "…",
	"dots":       "…",
	"mathbb":     "",

	"Leftrightarrow": "⇔",
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ', 'k': 'ᵏ', 'm': 'ᵐ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'n': 'ₙ', 'k': 'ₖ', 'm': 'ₘ', 'i': 'ᵢ', 'x': 'ₓ',
}

// Render converts markup to display text.
func Render(s string) string {
	out, err := Parse(s)
	if err != nil {
		return strings.ReplaceAll(s, "$", "")
	}
	return out
}

// Parse converts markup to display text, reporting malformed input.
func Parse(s string) (string, error) {
	p := &parser{src: []rune(s)}
	return p.sequence(false)
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) done() bool { return p.pos >= len(p.src) }

func (p *parser) sequence(inGroup bool) (string, error) {
	var b strings.Builder
	for !p.done() {
		c := p.src[p.pos]
		switch c {
		case '}':
			if inGroup {
				p.pos++
				return b.String(), nil
			}
			return "", errUnbalanced
		case '{':
			p.pos++
			inner, err := p.sequence(true)
			if err != nil {
				return "", err
			}
			b.WriteString(inner)
		case '$':
			p.pos++
		case '\\':
			s, err := p.command()
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		case '^', '_':
			p.pos++
			arg, err := p.argument()
			if err != nil {
				return "", err
			}
			b.WriteString(script(arg, c == '^'))
		default:
			b.WriteRune(c)
			p.pos++
		}
	}
	if inGroup {
		return "", errUnbalanced
	}
	return b.String(), nil
}

// argument reads one braced group, one command or one rune.
func (p *parser) argument() (string, error) {
	for !p.done() && p.src[p.pos] == ' ' {
		p.pos++
	}
	if p.done() {
		return "", errMissingArg
	}
	switch c := p.src[p.pos]; c {
	case '{':
		p.pos++
		return p.sequence(true)
	case '\\':
		return p.command()
	case '}':
		return "", errMissingArg
	default:
		p.pos++
		return string(c), nil
	}
}

func (p *parser) command() (string, error) {
	p.pos++ // backslash
	if p.done() {
		return `\`, nil
	}
	c := p.src[p.pos]
	if !unicode.IsLetter(c) {
		p.pos++
		switch c {
		case ',', ';', ' ':
			return " ", nil
		case '!':
			return "", nil
		case '\\':
			return "\n", nil
		default:
			return string(c), nil
		}
	}

	start := p.pos
	for !p.done() && unicode.IsLetter(p.src[p.pos]) {
		p.pos++
	}
	name := string(p.src[start:p.pos])

	switch name {
	case "frac", "dfrac", "tfrac":
		num, err := p.argument()
		if err != nil {
			return "", err
		}
		den, err := p.argument()
		if err != nil {
			return "", err
		}
		return frac(num, den), nil
	case "text", "mathrm", "mathbf", "textbf":
		return p.argument()
	case "left", "right", "big", "Big":
		return p.delimiter()
	}
	if sym, ok := symbols[name]; ok {
		return sym, nil
	}
	return name, nil
}

func (p *parser) delimiter() (string, error) {
	if p.done() {
		return "", errMissingArg
	}
	c := p.src[p.pos]
	switch c {
	case '.':
		p.pos++
		return "", nil
	case '\\':
		return p.command()
	default:
		p.pos++
		return string(c), nil
	}
}

func script(arg string, super bool) string {
	table := subscripts
	marker := "_"
	if super {
		table = superscripts
		marker = "^"
	}
	var b strings.Builder
	for _, r := range arg {
		m, ok := table[r]
		if !ok {
			if len([]rune(arg)) == 1 {
				return marker + arg
			}
			return marker + "(" + arg + ")"
		}
		b.WriteRune(m)
	}
	return b.String()
}

func frac(num, den string) string {
	return group(num) + "/" + group(den)
}

// group parenthesises compound operands of a slash fraction.
func group(s string) string {
	s = strings.TrimSpace(s)
	body := strings.TrimPrefix(s, "-")
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return s
	}
	if strings.ContainsAny(body, " +-·×") {
		return "(" + s + ")"
	}
	return s
}
