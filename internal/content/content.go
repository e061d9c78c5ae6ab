// Package content turns problem texts into display strings: it looks
// the prose up by key, substitutes the arguments, renders the TeX-lite
// markup and draws number-line figures.
package content

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/lt"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/mathlab/internal/expr"
	"github.com/abhisek/mathlab/internal/mathtext"
	"github.com/abhisek/mathlab/internal/problem"
)

// ErrUnknownLocale is returned by New for an unsupported locale.
var ErrUnknownLocale = errors.New("unknown locale")

var translators = map[string]func() locales.Translator{
	"en": en.New,
	"lt": lt.New,
}

// Locales returns the supported number locales, sorted.
func Locales() []string {
	out := make([]string, 0, len(translators))
	for k := range translators {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var decimalPoint = regexp.MustCompile(`(\d)\.(\d)`)

// Formatter renders texts for one number locale.
type Formatter struct {
	locale  string
	decimal string
	log     logrus.FieldLogger
}

// New returns a formatter whose decimal separator follows locale.
func New(locale string, log logrus.FieldLogger) (*Formatter, error) {
	mk, ok := translators[locale]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownLocale, locale, strings.Join(Locales(), ", "))
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	// 1.5 formatted with one fraction digit leaves only the separator
	// between the digits.
	sample := mk().FmtNumber(1.5, 1)
	sep := strings.TrimSuffix(strings.TrimPrefix(sample, "1"), "5")
	if sep == "" {
		sep = "."
	}
	return &Formatter{locale: locale, decimal: sep, log: log}, nil
}

// Locale returns the formatter's locale.
func (f *Formatter) Locale() string { return f.locale }

// Decimal returns the decimal separator.
func (f *Formatter) Decimal() string { return f.decimal }

func (f *Formatter) localize(s string) string {
	if f.decimal == "." {
		return s
	}
	return decimalPoint.ReplaceAllString(s, "${1}"+f.decimal+"${2}")
}

// Number formats v in the formatter's locale.
func (f *Formatter) Number(v float64) string {
	return f.localize(expr.Num(v))
}

// Markup renders a TeX-lite fragment.
func (f *Formatter) Markup(s string) string {
	return mathtext.Render(f.localize(s))
}

// Message renders a catalog entry by key.
func (f *Formatter) Message(key string, args ...string) string {
	return f.Text(problem.T(key, args...))
}

// Text renders t as prose followed by its figure, if any. An unknown key
// renders as the key and its arguments.
func (f *Formatter) Text(t problem.Text) string {
	args := make([]any, len(t.Args))
	for i, a := range t.Args {
		args[i] = f.localize(a)
	}
	var s string
	if tmpl, ok := catalog[t.Key]; ok {
		s = fmt.Sprintf(tmpl, args...)
	} else {
		f.log.WithField("key", t.Key).Warn("missing text")
		s = t.Key
		if len(t.Args) > 0 {
			s += ": " + strings.Join(t.Args, "; ")
		}
	}
	s = mathtext.Render(s)
	if t.Figure != nil {
		if fig := f.Figure(t.Figure); fig != "" {
			s += "\n\n" + fig
		}
	}
	return s
}

// Figure draws a number line.
func (f *Formatter) Figure(fig *problem.Figure) string {
	if fig.Interval != nil {
		return intervalLine(*fig.Interval, f.Number)
	}
	return pointsLine(fig.Points, f.Number)
}

// Option renders an option token the way p asks for. Number-line tokens
// that fail to parse fall back to markup.
func (f *Formatter) Option(p *problem.Problem, token string) string {
	switch p.OptionRender {
	case problem.RenderNumberLine:
		iv, err := expr.ParseInterval(token)
		if err != nil {
			f.log.WithError(err).Warn("option is not an interval")
			return f.Markup(token)
		}
		return intervalLine(iv, f.Number)
	case problem.RenderMath:
		return f.Markup(token)
	default:
		return f.localize(token)
	}
}

// Has reports whether key is in the catalog.
func Has(key string) bool {
	_, ok := catalog[key]
	return ok
}

// Keys returns every catalog key, sorted.
func Keys() []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
