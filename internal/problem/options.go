package problem

import (
	"fmt"
	"strings"
)

// OptionsValidator checks option lists: no empty or duplicate entries, the
// CHOICE answer present exactly once, the MULTI_SELECT answer a subset.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(p *Problem) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf(format, args...),
			Retryable: true,
		}
	}

	if p.Kind == KindInput {
		if len(p.Options) > 0 {
			return fail("input problem must have no options")
		}
		return nil
	}

	if len(p.Options) < 2 {
		return fail("need at least 2 options, got %d", len(p.Options))
	}
	seen := make(map[string]bool, len(p.Options))
	for i, o := range p.Options {
		key := optionKey(o)
		if key == "" {
			return fail("option %d is empty", i+1)
		}
		if seen[key] {
			return fail("duplicate option %q", o)
		}
		seen[key] = true
	}

	if p.Kind == KindChoice {
		if !seen[optionKey(p.Answer)] {
			return fail("answer %q not found in options", p.Answer)
		}
		return nil
	}

	for _, a := range p.AnswerSet {
		if !seen[optionKey(a)] {
			return fail("answer value %q not found in options", a)
		}
	}
	return nil
}

func optionKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
