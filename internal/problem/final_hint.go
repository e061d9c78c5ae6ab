package problem

import (
	"fmt"
	"strings"
)

// FinalHintValidator checks that the last hint states the canonical answer.
type FinalHintValidator struct{}

func (v *FinalHintValidator) Name() string { return "final-hint" }

func (v *FinalHintValidator) Validate(p *Problem) *ValidationError {
	if len(p.Hints) == 0 {
		return nil
	}
	got := p.Hints[len(p.Hints)-1].LastArg()
	want := p.FinalAnswer()
	if !strings.EqualFold(strings.TrimSpace(got), strings.TrimSpace(want)) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("last hint states %q, answer is %q", got, want),
			Retryable: false,
		}
	}
	return nil
}
