package problem

import "fmt"

// MaxHints bounds the hint chain length.
const MaxHints = 6

// StructuralValidator checks that required fields are present and enum
// values are known.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf(format, args...),
			Retryable: false,
		}
	}

	if p.Question.Key == "" {
		return fail("question has no text key")
	}
	switch p.Kind {
	case KindChoice, KindInput:
		if p.Answer == "" {
			return fail("answer is empty")
		}
	case KindMultiSelect:
		if len(p.AnswerSet) == 0 {
			return fail("answer set is empty")
		}
	default:
		return fail("unknown kind %q", p.Kind)
	}
	if p.Kind == KindInput && p.Input != InputNumber && p.Input != InputInequality {
		return fail("input problem has no input kind")
	}
	if len(p.Hints) == 0 {
		return fail("hint chain is empty")
	}
	if len(p.Hints) > MaxHints {
		return fail("hint chain has %d entries, max %d", len(p.Hints), MaxHints)
	}
	for i, h := range p.Hints {
		if h.Key == "" {
			return fail("hint %d has no text key", i)
		}
	}
	return nil
}
