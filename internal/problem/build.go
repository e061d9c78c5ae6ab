package problem

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// MaxAttempts bounds regeneration when a retryable validator fails.
const MaxAttempts = 8

// ErrExhausted is returned when every attempt failed validation.
var ErrExhausted = errors.New("generation attempts exhausted")

// Build runs gen, stamps an ID, and validates the result with the default
// chain, regenerating on retryable failures. On failure the last candidate
// is returned together with the error so callers can still show it.
func Build(r *Rand, gen Generator) (*Problem, error) {
	return BuildWith(r, gen, DefaultValidators)
}

// BuildWith is Build with an explicit validator chain.
func BuildWith(r *Rand, gen Generator, validators []Validator) (*Problem, error) {
	var p *Problem
	var lastErr error
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		p = gen(r)
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		lastErr = Validate(p, validators)
		if lastErr == nil {
			return p, nil
		}
		var valErr *ValidationError
		if errors.As(lastErr, &valErr) && !valErr.Retryable {
			return p, lastErr
		}
	}
	return p, fmt.Errorf("%w: %w", ErrExhausted, lastErr)
}

// Validate runs the validators in order and returns the first failure.
func Validate(p *Problem, validators []Validator) error {
	for _, v := range validators {
		if err := v.Validate(p); err != nil {
			return err
		}
	}
	return nil
}
