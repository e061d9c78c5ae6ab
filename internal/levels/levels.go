// Package levels maps a topic's level index to its generator and label.
package levels

import (
	"fmt"

	"github.com/abhisek/mathlab/internal/problem"
)

// Level is static metadata for one rung of a topic's ladder.
type Level struct {
	Category string
	Generate problem.Generator
}

// Sequence is the ordered ladder of levels of one topic.
type Sequence struct {
	levels []Level
}

// New builds a sequence. It panics on an empty ladder or a level without a
// generator, since both are programming errors.
func New(levels ...Level) *Sequence {
	if len(levels) == 0 {
		panic("levels: empty sequence")
	}
	for i, l := range levels {
		if l.Generate == nil {
			panic(fmt.Sprintf("levels: level %d has no generator", i))
		}
	}
	return &Sequence{levels: levels}
}

// Count returns the number of levels.
func (s *Sequence) Count() int {
	return len(s.levels)
}

// index wraps i into range the way the level ladder is indexed.
func (s *Sequence) index(i int) int {
	n := len(s.levels)
	return ((i % n) + n) % n
}

// GeneratorAt returns the generator for level i (modulo Count).
func (s *Sequence) GeneratorAt(i int) problem.Generator {
	return s.levels[s.index(i)].Generate
}

// CategoryAt returns the label for level i (modulo Count).
func (s *Sequence) CategoryAt(i int) string {
	return s.levels[s.index(i)].Category
}

// Categories returns every label in order.
func (s *Sequence) Categories() []string {
	out := make([]string, len(s.levels))
	for i, l := range s.levels {
		out[i] = l.Category
	}
	return out
}

// Problem generates and validates a problem for level i, stamping its
// category. See problem.Build for the error contract.
func (s *Sequence) Problem(i int, r *problem.Rand) (*problem.Problem, error) {
	gen := s.GeneratorAt(i)
	category := s.CategoryAt(i)
	p, err := problem.Build(r, func(r *problem.Rand) *problem.Problem {
		p := gen(r)
		p.Category = category
		return p
	})
	if err != nil {
		return p, fmt.Errorf("level %d (%s): %w", i, category, err)
	}
	return p, nil
}
