// Package topics registers the practice topics and their unlock rules.
package topics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/mathlab/internal/levels"
	"github.com/abhisek/mathlab/internal/topics/arithmetic"
	"github.com/abhisek/mathlab/internal/topics/geometric"
	"github.com/abhisek/mathlab/internal/topics/inequalities"
	"github.com/abhisek/mathlab/internal/topics/intervals"
)

// ErrUnknownTopic is returned by Find for an unregistered ID.
var ErrUnknownTopic = errors.New("unknown topic")

// RuleKind selects how a level is passed.
type RuleKind int

const (
	// SinglePass passes a level on one clean answer.
	SinglePass RuleKind = iota

	// Streak passes a level after Threshold clean answers in a row.
	Streak
)

// DefaultStreakThreshold is the number of clean answers the inequalities
// topic needs per level.
const DefaultStreakThreshold = 3

// Rule is a topic's unlock rule.
type Rule struct {
	Kind      RuleKind
	Threshold int
	// PenalizeMistakes makes a correct answer after a wrong attempt on the
	// same problem count like a hinted one.
	PenalizeMistakes bool
}

// Required returns the number of clean answers needed to pass a level.
func (r Rule) Required() int {
	if r.Kind == Streak && r.Threshold > 0 {
		return r.Threshold
	}
	return 1
}

func (r Rule) String() string {
	if r.Kind == Streak {
		return fmt.Sprintf("%d clean answers in a row per level", r.Required())
	}
	if r.PenalizeMistakes {
		return "one answer per level without hints or mistakes"
	}
	return "one clean answer per level"
}

// Topic is one practice area.
type Topic struct {
	// ID is the short name used on the command line.
	ID    string
	Title string

	// Prefix namespaces the topic's persisted keys.
	Prefix string

	Levels *levels.Sequence
	Rule   Rule
}

// Registry holds the topics in display order.
type Registry struct {
	topics []Topic
}

// Option configures a registry.
type Option func(*Registry)

// WithStreakThreshold overrides the clean-answer count of streak topics.
func WithStreakThreshold(n int) Option {
	return func(reg *Registry) {
		for i := range reg.topics {
			if reg.topics[i].Rule.Kind == Streak {
				reg.topics[i].Rule.Threshold = n
			}
		}
	}
}

// New returns the registry of all four topics.
func New(opts ...Option) *Registry {
	reg := &Registry{topics: []Topic{
		{
			ID:     "ap",
			Title:  "Arithmetic progression",
			Prefix: "mathlab_ap",
			Levels: arithmetic.Sequence(),
			Rule:   Rule{Kind: SinglePass},
		},
		{
			ID:     "geo",
			Title:  "Geometric progression",
			Prefix: "mathlab_geo",
			Levels: geometric.Sequence(),
			Rule:   Rule{Kind: SinglePass},
		},
		{
			ID:     "inequalities",
			Title:  "Inequalities",
			Prefix: "inequalities",
			Levels: inequalities.Sequence(),
			Rule:   Rule{Kind: Streak, Threshold: DefaultStreakThreshold},
		},
		{
			ID:     "intervals",
			Title:  "Intervals",
			Prefix: "intervals",
			Levels: intervals.Sequence(),
			Rule:   Rule{Kind: SinglePass, PenalizeMistakes: true},
		},
	}}
	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// All returns every topic in display order.
func (reg *Registry) All() []Topic {
	return reg.topics
}

// IDs returns the topic IDs in display order.
func (reg *Registry) IDs() []string {
	ids := make([]string, len(reg.topics))
	for i, t := range reg.topics {
		ids[i] = t.ID
	}
	return ids
}

// Find looks a topic up by ID, case-insensitively.
func (reg *Registry) Find(id string) (Topic, error) {
	for _, t := range reg.topics {
		if strings.EqualFold(t.ID, id) {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("%w %q (want one of %s)", ErrUnknownTopic, id, strings.Join(reg.IDs(), ", "))
}
