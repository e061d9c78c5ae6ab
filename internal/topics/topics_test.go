package topics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Topics(t *testing.T) {
	reg := New()
	require.Len(t, reg.All(), 4)

	counts := map[string]int{"ap": 10, "geo": 10, "inequalities": 8, "intervals": 5}
	prefixes := map[string]bool{}
	for _, tp := range reg.All() {
		assert.Equal(t, counts[tp.ID], tp.Levels.Count(), tp.ID)
		assert.False(t, prefixes[tp.Prefix], "duplicate prefix %s", tp.Prefix)
		prefixes[tp.Prefix] = true
	}
}

func TestRegistry_Find(t *testing.T) {
	reg := New()

	tp, err := reg.Find("Inequalities")
	require.NoError(t, err)
	assert.Equal(t, Streak, tp.Rule.Kind)
	assert.Equal(t, 3, tp.Rule.Required())

	_, err = reg.Find("calculus")
	assert.True(t, errors.Is(err, ErrUnknownTopic))
}

func TestWithStreakThreshold(t *testing.T) {
	reg := New(WithStreakThreshold(5))
	ineq, err := reg.Find("inequalities")
	require.NoError(t, err)
	assert.Equal(t, 5, ineq.Rule.Required())

	ap, err := reg.Find("ap")
	require.NoError(t, err)
	assert.Equal(t, 1, ap.Rule.Required(), "single-pass topics ignore the threshold")
}

func TestRule_String(t *testing.T) {
	assert.Equal(t, "one clean answer per level", Rule{Kind: SinglePass}.String())
	assert.Equal(t, "3 clean answers in a row per level", Rule{Kind: Streak, Threshold: 3}.String())
	assert.Equal(t, "one answer per level without hints or mistakes", Rule{Kind: SinglePass, PenalizeMistakes: true}.String())
}

func TestRegistry_MistakePenalty(t *testing.T) {
	reg := New()
	for _, tp := range reg.All() {
		assert.Equal(t, tp.ID == "intervals", tp.Rule.PenalizeMistakes, tp.ID)
	}
}
