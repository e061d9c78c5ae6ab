package progress

import (
	"errors"
	"strconv"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/abhisek/mathlab/internal/levels"
	mock_progress "github.com/abhisek/mathlab/internal/mocks/progress"
	"github.com/abhisek/mathlab/internal/problem"
	"github.com/abhisek/mathlab/internal/topics"
)

const prefix = "t"

func numberLevel(category string) levels.Level {
	return levels.Level{
		Category: category,
		Generate: func(r *problem.Rand) *problem.Problem {
			return problem.Number(
				problem.T("stub.question"),
				"7",
				problem.T("stub.hint"),
				problem.T("stub.answer", "7"),
			)
		},
	}
}

func setLevel(category string) levels.Level {
	return levels.Level{
		Category: category,
		Generate: func(r *problem.Rand) *problem.Problem {
			return problem.MultiSelect(
				problem.T("stub.question"),
				[]string{"1", "2"},
				[]string{"1", "2", "3"},
				problem.T("stub.hint"),
				problem.T("stub.answer", "1, 2"),
			)
		},
	}
}

func config(kind topics.RuleKind, lvls ...levels.Level) Config {
	if len(lvls) == 0 {
		lvls = []levels.Level{numberLevel("Level 1"), numberLevel("Level 2"), numberLevel("Level 3")}
	}
	return Config{
		Prefix: prefix,
		Levels: levels.New(lvls...),
		Rule:   topics.Rule{Kind: kind, Threshold: 3},
	}
}

func newMachine(t *testing.T, cfg Config, store Storage) *Machine {
	t.Helper()
	log, _ := test.NewNullLogger()
	return New(cfg, store, WithRand(problem.NewRand(1)), WithLogger(log))
}

func TestNew_Defaults(t *testing.T) {
	m := newMachine(t, config(topics.SinglePass), NewMemoryStorage())

	assert.Equal(t, 0, m.Level())
	assert.Equal(t, 0, m.MaxLevel())
	assert.Equal(t, 0, m.Streak())
	assert.Zero(t, m.Progress())
	assert.True(t, m.ShowWelcome())
	assert.Equal(t, PhaseUnanswered, m.Phase())
	assert.Equal(t, "Level 1", m.Category())
	assert.Equal(t, "Level 1", m.Problem().Category)
	assert.Equal(t, []Action{ActionSubmit, ActionHint}, m.Actions())
}

func TestNew_Restore(t *testing.T) {
	store := NewMemoryStorage()
	store.Set(Key(prefix, FieldLevel), "2")
	store.Set(Key(prefix, FieldMaxLevel), "1")
	store.Set(Key(prefix, FieldProgress), "10")
	store.Set(Key(prefix, FieldStreak), "4")
	store.Set(Key(prefix, FieldShowModal), "false")

	m := newMachine(t, config(topics.SinglePass), store)

	assert.Equal(t, 2, m.Level())
	assert.Equal(t, 2, m.MaxLevel(), "max level is at least the saved level")
	assert.Equal(t, 4, m.Streak())
	assert.False(t, m.ShowWelcome())
	assert.InDelta(t, 200.0/3, m.Progress(), 1e-9, "progress floor follows the max level")
}

func TestNew_SavesCorrectedValues(t *testing.T) {
	store := NewMemoryStorage()
	store.Set(Key(prefix, FieldLevel), "2")
	store.Set(Key(prefix, FieldMaxLevel), "0")
	store.Set(Key(prefix, FieldProgress), "0")

	m := newMachine(t, config(topics.SinglePass), store)
	require.Equal(t, 2, m.MaxLevel())

	got, _ := store.Get(Key(prefix, FieldMaxLevel))
	assert.Equal(t, "2", got)
	got, _ = store.Get(Key(prefix, FieldProgress))
	assert.Equal(t, strconv.FormatFloat(200.0/3, 'f', -1, 64), got)
	got, _ = store.Get(Key(prefix, FieldLevel))
	assert.Equal(t, "2", got)
}

func TestNew_ClampedLevelSaved(t *testing.T) {
	store := NewMemoryStorage()
	store.Set(Key(prefix, FieldLevel), "9")

	newMachine(t, config(topics.SinglePass), store)
	got, _ := store.Get(Key(prefix, FieldLevel))
	assert.Equal(t, "2", got)
	got, _ = store.Get(Key(prefix, FieldMaxLevel))
	assert.Equal(t, "2", got)
}

func TestNew_MalformedValues(t *testing.T) {
	store := NewMemoryStorage()
	store.Set(Key(prefix, FieldLevel), "two")
	store.Set(Key(prefix, FieldProgress), "lots")
	store.Set(Key(prefix, FieldShowModal), "maybe")

	log, hook := test.NewNullLogger()
	m := New(config(topics.SinglePass), store, WithRand(problem.NewRand(1)), WithLogger(log))

	assert.Equal(t, 0, m.Level())
	assert.Zero(t, m.Progress())
	assert.True(t, m.ShowWelcome())
	assert.Len(t, hook.Entries, 3)
}

func TestNew_ClampsLevel(t *testing.T) {
	store := NewMemoryStorage()
	store.Set(Key(prefix, FieldLevel), "9")
	store.Set(Key(prefix, FieldMaxLevel), "9")

	m := newMachine(t, config(topics.SinglePass), store)
	assert.Equal(t, 2, m.Level())
	assert.Equal(t, 2, m.MaxLevel())
}

func TestSubmit_CleanPassesLevel(t *testing.T) {
	m := newMachine(t, config(topics.SinglePass), NewMemoryStorage())

	out := m.Submit(" 7 ")
	require.False(t, out.Ignored)
	assert.True(t, out.Result.Correct)
	assert.Equal(t, PhaseUnanswered, out.Transition.From)
	assert.Equal(t, PhaseAnsweredClean, out.Transition.To)
	assert.Equal(t, "level-passed", out.Transition.Trigger)
	assert.Equal(t, 1, out.Transition.Unlocked)
	assert.Equal(t, "feedback.passed", out.Feedback.Key)

	assert.True(t, m.Passed())
	assert.Equal(t, 1, m.Streak())
	assert.Equal(t, 1, m.MaxLevel())
	assert.InDelta(t, 100.0/3, m.Progress(), 1e-9)
	assert.Equal(t, []int{0, 1}, m.Revealed(), "all hints shown after answering")
	assert.Equal(t, []Action{ActionNextLevel}, m.Actions())

	require.NoError(t, m.NextLevel())
	assert.Equal(t, 1, m.Level())
	assert.Equal(t, PhaseUnanswered, m.Phase())
	assert.Empty(t, m.Revealed())
}

func TestSubmit_Wrong(t *testing.T) {
	store := NewMemoryStorage()
	store.Set(Key(prefix, FieldStreak), "5")
	m := newMachine(t, config(topics.SinglePass), store)

	out := m.Submit("3")
	assert.False(t, out.Result.Correct)
	assert.Equal(t, "wrong", out.Transition.Trigger)
	assert.Equal(t, "feedback.wrong", out.Feedback.Key)
	assert.Equal(t, PhaseUnanswered, m.Phase())
	assert.Equal(t, 0, m.Streak())
	assert.True(t, m.MadeMistake())
	assert.Empty(t, m.Revealed(), "wrong answers reveal nothing")

	got, _ := store.Get(Key(prefix, FieldStreak))
	assert.Equal(t, "0", got)

	out = m.Submit("")
	assert.False(t, out.Ignored)
	assert.False(t, out.Result.Correct)
}

func TestSubmit_WithHints(t *testing.T) {
	m := newMachine(t, config(topics.SinglePass), NewMemoryStorage())

	i, ok := m.RevealHint()
	require.True(t, ok)
	assert.Equal(t, 0, i)

	out := m.Submit("7")
	assert.Equal(t, PhaseAnsweredWithHints, out.Transition.To)
	assert.Equal(t, "feedback.hinted", out.Feedback.Key)
	assert.False(t, m.Passed())
	assert.Equal(t, 0, m.MaxLevel())
	assert.Equal(t, []int{0, 1}, m.Revealed())
	assert.Equal(t, []Action{ActionRepeat}, m.Actions())
	assert.True(t, errors.Is(m.NextLevel(), ErrNotPassed))

	assert.True(t, m.Submit("7").Ignored, "answered problems take no more submissions")

	m.Repeat()
	assert.Equal(t, PhaseUnanswered, m.Phase())
	assert.Equal(t, 0, m.Level())
}

func mistakeConfig(lvls ...levels.Level) Config {
	cfg := config(topics.SinglePass, lvls...)
	cfg.Rule.PenalizeMistakes = true
	return cfg
}

func TestSubmit_CorrectAfterMistake(t *testing.T) {
	m := newMachine(t, mistakeConfig(setLevel("Level 1"), setLevel("Level 2")), NewMemoryStorage())

	assert.False(t, m.SubmitSet([]string{"3"}).Result.Correct)
	out := m.SubmitSet([]string{"1", "2"})
	assert.True(t, out.Result.Correct)
	assert.Equal(t, PhaseAnsweredWithHints, out.Transition.To)
	assert.Equal(t, "after-mistake", out.Transition.Trigger)
	assert.Equal(t, "feedback.mistake", out.Feedback.Key)
	assert.Equal(t, -1, out.Transition.Unlocked)
	assert.False(t, m.Passed())
	assert.Equal(t, 0, m.MaxLevel())
	assert.Equal(t, 0, m.Streak())
	assert.Zero(t, m.Progress())
	assert.Equal(t, []Action{ActionRepeat}, m.Actions())

	// A fresh problem starts clean again.
	m.Repeat()
	assert.False(t, m.MadeMistake())
	out = m.SubmitSet([]string{"2", "1"})
	assert.Equal(t, "level-passed", out.Transition.Trigger)
	assert.Equal(t, 1, m.MaxLevel())
}

func TestSubmit_CorrectAfterMistakeWithoutPenalty(t *testing.T) {
	m := newMachine(t, config(topics.SinglePass, setLevel("Level 1"), setLevel("Level 2")), NewMemoryStorage())

	m.SubmitSet([]string{"3"})
	out := m.SubmitSet([]string{"1", "2"})
	assert.Equal(t, "level-passed", out.Transition.Trigger)
	assert.True(t, m.Passed())
}

func TestLogFields_LevelIndex(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	m := New(config(topics.SinglePass), NewMemoryStorage(), WithRand(problem.NewRand(1)), WithLogger(log))

	m.Submit("1")
	m.Submit("7")
	require.NotEmpty(t, hook.Entries)
	for _, e := range hook.AllEntries() {
		assert.NotContains(t, e.Data, "level", e.Message)
	}
	last := hook.LastEntry()
	assert.Equal(t, "level passed", last.Message)
	assert.Equal(t, 0, last.Data["level_index"])
}

func TestRevealHint_Exhausted(t *testing.T) {
	m := newMachine(t, config(topics.SinglePass), NewMemoryStorage())

	for want := 0; want < 2; want++ {
		i, ok := m.RevealHint()
		require.True(t, ok)
		assert.Equal(t, want, i)
	}
	_, ok := m.RevealHint()
	assert.False(t, ok)
	assert.Equal(t, []int{0, 1}, m.Revealed())
	assert.Equal(t, []Action{ActionRepeat}, m.Actions())
	assert.True(t, m.Submit("7").Ignored)
}

func TestSubmitSet_Mismatch(t *testing.T) {
	m := newMachine(t, config(topics.SinglePass, setLevel("Level 1"), setLevel("Level 2")), NewMemoryStorage())

	assert.Equal(t, "feedback.missing", m.SubmitSet([]string{"1"}).Feedback.Key)
	assert.Equal(t, "feedback.extra", m.SubmitSet([]string{"1", "2", "3"}).Feedback.Key)
	assert.Equal(t, "feedback.both", m.SubmitSet([]string{"1", "3"}).Feedback.Key)

	out := m.SubmitSet([]string{"2", "1"})
	assert.True(t, out.Result.Correct)
	assert.True(t, m.Passed())
	assert.InDelta(t, 50.0, m.Progress(), 1e-9)
}

func TestStreakRule_ThreeInARow(t *testing.T) {
	m := newMachine(t, config(topics.Streak), NewMemoryStorage())

	out := m.Submit("7")
	assert.Equal(t, "clean", out.Transition.Trigger)
	assert.Equal(t, "feedback.streak", out.Feedback.Key)
	assert.Equal(t, []string{"1", "3"}, out.Feedback.Args)
	assert.Equal(t, []Action{ActionNextProblem}, m.Actions())
	assert.False(t, m.Passed())
	assert.Equal(t, 0, m.MaxLevel())

	// A hint on the second problem restarts the count.
	m.NextProblem()
	_, ok := m.RevealHint()
	require.True(t, ok)
	assert.Equal(t, 0, m.LevelStreak())
	m.Submit("7")
	assert.Equal(t, 0, m.LevelStreak())
	assert.Equal(t, 0, m.Streak())

	for i := 1; i <= 3; i++ {
		m.Repeat()
		m.Submit("7")
		assert.Equal(t, i, m.LevelStreak())
	}
	assert.True(t, m.Passed())
	assert.Equal(t, 1, m.MaxLevel())
	assert.Equal(t, 3, m.Streak())

	require.NoError(t, m.NextLevel())
	assert.Equal(t, 0, m.LevelStreak(), "level streak resets on a level change")
	assert.Equal(t, 3, m.Streak())
}

func TestStreakRule_WrongResets(t *testing.T) {
	m := newMachine(t, config(topics.Streak), NewMemoryStorage())

	m.Submit("7")
	m.NextProblem()
	m.Submit("7")
	require.Equal(t, 2, m.LevelStreak())

	m.NextProblem()
	m.Submit("1")
	assert.Equal(t, 0, m.LevelStreak())
	assert.Equal(t, 0, m.Streak())
}

func TestSelectLevel(t *testing.T) {
	store := NewMemoryStorage()
	store.Set(Key(prefix, FieldMaxLevel), "1")
	store.Set(Key(prefix, FieldLevelStreak), "2")
	store.Set(Key(prefix, FieldStreak), "4")
	m := newMachine(t, config(topics.Streak), store)

	err := m.SelectLevel(2)
	assert.True(t, errors.Is(err, ErrLevelLocked))
	assert.Error(t, m.SelectLevel(-1))
	assert.Equal(t, 0, m.Level())

	require.NoError(t, m.SelectLevel(1))
	assert.Equal(t, 1, m.Level())
	assert.Equal(t, 1, m.MaxLevel())
	assert.Equal(t, 4, m.Streak())
	assert.Equal(t, 0, m.LevelStreak())

	got, _ := store.Get(Key(prefix, FieldLevel))
	assert.Equal(t, "1", got)
}

func TestGameComplete(t *testing.T) {
	m := newMachine(t, config(topics.SinglePass), NewMemoryStorage())

	for level := 0; level < 3; level++ {
		require.Equal(t, level, m.Level())
		m.Submit("7")
		require.NoError(t, m.NextLevel())
	}
	assert.True(t, m.GameComplete())
	assert.Nil(t, m.Actions())
	assert.Equal(t, 2, m.Level())
	assert.Equal(t, 2, m.MaxLevel())
	assert.InDelta(t, 100.0, m.Progress(), 1e-9)

	m.LeaveComplete()
	assert.False(t, m.GameComplete())
	assert.Equal(t, 2, m.Level())
	assert.Equal(t, 3, m.Streak())
	assert.Equal(t, []Action{ActionNextLevel}, m.Actions())
}

func TestDismissWelcome(t *testing.T) {
	store := NewMemoryStorage()
	m := newMachine(t, config(topics.SinglePass), store)

	m.DismissWelcome()
	assert.False(t, m.ShowWelcome())
	got, _ := store.Get(Key(prefix, FieldShowModal))
	assert.Equal(t, "false", got)

	again := newMachine(t, config(topics.SinglePass), store)
	assert.False(t, again.ShowWelcome())
}

func TestWriteThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_progress.NewMockStorage(ctrl)

	store.EXPECT().Get(gomock.Any()).Return("", false).Times(len(Fields))
	gomock.InOrder(
		store.EXPECT().Set("t_streak", "1"),
		store.EXPECT().Set("t_max_level", "1"),
		store.EXPECT().Set("t_progress", "50"),
		store.EXPECT().Set("t_level", "1"),
		store.EXPECT().Set("t_streak", "0"),
		store.EXPECT().Set("t_showModal", "false"),
	)

	m := newMachine(t, config(topics.SinglePass, numberLevel("Level 1"), numberLevel("Level 2")), store)
	m.Submit("7")
	require.NoError(t, m.NextLevel())
	m.Submit("0")
	// Unchanged fields are not written again.
	m.Submit("0")
	m.DismissWelcome()
	m.DismissWelcome()
}

func TestInvariants_RandomWalk(t *testing.T) {
	for _, kind := range []topics.RuleKind{topics.SinglePass, topics.Streak} {
		m := newMachine(t, config(kind), NewMemoryStorage())
		r := problem.NewRand(42)
		prev := m.Progress()

		for step := 0; step < 2000; step++ {
			switch r.Int(0, 6) {
			case 0:
				m.Submit("7")
			case 1:
				m.Submit("1")
			case 2:
				m.RevealHint()
			case 3:
				_ = m.NextLevel()
			case 4:
				m.Repeat()
			case 5:
				_ = m.SelectLevel(r.Int(0, 2))
			default:
				m.LeaveComplete()
			}

			require.GreaterOrEqual(t, m.MaxLevel(), m.Level(), "step %d", step)
			require.GreaterOrEqual(t, m.Progress(), prev, "step %d", step)
			require.LessOrEqual(t, m.Progress(), 100.0)
			prev = m.Progress()
		}
	}
}
