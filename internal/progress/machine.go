// Package progress tracks a learner's way through one topic's levels:
// the current problem and its hints, streaks, unlocked levels and the
// progress percentage, written through to a Storage on every change.
package progress

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/mathlab/internal/answer"
	"github.com/abhisek/mathlab/internal/levels"
	"github.com/abhisek/mathlab/internal/problem"
	"github.com/abhisek/mathlab/internal/topics"
)

var (
	// ErrLevelLocked is returned when selecting a level above the highest
	// unlocked one.
	ErrLevelLocked = errors.New("level is locked")

	// ErrNotPassed is returned by NextLevel before the level is passed.
	ErrNotPassed = errors.New("level not passed")
)

// Persisted field names. The storage key is "<prefix>_<field>".
const (
	FieldLevel       = "level"
	FieldProgress    = "progress"
	FieldStreak      = "streak"
	FieldShowModal   = "showModal"
	FieldMaxLevel    = "max_level"
	FieldLevelStreak = "level_streak"
)

// Fields lists every persisted field.
var Fields = []string{FieldLevel, FieldProgress, FieldStreak, FieldShowModal, FieldMaxLevel, FieldLevelStreak}

// Key returns the storage key of a field.
func Key(prefix, field string) string {
	return prefix + "_" + field
}

// Config describes one topic to the machine.
type Config struct {
	Prefix string
	Levels *levels.Sequence
	Rule   topics.Rule
}

// ConfigFor returns the machine configuration of a topic.
func ConfigFor(t topics.Topic) Config {
	return Config{Prefix: t.Prefix, Levels: t.Levels, Rule: t.Rule}
}

// Option configures a Machine.
type Option func(*Machine)

// WithRand sets the random source problems are generated from.
func WithRand(r *problem.Rand) Option {
	return func(m *Machine) { m.rand = r }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Machine) { m.log = l }
}

// Machine is the progression state of one topic session. It is not safe
// for concurrent use.
type Machine struct {
	cfg   Config
	store Storage
	rand  *problem.Rand
	log   logrus.FieldLogger

	level       int
	maxLevel    int
	streak      int
	levelStreak int
	progress    float64
	showModal   bool

	problem      *problem.Problem
	revealed     []int
	phase        Phase
	passed       bool
	mistake      bool
	gameComplete bool
}

// New restores a machine from storage and loads the first problem.
// Missing keys take their defaults; malformed values are logged and
// replaced by the default.
func New(cfg Config, store Storage, opts ...Option) *Machine {
	m := &Machine{cfg: cfg, store: store}
	for _, opt := range opts {
		opt(m)
	}
	if m.rand == nil {
		m.rand = problem.NewTimeRand()
	}
	if m.log == nil {
		m.log = logrus.StandardLogger()
	}
	m.log = m.log.WithField("topic", cfg.Prefix)

	n := cfg.Levels.Count()
	level := m.loadInt(FieldLevel, 0)
	maxLevel := m.loadInt(FieldMaxLevel, 0)
	progress := m.loadFloat(FieldProgress, 0)

	m.level = clamp(level, 0, n-1)
	m.maxLevel = clamp(max(maxLevel, m.level), 0, n-1)
	m.streak = max(m.loadInt(FieldStreak, 0), 0)
	m.levelStreak = max(m.loadInt(FieldLevelStreak, 0), 0)
	m.showModal = m.loadBool(FieldShowModal, true)
	m.progress = math.Min(math.Max(progress, m.floor()), 100)

	// Corrected values are saved so that storage agrees with the machine.
	if m.level != level {
		m.save(FieldLevel, strconv.Itoa(m.level))
	}
	if m.maxLevel != maxLevel {
		m.save(FieldMaxLevel, strconv.Itoa(m.maxLevel))
	}
	if m.progress != progress {
		m.save(FieldProgress, strconv.FormatFloat(m.progress, 'f', -1, 64))
	}

	m.loadProblem()
	return m
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func (m *Machine) load(field string) (string, bool) {
	return m.store.Get(Key(m.cfg.Prefix, field))
}

func (m *Machine) loadInt(field string, def int) int {
	s, ok := m.load(field)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		m.log.WithField("key", field).WithError(err).Warn("malformed saved value")
		return def
	}
	return v
}

func (m *Machine) loadFloat(field string, def float64) float64 {
	s, ok := m.load(field)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		m.log.WithField("key", field).WithError(err).Warn("malformed saved value")
		return def
	}
	return v
}

func (m *Machine) loadBool(field string, def bool) bool {
	s, ok := m.load(field)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		m.log.WithField("key", field).WithError(err).Warn("malformed saved value")
		return def
	}
	return v
}

func (m *Machine) save(field, value string) {
	m.store.Set(Key(m.cfg.Prefix, field), value)
}

// Setters write through only when the value changes.

func (m *Machine) setLevel(v int) {
	if v != m.level {
		m.level = v
		m.save(FieldLevel, strconv.Itoa(v))
	}
}

func (m *Machine) setMaxLevel(v int) {
	if v != m.maxLevel {
		m.maxLevel = v
		m.save(FieldMaxLevel, strconv.Itoa(v))
	}
}

func (m *Machine) setStreak(v int) {
	if v != m.streak {
		m.streak = v
		m.save(FieldStreak, strconv.Itoa(v))
	}
}

func (m *Machine) setLevelStreak(v int) {
	if v != m.levelStreak {
		m.levelStreak = v
		m.save(FieldLevelStreak, strconv.Itoa(v))
	}
}

func (m *Machine) setProgress(v float64) {
	if v > m.progress {
		m.progress = v
		m.save(FieldProgress, strconv.FormatFloat(v, 'f', -1, 64))
	}
}

// floor is the progress implied by the highest unlocked level.
func (m *Machine) floor() float64 {
	return float64(m.maxLevel) / float64(m.cfg.Levels.Count()) * 100
}

// loadProblem generates a fresh problem for the current level and resets
// the per-problem state.
func (m *Machine) loadProblem() {
	p, err := m.cfg.Levels.Problem(m.level, m.rand)
	if err != nil {
		// Build hands back its last candidate, which is still playable.
		m.log.WithField("level_index", m.level).WithError(err).Warn("problem failed validation")
	}
	m.problem = p
	m.revealed = nil
	m.phase = PhaseUnanswered
	m.passed = false
	m.mistake = false
}

// Problem returns the current problem.
func (m *Machine) Problem() *problem.Problem { return m.problem }

// Level returns the current level index.
func (m *Machine) Level() int { return m.level }

// MaxLevel returns the highest unlocked level index.
func (m *Machine) MaxLevel() int { return m.maxLevel }

// LevelCount returns the number of levels of the topic.
func (m *Machine) LevelCount() int { return m.cfg.Levels.Count() }

// Category returns the label of the current level.
func (m *Machine) Category() string { return m.cfg.Levels.CategoryAt(m.level) }

// Categories returns every level label.
func (m *Machine) Categories() []string { return m.cfg.Levels.Categories() }

// Streak returns the count of clean answers in a row across levels.
func (m *Machine) Streak() int { return m.streak }

// LevelStreak returns the count of clean answers in a row on this level.
func (m *Machine) LevelStreak() int { return m.levelStreak }

// Required returns the clean answers needed to pass a level.
func (m *Machine) Required() int { return m.cfg.Rule.Required() }

// Progress returns the progress percentage.
func (m *Machine) Progress() float64 { return m.progress }

// ShowWelcome reports whether the welcome message is still to be shown.
func (m *Machine) ShowWelcome() bool { return m.showModal }

// Phase returns the state of the current problem.
func (m *Machine) Phase() Phase { return m.phase }

// Passed reports whether the current level has been passed.
func (m *Machine) Passed() bool { return m.passed }

// MadeMistake reports whether a wrong answer was submitted for the
// current problem.
func (m *Machine) MadeMistake() bool { return m.mistake }

// GameComplete reports whether the last level was passed and the learner
// moved on from it.
func (m *Machine) GameComplete() bool { return m.gameComplete }

// Revealed returns the revealed hint indices in reveal order.
func (m *Machine) Revealed() []int {
	return append([]int(nil), m.revealed...)
}

// HintsExhausted reports whether every hint is shown.
func (m *Machine) HintsExhausted() bool {
	return len(m.revealed) >= len(m.problem.Hints)
}

// Actions returns the forward controls available now.
func (m *Machine) Actions() []Action {
	switch {
	case m.gameComplete:
		return nil
	case m.phase == PhaseUnanswered && m.HintsExhausted():
		return []Action{ActionRepeat}
	case m.phase == PhaseUnanswered:
		return []Action{ActionSubmit, ActionHint}
	case m.phase == PhaseAnsweredWithHints:
		return []Action{ActionRepeat}
	case m.passed:
		return []Action{ActionNextLevel}
	default:
		return []Action{ActionNextProblem}
	}
}

// RevealHint shows the next hidden hint and returns its index. Using a
// hint ends the current run of clean answers.
func (m *Machine) RevealHint() (int, bool) {
	if m.phase != PhaseUnanswered || m.HintsExhausted() {
		return 0, false
	}
	i := len(m.revealed)
	m.revealed = append(m.revealed, i)
	m.setStreak(0)
	m.setLevelStreak(0)
	return i, true
}

func (m *Machine) revealAll() {
	for i := len(m.revealed); i < len(m.problem.Hints); i++ {
		m.revealed = append(m.revealed, i)
	}
}

// Submit checks a typed or chosen answer. A MULTI_SELECT answer is the
// selection separated by ";", whitespace or ", ".
func (m *Machine) Submit(submitted string) Outcome {
	if !m.accepting() {
		return Outcome{Ignored: true}
	}
	return m.apply(answer.Check(m.problem, submitted))
}

// SubmitSet checks a MULTI_SELECT selection.
func (m *Machine) SubmitSet(values []string) Outcome {
	if !m.accepting() {
		return Outcome{Ignored: true}
	}
	return m.apply(answer.CheckSet(m.problem.AnswerSet, values))
}

func (m *Machine) accepting() bool {
	return !m.gameComplete && m.phase == PhaseUnanswered && !m.HintsExhausted()
}

func (m *Machine) apply(res answer.Result) Outcome {
	out := Outcome{Result: res, Transition: Transition{From: m.phase, Unlocked: -1}}

	if !res.Correct {
		m.mistake = true
		m.setStreak(0)
		m.setLevelStreak(0)
		out.Transition.To = PhaseUnanswered
		out.Transition.Trigger = "wrong"
		out.Feedback = wrongFeedback(res)
		m.log.WithField("level_index", m.level).Debug("wrong answer")
		return out
	}

	hinted := len(m.revealed) > 0
	late := m.cfg.Rule.PenalizeMistakes && m.mistake
	m.revealAll()
	if hinted || late {
		m.phase = PhaseAnsweredWithHints
		m.setStreak(0)
		m.setLevelStreak(0)
		out.Transition.To = m.phase
		out.Transition.Trigger = "hinted"
		out.Feedback = problem.T("feedback.hinted")
		if !hinted {
			out.Transition.Trigger = "after-mistake"
			out.Feedback = problem.T("feedback.mistake")
		}
		return out
	}

	m.phase = PhaseAnsweredClean
	out.Transition.To = m.phase
	out.Transition.Trigger = "clean"
	m.setStreak(m.streak + 1)

	if m.cfg.Rule.Kind == topics.Streak {
		m.setLevelStreak(m.levelStreak + 1)
		if m.levelStreak < m.Required() {
			out.Feedback = problem.T("feedback.streak", strconv.Itoa(m.levelStreak), strconv.Itoa(m.Required()))
			return out
		}
	}

	out.Transition.Trigger = "level-passed"
	out.Transition.Unlocked = m.pass()
	out.Feedback = problem.T("feedback.passed")
	m.log.WithFields(logrus.Fields{"level_index": m.level, "max_level": m.maxLevel}).Info("level passed")
	return out
}

// pass marks the level passed, unlocks the next one and raises the
// progress. It returns the unlocked index, or -1 on the last level.
func (m *Machine) pass() int {
	m.passed = true
	n := m.cfg.Levels.Count()
	unlocked := -1
	if next := m.level + 1; next < n {
		if next > m.maxLevel {
			unlocked = next
		}
		m.setMaxLevel(max(m.maxLevel, next))
	}
	m.setProgress(math.Min(100, float64(m.level+1)/float64(n)*100))
	return unlocked
}

func wrongFeedback(res answer.Result) problem.Text {
	switch res.Mismatch {
	case answer.MismatchMissing:
		return problem.T("feedback.missing")
	case answer.MismatchExtra:
		return problem.T("feedback.extra")
	case answer.MismatchBoth:
		return problem.T("feedback.both")
	}
	return problem.T("feedback.wrong")
}

// NextLevel moves past a passed level. Passing the last level completes
// the game instead.
func (m *Machine) NextLevel() error {
	if !m.passed {
		return ErrNotPassed
	}
	if m.level+1 >= m.cfg.Levels.Count() {
		m.gameComplete = true
		m.log.Info("topic complete")
		return nil
	}
	m.setLevel(m.level + 1)
	m.setLevelStreak(0)
	m.loadProblem()
	return nil
}

// NextProblem loads a fresh problem on the same level.
func (m *Machine) NextProblem() {
	m.loadProblem()
}

// Repeat loads a fresh problem on the same level after a hinted answer or
// after every hint was shown.
func (m *Machine) Repeat() {
	m.loadProblem()
}

// SelectLevel jumps to an unlocked level with a fresh problem. Streak and
// the unlocked levels are kept.
func (m *Machine) SelectLevel(i int) error {
	if i < 0 || i >= m.cfg.Levels.Count() {
		return fmt.Errorf("level %d out of range [0, %d)", i, m.cfg.Levels.Count())
	}
	if i > m.maxLevel {
		return fmt.Errorf("%w: %d (highest unlocked is %d)", ErrLevelLocked, i, m.maxLevel)
	}
	m.gameComplete = false
	m.setLevel(i)
	m.setLevelStreak(0)
	m.loadProblem()
	return nil
}

// LeaveComplete returns from the completion screen to the level view.
func (m *Machine) LeaveComplete() {
	m.gameComplete = false
}

// DismissWelcome hides the welcome message for good.
func (m *Machine) DismissWelcome() {
	if m.showModal {
		m.showModal = false
		m.save(FieldShowModal, strconv.FormatBool(false))
	}
}
