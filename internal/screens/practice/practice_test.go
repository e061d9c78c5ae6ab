package practice

import (
	"slices"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/abhisek/mathlab/internal/content"
	"github.com/abhisek/mathlab/internal/expr"
	"github.com/abhisek/mathlab/internal/problem"
	"github.com/abhisek/mathlab/internal/progress"
	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/screens/complete"
	"github.com/abhisek/mathlab/internal/screens/levelmenu"
	"github.com/abhisek/mathlab/internal/topics"
)

const (
	viewWidth  = 100
	viewHeight = 40
)

// newScreen builds a practice screen on a fresh in-memory store. preset
// fields (level, max_level, ...) are stored before the machine starts.
func newScreen(t *testing.T, topicID string, preset map[string]string) (*PracticeScreen, *progress.Machine) {
	t.Helper()
	log, _ := test.NewNullLogger()
	topic, err := topics.New().Find(topicID)
	if err != nil {
		t.Fatal(err)
	}
	format, err := content.New("en", log)
	if err != nil {
		t.Fatal(err)
	}
	store := progress.NewMemoryStorage()
	for field, v := range preset {
		store.Set(progress.Key(topic.Prefix, field), v)
	}
	m := progress.New(progress.ConfigFor(topic), store, progress.WithRand(problem.NewRand(7)), progress.WithLogger(log))
	return New(topic, m, format, log), m
}

func keyMsg(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func send(t *testing.T, p *PracticeScreen, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var s any
		s, cmd = p.Update(msg)
		if s != p {
			t.Fatal("practice screen should stay on the stack")
		}
	}
	return cmd
}

func typeText(t *testing.T, p *PracticeScreen, s string) {
	t.Helper()
	for _, r := range s {
		send(t, p, keyMsg(r))
	}
}

// pick presses the digit of option i.
func pick(t *testing.T, p *PracticeScreen, i int) {
	t.Helper()
	send(t, p, keyMsg(rune('1'+i)))
}

func answerIndex(t *testing.T, prob *problem.Problem) int {
	t.Helper()
	i := slices.Index(prob.Options, prob.Answer)
	if i < 0 {
		t.Fatalf("answer %q not among options %v", prob.Answer, prob.Options)
	}
	return i
}

func pushed(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg.Screen
}

func TestChoice_CorrectAnswerPassesLevel(t *testing.T) {
	p, m := newScreen(t, "ap", nil)
	prob := m.Problem()
	if prob.Kind != problem.KindChoice {
		t.Fatalf("level 1 should be a choice problem, got %s", prob.Kind)
	}

	pick(t, p, answerIndex(t, prob))
	send(t, p, enter())

	if !m.Passed() || m.MaxLevel() != 1 {
		t.Fatalf("level should be passed, passed=%v max=%d", m.Passed(), m.MaxLevel())
	}
	view := p.View(viewWidth, viewHeight)
	for _, want := range []string{"Level passed", "Level 2 is unlocked", "Next level [enter]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}

	send(t, p, enter())
	if m.Level() != 1 {
		t.Fatalf("enter should move to level 2, at %d", m.Level()+1)
	}
	if p.problemID != m.Problem().ID {
		t.Error("widgets should follow the new problem")
	}
	if m.Problem().Kind != problem.KindInput {
		t.Errorf("level 2 should be typed, got %s", m.Problem().Kind)
	}
}

func TestChoice_WrongAnswerKeepsProblem(t *testing.T) {
	p, m := newScreen(t, "ap", nil)
	prob := m.Problem()
	right := answerIndex(t, prob)
	wrong := (right + 1) % len(prob.Options)

	pick(t, p, wrong)
	send(t, p, enter())

	if m.Phase() != progress.PhaseUnanswered || !m.MadeMistake() {
		t.Fatalf("wrong answer should keep the problem open, phase=%s", m.Phase())
	}
	if m.Problem().ID != prob.ID {
		t.Fatal("wrong answer should not change the problem")
	}
	if !strings.Contains(p.View(viewWidth, viewHeight), "Not quite") {
		t.Error("wrong answer feedback missing")
	}

	pick(t, p, right)
	send(t, p, enter())
	if !m.Passed() {
		t.Error("a mistake without hints should not block passing")
	}
}

func TestNumberInput(t *testing.T) {
	p, m := newScreen(t, "ap", map[string]string{progress.FieldLevel: "1", progress.FieldMaxLevel: "1"})
	prob := m.Problem()
	if prob.Input != problem.InputNumber {
		t.Fatalf("expected a number problem, got %q", prob.Input)
	}

	// Empty submissions are not judged.
	send(t, p, enter())
	if m.MadeMistake() {
		t.Fatal("empty answer should be ignored")
	}

	typeText(t, p, prob.Answer)
	send(t, p, enter())
	if m.Phase() != progress.PhaseAnsweredClean {
		t.Fatalf("phase = %s, want %s", m.Phase(), progress.PhaseAnsweredClean)
	}
}

func TestNumberInput_DropsLetters(t *testing.T) {
	p, m := newScreen(t, "ap", map[string]string{progress.FieldLevel: "1", progress.FieldMaxLevel: "1"})
	typeText(t, p, "abc")
	if p.input.Value() != "" {
		t.Errorf("letters should be dropped, got %q", p.input.Value())
	}
	if m.MadeMistake() {
		t.Error("typing should not submit")
	}
}

func TestInequalityInput(t *testing.T) {
	p, m := newScreen(t, "inequalities", map[string]string{progress.FieldLevel: "1", progress.FieldMaxLevel: "1"})
	prob := m.Problem()
	if prob.Input != problem.InputInequality {
		t.Fatalf("expected an inequality problem, got %q", prob.Input)
	}

	fields := strings.Fields(prob.Answer)
	if len(fields) != 3 {
		t.Fatalf("unexpected answer %q", prob.Answer)
	}
	target, ok := expr.ParseOp(fields[1])
	if !ok {
		t.Fatalf("unexpected operator in %q", prob.Answer)
	}
	for i := 0; p.op != target && i < len(expr.Ops); i++ {
		send(t, p, tea.KeyPressMsg{Code: tea.KeyTab})
	}
	typeText(t, p, fields[2])
	send(t, p, enter())

	if m.Phase() != progress.PhaseAnsweredClean {
		t.Fatalf("phase = %s, want %s", m.Phase(), progress.PhaseAnsweredClean)
	}
	if m.Passed() {
		t.Error("streak topics need more than one clean answer")
	}
	view := p.View(viewWidth, viewHeight)
	if !strings.Contains(view, "1 of 3 in a row") || !strings.Contains(view, "in a row 1/3") {
		t.Error("streak progress should be shown")
	}

	send(t, p, enter())
	if m.Level() != 1 || m.Problem().ID == prob.ID {
		t.Error("enter should load the next problem on the same level")
	}
}

func TestPickOp(t *testing.T) {
	p, _ := newScreen(t, "inequalities", map[string]string{progress.FieldLevel: "1", progress.FieldMaxLevel: "1"})
	steps := []struct {
		key  string
		want expr.Op
	}{
		{"<", expr.Le},
		{"<", expr.Lt},
		{">", expr.Gt},
		{"=", expr.Ge},
		{"tab", expr.Lt},
		{"tab", expr.Gt},
	}
	for _, s := range steps {
		if !p.pickOp(s.key) {
			t.Fatalf("%q should be handled", s.key)
		}
		if p.op != s.want {
			t.Fatalf("after %q op = %s, want %s", s.key, p.op, s.want)
		}
	}
	if p.pickOp("5") {
		t.Error("digits belong to the value")
	}
}

func TestMultiSelect(t *testing.T) {
	p, m := newScreen(t, "intervals", nil)
	prob := m.Problem()
	if prob.Kind != problem.KindMultiSelect {
		t.Fatalf("expected a multi-select problem, got %s", prob.Kind)
	}
	for i, o := range prob.Options {
		if slices.Contains(prob.AnswerSet, o) {
			pick(t, p, i)
		}
	}
	if !strings.Contains(p.View(viewWidth, viewHeight), "[x]") {
		t.Error("picked options should be marked")
	}
	send(t, p, enter())
	if !m.Passed() {
		t.Fatalf("full selection should pass, phase=%s", m.Phase())
	}
}

func TestMultiSelect_Missing(t *testing.T) {
	p, m := newScreen(t, "intervals", nil)
	send(t, p, enter())
	if m.Phase() != progress.PhaseUnanswered {
		t.Fatal("empty selection should be wrong")
	}
	if !strings.Contains(p.View(viewWidth, viewHeight), "Some correct values are missing") {
		t.Error("missing values should be reported")
	}
}

func TestHints_ExhaustThenRepeat(t *testing.T) {
	p, m := newScreen(t, "ap", map[string]string{progress.FieldStreak: "4"})
	prob := m.Problem()

	send(t, p, keyMsg('?'))
	if m.Streak() != 0 {
		t.Error("a hint should reset the streak")
	}
	if !strings.Contains(p.View(viewWidth, viewHeight), "Hint 1/") {
		t.Error("first hint should be shown")
	}
	for range prob.Hints[1:] {
		send(t, p, keyMsg('?'))
	}
	if !m.HintsExhausted() {
		t.Fatal("every hint should be shown")
	}
	if !strings.Contains(p.View(viewWidth, viewHeight), "All hints are shown") {
		t.Error("exhausted hints should be announced")
	}

	// Enter now offers a fresh problem instead of checking.
	pick(t, p, answerIndex(t, prob))
	send(t, p, enter())
	if m.Passed() {
		t.Fatal("no answer is accepted once every hint is shown")
	}
	if m.Problem().ID == prob.ID || len(m.Revealed()) != 0 {
		t.Error("enter should load a fresh problem")
	}
	if m.Level() != 0 {
		t.Error("repeat stays on the level")
	}
}

func TestHintedAnswerRequiresRepeat(t *testing.T) {
	p, m := newScreen(t, "ap", nil)
	prob := m.Problem()

	send(t, p, keyMsg('?'))
	pick(t, p, answerIndex(t, prob))
	send(t, p, enter())

	if m.Phase() != progress.PhaseAnsweredWithHints || m.Passed() {
		t.Fatalf("phase = %s passed = %v", m.Phase(), m.Passed())
	}
	if !strings.Contains(p.View(viewWidth, viewHeight), "you used hints") {
		t.Error("hinted answer feedback missing")
	}
	send(t, p, enter())
	if m.Problem().ID == prob.ID || m.Level() != 0 {
		t.Error("enter should repeat the level with a fresh problem")
	}
}

func TestLevelsKeyOpensMenu(t *testing.T) {
	p, _ := newScreen(t, "geo", nil)
	if _, ok := pushed(t, send(t, p, keyMsg('L'))).(*levelmenu.LevelMenuScreen); !ok {
		t.Error("L should open the level menu")
	}
}

func TestLastLevelOpensComplete(t *testing.T) {
	p, m := newScreen(t, "intervals", map[string]string{progress.FieldLevel: "4", progress.FieldMaxLevel: "4"})
	prob := m.Problem()
	pick(t, p, answerIndex(t, prob))
	send(t, p, enter())
	if m.Progress() != 100 {
		t.Errorf("progress = %v, want 100", m.Progress())
	}

	if _, ok := pushed(t, send(t, p, enter())).(*complete.CompleteScreen); !ok {
		t.Fatal("passing the last level should open the completion screen")
	}
	if !m.GameComplete() {
		t.Fatal("game should be complete")
	}

	// Coming back to the level view leaves the completion state.
	send(t, p, struct{}{})
	if m.GameComplete() {
		t.Error("returning to the level view should leave the completion state")
	}
}

func TestFollowsLevelSelectedElsewhere(t *testing.T) {
	p, m := newScreen(t, "ap", map[string]string{progress.FieldMaxLevel: "3"})
	if err := m.SelectLevel(2); err != nil {
		t.Fatal(err)
	}
	view := p.View(viewWidth, viewHeight)
	if p.problemID != m.Problem().ID {
		t.Error("view should rebuild widgets for the selected level")
	}
	if !strings.Contains(view, "3/10") {
		t.Error("info line should show the selected level")
	}
}

func TestKeyHints(t *testing.T) {
	p, _ := newScreen(t, "intervals", nil)
	var keys []string
	for _, h := range p.KeyHints() {
		keys = append(keys, h.Key)
	}
	for _, want := range []string{"Space", "Enter", "?", "L"} {
		if !slices.Contains(keys, want) {
			t.Errorf("key hints should contain %q, got %v", want, keys)
		}
	}
}
