package complete

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/abhisek/mathlab/internal/content"
	"github.com/abhisek/mathlab/internal/problem"
	"github.com/abhisek/mathlab/internal/progress"
	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/topics"
)

// finished returns a machine that just completed the intervals topic.
func finished(t *testing.T) (*CompleteScreen, *progress.Machine) {
	t.Helper()
	log, _ := test.NewNullLogger()
	topic, err := topics.New().Find("intervals")
	if err != nil {
		t.Fatal(err)
	}
	format, err := content.New("en", log)
	if err != nil {
		t.Fatal(err)
	}
	store := progress.NewMemoryStorage()
	store.Set(progress.Key(topic.Prefix, progress.FieldLevel), "4")
	store.Set(progress.Key(topic.Prefix, progress.FieldMaxLevel), "4")
	m := progress.New(progress.ConfigFor(topic), store, progress.WithRand(problem.NewRand(5)), progress.WithLogger(log))

	if out := m.Submit(m.Problem().Answer); !out.Result.Correct {
		t.Fatalf("canonical answer rejected: %+v", out)
	}
	if err := m.NextLevel(); err != nil {
		t.Fatal(err)
	}
	if !m.GameComplete() {
		t.Fatal("game should be complete")
	}
	return New(topic, m, format), m
}

func TestViewCongratulates(t *testing.T) {
	c, _ := finished(t)
	view := c.View(100, 40)
	if !strings.Contains(view, "You finished every level of") {
		t.Error("completion message missing")
	}
	if !strings.Contains(view, "100%") {
		t.Error("full progress should be shown")
	}
	if st := c.Status(); st.Progress != 100 {
		t.Errorf("status progress = %v, want 100", st.Progress)
	}
}

func TestEnterReturnsToLevels(t *testing.T) {
	c, m := finished(t)
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should close the screen")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
	if m.GameComplete() {
		t.Error("leaving should clear the completion state")
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	c, m := finished(t)
	if _, cmd := c.Update(tea.KeyPressMsg{Code: 'z', Text: "z"}); cmd != nil {
		t.Error("unbound keys should do nothing")
	}
	if !m.GameComplete() {
		t.Error("completion state should stay")
	}
}
