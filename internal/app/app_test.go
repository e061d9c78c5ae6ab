package app

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathlab/internal/content"
	"github.com/abhisek/mathlab/internal/progress"
	"github.com/abhisek/mathlab/internal/router"
	"github.com/abhisek/mathlab/internal/screens/home"
	"github.com/abhisek/mathlab/internal/screens/practice"
	"github.com/abhisek/mathlab/internal/topics"
)

func newDeps(t *testing.T, store progress.Storage) Deps {
	t.Helper()
	log, _ := test.NewNullLogger()
	format, err := content.New("en", log)
	require.NoError(t, err)
	return Deps{
		Topics:  topics.New(),
		Format:  format,
		Storage: store,
		Log:     log,
		Seed:    42,
	}
}

// run feeds msg to the model and then every message its commands produce,
// the way the program loop would. Tick commands are not followed.
func run(m *AppModel, msg tea.Msg) {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		_, cmd := m.Update(next)
		if cmd == nil {
			continue
		}
		switch out := cmd().(type) {
		case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
			queue = append(queue, out)
		}
	}
}

func TestStartTopicOpensPractice(t *testing.T) {
	store := progress.NewMemoryStorage()
	store.Set(progress.Key("mathlab_ap", progress.FieldShowModal), "false")
	m, err := New(newDeps(t, store), Options{StartTopic: "ap"})
	require.NoError(t, err)

	cmd := m.Init()
	require.NotNil(t, cmd)
	run(m, cmd())

	_, ok := m.Active().(*practice.PracticeScreen)
	assert.True(t, ok, "start topic should open its level view")
}

func TestUnknownStartTopic(t *testing.T) {
	_, err := New(newDeps(t, progress.NewMemoryStorage()), Options{StartTopic: "calculus"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, topics.ErrUnknownTopic))
	assert.Contains(t, err.Error(), "intervals")
}

func TestEscReturnsHome(t *testing.T) {
	store := progress.NewMemoryStorage()
	m, err := New(newDeps(t, store), Options{})
	require.NoError(t, err)

	// Welcome first, then the level view behind it.
	run(m, tea.KeyPressMsg{Code: '3', Text: "3"})
	run(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	_, ok := m.Active().(*practice.PracticeScreen)
	require.True(t, ok, "any key should leave the welcome message")
	v, _ := store.Get(progress.Key("inequalities", progress.FieldShowModal))
	assert.Equal(t, "false", v)

	run(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	_, ok = m.Active().(*home.HomeScreen)
	assert.True(t, ok, "esc should return to the topic list")

	// Esc on the topic list stays put.
	run(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	_, ok = m.Active().(*home.HomeScreen)
	assert.True(t, ok)
}

func TestMachinesAreCached(t *testing.T) {
	m, err := New(newDeps(t, progress.NewMemoryStorage()), Options{})
	require.NoError(t, err)
	tp, err := topics.New().Find("geo")
	require.NoError(t, err)
	assert.Same(t, m.machine(tp), m.machine(tp))
}

func TestViewShowsStatus(t *testing.T) {
	store := progress.NewMemoryStorage()
	store.Set(progress.Key("mathlab_ap", progress.FieldShowModal), "false")
	store.Set(progress.Key("mathlab_ap", progress.FieldStreak), "7")
	m, err := New(newDeps(t, store), Options{StartTopic: "ap"})
	require.NoError(t, err)
	run(m, m.Init()())
	run(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.render()
	assert.Contains(t, view, "MathLab")
	assert.Contains(t, view, "Arithmetic progression")
	assert.Contains(t, view, "★ 7")
	assert.Contains(t, view, "Ctrl+C")
}

func TestViewTooSmall(t *testing.T) {
	m, err := New(newDeps(t, progress.NewMemoryStorage()), Options{})
	require.NoError(t, err)
	run(m, tea.WindowSizeMsg{Width: 20, Height: 5})
	assert.False(t, strings.Contains(m.render(), "MathLab"))
}
