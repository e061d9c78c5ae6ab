package components

import (
	"reflect"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestMultiChoice_Single(t *testing.T) {
	m := NewMultiChoice([]string{"3", "5", "7"}, false)
	m, _ = m.Update(key(tea.KeyDown))
	m, _ = m.Update(key(tea.KeyDown))
	if got := m.Chosen(); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("Chosen() = %v, want [2]", got)
	}
	m, _ = m.Update(key('1'))
	if got := m.Chosen(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("digit should jump, Chosen() = %v", got)
	}
}

func TestMultiChoice_MultiToggle(t *testing.T) {
	m := NewMultiChoice([]string{"-1", "0", "2", "4"}, true)
	m, _ = m.Update(key(tea.KeySpace))
	m, _ = m.Update(key('3'))
	m, _ = m.Update(key('4'))
	m, _ = m.Update(key('4'))
	if got := m.Chosen(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("Chosen() = %v, want [0 2]", got)
	}
	if !strings.Contains(m.View(), "[x]") {
		t.Error("checked options should be marked")
	}
}

func TestMultiChoice_LockedIgnoresKeys(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b"}, false)
	m.Lock([]bool{true, false})
	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 0 {
		t.Errorf("locked list moved to %d", m.Selected)
	}
}

func TestMultiChoice_MultilineIndent(t *testing.T) {
	m := NewMultiChoice([]string{"──●──\n  2", "x"}, false)
	view := m.View()
	if !strings.Contains(view, "     2") {
		t.Errorf("continuation line should be indented, got %q", view)
	}
}
