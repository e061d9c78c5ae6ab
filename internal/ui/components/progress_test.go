package components

import (
	"strings"
	"testing"
)

func TestProgressBar_Filled(t *testing.T) {
	tests := []struct {
		percent float64
		want    int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
		{150, 20},
		{-5, 0},
	}
	for _, tt := range tests {
		if got := NewProgressBar("", tt.percent, false, 20).Filled(20); got != tt.want {
			t.Errorf("Filled(%v%%) = %d, want %d", tt.percent, got, tt.want)
		}
	}
}

func TestProgressBar_View(t *testing.T) {
	view := NewProgressBar("Intervals", 40, true, 40).View()
	if !strings.Contains(view, "Intervals") || !strings.Contains(view, "40%") {
		t.Errorf("unexpected view %q", view)
	}
}
