package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/ui/theme"
)

// MascotVariant selects the mascot art.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // a topic is complete
	MascotSleepy                    // nothing started yet
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ≤ ∞ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ≤ ∞ │
└─╥═╥─┘
  ╚═╝`

const mascotSleepy = `┌─────┐
│ - - │ z
│  ▽  │
│ ≤ ∞ │
└─────┘`

// mascotFor picks the variant from the topics' progress.
func mascotFor(progress []float64) MascotVariant {
	started := false
	for _, p := range progress {
		if p >= 100 {
			return MascotCelebrating
		}
		if p > 0 {
			started = true
		}
	}
	if !started {
		return MascotSleepy
	}
	return MascotIdle
}

// RenderMascot returns the mascot art of variant.
func RenderMascot(variant MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch variant {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.ArcadeYellow
	case MascotSleepy:
		art, fg = mascotSleepy, theme.TextDim
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
