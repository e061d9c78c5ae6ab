package content

import (
	"math"
	"strings"

	"github.com/abhisek/mathlab/internal/expr"
)

// LineWidth is the number of columns of a drawn number line, arrow excluded.
const LineWidth = 33

const (
	axisRune   = '─'
	shadeRune  = '━'
	openRune   = '○'
	filledRune = '●'
)

// axis maps values onto columns of a line.
type axis struct {
	lo, hi float64
	width  int
}

func newAxis(lo, hi float64, width int) axis {
	if hi <= lo {
		hi = lo + 1
	}
	return axis{lo: lo, hi: hi, width: width}
}

func (ax axis) col(v float64) int {
	c := int(math.Round((v - ax.lo) / (ax.hi - ax.lo) * float64(ax.width-1)))
	return max(0, min(ax.width-1, c))
}

// drawing is a two-row picture: the line and the labels under it.
type drawing struct {
	line   []rune
	labels []rune
	ax     axis
}

func newDrawing(ax axis) *drawing {
	d := &drawing{
		line:   make([]rune, ax.width),
		labels: make([]rune, ax.width+2),
		ax:     ax,
	}
	for i := range d.line {
		d.line[i] = axisRune
	}
	for i := range d.labels {
		d.labels[i] = ' '
	}
	return d
}

func (d *drawing) shade(from, to int) {
	for i := from; i <= to; i++ {
		d.line[i] = shadeRune
	}
}

// mark puts a circle at v and centers its label below it. Labels that
// would overlap an earlier one are dropped.
func (d *drawing) mark(v float64, filled bool, label string) {
	c := d.ax.col(v)
	d.line[c] = openRune
	if filled {
		d.line[c] = filledRune
	}
	lr := []rune(label)
	start := max(0, c-len(lr)/2)
	if start+len(lr) > len(d.labels) {
		start = len(d.labels) - len(lr)
	}
	if start < 0 {
		return
	}
	for i := start - 1; i <= start+len(lr); i++ {
		if i >= 0 && i < len(d.labels) && d.labels[i] != ' ' {
			return
		}
	}
	copy(d.labels[start:], lr)
}

func (d *drawing) String() string {
	return string(d.line) + "▶ x\n" + strings.TrimRight(string(d.labels), " ")
}

// intervalLine draws iv with its bounds labeled by num.
func intervalLine(iv expr.Interval, num func(float64) string) string {
	var ax axis
	if iv.Shape.Bounded() {
		pad := math.Max(1, (iv.B-iv.A)/2)
		ax = newAxis(iv.A-pad, iv.B+pad, LineWidth)
	} else {
		ax = newAxis(iv.A-4, iv.A+4, LineWidth)
	}
	d := newDrawing(ax)
	a := ax.col(iv.A)
	switch iv.Shape {
	case expr.ShapeAbove, expr.ShapeAboveOrEqual:
		d.shade(a, ax.width-1)
		d.mark(iv.A, iv.LowClosed(), num(iv.A))
	case expr.ShapeBelow, expr.ShapeBelowOrEqual:
		d.shade(0, a)
		d.mark(iv.A, iv.HighClosed(), num(iv.A))
	default:
		d.shade(a, ax.col(iv.B))
		d.mark(iv.A, iv.LowClosed(), num(iv.A))
		d.mark(iv.B, iv.HighClosed(), num(iv.B))
	}
	return d.String()
}

// pointsLine draws filled dots at each value.
func pointsLine(points []float64, num func(float64) string) string {
	if len(points) == 0 {
		return ""
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	pad := math.Max(1, (hi-lo)/3)
	d := newDrawing(newAxis(lo-pad, hi+pad, LineWidth))
	for _, p := range points {
		d.mark(p, true, num(p))
	}
	return d.String()
}
