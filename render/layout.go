package render

import (
	"math"

	"github.com/lixenwraith/invoker/engine"
)

// hudRows is the number of terminal rows under the play area
const hudRows = 2

// Layout maps field units onto a terminal grid
// The field is stretched over every column and all rows above the HUD
type Layout struct {
	Cols, Rows int
	Field      engine.Field
}

// NewLayout derives the mapping for a terminal of cols x rows
func NewLayout(cols, rows int, f engine.Field) Layout {
	return Layout{Cols: cols, Rows: rows, Field: f}
}

// PlayRows returns the rows available to the field
func (l Layout) PlayRows() int {
	if l.Rows <= hudRows {
		return 1
	}
	return l.Rows - hudRows
}

func (l Layout) scale() (sx, sy float64) {
	cols := l.Cols
	if cols < 1 {
		cols = 1
	}
	return float64(cols) / l.Field.Width, float64(l.PlayRows()) / l.Field.Height
}

// ToCell returns the cell containing field point (x, y)
// Points outside the field clamp to the nearest edge cell
func (l Layout) ToCell(x, y float64) (col, row int) {
	sx, sy := l.scale()
	col = clampInt(int(math.Floor(x*sx)), 0, l.Cols-1)
	row = clampInt(int(math.Floor(y*sy)), 0, l.PlayRows()-1)
	return col, row
}

// ToField returns the field point at the centre of a cell
func (l Layout) ToField(col, row int) (x, y float64) {
	sx, sy := l.scale()
	return (float64(col) + 0.5) / sx, (float64(row) + 0.5) / sy
}

// spanCols returns the columns whose centres lie in [x0, x1]
func (l Layout) spanCols(x0, x1 float64) (first, last int) {
	sx, _ := l.scale()
	first = int(math.Ceil(x0*sx - 0.5))
	last = int(math.Floor(x1*sx - 0.5))
	return clampInt(first, 0, l.Cols-1), clampInt(last, 0, l.Cols-1)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
