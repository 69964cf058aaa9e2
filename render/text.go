package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas is the drawing surface; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (width, height int)
}

// drawText writes s from column x and returns the column after the last cell
func drawText(c Canvas, x, y int, s string, style tcell.Style) int {
	w, h := c.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		if x >= 0 {
			c.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
	return x
}

// drawCentered writes s centred on the canvas row, truncated to fit
func drawCentered(c Canvas, y int, s string, style tcell.Style) {
	w, _ := c.Size()
	s = runewidth.Truncate(s, w, "…")
	drawText(c, (w-runewidth.StringWidth(s))/2, y, s, style)
}

// drawRight writes s ending at the last column of the row
func drawRight(c Canvas, y int, s string, style tcell.Style) {
	w, _ := c.Size()
	drawText(c, w-runewidth.StringWidth(s), y, s, style)
}

// fill paints a rectangle of cells
func fill(c Canvas, x0, y0, x1, y1 int, style tcell.Style) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.SetContent(x, y, ' ', nil, style)
		}
	}
}
