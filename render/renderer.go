// Package render draws mode snapshots onto a terminal grid
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/invoker/combo"
	"github.com/lixenwraith/invoker/constants"
	"github.com/lixenwraith/invoker/engine"
	"github.com/lixenwraith/invoker/modes"
	"github.com/lixenwraith/invoker/settings"
)

// Renderer draws snapshots onto a canvas; it holds no game state
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a renderer for c
func NewRenderer(c Canvas) *Renderer {
	return &Renderer{canvas: c}
}

// Layout returns the current mapping between f and the canvas grid
func (r *Renderer) Layout(f engine.Field) Layout {
	w, h := r.canvas.Size()
	return NewLayout(w, h, f)
}

// Draw renders one frame; the caller presents it
func (r *Renderer) Draw(s modes.Snapshot) {
	l := r.Layout(s.Field)
	if l.Cols <= 0 || l.Rows <= 0 {
		return
	}
	fill(r.canvas, 0, 0, l.Cols-1, l.Rows-1, styleBase)

	switch s.Kind {
	case modes.KindMenu:
		r.drawMenu(l, s)
	case modes.KindPlay, modes.KindProMode:
		r.drawRun(l, s)
	case modes.KindGameOver, modes.KindGameOverPro:
		r.drawGameOver(l, s)
	case modes.KindSettings:
		r.drawSettings(l, s)
	}
	r.drawButtons(l, s.Buttons)
	drawRight(r.canvas, l.Rows-1, constants.StatusBarHints, styleDim)
}

func (r *Renderer) titleRow(l Layout) int {
	return l.PlayRows() / 6
}

func (r *Renderer) drawMenu(l Layout, s modes.Snapshot) {
	row := r.titleRow(l)
	drawCentered(r.canvas, row, constants.TitleText, styleTitle)
	drawCentered(r.canvas, row+2, "cast each falling spell before it lands", styleDim)
	r.drawLegend(l.Rows-1, s.Bindings)
}

func (r *Renderer) drawRun(l Layout, s modes.Snapshot) {
	for i, sp := range s.Spells {
		col, row := l.ToCell(sp.X, sp.Y)
		tag := sp.ID.Short()
		style := styleSpell
		if s.Kind == modes.KindProMode && i == 0 {
			style = styleFront
		}
		drawText(r.canvas, col-runewidth.StringWidth(tag)/2, row, tag, style)
	}

	hud := l.Rows - hudRows
	x := drawText(r.canvas, 0, hud, "[", styleDim)
	for i := 0; i < combo.Size; i++ {
		if i < len(s.Buffer) {
			sym := s.Buffer[i]
			x = drawText(r.canvas, x, hud, sym.String(), orbStyle(sym))
		} else {
			x = drawText(r.canvas, x, hud, ".", styleDim)
		}
	}
	drawText(r.canvas, x, hud, "]", styleDim)

	if s.Kind == modes.KindProMode {
		drawCentered(r.canvas, hud, proStatus(s), styleBase)
	}
	drawRight(r.canvas, hud, "Score "+humanize.Comma(int64(s.Score)), styleTitle)

	status := fmt.Sprintf("speed %.1f", s.Speed)
	if s.HasNext {
		status += "  next " + s.Next.String()
	}
	drawText(r.canvas, 0, l.Rows-1, status, styleDim)
}

// proStatus describes the keypress budget of the pending cast
func proStatus(s modes.Snapshot) string {
	if s.FirstCast {
		return fmt.Sprintf("free cast  keys %d", s.Pressed)
	}
	return fmt.Sprintf("keys %d/%d", s.Pressed, s.Required)
}

func (r *Renderer) drawGameOver(l Layout, s modes.Snapshot) {
	row := r.titleRow(l)
	title := "GAME OVER"
	if s.Kind == modes.KindGameOverPro {
		title = "GAME OVER  PRO"
	}
	drawCentered(r.canvas, row, title, styleTitle)
	drawCentered(r.canvas, row+1, "Score "+humanize.Comma(int64(s.Score)), styleBase)
	if s.Diagnostic != "" {
		drawCentered(r.canvas, row+2, s.Diagnostic, styleFault)
	}
	if s.Elapsed > 0 {
		drawCentered(r.canvas, row+3, "survived "+FormatElapsed(s.Elapsed), styleDim)
	}
}

func (r *Renderer) drawSettings(l Layout, s modes.Snapshot) {
	row := r.titleRow(l)
	drawCentered(r.canvas, row, "SETTINGS", styleTitle)

	lines := []string{
		"Quas     " + KeyName(s.Bindings.Quas),
		"Wex      " + KeyName(s.Bindings.Wex),
		"Exort    " + KeyName(s.Bindings.Exort),
		"Invoke   " + KeyName(s.Bindings.Invoke),
		"ProMode  " + KeyName(s.Bindings.ProMode),
	}
	for i, line := range lines {
		drawCentered(r.canvas, row+2+i, line, styleBase)
	}
}

// drawLegend lists the orb bindings on a row
func (r *Renderer) drawLegend(row int, b settings.Bindings) {
	x := 0
	for _, e := range []struct {
		key  rune
		name string
		sym  combo.Symbol
	}{
		{b.Quas, "Quas", combo.Q},
		{b.Wex, "Wex", combo.W},
		{b.Exort, "Exort", combo.E},
	} {
		x = drawText(r.canvas, x, row, KeyName(e.key), styleDim)
		x = drawText(r.canvas, x+1, row, e.name, orbStyle(e.sym))
		x += 2
	}
	x = drawText(r.canvas, x, row, KeyName(b.Invoke), styleDim)
	drawText(r.canvas, x+1, row, "Invoke", styleBase)
}

// drawButtons paints each button on the row holding its vertical centre,
// over the columns whose centres fall inside it
func (r *Renderer) drawButtons(l Layout, buttons []modes.Button) {
	for _, b := range buttons {
		_, row := l.ToCell(b.Rect.X, b.Rect.Y+b.Rect.H/2)
		c0, c1 := l.spanCols(b.Rect.X, b.Rect.X+b.Rect.W)
		if c1 < c0 {
			c1 = c0
		}
		fill(r.canvas, c0, row, c1, row, styleButton)

		width := c1 - c0 + 1
		label := runewidth.Truncate(b.Label, width, "…")
		drawText(r.canvas, c0+(width-runewidth.StringWidth(label))/2, row, label, styleButton)
		if b.Hint != "" && width > runewidth.StringWidth(label)+runewidth.StringWidth(b.Hint)+2 {
			drawText(r.canvas, c1-runewidth.StringWidth(b.Hint), row, b.Hint, styleHint)
		}
	}
}

// KeyName formats a bound rune for display
func KeyName(r rune) string {
	if r == ' ' {
		return "space"
	}
	return strings.ToLower(string(r))
}

// FormatElapsed renders a run duration in words, two units at most
func FormatElapsed(d time.Duration) string {
	if d < time.Second {
		d = d.Round(time.Millisecond)
	} else {
		d = d.Round(time.Second)
	}
	return durafmt.Parse(d).LimitFirstN(2).String()
}
