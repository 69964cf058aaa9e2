package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invoker/combo"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(220, 220, 230) // Near white
	RgbDim        = tcell.NewRGBColor(120, 120, 140) // Muted gray for hints
	RgbTitle      = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbFault      = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbButton     = tcell.NewRGBColor(60, 64, 90)    // Slate button face
	RgbSpell      = tcell.NewRGBColor(255, 255, 0)   // Bright yellow spell tags
	RgbFrontSpell = tcell.NewRGBColor(50, 255, 50)   // Bright green for the pro-mode target

	RgbQuas  = tcell.NewRGBColor(100, 150, 255) // Normal blue
	RgbWex   = tcell.NewRGBColor(200, 90, 255)  // Violet
	RgbExort = tcell.NewRGBColor(255, 120, 50)  // Ember orange
)

var (
	styleBase   = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	styleDim    = styleBase.Foreground(RgbDim)
	styleTitle  = styleBase.Foreground(RgbTitle).Bold(true)
	styleFault  = styleBase.Foreground(RgbFault)
	styleButton = tcell.StyleDefault.Background(RgbButton).Foreground(RgbText)
	styleHint   = styleButton.Foreground(RgbTitle)
	styleSpell  = styleBase.Foreground(RgbSpell).Bold(true)
	styleFront  = styleBase.Foreground(RgbFrontSpell).Bold(true)
)

// orbStyle colors a symbol by its element
func orbStyle(s combo.Symbol) tcell.Style {
	switch s {
	case combo.Q:
		return styleBase.Foreground(RgbQuas).Bold(true)
	case combo.W:
		return styleBase.Foreground(RgbWex).Bold(true)
	case combo.E:
		return styleBase.Foreground(RgbExort).Bold(true)
	}
	return styleBase
}
