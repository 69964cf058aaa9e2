package modes

import "github.com/lixenwraith/invoker/constants"

// Rect is an axis-aligned box in field units
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside r, edges inclusive
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Button is a clickable labelled box owned by a menu-like mode
// A button with a None transition is a plain label
type Button struct {
	Label string
	Hint  string
	Rect  Rect
	on    Transition
}

// buttonSpec describes one button before layout
type buttonSpec struct {
	label string
	hint  string
	on    Transition
}

// stackButtons lays specs out as a centered vertical column
func stackButtons(width, height float64, specs ...buttonSpec) []Button {
	w := width * constants.ButtonWidthRatio
	h := height * constants.ButtonHeightRatio
	gap := height * constants.ButtonSpacingRatio
	x := width/2 - w/2
	y := height * constants.ButtonStackTopRatio

	out := make([]Button, len(specs))
	for i, s := range specs {
		out[i] = Button{
			Label: s.label,
			Hint:  s.hint,
			Rect:  Rect{X: x, Y: y + float64(i)*(h+gap), W: w, H: h},
			on:    s.on,
		}
	}
	return out
}

// hitButton returns the transition of the first button containing the point
func hitButton(buttons []Button, x, y float64) Transition {
	for _, b := range buttons {
		if b.Rect.Contains(x, y) {
			return b.on
		}
	}
	return None()
}
