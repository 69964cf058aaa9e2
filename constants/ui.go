package constants

// Button Layout (fractions of the field)
const (
	// ButtonWidthRatio is button width as a fraction of field width
	ButtonWidthRatio = 0.25

	// ButtonHeightRatio is button height as a fraction of field height
	ButtonHeightRatio = 0.05

	// ButtonSpacingRatio is the vertical gap between stacked buttons
	ButtonSpacingRatio = 0.02

	// ButtonStackTopRatio is where the first button of a stack starts
	ButtonStackTopRatio = 1.0 / 3.0
)

// Hints shown on buttons for their keyboard shortcut
const (
	HintReturn  = "RET"
	HintEscape  = "ESC"
	HintProMode = "P"
)

// Screen Text
const (
	TitleText      = "INVOKER"
	StatusBarHints = "Esc menu  Ctrl-C quit"
)
