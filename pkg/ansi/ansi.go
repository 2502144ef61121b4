// Package ansi encodes SGR (Select Graphic Rendition) escape sequences for the
// eight-color terminal palette.
package ansi

import (
	"strconv"

	xansi "github.com/charmbracelet/x/ansi"
)

// Color is one of the eight base terminal colors.
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "color(" + strconv.Itoa(int(c)) + ")"
}

// Reset is the sequence that clears all attributes.
var Reset = xansi.Style{}.Reset().String()

// Style describes one SGR request. The zero value sets normal intensity only.
// Styles are values: every builder method returns a modified copy.
type Style struct {
	fg, bg       Color
	hasFg, hasBg bool
	bright       bool
	bold         bool
	dim          bool
	reset        bool
}

// NewStyle returns an empty style.
func NewStyle() Style { return Style{} }

// ResetStyle returns a style whose sequence is Reset regardless of any other
// attribute applied to it afterwards.
func ResetStyle() Style { return Style{reset: true} }

// Foreground sets the text color.
func (s Style) Foreground(c Color) Style {
	s.fg, s.hasFg = c, true
	return s
}

// Background sets the cell color.
func (s Style) Background(c Color) Style {
	s.bg, s.hasBg = c, true
	return s
}

// Bright selects the high-intensity variant of the background color.
func (s Style) Bright(v bool) Style {
	s.bright = v
	return s
}

// Bold sets increased intensity. Bold wins over Dim.
func (s Style) Bold(v bool) Style {
	s.bold = v
	return s
}

// Dim sets decreased intensity.
func (s Style) Dim(v bool) Style {
	s.dim = v
	return s
}

// Sequence returns the escape sequence that applies s.
//
// Codes are emitted in a fixed order: foreground (30+c), background (40+c, or
// 100+c when bright), then exactly one intensity code (1 bold, 2 dim, 22 normal).
func (s Style) Sequence() string {
	if s.reset {
		return Reset
	}
	var seq xansi.Style
	if s.hasFg {
		seq = seq.ForegroundColor(xansi.BasicColor(s.fg))
	}
	if s.hasBg {
		bg := xansi.BasicColor(s.bg)
		if s.bright {
			bg += 8
		}
		seq = seq.BackgroundColor(bg)
	}
	switch {
	case s.bold:
		seq = seq.Bold()
	case s.dim:
		seq = seq.Faint()
	default:
		seq = seq.NormalIntensity()
	}
	return seq.String()
}

// Render wraps text in s and a trailing Reset.
func (s Style) Render(text string) string {
	return s.Sequence() + text + Reset
}
