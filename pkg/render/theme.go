package render

import "github.com/dkoosis/logcolor/pkg/ansi"

// Theme holds the fixed styles for the non-tag columns.
type Theme struct {
	Timestamp ansi.Style
	Owner     ansi.Style
	Severity  map[byte]ansi.Style
}

// DefaultTheme returns the built-in palette: bright cyan timestamps, a dark
// owner block, and one background color per severity.
func DefaultTheme() Theme {
	return Theme{
		Timestamp: ansi.NewStyle().Foreground(ansi.Cyan).Bright(true),
		Owner:     ansi.NewStyle().Foreground(ansi.Black).Background(ansi.Black).Bright(true),
		Severity: map[byte]ansi.Style{
			'V': ansi.NewStyle().Foreground(ansi.White).Background(ansi.Black),
			'D': ansi.NewStyle().Foreground(ansi.Black).Background(ansi.Blue),
			'I': ansi.NewStyle().Foreground(ansi.Black).Background(ansi.Green),
			'W': ansi.NewStyle().Foreground(ansi.Black).Background(ansi.Yellow),
			'E': ansi.NewStyle().Foreground(ansi.Black).Background(ansi.Red),
		},
	}
}

// swatches pre-renders each severity letter centered in width, followed by a
// reset and a separating space.
func (t Theme) swatches(width int) map[byte]string {
	out := make(map[byte]string, len(t.Severity))
	for letter, style := range t.Severity {
		out[letter] = style.Render(center(string(letter), width)) + " "
	}
	return out
}
