// Package reflow hard-wraps message text under a fixed-width header.
package reflow

import "strings"

// Wrap splits message into chunks of width-indent characters and joins them
// with a newline followed by indent spaces, so continuation lines start in the
// same column as the first. Characters are counted as runes; display width is
// not considered.
//
// When width-indent is not positive the message is returned as one chunk.
func Wrap(message string, indent, width int) string {
	return WrapAfter(message, indent, width, 0)
}

// WrapAfter is Wrap for a first line whose header ran lead characters past
// indent. The first chunk is shortened by lead (to no less than one rune) so it
// still ends at width; continuation lines start at indent as usual.
func WrapAfter(message string, indent, width, lead int) string {
	if message == "" {
		return ""
	}
	if indent < 0 {
		indent = 0
	}
	if lead < 0 {
		lead = 0
	}
	area := width - indent
	if area <= 0 {
		return message
	}
	first := max(area-lead, 1)
	runes := []rune(message)
	if len(runes) <= first {
		return message
	}

	sep := "\n" + strings.Repeat(" ", indent)
	var sb strings.Builder
	sb.Grow(len(message) + (len(runes)/area+1)*len(sep))
	sb.WriteString(string(runes[:first]))
	for start := first; start < len(runes); start += area {
		sb.WriteString(sep)
		end := min(start+area, len(runes))
		sb.WriteString(string(runes[start:end]))
	}
	return sb.String()
}
