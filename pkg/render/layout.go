package render

import (
	"strings"
	"unicode/utf8"

	"github.com/dkoosis/logcolor/pkg/logcat"
)

// Layout fixes the column widths of the rendered header.
type Layout struct {
	TimeWidth     int
	SeverityWidth int
	TagWidth      int
	ProcessWidth  int // <= 0 hides the owner column
}

// DefaultLayout returns the standard column widths.
func DefaultLayout() Layout {
	return Layout{TimeWidth: 20, SeverityWidth: 3, TagWidth: 25, ProcessWidth: 8}
}

// HeaderWidth is the column at which the message starts for format f. Each
// column is followed by one space.
func (l Layout) HeaderWidth(f logcat.Format) int {
	w := l.SeverityWidth + 1 + l.TagWidth + 1
	if l.ProcessWidth > 0 {
		w += l.ProcessWidth + 1
	}
	if f == logcat.ThreadTime {
		w += l.TimeWidth + 1
	}
	return w
}

// center pads s on both sides to width, matching Python's str.center.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	marg := width - n
	left := marg/2 + (marg & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", marg-left)
}

// padRight left-justifies s in width.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// overflow is how many runes s runs past width.
func overflow(s string, width int) int {
	return max(utf8.RuneCountInString(s)-width, 0)
}

// lastRunes keeps the final n runes of s.
func lastRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
