// Package render turns classified logcat records into aligned, colorized
// terminal lines.
//
// A rendered line is laid out as
//
//	[timestamp ][ owner  ][tag                      ][ S ][message...]
//
// with long messages hard-wrapped so continuation lines start at the message
// column. A timestamp or owner wider than its column is kept whole; the first
// message chunk is shortened by the excess so no line exceeds the width.
package render

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dkoosis/logcolor/pkg/ansi"
	"github.com/dkoosis/logcolor/pkg/logcat"
	"github.com/dkoosis/logcolor/pkg/palette"
	"github.com/dkoosis/logcolor/pkg/reflow"
)

// ErrUnknownSeverity is returned for a classified line whose severity letter
// has no swatch.
var ErrUnknownSeverity = errors.New("unknown severity")

// Rule rewrites matches in the wrapped message. Replace may reference
// submatches as in regexp.Regexp.ReplaceAllString.
type Rule struct {
	Pattern *regexp.Regexp
	Replace string
}

// PairRule highlights key=value pairs: key and value in blue around a green '='.
func PairRule() Rule {
	blue := ansi.NewStyle().Foreground(ansi.Blue).Sequence()
	green := ansi.NewStyle().Foreground(ansi.Green).Sequence()
	return Rule{
		Pattern: regexp.MustCompile(`([\w.@]+)=([\w.@]+)`),
		Replace: blue + "${1}" + green + "=" + blue + "${2}" + ansi.Reset,
	}
}

// Renderer formats records. The tag color table lives in the allocator and
// persists across calls.
type Renderer struct {
	layout   Layout
	theme    Theme
	colors   *palette.Allocator
	swatches map[byte]string
	rules    []Rule
}

// New returns a renderer using the default theme.
func New(layout Layout, colors *palette.Allocator, rules ...Rule) *Renderer {
	theme := DefaultTheme()
	return &Renderer{
		layout:   layout,
		theme:    theme,
		colors:   colors,
		swatches: theme.swatches(layout.SeverityWidth),
		rules:    rules,
	}
}

// Layout returns the renderer's column widths.
func (r *Renderer) Layout() Layout { return r.layout }

// Render formats line for a terminal of the given width. Unrecognized lines
// are returned unchanged. A record with an unknown severity letter yields
// ErrUnknownSeverity and leaves the tag color table untouched.
func (r *Renderer) Render(line logcat.Line, width int) (string, error) {
	if line.Format == logcat.Unrecognized {
		return line.Raw, nil
	}
	swatch, ok := r.swatches[line.Severity]
	if !ok {
		return "", fmt.Errorf("%w %q in %s line", ErrUnknownSeverity, line.Severity, line.Format)
	}

	// lead counts header characters spilling past their column width.
	var sb strings.Builder
	lead := 0
	if line.HasTimestamp() {
		sb.WriteString(r.theme.Timestamp.Render(padRight(line.Timestamp, r.layout.TimeWidth)))
		sb.WriteByte(' ')
		lead += overflow(line.Timestamp, r.layout.TimeWidth)
	}
	if r.layout.ProcessWidth > 0 {
		sb.WriteString(r.theme.Owner.Render(center(line.Owner, r.layout.ProcessWidth)))
		sb.WriteByte(' ')
		lead += overflow(line.Owner, r.layout.ProcessWidth)
	}

	color := r.colors.Allocate(line.Tag)
	tag := padRight(lastRunes(line.Tag, r.layout.TagWidth), r.layout.TagWidth)
	sb.WriteString(ansi.NewStyle().Foreground(color).Render(tag))
	sb.WriteByte(' ')

	sb.WriteString(swatch)

	message := reflow.WrapAfter(line.Message, r.layout.HeaderWidth(line.Format), width, lead)
	for _, rule := range r.rules {
		message = rule.Pattern.ReplaceAllString(message, rule.Replace)
	}
	sb.WriteString(message)
	return sb.String(), nil
}
