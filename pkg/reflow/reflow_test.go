package reflow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_FitsUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		message string
		indent  int
		width   int
	}{
		{"short", "Starting activity", 39, 80},
		{"exact fit", strings.Repeat("x", 41), 39, 80},
		{"no indent", "hello", 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, Wrap(tt.message, tt.indent, tt.width))
		})
	}
}

func TestWrap_Empty(t *testing.T) {
	assert.Equal(t, "", Wrap("", 10, 80))
}

func TestWrap_SplitsIntoIndentedSegments(t *testing.T) {
	message := strings.Repeat("abcdefghij", 20) // 200 chars
	got := Wrap(message, 44, 80)

	sep := "\n" + strings.Repeat(" ", 44)
	segments := strings.Split(got, sep)
	require.Len(t, segments, 6)
	for i, seg := range segments[:5] {
		assert.Len(t, seg, 36, "segment %d", i)
	}
	assert.Len(t, segments[5], 200-5*36)
	assert.Equal(t, message, strings.Join(segments, ""))
}

func TestWrap_NoTrailingSeparator(t *testing.T) {
	got := Wrap(strings.Repeat("x", 20), 0, 10)
	assert.Equal(t, "xxxxxxxxxx\nxxxxxxxxxx", got)
}

func TestWrap_NonPositiveArea(t *testing.T) {
	message := strings.Repeat("y", 100)
	assert.Equal(t, message, Wrap(message, 80, 80))
	assert.Equal(t, message, Wrap(message, 90, 80))
	assert.Equal(t, message, Wrap(message, 0, 0))
}

func TestWrap_CountsRunes(t *testing.T) {
	got := Wrap("héllo wörld", 0, 6)
	assert.Equal(t, "héllo \nwörld", got)
}

func TestWrap_FirstLineIsStable(t *testing.T) {
	message := strings.Repeat("0123456789", 9)
	wrapped := Wrap(message, 30, 50)
	first, _, _ := strings.Cut(wrapped, "\n")
	assert.Equal(t, first, Wrap(first, 30, 50))
}

func TestWrapAfter_ShortensFirstChunk(t *testing.T) {
	message := strings.Repeat("a", 17) + strings.Repeat("b", 20) + strings.Repeat("c", 5)
	got := WrapAfter(message, 60, 80, 3)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("a", 17), lines[0])
	assert.Equal(t, strings.Repeat(" ", 60)+strings.Repeat("b", 20), lines[1])
	assert.Equal(t, strings.Repeat(" ", 60)+strings.Repeat("c", 5), lines[2])
}

func TestWrapAfter_FitsAfterLead(t *testing.T) {
	assert.Equal(t, "short", WrapAfter("short", 60, 80, 3))
	assert.Equal(t, strings.Repeat("x", 17), WrapAfter(strings.Repeat("x", 17), 60, 80, 3))
}

func TestWrapAfter_ZeroLeadMatchesWrap(t *testing.T) {
	message := strings.Repeat("0123456789", 12)
	assert.Equal(t, Wrap(message, 39, 80), WrapAfter(message, 39, 80, 0))
}

func TestWrapAfter_LeadBeyondArea(t *testing.T) {
	got := WrapAfter("abcdef", 5, 8, 10)
	assert.Equal(t, "a\n     bcd\n     ef", got)
}
