package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config lookup at a private file and clears LOGCOLOR_* overrides.
func isolate(t *testing.T, configYAML string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o600))
	t.Setenv("LOGCOLOR_CONFIG", path)
	for _, k := range []string{"LOGCOLOR_ADB", "LOGCOLOR_WIDTH", "LOGCOLOR_ON_UNKNOWN", "LOGCOLOR_DEBUG"} {
		t.Setenv(k, "")
	}
}

func runPiped(t *testing.T, input string, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(input), &out, &errOut)
	return out.String(), errOut.String(), code
}

// --- End-to-end: stdin -> classify -> render -> stdout ---

func TestE2E_BriefLine(t *testing.T) {
	isolate(t, "")
	t.Setenv("LOGCOLOR_WIDTH", "80")

	out, stderr, code := runPiped(t, "I/ActivityManager(1234): Starting activity\n")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, out, "\x1b[30;42;22m I \x1b[0m", "green I swatch")
	assert.Contains(t, out, "\x1b[36;22mActivityManager", "cyan seeded tag")
	assert.Contains(t, out, "  1234  ", "owner centered in process column")
	assert.True(t, strings.HasSuffix(out, "Starting activity\n"), "message unwrapped: %q", out)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestE2E_ThreadTimeLine(t *testing.T) {
	isolate(t, "")
	t.Setenv("LOGCOLOR_WIDTH", "100")

	out, _, code := runPiped(t, "2023-01-01 10:00:00.000  100   200 D MyTag: hello\n")
	require.Equal(t, 0, code)

	plain := xansi.Strip(out)
	assert.True(t, strings.HasPrefix(plain, "2023-01-01 10:00:00.000 "), plain)
	assert.Contains(t, plain, "  100   ")
	assert.Contains(t, plain, "MyTag")
	assert.Contains(t, out, "\x1b[30;44;22m D \x1b[0m")
	assert.True(t, strings.HasSuffix(plain, "hello\n"))
}

func TestE2E_UnrecognizedIsByteIdentical(t *testing.T) {
	isolate(t, "")
	t.Setenv("LOGCOLOR_WIDTH", "80")

	input := "random text with no structure\n"
	out, _, code := runPiped(t, input)
	require.Equal(t, 0, code)
	assert.Equal(t, input, out)
}

func TestE2E_ArgumentsIgnoredForPipedInput(t *testing.T) {
	isolate(t, "")
	t.Setenv("LOGCOLOR_WIDTH", "80")

	out, _, code := runPiped(t, "plain\n", "-d", "-v", "brief")
	require.Equal(t, 0, code)
	assert.Equal(t, "plain\n", out)
}

func TestE2E_NoTerminalWidthFails(t *testing.T) {
	isolate(t, "")

	out, stderr, code := runPiped(t, "I/Tag(1): x\n")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "logcolor:")
	assert.Contains(t, stderr, "terminal width")
}

func TestE2E_FallbackWidthFromConfig(t *testing.T) {
	isolate(t, "fallback_width: 60\n")

	message := strings.Repeat("z", 40)
	out, stderr, code := runPiped(t, "I/Tag(1): "+message+"\n")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSuffix(xansi.Strip(out), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, lines[0], 60)
	assert.Equal(t, strings.Repeat(" ", 39)+strings.Repeat("z", 19), lines[1])
}

func TestE2E_AbortOnUnknownSeverity(t *testing.T) {
	isolate(t, "on_unknown_severity: abort\n")
	t.Setenv("LOGCOLOR_WIDTH", "80")

	out, stderr, code := runPiped(t, "I/A(1): one\nF/B(2): two\nI/C(3): three\n")
	assert.Equal(t, 1, code)
	assert.Contains(t, xansi.Strip(out), "one")
	assert.NotContains(t, out, "three")
	assert.Contains(t, stderr, "unknown severity")
}

func TestE2E_HighlightPairs(t *testing.T) {
	isolate(t, "highlight_pairs: true\n")
	t.Setenv("LOGCOLOR_WIDTH", "120")

	out, _, code := runPiped(t, "I/Net(1): state=UP\n")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "\x1b[34;22mstate\x1b[32;22m=\x1b[34;22mUP\x1b[0m")
}

func TestE2E_InvalidConfig(t *testing.T) {
	isolate(t, "on_unknown_severity: explode\n")
	t.Setenv("LOGCOLOR_WIDTH", "80")

	_, stderr, code := runPiped(t, "x\n")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid configuration")
}

func TestE2E_DebugLoggingGoesToStderr(t *testing.T) {
	isolate(t, "log_json: true\n")
	t.Setenv("LOGCOLOR_WIDTH", "80")
	t.Setenv("LOGCOLOR_DEBUG", "1")

	out, stderr, code := runPiped(t, "plain\n")
	require.Equal(t, 0, code)
	assert.Equal(t, "plain\n", out)
	assert.Contains(t, stderr, `"message":"starting"`)
	assert.Contains(t, stderr, `"message":"summary"`)
	assert.Contains(t, stderr, `"logcolor_lines_total{kind=raw}":1`)
}
