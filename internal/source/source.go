// Package source supplies raw log lines: either piped standard input or the
// stdout of a spawned `adb ... logcat` process.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"golang.org/x/term"
)

// Kind identifies where lines come from.
type Kind int

const (
	Stdin Kind = iota
	Subprocess
)

func (k Kind) String() string {
	if k == Subprocess {
		return "subprocess"
	}
	return "stdin"
}

// DefaultGrace is how long a subprocess gets to exit after an interrupt
// before its process group is killed.
const DefaultGrace = 2 * time.Second

// Source is an open line source.
type Source struct {
	Kind   Kind
	Reader io.ReadCloser

	cmd       *exec.Cmd
	grace     time.Duration
	closeOnce sync.Once
	closeErr  error
}

// IsInteractive reports whether f is a terminal. An interactive stdin means
// nobody is piping logs in, so they have to be fetched from a device.
func IsInteractive(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// FromReader wraps an already-open input such as os.Stdin.
func FromReader(r io.Reader) *Source {
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(r)
	}
	return &Source{Kind: Stdin, Reader: rc}
}

// StartLogcat runs `<adb> <args...> logcat` in its own process group. args are
// passed through untouched (device selectors such as -d, -e, -s serial).
// The child's stderr goes to stderr.
func StartLogcat(adb string, args []string, stderr io.Writer) (*Source, error) {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, args...)
	argv = append(argv, "logcat")

	cmd := exec.Command(adb, argv...)
	cmd.Env = os.Environ()
	cmd.Stderr = stderr
	ownProcessGroup(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("piping %s stdout: %w", adb, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", adb, err)
	}
	return &Source{Kind: Subprocess, Reader: stdout, cmd: cmd, grace: DefaultGrace}, nil
}

// Pid returns the subprocess id, or 0 for stdin.
func (s *Source) Pid() int {
	if s.cmd == nil || s.cmd.Process == nil {
		return 0
	}
	return s.cmd.Process.Pid
}

// Close releases the source. A still-running subprocess group is interrupted,
// then killed if it outlives the grace period. The subprocess's own exit
// error (if any) is returned; use ExitCode to inspect it.
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		if s.cmd == nil {
			s.closeErr = s.Reader.Close()
			return
		}
		s.closeErr = s.stop()
	})
	return s.closeErr
}

func (s *Source) stop() error {
	done := make(chan error, 1)
	go func() { done <- s.cmd.Wait() }()

	select {
	case err := <-done:
		return err
	default:
	}

	_ = signalGroup(s.cmd, interruptSignal())
	select {
	case err := <-done:
		return err
	case <-time.After(s.grace):
		_ = killGroup(s.cmd)
		return <-done
	}
}

// ExitCode extracts a subprocess exit code from a Close error. ok is false
// when err does not describe a process exit.
func ExitCode(err error) (code int, ok bool) {
	if err == nil {
		return 0, true
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, false
	}
	if code, ok := exitStatus(exitErr); ok {
		return code, true
	}
	return exitErr.ExitCode(), true
}
