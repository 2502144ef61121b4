//go:build !unix

package source

import (
	"os"
	"os/exec"
)

// ownProcessGroup is a no-op on non-Unix platforms.
func ownProcessGroup(cmd *exec.Cmd) {}

// signalGroup sends a signal directly to the process on non-Unix platforms.
func signalGroup(cmd *exec.Cmd, sig os.Signal) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Signal(sig)
}

// killGroup kills the process directly on non-Unix platforms.
func killGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}

// exitStatus returns false on non-Unix platforms as WaitStatus is not available.
func exitStatus(exitErr *exec.ExitError) (int, bool) {
	return 0, false
}

// Interrupt delivery is not supported on Windows; the grace period then
// ends in a kill.
func interruptSignal() os.Signal { return os.Interrupt }

// InterruptSignals returns the signals that stop a run.
func InterruptSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
