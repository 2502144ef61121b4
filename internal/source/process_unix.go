//go:build unix

package source

import (
	"os"
	"os/exec"
	"syscall"
)

// ownProcessGroup puts the child in its own process group so a terminal ^C
// reaches logcolor first and the child is stopped deliberately.
func ownProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// signalGroup signals adb and anything it forked (for example a wrapper
// script around it). Close uses it to deliver SIGINT when the stream stops; if
// the group id is gone the signal goes to adb alone.
func signalGroup(cmd *exec.Cmd, sig os.Signal) error {
	if cmd.Process == nil {
		return nil
	}
	pgid, err := syscall.Getpgid(cmd.Process.Pid)
	if err != nil {
		return cmd.Process.Signal(sig)
	}
	sigVal, ok := sig.(syscall.Signal)
	if !ok {
		return cmd.Process.Signal(sig)
	}
	return syscall.Kill(-pgid, sigVal)
}

// killGroup forces the adb group down once the grace period
// after the interrupt has run out.
func killGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	pgid, err := syscall.Getpgid(cmd.Process.Pid)
	if err != nil {
		return cmd.Process.Kill()
	}
	return syscall.Kill(-pgid, syscall.SIGKILL)
}

// exitStatus reads adb's exit status from the wait status so it can
// become logcolor's own exit code.
func exitStatus(exitErr *exec.ExitError) (int, bool) {
	waitStatus, ok := exitErr.Sys().(syscall.WaitStatus)
	if ok {
		return waitStatus.ExitStatus(), true
	}
	return 0, false
}

func interruptSignal() os.Signal { return syscall.SIGINT }

// InterruptSignals returns the signals that stop a run.
func InterruptSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM}
}
