//go:build unix

package termsize

import (
	"os"
	"os/signal"
	"syscall"
)

// resizeSignals subscribes to SIGWINCH.
func resizeSignals() (<-chan os.Signal, func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	return ch, func() { signal.Stop(ch) }
}
