//go:build !unix

package termsize

import "os"

// resizeSignals returns nil: there is no resize signal on this platform.
func resizeSignals() (<-chan os.Signal, func()) {
	return nil, func() {}
}
