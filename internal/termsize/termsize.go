// Package termsize queries terminal dimensions and keeps the wrap width
// current across window resizes.
package termsize

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the descriptor is not a terminal device.
var ErrNotTerminal = errors.New("not a terminal")

// Query returns the width and height of the terminal behind fd.
func Query(fd int) (width, height int, err error) {
	if !term.IsTerminal(fd) {
		return 0, 0, ErrNotTerminal
	}
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	if width <= 0 {
		return 0, 0, fmt.Errorf("terminal size: reported width %d", width)
	}
	return width, height, nil
}

// Tracker holds the current width. Reads are safe from any goroutine.
type Tracker struct {
	fd    int
	width atomic.Int64
	query func(fd int) (int, int, error)
}

// NewTracker returns a tracker for fd starting at width.
func NewTracker(fd, width int) *Tracker {
	t := &Tracker{fd: fd, query: Query}
	t.width.Store(int64(width))
	return t
}

// Width reports the most recently observed width.
func (t *Tracker) Width() int {
	return int(t.width.Load())
}

// Refresh re-queries the terminal. The stored width is kept on failure.
func (t *Tracker) Refresh() (int, error) {
	w, _, err := t.query(t.fd)
	if err != nil {
		return t.Width(), err
	}
	t.width.Store(int64(w))
	return w, nil
}

// Watch refreshes the width on every window-size change until ctx ends.
// It is a no-op on platforms without resize notifications.
func (t *Tracker) Watch(ctx context.Context, log zerolog.Logger) {
	changes, stop := resizeSignals()
	if changes == nil {
		return
	}
	go func() {
		defer stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				w, err := t.Refresh()
				if err != nil {
					log.Debug().Err(err).Msg("resize query failed")
					continue
				}
				log.Debug().Int("width", w).Msg("terminal resized")
			}
		}
	}()
}
