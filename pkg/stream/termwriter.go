// Package stream drives the read, classify, render, write loop over a live
// line source.
package stream

import (
	"io"
)

// termWriter is the single point of terminal output while streaming. Each
// line goes out in one Write so an interrupted run never leaves half a line.
type termWriter struct {
	out   io.Writer
	buf   []byte
	lines int
}

func newTermWriter(out io.Writer) *termWriter {
	return &termWriter{out: out}
}

// PrintLine writes s followed by a newline.
func (w *termWriter) PrintLine(s string) error {
	w.buf = append(w.buf[:0], s...)
	w.buf = append(w.buf, '\n')
	if _, err := w.out.Write(w.buf); err != nil {
		return err
	}
	w.lines++
	return nil
}
