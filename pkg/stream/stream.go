package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/dkoosis/logcolor/pkg/logcat"
	"github.com/dkoosis/logcolor/pkg/render"
)

// LineKind records what happened to one input line.
type LineKind int

const (
	KindRendered LineKind = iota // classified and styled
	KindRaw                      // written unmodified
	KindDropped                  // not written
)

func (k LineKind) String() string {
	switch k {
	case KindRendered:
		return "rendered"
	case KindRaw:
		return "raw"
	case KindDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Observer is told the outcome of every line.
type Observer interface {
	Observe(kind LineKind)
}

// WidthFunc reports the current wrap width. It is called once per line.
type WidthFunc func() int

// FixedWidth returns a WidthFunc that always reports w.
func FixedWidth(w int) WidthFunc {
	return func() int { return w }
}

// Options configures Run. Renderer and Width are required.
type Options struct {
	Classifier *logcat.Classifier // nil means logcat.DefaultClassifier
	Renderer   *render.Renderer
	Width      WidthFunc
	Policy     Policy
	Observer   Observer
	Log        *zerolog.Logger
}

// scanResult carries a scanned line or terminal error from the scanner goroutine.
type scanResult struct {
	line string
	err  error
}

// Run reads lines from r and writes one rendered or pass-through line per
// input line to out, until r is exhausted or ctx is cancelled.
//
// End of input and read failures both end the stream normally and return nil.
// Cancellation returns ctx.Err() after the line in flight has been written.
// Under PolicyAbort an unknown severity returns an error wrapping
// render.ErrUnknownSeverity.
//
// The scanner runs in a background goroutine. On cancel Run closes r if it
// implements io.Closer; otherwise the caller must unblock the reader.
func Run(ctx context.Context, r io.Reader, out io.Writer, opts Options) error {
	if opts.Renderer == nil || opts.Width == nil {
		return errors.New("stream: renderer and width are required")
	}
	classifier := opts.Classifier
	if classifier == nil {
		classifier = logcat.DefaultClassifier()
	}
	log := opts.Log
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	p := &pipeline{
		classifier: classifier,
		renderer:   opts.Renderer,
		width:      opts.Width,
		policy:     opts.Policy,
		observer:   opts.Observer,
		tw:         newTermWriter(out),
		log:        log,
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := make(chan scanResult)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanResult{line: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- scanResult{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			if c, ok := r.(io.Closer); ok {
				_ = c.Close()
			}
			log.Debug().Int("lines", p.tw.lines).Msg("stream cancelled")
			return ctx.Err()
		case res, ok := <-lines:
			if !ok {
				log.Debug().Int("lines", p.tw.lines).Msg("end of input")
				return nil
			}
			if res.err != nil {
				log.Warn().Err(res.err).Msg("input closed unexpectedly")
				return nil
			}
			if err := p.process(res.line); err != nil {
				return err
			}
		}
	}
}

type pipeline struct {
	classifier *logcat.Classifier
	renderer   *render.Renderer
	width      WidthFunc
	policy     Policy
	observer   Observer
	tw         *termWriter
	log        *zerolog.Logger
	seen       int
}

// process handles one line end to end.
func (p *pipeline) process(raw string) error {
	p.seen++
	line := p.classifier.Classify(raw)
	out, err := p.renderer.Render(line, p.width())

	kind := KindRendered
	switch {
	case err == nil && line.Format == logcat.Unrecognized:
		kind = KindRaw
	case errors.Is(err, render.ErrUnknownSeverity):
		switch p.policy {
		case PolicyAbort:
			p.log.Warn().Str("line", raw).Msg("unknown severity, stopping")
			p.observe(KindDropped)
			return fmt.Errorf("line %d: %w", p.seen, err)
		case PolicySkip:
			p.log.Debug().Str("line", raw).Msg("unknown severity, dropped")
			p.observe(KindDropped)
			return nil
		default:
			out, kind = raw, KindRaw
		}
	case err != nil:
		return err
	}

	if err := p.tw.PrintLine(out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	p.observe(kind)
	return nil
}

func (p *pipeline) observe(kind LineKind) {
	if p.observer != nil {
		p.observer.Observe(kind)
	}
}
