// logcolor colorizes Android logcat output for the terminal.
//
// Usage:
//
//	logcolor                 # runs `adb logcat`
//	logcolor -d              # runs `adb -d logcat`
//	adb logcat -v threadtime | logcolor
//
// When stdin is a terminal, every argument is forwarded to adb ahead of
// "logcat". When stdin is piped, lines are read from it and arguments are
// ignored. Brief and threadtime records are re-rendered with aligned,
// colored columns; anything else passes through unchanged.
//
// Settings come from a config file and LOGCOLOR_* environment variables; see
// internal/config.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/dkoosis/logcolor/internal/config"
	"github.com/dkoosis/logcolor/internal/logging"
	"github.com/dkoosis/logcolor/internal/metrics"
	"github.com/dkoosis/logcolor/internal/source"
	"github.com/dkoosis/logcolor/internal/termsize"
	"github.com/dkoosis/logcolor/internal/version"
	"github.com/dkoosis/logcolor/pkg/palette"
	"github.com/dkoosis/logcolor/pkg/render"
	"github.com/dkoosis/logcolor/pkg/stream"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Resolve()
	if err != nil {
		fail(stderr, err)
		return 1
	}
	log := logging.New(logging.Config{Level: cfg.LogLevel, JSONOutput: cfg.LogJSON, Output: stderr})
	log.Debug().
		Str("version", version.String()).
		Str("config", cfg.Path).
		Str("policy", cfg.Policy.String()).
		Str("policy_source", cfg.PolicySource).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), source.InterruptSignals()...)
	defer stop()

	width, err := widthFunc(ctx, cfg, stdout, log)
	if err != nil {
		fail(stderr, err)
		return 1
	}

	src, err := openSource(cfg, args, stdin, stderr, log)
	if err != nil {
		fail(stderr, err)
		return 1
	}

	colors := palette.New()
	var rules []render.Rule
	if cfg.HighlightPairs {
		rules = append(rules, render.PairRule())
	}
	stats := metrics.NewLines()
	streamLog := logging.WithComponent(log, "stream")

	runErr := stream.Run(ctx, src.Reader, stdout, stream.Options{
		Renderer: render.New(render.DefaultLayout(), colors, rules...),
		Width:    width,
		Policy:   cfg.Policy,
		Observer: stats,
		Log:      &streamLog,
	})
	childCode := closeSource(src, log)

	stats.SetEvictions(colors.Evictions())
	logSummary(log, stats)

	switch {
	case runErr == nil:
		return childCode
	case ctx.Err() != nil:
		return 130
	default:
		fail(stderr, runErr)
		return 1
	}
}

// widthFunc picks the wrap width: forced by config, else the terminal behind
// stdout (tracked across resizes), else the configured fallback.
func widthFunc(ctx context.Context, cfg *config.Resolved, stdout io.Writer, log zerolog.Logger) (stream.WidthFunc, error) {
	if cfg.Width > 0 {
		log.Debug().Int("width", cfg.Width).Str("source", cfg.WidthSource).Msg("fixed width")
		return stream.FixedWidth(cfg.Width), nil
	}

	err := termsize.ErrNotTerminal
	if f, ok := stdout.(*os.File); ok {
		var w int
		fd := int(f.Fd())
		if w, _, err = termsize.Query(fd); err == nil {
			tracker := termsize.NewTracker(fd, w)
			tracker.Watch(ctx, logging.WithComponent(log, "termsize"))
			log.Debug().Int("width", w).Msg("terminal width")
			return tracker.Width, nil
		}
	}

	if cfg.FallbackWidth > 0 {
		log.Debug().Err(err).Int("width", cfg.FallbackWidth).Msg("using fallback width")
		return stream.FixedWidth(cfg.FallbackWidth), nil
	}
	return nil, fmt.Errorf("cannot determine terminal width: %w (set LOGCOLOR_WIDTH or fallback_width)", err)
}

// openSource reads piped stdin, or starts adb when stdin is a terminal.
func openSource(cfg *config.Resolved, args []string, stdin io.Reader, stderr io.Writer, log zerolog.Logger) (*source.Source, error) {
	if f, ok := stdin.(*os.File); ok && source.IsInteractive(f) {
		src, err := source.StartLogcat(cfg.ADB, args, stderr)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("adb", cfg.ADB).Strs("args", args).Int("pid", src.Pid()).Msg("started logcat")
		return src, nil
	}
	if len(args) > 0 {
		log.Debug().Strs("args", args).Msg("reading piped input; arguments ignored")
	}
	return source.FromReader(stdin), nil
}

// closeSource stops the source and returns the subprocess exit code (0 for stdin).
func closeSource(src *source.Source, log zerolog.Logger) int {
	err := src.Close()
	if src.Kind != source.Subprocess {
		return 0
	}
	code, ok := source.ExitCode(err)
	if !ok {
		log.Warn().Err(err).Msg("logcat did not exit cleanly")
		return 1
	}
	log.Debug().Int("code", code).Msg("logcat exited")
	return code
}

func logSummary(log zerolog.Logger, stats *metrics.Lines) {
	snap, err := stats.Snapshot()
	if err != nil {
		log.Debug().Err(err).Msg("metrics unavailable")
		return
	}
	ev := log.Debug()
	for name, v := range snap {
		ev = ev.Float64(name, v)
	}
	ev.Msg("summary")
}

// fail prints err on stderr. The prefix is styled only when stderr is a
// color-capable terminal.
func fail(stderr io.Writer, err error) {
	style := lipgloss.NewRenderer(stderr).NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	msg := err.Error()
	if errors.Is(err, render.ErrUnknownSeverity) {
		msg += " (set on_unknown_severity to raw or skip to continue past such lines)"
	}
	fmt.Fprintf(stderr, "%s %s\n", style.Render("logcolor:"), msg)
}
