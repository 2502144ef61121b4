package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dkoosis/logcolor/internal/logging"
	"github.com/dkoosis/logcolor/pkg/stream"
)

// Resolved is the final configuration after applying all priority rules.
type Resolved struct {
	ADB            string
	Width          int // 0 means query the terminal
	FallbackWidth  int // 0 means a failed query is fatal
	Policy         stream.Policy
	HighlightPairs bool
	LogLevel       logging.Level
	LogJSON        bool

	// Resolution metadata (for debugging)
	Path         string // config file used, "" when none
	ADBSource    string // "env", "file", "default"
	WidthSource  string
	PolicySource string
	LevelSource  string
}

// Resolve loads the config file (if any), applies environment overrides and
// validates the result.
func Resolve() (*Resolved, error) {
	fileCfg := Defaults()
	path := findConfigPath()
	if path != "" {
		var err error
		fileCfg, err = LoadFile(path)
		if err != nil {
			return nil, err
		}
	}
	return resolve(fileCfg, path, os.Getenv)
}

func resolve(fileCfg FileConfig, path string, getenv func(string) string) (*Resolved, error) {
	fromFile := func(set bool) string {
		if path != "" && set {
			return "file"
		}
		return "default"
	}
	def := Defaults()

	r := &Resolved{
		ADB:            fileCfg.ADB,
		Width:          fileCfg.Width,
		FallbackWidth:  fileCfg.FallbackWidth,
		HighlightPairs: fileCfg.HighlightPairs,
		LogJSON:        fileCfg.LogJSON,
		Path:           path,
		ADBSource:      fromFile(fileCfg.ADB != def.ADB),
		WidthSource:    fromFile(fileCfg.Width != 0),
		PolicySource:   fromFile(fileCfg.OnUnknownSeverity != def.OnUnknownSeverity),
		LevelSource:    fromFile(fileCfg.LogLevel != def.LogLevel),
	}
	policyName := fileCfg.OnUnknownSeverity
	levelName := fileCfg.LogLevel

	if v := strings.TrimSpace(getenv("LOGCOLOR_ADB")); v != "" {
		r.ADB, r.ADBSource = v, "env"
	}
	if v := strings.TrimSpace(getenv("LOGCOLOR_WIDTH")); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: LOGCOLOR_WIDTH=%q is not an integer", ErrInvalid, v)
		}
		r.Width, r.WidthSource = w, "env"
	}
	if v := strings.TrimSpace(getenv("LOGCOLOR_ON_UNKNOWN")); v != "" {
		policyName, r.PolicySource = v, "env"
	}
	if debug := getEnvBool(getenv, "LOGCOLOR_DEBUG"); debug != nil && *debug {
		levelName, r.LevelSource = string(logging.DebugLevel), "env"
	}

	var err error
	if r.Policy, err = stream.ParsePolicy(policyName); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if r.LogLevel, err = logging.ParseLevel(levelName); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := validateResolved(r); err != nil {
		return nil, err
	}
	return r, nil
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(getenv func(string) string, keys ...string) *bool {
	for _, key := range keys {
		if val := getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

// validateResolved rejects values that cannot produce a usable pipeline.
func validateResolved(r *Resolved) error {
	if r.ADB == "" {
		return fmt.Errorf("%w: adb path is empty", ErrInvalid)
	}
	if r.Width < 0 {
		return fmt.Errorf("%w: width must not be negative, got %d", ErrInvalid, r.Width)
	}
	if r.FallbackWidth < 0 {
		return fmt.Errorf("%w: fallback_width must not be negative, got %d", ErrInvalid, r.FallbackWidth)
	}
	return nil
}
