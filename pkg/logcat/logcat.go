// Package logcat classifies raw logcat output lines into structured records.
//
// Two record shapes are recognized, tried in a fixed order:
//
//	brief:      I/ActivityManager( 1234): Starting activity
//	threadtime: 01-01 10:00:00.000  1234  1240 I ActivityManager: Starting activity
//
// Anything else is reported as Unrecognized and is meant to be passed through
// untouched by the caller.
package logcat

import (
	"regexp"
	"strings"
)

// Format identifies the record shape a line matched.
type Format int

const (
	Unrecognized Format = iota
	Brief
	ThreadTime
)

func (f Format) String() string {
	switch f {
	case Brief:
		return "brief"
	case ThreadTime:
		return "threadtime"
	default:
		return "unrecognized"
	}
}

// Line is one classified input line.
type Line struct {
	Format    Format
	Severity  byte   // single uppercase letter; 0 when Unrecognized
	Tag       string // trimmed
	Owner     string // process id, trimmed
	Thread    string // thread id; threadtime only
	Message   string
	Timestamp string // threadtime only, trimmed
	Raw       string
}

// HasTimestamp reports whether the record carries a timestamp column.
func (l Line) HasTimestamp() bool {
	return l.Timestamp != ""
}

// Strategy attempts to classify a raw line as one record shape.
type Strategy interface {
	Format() Format
	Match(raw string) (Line, bool)
}

// Shape is a Strategy backed by a whole-line regular expression.
type Shape struct {
	format  Format
	pattern *regexp.Regexp
	extract func(groups []string) (Line, bool)
}

// Format returns the format a successful match produces.
func (s *Shape) Format() Format { return s.format }

// Match applies the shape to raw. The pattern is anchored to the whole line.
func (s *Shape) Match(raw string) (Line, bool) {
	groups := s.pattern.FindStringSubmatch(raw)
	if groups == nil {
		return Line{}, false
	}
	line, ok := s.extract(groups)
	if !ok {
		return Line{}, false
	}
	line.Format = s.format
	line.Raw = raw
	return line, true
}

// BriefShape matches "<S>/<tag>(<owner>): <message>".
var BriefShape = &Shape{
	format:  Brief,
	pattern: regexp.MustCompile(`^([A-Z])/([^(]+)\(([^)]+)\): (.*)$`),
	extract: func(g []string) (Line, bool) {
		tag := strings.TrimSpace(g[2])
		owner := strings.TrimSpace(g[3])
		if tag == "" || owner == "" {
			return Line{}, false
		}
		return Line{Severity: g[1][0], Tag: tag, Owner: owner, Message: g[4]}, true
	},
}

// ThreadTimeShape matches "<date time> <pid> <tid> <S> <tag>: <message>".
var ThreadTimeShape = &Shape{
	format:  ThreadTime,
	pattern: regexp.MustCompile(`^(.* .*)\s+(\d+)\s+(\d+)\s+([A-Z])\s+([^:]+|.+): (.*)$`),
	extract: func(g []string) (Line, bool) {
		return Line{
			Timestamp: strings.TrimSpace(g[1]),
			Owner:     g[2],
			Thread:    g[3],
			Severity:  g[4][0],
			Tag:       strings.TrimSpace(g[5]),
			Message:   g[6],
		}, true
	},
}

// Classifier tries each strategy in order and returns the first match.
type Classifier struct {
	strategies []Strategy
}

// NewClassifier returns a classifier over the given strategies, in priority order.
func NewClassifier(strategies ...Strategy) *Classifier {
	return &Classifier{strategies: strategies}
}

// DefaultClassifier tries brief first, then threadtime.
func DefaultClassifier() *Classifier {
	return NewClassifier(BriefShape, ThreadTimeShape)
}

// Classify returns the first matching record, or an Unrecognized line that
// carries only Raw.
func (c *Classifier) Classify(raw string) Line {
	for _, s := range c.strategies {
		if line, ok := s.Match(raw); ok {
			return line
		}
	}
	return Line{Format: Unrecognized, Raw: raw}
}
