// Package metrics counts what happened to the lines of one run.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/dkoosis/logcolor/pkg/stream"
)

// Lines tracks per-run line and palette statistics on a private registry.
// It implements stream.Observer.
type Lines struct {
	registry  *prometheus.Registry
	lines     *prometheus.CounterVec
	evictions prometheus.Counter
}

// NewLines creates and registers the counters.
func NewLines() *Lines {
	m := &Lines{
		registry: prometheus.NewRegistry(),
		lines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logcolor_lines_total",
				Help: "Input lines by outcome (rendered, raw, dropped)",
			},
			[]string{"kind"},
		),
		evictions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "logcolor_tag_evictions_total",
				Help: "Tags that lost their color to a newer tag",
			},
		),
	}
	m.registry.MustRegister(m.lines, m.evictions)
	for _, k := range []stream.LineKind{stream.KindRendered, stream.KindRaw, stream.KindDropped} {
		m.lines.WithLabelValues(k.String())
	}
	return m
}

// Observe implements stream.Observer.
func (m *Lines) Observe(kind stream.LineKind) {
	m.lines.WithLabelValues(kind.String()).Inc()
}

// SetEvictions records the allocator's running eviction count.
func (m *Lines) SetEvictions(total int) {
	var current dto.Metric
	if err := m.evictions.Write(&current); err != nil {
		return
	}
	if delta := float64(total) - current.GetCounter().GetValue(); delta > 0 {
		m.evictions.Add(delta)
	}
}

// Registry exposes the underlying registry.
func (m *Lines) Registry() *prometheus.Registry { return m.registry }

// Snapshot returns the current values keyed by metric name, with the kind
// label appended for line counts ("logcolor_lines_total{kind=raw}").
func (m *Lines) Snapshot() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range metric.GetLabel() {
				key += "{" + lp.GetName() + "=" + lp.GetValue() + "}"
			}
			out[key] = metric.GetCounter().GetValue()
		}
	}
	return out, nil
}
