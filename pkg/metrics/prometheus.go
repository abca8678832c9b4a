// Package metrics provides Prometheus counters for the valuation pipeline.
//
// The tool is a one-shot batch process with no listener, so metrics are
// gathered from a custom registry at the end of the run and written to
// the log instead of being scraped.
package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for a pipeline run.
type Manager struct {
	namespace string
	subsystem string
	enabled   bool
	registry  *prometheus.Registry

	// Source quality metrics
	salaryRowsLoaded  prometheus.Counter
	statRowsLoaded    prometheus.Counter
	coercionFailures  prometheus.Counter
	joinMisses        prometheus.Counter
	duplicateJoinKeys prometheus.Counter

	// Pipeline output metrics
	playersValued   prometheus.Counter
	archetypeCounts *prometheus.CounterVec
	runDurationMS   prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "heatval",
		subsystem: "pipeline",
		enabled:   true,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.salaryRowsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "salary_rows_loaded_total",
		Help:      "Salary rows kept after the franchise filter",
	})

	m.statRowsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stat_rows_loaded_total",
		Help:      "Stat rows kept after the franchise filter",
	})

	m.coercionFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "coercion_failures_total",
		Help:      "Cells that failed numeric coercion and became nil",
	})

	m.joinMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "join_misses_total",
		Help:      "Salary rows with no matching stats row",
	})

	m.duplicateJoinKeys = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duplicate_join_keys_total",
		Help:      "Stats rows discarded because their normalized name was already seen",
	})

	m.playersValued = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_valued_total",
		Help:      "Players that received a valuation",
	})

	m.archetypeCounts = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "archetype_assignments_total",
		Help:      "Archetype assignments by label",
	}, []string{"label"})

	m.runDurationMS = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_milliseconds",
		Help:      "Wall-clock duration of the last pipeline run",
	})
}

// Summary gathers the registry and returns metric values keyed by fully
// qualified name (label values appended in braces). Used to log a run
// summary; keys are sorted for stable output.
func (m *Manager) Summary() map[string]float64 {
	out := make(map[string]float64)
	families, err := m.registry.Gather()
	if err != nil {
		return out
	}
	for _, fam := range families {
		for _, metric := range fam.GetMetric() {
			name := fam.GetName()
			if labels := metric.GetLabel(); len(labels) > 0 {
				vals := make([]string, 0, len(labels))
				for _, l := range labels {
					vals = append(vals, l.GetValue())
				}
				sort.Strings(vals)
				name += "{" + joinComma(vals) + "}"
			}
			switch {
			case metric.GetCounter() != nil:
				out[name] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				out[name] = metric.GetGauge().GetValue()
			}
		}
	}
	return out
}

func joinComma(vals []string) string {
	s := ""
	for i, v := range vals {
		if i > 0 {
			s += ","
		}
		s += v
	}
	return s
}

// Package-level helpers recording on the global manager.

// RecordSalaryRow counts one salary row kept after filtering.
func RecordSalaryRow() {
	if globalManager.enabled {
		globalManager.salaryRowsLoaded.Inc()
	}
}

// RecordStatRow counts one stats row kept after filtering.
func RecordStatRow() {
	if globalManager.enabled {
		globalManager.statRowsLoaded.Inc()
	}
}

// RecordCoercionFailure counts one cell that failed numeric coercion.
func RecordCoercionFailure() {
	if globalManager.enabled {
		globalManager.coercionFailures.Inc()
	}
}

// RecordJoinMiss counts one salary row with no stats match.
func RecordJoinMiss() {
	if globalManager.enabled {
		globalManager.joinMisses.Inc()
	}
}

// RecordDuplicateJoinKey counts one discarded duplicate stats row.
func RecordDuplicateJoinKey() {
	if globalManager.enabled {
		globalManager.duplicateJoinKeys.Inc()
	}
}

// RecordPlayerValued counts one valued player.
func RecordPlayerValued() {
	if globalManager.enabled {
		globalManager.playersValued.Inc()
	}
}

// RecordArchetype counts one archetype assignment for the given label.
func RecordArchetype(label string) {
	if globalManager.enabled {
		globalManager.archetypeCounts.WithLabelValues(label).Inc()
	}
}

// UpdateRunDuration records the wall-clock duration of the run.
func UpdateRunDuration(ms float64) {
	if globalManager.enabled {
		globalManager.runDurationMS.Set(ms)
	}
}

// Summary gathers the global registry for the end-of-run log line.
func Summary() map[string]float64 {
	return globalManager.Summary()
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
