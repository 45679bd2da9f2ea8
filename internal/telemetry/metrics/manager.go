package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	PipelineWorkouts      = "workouts"
	PipelineHealthMetrics = "health_metrics"

	OutcomeOK = "ok"
)

type Manager struct {
	// counters
	CounterPipelineRuns  *prometheus.CounterVec
	CounterWorkoutRows   prometheus.Counter
	CounterRowIssues     *prometheus.CounterVec
	CounterMetricEntries prometheus.Counter

	// gauges
	GaugeWorkoutMinutes prometheus.Gauge

	// histograms
	HistPipelineDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("fitsummary", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitsummary", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterPipelineRuns := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "pipeline_runs",
		Help:      "The total number of pipeline runs, by pipeline and outcome",
	}, []string{"pipeline", "outcome"})
	counterWorkoutRows := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_rows",
		Help:      "The total number of processed workout rows",
	})
	counterRowIssues := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_row_issues",
		Help:      "The total number of workout rows with an unusable duration, by kind",
	}, []string{"kind"})
	counterMetricEntries := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "health_metric_entries",
		Help:      "The total number of counted health metric entries",
	})

	gaugeWorkoutMinutes := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_minutes",
		Help:      "Total workout minutes from the last workouts run",
	})

	histPipelineDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "pipeline_duration_seconds",
		Help:      "Histogram of pipeline run time in seconds",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"pipeline"})

	return &Manager{
		CounterPipelineRuns:  counterPipelineRuns,
		CounterWorkoutRows:   counterWorkoutRows,
		CounterRowIssues:     counterRowIssues,
		CounterMetricEntries: counterMetricEntries,
		GaugeWorkoutMinutes:  gaugeWorkoutMinutes,
		HistPipelineDuration: histPipelineDuration,
	}
}

// ObservePipeline records a single pipeline run. outcome is OutcomeOK or
// the failure kind.
func (m *Manager) ObservePipeline(pipeline, outcome string, took time.Duration) {
	m.CounterPipelineRuns.WithLabelValues(pipeline, outcome).Inc()
	m.HistPipelineDuration.WithLabelValues(pipeline).Observe(took.Seconds())
}
