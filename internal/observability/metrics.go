package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// report pipeline. A one-shot run logs the final figures on completion.
type Metrics struct {
	FilesAccepted   prometheus.Counter
	FilesSkipped    *prometheus.CounterVec // labels: reason={missing_columns,unreadable}
	RecordsLoaded   prometheus.Counter
	MissingReadings prometheus.Counter

	StationsAnalyzed prometheus.Gauge
	ReportsWritten   prometheus.Counter

	Runs        *prometheus.CounterVec // labels: outcome={success,error}
	RunDuration prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FilesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_report",
			Name:      "input_files_accepted_total",
			Help:      "Total CSV files whose rows entered the dataset.",
		}),
		FilesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_report",
			Name:      "input_files_skipped_total",
			Help:      "Total CSV files skipped, by reason.",
		}, []string{"reason"}),
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_report",
			Name:      "station_records_loaded_total",
			Help:      "Total station rows loaded from accepted files.",
		}),
		MissingReadings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_report",
			Name:      "missing_readings_total",
			Help:      "Total month cells that were blank or not numeric.",
		}),
		StationsAnalyzed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "climate_report",
			Name:      "stations_analyzed",
			Help:      "Distinct stations with at least one valid reading in the last run.",
		}),
		ReportsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_report",
			Name:      "reports_written_total",
			Help:      "Total report files written.",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_report",
			Name:      "runs_total",
			Help:      "Pipeline runs by outcome.",
		}, []string{"outcome"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "climate_report",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete load-aggregate-report run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}

	prometheus.MustRegister(
		m.FilesAccepted,
		m.FilesSkipped,
		m.RecordsLoaded,
		m.MissingReadings,
		m.StationsAnalyzed,
		m.ReportsWritten,
		m.Runs,
		m.RunDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FilesAccepted:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "climate_report", Name: "input_files_accepted_total"}),
		FilesSkipped:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "climate_report", Name: "input_files_skipped_total"}, []string{"reason"}),
		RecordsLoaded:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "climate_report", Name: "station_records_loaded_total"}),
		MissingReadings:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "climate_report", Name: "missing_readings_total"}),
		StationsAnalyzed: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "climate_report", Name: "stations_analyzed"}),
		ReportsWritten:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "climate_report", Name: "reports_written_total"}),
		Runs:             prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "climate_report", Name: "runs_total"}, []string{"outcome"}),
		RunDuration:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "climate_report", Name: "run_duration_seconds"}),
	}
}
