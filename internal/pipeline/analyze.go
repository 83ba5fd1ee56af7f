package pipeline

import (
	"log/slog"

	"github.com/meridianwx/climate-report/internal/domain"
	"github.com/meridianwx/climate-report/internal/observability"
)

// StatsAnalyzer implements Analyzer using the domain aggregation functions.
type StatsAnalyzer struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewAnalyzer creates a StatsAnalyzer.
func NewAnalyzer(logger *slog.Logger, metrics *observability.Metrics) *StatsAnalyzer {
	return &StatsAnalyzer{logger: logger, metrics: metrics}
}

// Analyze derives the seasonal and per-station statistics of the dataset.
// Stations with a single pooled reading keep a zero deviation; they are
// flagged here because one observation says nothing about spread.
func (a *StatsAnalyzer) Analyze(ds domain.Dataset) (domain.Analysis, error) {
	analysis, err := domain.Aggregate(ds)
	if err != nil {
		return domain.Analysis{}, err
	}

	for _, s := range analysis.Stations {
		if s.Count == 1 {
			a.logger.Warn("station has insufficient data", "station", s.Station)
		}
	}
	a.metrics.StationsAnalyzed.Set(float64(len(analysis.Stations)))
	a.logger.Debug("analysis complete",
		"stations", len(analysis.Stations),
		"widest_range", len(analysis.MaxRange),
		"most_stable", len(analysis.MostStable),
		"most_variable", len(analysis.MostVariable),
	)

	return analysis, nil
}
