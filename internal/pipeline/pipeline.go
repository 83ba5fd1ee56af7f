package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/meridianwx/climate-report/internal/domain"
	"github.com/meridianwx/climate-report/internal/observability"
)

// DatasetLoader reads every input file of a run into one dataset.
type DatasetLoader interface {
	Load(ctx context.Context) (domain.Dataset, error)
}

// Analyzer derives seasonal and per-station statistics from a dataset.
type Analyzer interface {
	Analyze(ds domain.Dataset) (domain.Analysis, error)
}

// ReportWriter renders the three text reports of a run.
type ReportWriter interface {
	WriteSeasonalAverages(a domain.Analysis) error
	WriteTemperatureRanges(a domain.Analysis) error
	WriteStabilityExtremes(a domain.Analysis) error
}

// WorkbookWriter renders the optional spreadsheet export.
type WorkbookWriter interface {
	WriteWorkbook(a domain.Analysis) error
}

// Pipeline orchestrates one load-analyze-report pass.
type Pipeline struct {
	loader   DatasetLoader
	analyzer Analyzer
	reports  ReportWriter
	workbook WorkbookWriter
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Pipeline with the given stages and observability. Pass a
// nil workbook writer to disable the spreadsheet export.
func New(l DatasetLoader, a Analyzer, r ReportWriter, wb WorkbookWriter, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		loader:   l,
		analyzer: a,
		reports:  r,
		workbook: wb,
		logger:   logger,
		metrics:  metrics,
	}
}

// Run executes one full pass. The first failing stage aborts the remaining
// ones and is named in the returned error. Reports already on disk from
// earlier runs are left untouched by an aborted pass.
func (p *Pipeline) Run(ctx context.Context) (err error) {
	logger := p.logger.With("run_id", uuid.NewString())
	start := clock.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		p.metrics.Runs.WithLabelValues(outcome).Inc()
		p.metrics.RunDuration.Observe(clock.Since(start).Seconds())
	}()

	logger.Info("run started")

	ds, err := p.loader.Load(ctx)
	if err != nil {
		logger.Error("load stage failed", "error", err)
		return fmt.Errorf("load stage: %w", err)
	}

	analysis, err := p.analyzer.Analyze(ds)
	if err != nil {
		logger.Error("aggregate stage failed", "error", err)
		return fmt.Errorf("aggregate stage: %w", err)
	}

	if err := p.writeReports(analysis); err != nil {
		logger.Error("report stage failed", "error", err)
		return fmt.Errorf("report stage: %w", err)
	}

	logger.Info("run completed",
		"records", len(ds.Records),
		"stations", len(analysis.Stations),
		"duration", clock.Since(start),
	)
	return nil
}

// writeReports renders the reports in their fixed order, stopping at the
// first failure so a broken output directory surfaces once.
func (p *Pipeline) writeReports(a domain.Analysis) error {
	if err := p.reports.WriteSeasonalAverages(a); err != nil {
		return err
	}
	p.metrics.ReportsWritten.Inc()

	if err := p.reports.WriteTemperatureRanges(a); err != nil {
		return err
	}
	p.metrics.ReportsWritten.Inc()

	if err := p.reports.WriteStabilityExtremes(a); err != nil {
		return err
	}
	p.metrics.ReportsWritten.Inc()

	if p.workbook == nil {
		return nil
	}
	if err := p.workbook.WriteWorkbook(a); err != nil {
		return err
	}
	p.metrics.ReportsWritten.Inc()
	return nil
}
