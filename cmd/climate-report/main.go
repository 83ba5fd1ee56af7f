package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/meridianwx/climate-report/internal/adapter/csvdir"
	"github.com/meridianwx/climate-report/internal/adapter/report"
	"github.com/meridianwx/climate-report/internal/config"
	"github.com/meridianwx/climate-report/internal/observability"
	"github.com/meridianwx/climate-report/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Flags override the environment for one-off runs.
	input := flag.String("input", cfg.InputDir, "folder of station CSV files")
	output := flag.String("output", cfg.OutputDir, "folder the reports are written to")
	excel := flag.Bool("excel", cfg.ExcelReport, "also write the xlsx workbook")
	flag.Parse()
	cfg.InputDir = *input
	cfg.OutputDir = *output
	cfg.ExcelReport = *excel

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	loader := csvdir.NewLoader(cfg.InputDir, logger, metrics)
	analyzer := pipeline.NewAnalyzer(logger, metrics)
	reports := report.NewWriter(cfg.OutputDir, logger)

	// Workbook export is feature-flagged via EXCEL_REPORT / -excel.
	var workbook pipeline.WorkbookWriter
	if cfg.ExcelReport {
		workbook = report.NewWorkbookWriter(cfg.OutputDir, logger)
		logger.Info("workbook export enabled")
	}

	p := pipeline.New(loader, analyzer, reports, workbook, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := p.Run(ctx); err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}
