package report

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/meridianwx/climate-report/internal/domain"
)

// WorkbookFile is the spreadsheet companion to the text reports, produced
// only when EXCEL_REPORT is enabled.
const WorkbookFile = "temperature_analysis.xlsx"

// Sheet names of the workbook.
const (
	seasonSheet   = "Seasonal Averages"
	stationSheet  = "Station Statistics"
	extremesSheet = "Extremes"
)

// WorkbookWriter renders the whole analysis into one xlsx workbook.
// It implements pipeline.WorkbookWriter.
type WorkbookWriter struct {
	dir    string
	logger *slog.Logger
}

// NewWorkbookWriter creates a workbook writer targeting the given directory.
func NewWorkbookWriter(dir string, logger *slog.Logger) *WorkbookWriter {
	return &WorkbookWriter{dir: dir, logger: logger}
}

// WriteWorkbook writes one sheet per text report plus a per-station
// overview. Cells hold numeric values rather than the rounded strings of
// the text reports, so spreadsheet consumers can sort and chart them.
func (w *WorkbookWriter) WriteWorkbook(a domain.Analysis) error {
	path := filepath.Join(w.dir, WorkbookFile)
	if err := buildWorkbook(a, path); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrReportWriteFailed, WorkbookFile, err)
	}
	w.logger.Info("workbook written", "path", path, "stations", len(a.Stations))
	return nil
}

func buildWorkbook(a domain.Analysis, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	writeSeasonSheet(f, a)
	writeStationSheet(f, a)
	writeExtremesSheet(f, a)

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func writeSeasonSheet(f *excelize.File, a domain.Analysis) {
	f.NewSheet(seasonSheet)
	writeHeader(f, seasonSheet, []string{"Season", "Mean °C", "Observations"})
	for i, s := range a.Seasons {
		row := i + 2
		f.SetCellValue(seasonSheet, cell(1, row), s.Season)
		f.SetCellValue(seasonSheet, cell(2, row), s.Mean)
		f.SetCellValue(seasonSheet, cell(3, row), s.Count)
	}
	f.SetColWidth(seasonSheet, "A", "C", 14)
}

func writeStationSheet(f *excelize.File, a domain.Analysis) {
	f.NewSheet(stationSheet)
	writeHeader(f, stationSheet, []string{"Station", "Observations", "Min °C", "Max °C", "Range °C", "StdDev °C"})
	for i, s := range a.Stations {
		row := i + 2
		f.SetCellValue(stationSheet, cell(1, row), s.Station)
		f.SetCellValue(stationSheet, cell(2, row), s.Count)
		f.SetCellValue(stationSheet, cell(3, row), s.Min)
		f.SetCellValue(stationSheet, cell(4, row), s.Max)
		f.SetCellValue(stationSheet, cell(5, row), s.Range)
		f.SetCellValue(stationSheet, cell(6, row), s.StdDev)
	}
	f.SetColWidth(stationSheet, "A", "A", 24)
	f.SetColWidth(stationSheet, "B", "F", 12)
}

func writeExtremesSheet(f *excelize.File, a domain.Analysis) {
	f.NewSheet(extremesSheet)
	writeHeader(f, extremesSheet, []string{"Category", "Station", "Value °C"})
	row := 2
	for _, s := range a.MaxRange {
		f.SetCellValue(extremesSheet, cell(1, row), "Widest Range")
		f.SetCellValue(extremesSheet, cell(2, row), s.Station)
		f.SetCellValue(extremesSheet, cell(3, row), s.Range)
		row++
	}
	for _, s := range a.MostStable {
		f.SetCellValue(extremesSheet, cell(1, row), "Most Stable")
		f.SetCellValue(extremesSheet, cell(2, row), s.Station)
		f.SetCellValue(extremesSheet, cell(3, row), s.StdDev)
		row++
	}
	for _, s := range a.MostVariable {
		f.SetCellValue(extremesSheet, cell(1, row), "Most Variable")
		f.SetCellValue(extremesSheet, cell(2, row), s.Station)
		f.SetCellValue(extremesSheet, cell(3, row), s.StdDev)
		row++
	}
	f.SetColWidth(extremesSheet, "A", "B", 18)
}

func writeHeader(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		f.SetCellValue(sheet, cell(i+1, 1), h)
	}
}

// cell converts one-based column and row numbers to an A1-style reference.
func cell(col, row int) string {
	ref, _ := excelize.CoordinatesToCellName(col, row)
	return ref
}
