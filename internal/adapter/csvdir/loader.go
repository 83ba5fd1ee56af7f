// Package csvdir loads folders of climate-station CSV files into domain
// datasets.
package csvdir

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/meridianwx/climate-report/internal/domain"
	"github.com/meridianwx/climate-report/internal/observability"
)

// StationColumn is the required station-name header of every input file.
const StationColumn = "STATION_NAME"

// ErrMissingColumns marks a file whose header lacks the station-name column
// or one of the twelve month columns. Such files are skipped with a warning.
var ErrMissingColumns = errors.New("missing required columns")

// Loader reads every .csv file of one folder into a domain.Dataset.
type Loader struct {
	dir     string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewLoader creates a Loader over the given input folder.
func NewLoader(dir string, logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{dir: dir, logger: logger, metrics: metrics}
}

// Load reads the folder and returns the accumulated dataset. Files with
// incomplete headers or read failures are skipped and logged; Load fails
// only when the folder itself is unusable or no file yields a record.
// Files are processed in name order so repeated runs see identical input.
func (l *Loader) Load(ctx context.Context) (domain.Dataset, error) {
	info, err := os.Stat(l.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Dataset{}, fmt.Errorf("%w: %s", domain.ErrFolderNotFound, l.dir)
	}
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("stat input folder: %w", err)
	}
	if !info.IsDir() {
		return domain.Dataset{}, fmt.Errorf("%w: %s is not a directory", domain.ErrFolderNotFound, l.dir)
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read input folder: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".csv" {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		return domain.Dataset{}, fmt.Errorf("%w: %s", domain.ErrNoInputFiles, l.dir)
	}

	var ds domain.Dataset
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return domain.Dataset{}, err
		}

		records, err := l.LoadFile(filepath.Join(l.dir, name))
		switch {
		case errors.Is(err, ErrMissingColumns):
			l.logger.Warn("skipping file with incomplete header", "file", name, "error", err)
			l.metrics.FilesSkipped.WithLabelValues("missing_columns").Inc()
			continue
		case err != nil:
			l.logger.Error("skipping unreadable file", "file", name, "error", err)
			l.metrics.FilesSkipped.WithLabelValues("unreadable").Inc()
			continue
		}

		ds.Records = append(ds.Records, records...)
		l.metrics.FilesAccepted.Inc()
		l.metrics.RecordsLoaded.Add(float64(len(records)))
		if missing := countMissing(records); missing > 0 {
			l.metrics.MissingReadings.Add(float64(missing))
		}
		l.logger.Info("file loaded", "file", name, "records", len(records))
	}

	if len(ds.Records) == 0 {
		return domain.Dataset{}, fmt.Errorf("%w: every file in %s was skipped or empty", domain.ErrNoValidData, l.dir)
	}
	return ds, nil
}

// LoadFile parses one CSV file into station records. It fails with
// ErrMissingColumns when the header lacks a required column; any other
// error means the file could not be read or parsed at all. Rows are never
// rejected for missing month cells, but a row without a station name is
// dropped with a warning.
func (l *Loader) LoadFile(path string) ([]domain.StationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may be ragged; absent cells are missing readings

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("empty file")
	}

	colIdx := map[string]int{}
	for i, h := range rows[0] {
		colIdx[h] = i
	}
	if missing := missingColumns(colIdx); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var records []domain.StationRecord
	for _, row := range rows[1:] {
		station := get(row, colIdx, StationColumn)
		if station == "" {
			l.logger.Warn("skipping row without station name", "file", filepath.Base(path))
			continue
		}

		rec := domain.StationRecord{Station: station}
		for m := time.January; m <= time.December; m++ {
			rec.SetReading(m, parseReading(get(row, colIdx, m.String())))
		}
		records = append(records, rec)
	}
	return records, nil
}

// missingColumns lists the required header columns absent from colIdx.
func missingColumns(colIdx map[string]int) []string {
	var missing []string
	if _, ok := colIdx[StationColumn]; !ok {
		missing = append(missing, StationColumn)
	}
	for _, col := range domain.MonthColumns() {
		if _, ok := colIdx[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// parseReading coerces one trimmed month cell. Blank or non-numeric cells
// are missing readings, never zeros.
func parseReading(cell string) domain.Reading {
	if cell == "" {
		return domain.Reading{}
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return domain.Reading{}
	}
	return domain.NewReading(v)
}

func countMissing(records []domain.StationRecord) int {
	missing := 0
	for _, rec := range records {
		for m := time.January; m <= time.December; m++ {
			if !rec.Reading(m).Valid {
				missing++
			}
		}
	}
	return missing
}

func get(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
