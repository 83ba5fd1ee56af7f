// Package report renders analysis results into the output files of a run.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/meridianwx/climate-report/internal/domain"
)

// Report file names. Each run overwrites them in place, so repeated runs on
// unchanged input produce byte-identical files.
const (
	SeasonalAveragesFile = "average_temp.txt"
	TemperatureRangeFile = "largest_temp_range_station.txt"
	StabilityFile        = "temperature_stability_stations.txt"
)

// Writer renders plain-text reports into one output directory.
// It implements pipeline.ReportWriter.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter creates a report writer targeting the given directory.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// WriteSeasonalAverages writes one line per season, in the fixed
// Summer/Autumn/Winter/Spring order of the analysis.
func (w *Writer) WriteSeasonalAverages(a domain.Analysis) error {
	return w.writeFile(SeasonalAveragesFile, func(out io.Writer) error {
		for _, s := range a.Seasons {
			if _, err := fmt.Fprintf(out, "%s: %.1f°C\n", s.Season, s.Mean); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteTemperatureRanges writes one line per station tied for the widest
// temperature range.
func (w *Writer) WriteTemperatureRanges(a domain.Analysis) error {
	return w.writeFile(TemperatureRangeFile, func(out io.Writer) error {
		for _, s := range a.MaxRange {
			if _, err := fmt.Fprintf(out, "Station %s: Range %.1f°C (Max: %.1f°C, Min: %.1f°C)\n",
				s.Station, s.Range, s.Max, s.Min); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteStabilityExtremes writes the most stable stations followed by the
// most variable ones. A station may appear in both groups when every
// station shares the same deviation.
func (w *Writer) WriteStabilityExtremes(a domain.Analysis) error {
	return w.writeFile(StabilityFile, func(out io.Writer) error {
		for _, s := range a.MostStable {
			if _, err := fmt.Fprintf(out, "Most Stable: %s: StdDev %.1f°C\n", s.Station, s.StdDev); err != nil {
				return err
			}
		}
		for _, s := range a.MostVariable {
			if _, err := fmt.Fprintf(out, "Most Variable: %s: StdDev %.1f°C\n", s.Station, s.StdDev); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeFile creates or truncates one report file and fills it via render.
// The handle is released on every exit path.
func (w *Writer) writeFile(name string, render func(io.Writer) error) error {
	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", domain.ErrReportWriteFailed, name, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", domain.ErrReportWriteFailed, name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", domain.ErrReportWriteFailed, name, err)
	}
	w.logger.Info("report written", "path", path)
	return nil
}
