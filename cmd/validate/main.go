// Command validate checks an input folder before a pipeline run. It applies
// the same header and cell rules as the loader and prints one verdict per
// file, so a bad drop of CSVs is caught before any report is overwritten.
//
// Usage:
//
//	go run ./cmd/validate -input temperatures
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/meridianwx/climate-report/internal/adapter/csvdir"
	"github.com/meridianwx/climate-report/internal/domain"
	"github.com/meridianwx/climate-report/internal/observability"
)

func main() {
	input := flag.String("input", "temperatures", "folder of station CSV files to check")
	flag.Parse()

	if code := run(*input); code != 0 {
		os.Exit(code)
	}
}

func run(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read input folder: %v\n", err)
		return 1
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".csv" {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "FATAL: no csv files in %s\n", dir)
		return 1
	}

	loader := csvdir.NewLoader(dir, slog.Default(), observability.NewMetrics())

	fmt.Printf("=== Input Check: %s ===\n\n", dir)

	var usable, totalRecords int
	for _, name := range files {
		records, err := loader.LoadFile(filepath.Join(dir, name))
		switch {
		case errors.Is(err, csvdir.ErrMissingColumns):
			fmt.Printf("  SKIP %-24s %v\n", name, err)
		case err != nil:
			fmt.Printf("  SKIP %-24s unreadable: %v\n", name, err)
		default:
			fmt.Printf("  OK   %-24s %d records, %d missing readings\n",
				name, len(records), countMissing(records))
			usable++
			totalRecords += len(records)
		}
	}

	fmt.Printf("\n%d/%d files usable, %d records total\n", usable, len(files), totalRecords)

	if totalRecords == 0 {
		fmt.Println("\nNo usable temperature data; a pipeline run would fail.")
		return 1
	}
	fmt.Println("\nInput folder is ready.")
	return 0
}

func countMissing(records []domain.StationRecord) int {
	var n int
	for _, r := range records {
		for m := time.January; m <= time.December; m++ {
			if !r.Reading(m).Valid {
				n++
			}
		}
	}
	return n
}
