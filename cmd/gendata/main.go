// Command gendata writes synthetic station CSV files for exercising the
// analysis pipeline. Temperatures follow a Southern Hemisphere seasonal
// curve around a per-station baseline, and a configurable share of cells is
// left empty to mimic gaps in real observations.
//
// Usage:
//
//	go run ./cmd/gendata -out temperatures -files 2 -stations 8 -seed 1
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/meridianwx/climate-report/internal/adapter/csvdir"
	"github.com/meridianwx/climate-report/internal/domain"
)

const firstYear = 2020

var baseNames = []string{
	"Adelaide", "Brisbane", "Cairns", "Darwin", "Hobart",
	"Melbourne", "Perth", "Sydney", "Townsville", "Wagga Wagga",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "temperatures", "folder the CSV files are written to")
	files := flag.Int("files", 2, "number of yearly CSV files")
	stations := flag.Int("stations", 8, "stations per file")
	missing := flag.Float64("missing", 0.1, "share of cells left empty (0..1)")
	seed := flag.Int64("seed", 1, "random seed, fixed for reproducible fixtures")
	flag.Parse()

	if *files < 1 || *stations < 1 {
		flag.Usage()
		return fmt.Errorf("need at least one file and one station")
	}
	if *missing < 0 || *missing >= 1 {
		flag.Usage()
		return fmt.Errorf("missing share must be in [0, 1)")
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seed))
	names := stationNames(*stations)

	for i := 0; i < *files; i++ {
		name := fmt.Sprintf("%d.csv", firstYear+i)
		if err := writeFile(filepath.Join(*out, name), names, rng, *missing); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		log.Printf("wrote %s: %d stations", name, len(names))
	}

	log.Printf("done: %d files in %s", *files, *out)
	return nil
}

// stationNames returns n distinct station names, suffixing the base list
// once it is exhausted.
func stationNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		base := baseNames[i%len(baseNames)]
		if i < len(baseNames) {
			names[i] = base
		} else {
			names[i] = fmt.Sprintf("%s %d", base, i/len(baseNames)+1)
		}
	}
	return names
}

func writeFile(path string, stations []string, rng *rand.Rand, missing float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	months := domain.MonthColumns()
	header := make([]string, 0, len(months)+1)
	header = append(header, csvdir.StationColumn)
	header = append(header, months[:]...)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}

	for _, station := range stations {
		base := 12 + rng.Float64()*16 // annual mean between 12 and 28 °C
		amp := 4 + rng.Float64()*8    // seasonal swing between 4 and 12 °C

		row := make([]string, len(header))
		row[0] = station
		for m := 0; m < 12; m++ {
			if rng.Float64() < missing {
				continue
			}
			// January is the warmest month, July the coldest.
			temp := base + amp*math.Cos(2*math.Pi*float64(m)/12) + rng.NormFloat64()*1.5
			row[m+1] = strconv.FormatFloat(temp, 'f', 1, 64)
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
