package domain

import (
	"math"
	"time"
)

// TieTolerance is the absolute tolerance for extremal searches. Pooling
// readings across many files accumulates floating-point error, so stations
// whose statistic lands within this distance of the extreme value count as
// tied with it.
const TieTolerance = 1e-4

// SeasonMean is the mean of every reading in one season's months, pooled
// across all stations and records. Mean is 0.0 when Count is zero.
type SeasonMean struct {
	Season string
	Mean   float64
	Count  int
}

// StationStats holds one station's pooled readings and the figures derived
// from them. Temps preserves encounter order across records. StdDev is the
// sample standard deviation (n-1 denominator), 0.0 below two readings.
type StationStats struct {
	Station string
	Temps   []float64
	Count   int
	Min     float64
	Max     float64
	Range   float64
	StdDev  float64
}

// Analysis is the statistical output of one run: seasonal means in report
// order, per-station figures in first-appearance order, and the
// tie-expanded extremal selections the reports are rendered from.
type Analysis struct {
	Seasons      []SeasonMean
	Stations     []StationStats
	MaxRange     []StationStats
	MostStable   []StationStats
	MostVariable []StationStats
}

// Aggregate derives the Analysis for a dataset in one scan of its records.
// Repeated station names merge into one pooled series. Stations whose pool
// stays empty are dropped from the per-station results; when every pool is
// empty it fails with ErrNoStationData. All four seasons are always
// present, averaging 0.0 when a season has no observations.
func Aggregate(ds Dataset) (Analysis, error) {
	pools := make(map[string]*StationStats, len(ds.Records))
	order := make([]string, 0, len(ds.Records))

	var seasonSums [len(Seasons)]float64
	var seasonCounts [len(Seasons)]int

	for _, rec := range ds.Records {
		pool, ok := pools[rec.Station]
		if !ok {
			pool = &StationStats{Station: rec.Station}
			pools[rec.Station] = pool
			order = append(order, rec.Station)
		}
		for m := time.January; m <= time.December; m++ {
			rd := rec.Reading(m)
			if !rd.Valid {
				continue
			}
			pool.Temps = append(pool.Temps, rd.Celsius)
			si := seasonIndexByMonth[m-1]
			seasonSums[si] += rd.Celsius
			seasonCounts[si]++
		}
	}

	analysis := Analysis{Seasons: make([]SeasonMean, 0, len(Seasons))}
	for i, s := range Seasons {
		sm := SeasonMean{Season: s.Name, Count: seasonCounts[i]}
		if sm.Count > 0 {
			sm.Mean = seasonSums[i] / float64(sm.Count)
		}
		analysis.Seasons = append(analysis.Seasons, sm)
	}

	for _, name := range order {
		pool := pools[name]
		if len(pool.Temps) == 0 {
			continue
		}
		pool.Count = len(pool.Temps)
		pool.Min, pool.Max = minMax(pool.Temps)
		pool.Range = pool.Max - pool.Min
		pool.StdDev = sampleStdDev(pool.Temps)
		analysis.Stations = append(analysis.Stations, *pool)
	}
	if len(analysis.Stations) == 0 {
		return Analysis{}, ErrNoStationData
	}

	largestRange := analysis.Stations[0].Range
	smallestStdDev := analysis.Stations[0].StdDev
	largestStdDev := analysis.Stations[0].StdDev
	for _, s := range analysis.Stations[1:] {
		largestRange = max(largestRange, s.Range)
		smallestStdDev = min(smallestStdDev, s.StdDev)
		largestStdDev = max(largestStdDev, s.StdDev)
	}

	byRange := func(s StationStats) float64 { return s.Range }
	byStdDev := func(s StationStats) float64 { return s.StdDev }
	analysis.MaxRange = tiedWithin(analysis.Stations, largestRange, byRange)
	analysis.MostStable = tiedWithin(analysis.Stations, smallestStdDev, byStdDev)
	analysis.MostVariable = tiedWithin(analysis.Stations, largestStdDev, byStdDev)

	return analysis, nil
}

// tiedWithin selects every station whose statistic falls within
// TieTolerance of target, preserving input order.
func tiedWithin(stations []StationStats, target float64, stat func(StationStats) float64) []StationStats {
	var tied []StationStats
	for _, s := range stations {
		if math.Abs(stat(s)-target) < TieTolerance {
			tied = append(tied, s)
		}
	}
	return tied
}

// minMax returns the smallest and largest of values. values must be non-empty.
func minMax(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// mean returns the arithmetic mean of values, 0 when values is empty.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev returns the sample standard deviation (n-1 denominator) of
// values, 0 when there are fewer than two.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sumSq := 0.0
	for _, v := range values {
		diff := v - m
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}
