// Package domain models monthly temperature observations from climate
// stations and the aggregate statistics derived from them.
//
// # Input Conventions
//
// Station data arrives as CSV files, one file per year is typical. Every
// file carries a header row with a STATION_NAME column plus one column per
// English month name (January through December). Extra columns are ignored.
// Month cells hold degrees Celsius with no enforced range.
//
// Missing readings:
//
//	An empty cell, a whitespace-only cell, or a cell that does not parse as
//	a number is a missing reading, not a zero. Reading carries an explicit
//	Valid flag; 0 °C is a legitimate temperature and never stands in for
//	"absent". Missing readings are excluded from every statistic.
//
// # Seasons
//
// Seasons follow the Southern Hemisphere convention:
//
//	Summer: December, January, February
//	Autumn: March, April, May
//	Winter: June, July, August
//	Spring: September, October, November
//
// Every calendar month belongs to exactly one season. Reports list seasons
// in the order above.
//
// # Statistics
//
// A station recurring across files pools all of its readings into a single
// series keyed by name; there is no per-year breakdown. Seasonal means
// average every reading of the season's three months across all stations
// and records. Per-station figures are the range (max minus min) and the
// sample standard deviation (n-1 denominator); a station with fewer than
// two readings reports 0.0 rather than an error.
//
// Extremal searches (largest range, smallest and largest standard
// deviation) select every station within [TieTolerance] of the extreme
// value, so genuine ties split by floating-point accumulation still
// surface together. See [Aggregate].
package domain
