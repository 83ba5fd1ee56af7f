package domain

import "time"

// Reading is one month's temperature cell in degrees Celsius. Valid is
// false when the source cell was blank or not numeric; invalid readings
// are excluded from every statistic. A missing reading is not 0 °C.
type Reading struct {
	Celsius float64
	Valid   bool
}

// NewReading returns a valid reading of c degrees Celsius.
func NewReading(c float64) Reading {
	return Reading{Celsius: c, Valid: true}
}

// StationRecord is one CSV data row: a station name and one reading per
// calendar month. The same station may appear in many records (one per
// source file is typical); statistics pool them by name.
type StationRecord struct {
	Station string
	Months  [12]Reading
}

// Reading returns the record's reading for month m.
func (r StationRecord) Reading(m time.Month) Reading {
	return r.Months[m-1]
}

// SetReading stores rd as the record's reading for month m.
func (r *StationRecord) SetReading(m time.Month, rd Reading) {
	r.Months[m-1] = rd
}

// Dataset holds every station record accepted from the input folder, in
// file then row order. It is built once per run and read-only afterward.
type Dataset struct {
	Records []StationRecord
}
