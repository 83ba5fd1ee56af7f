package domain

import "time"

// Season groups three calendar months under a reporting name.
type Season struct {
	Name   string
	Months [3]time.Month
}

// Seasons lists the Southern Hemisphere seasons in report order.
var Seasons = [4]Season{
	{Name: "Summer", Months: [3]time.Month{time.December, time.January, time.February}},
	{Name: "Autumn", Months: [3]time.Month{time.March, time.April, time.May}},
	{Name: "Winter", Months: [3]time.Month{time.June, time.July, time.August}},
	{Name: "Spring", Months: [3]time.Month{time.September, time.October, time.November}},
}

// seasonIndexByMonth maps January..December to positions in Seasons.
var seasonIndexByMonth = func() [12]int {
	var byMonth [12]int
	for i, s := range Seasons {
		for _, m := range s.Months {
			byMonth[m-1] = i
		}
	}
	return byMonth
}()

// SeasonOf returns the season containing month m.
func SeasonOf(m time.Month) Season {
	return Seasons[seasonIndexByMonth[m-1]]
}

// MonthColumns returns the twelve English month names in calendar order,
// January first. These are the required month headers of an input file.
func MonthColumns() [12]string {
	var cols [12]string
	for m := time.January; m <= time.December; m++ {
		cols[m-1] = m.String()
	}
	return cols
}
