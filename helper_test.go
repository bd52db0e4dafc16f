package timeinmarket

import "github.com/etnz/timeinmarket/date"

// day is a helper for tests to build a date from its ISO string.
func day(str string) date.Date { return date.MustParse(str) }

// series is a helper for tests to build a price series from (date, close) pairs.
func series(pairs ...any) *PriceSeries {
	s := NewPriceSeries()
	for i := 0; i < len(pairs); i += 2 {
		s.Append(day(pairs[i].(string)), pairs[i+1].(float64))
	}
	return s
}

// onDates is a fake schedule for tests that invests on a fixed list of days.
type onDates []date.Date

func (o onDates) InvestmentDates(*PriceSeries) []date.Date { return o }
func (o onDates) String() string                           { return "on fixed dates" }
