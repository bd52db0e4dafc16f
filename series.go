package timeinmarket

import (
	"iter"
	"slices"
	"sort"

	"github.com/etnz/timeinmarket/date"
)

// PriceSeries stores the daily closing prices of an instrument, one entry
// per trading day. Dates are unique and the series is always sorted in
// chronological order. Days without an entry are simply absent, there is
// no gap filling.
type PriceSeries struct {
	days   []date.Date
	closes []float64
}

// NewPriceSeries returns a new empty price series.
func NewPriceSeries() *PriceSeries { return &PriceSeries{} }

// Len returns the number of trading days in the series.
func (s *PriceSeries) Len() int { return len(s.days) }

// chronological is a private implementation to keep the series chronologically sorted.
type chronological struct{ *PriceSeries }

func (c chronological) Len() int           { return len(c.days) }
func (c chronological) Less(i, j int) bool { return c.days[i].Before(c.days[j]) }
func (c chronological) Swap(i, j int) {
	c.days[i], c.days[j] = c.days[j], c.days[i]
	c.closes[i], c.closes[j] = c.closes[j], c.closes[i]
}

// Append adds a closing price to the series.
//
// An existing value at that date is overwritten.
func (s *PriceSeries) Append(on date.Date, close float64) *PriceSeries {
	if i := slices.Index(s.days, on); i >= 0 {
		// Found a point at that exact same day.
		// We choose to replace, because it gives higher priority to the last data.
		s.closes[i] = close
		return s
	}
	s.days, s.closes = append(s.days, on), append(s.closes, close)
	sort.Sort(chronological{s})
	return s
}

// Get returns the closing price at 'day' and true, or zero and false.
func (s *PriceSeries) Get(day date.Date) (float64, bool) {
	if i := slices.Index(s.days, day); i >= 0 {
		return s.closes[i], true
	}
	return 0, false
}

// First returns the first trading day and its close.
// If the series is empty, it returns zero values.
func (s *PriceSeries) First() (date.Date, float64) {
	if len(s.days) == 0 {
		return date.Date{}, 0
	}
	return s.days[0], s.closes[0]
}

// Last returns the last trading day and its close.
// If the series is empty, it returns zero values.
func (s *PriceSeries) Last() (date.Date, float64) {
	last := len(s.days) - 1
	if last < 0 {
		return date.Date{}, 0
	}
	return s.days[last], s.closes[last]
}

// Range returns the range spanned by the series, from first to last trading day.
func (s *PriceSeries) Range() date.Range {
	first, _ := s.First()
	last, _ := s.Last()
	return date.NewRange(first, last)
}

// Values returns an iterator over all (day, close) pairs in chronological order.
func (s *PriceSeries) Values() iter.Seq2[date.Date, float64] {
	return func(yield func(date.Date, float64) bool) {
		for i, on := range s.days {
			if !yield(on, s.closes[i]) {
				return
			}
		}
	}
}

// NextTradingDay resolves a target calendar date to the first trading day on
// or after it ("roll-forward"). If the target is itself a trading day it is
// returned as-is. It returns false when the target is past the last trading
// day of the series.
func (s *PriceSeries) NextTradingDay(target date.Date) (date.Date, bool) {
	// The days slice is sorted, so we can use binary search.
	i, found := slices.BinarySearchFunc(s.days, target, date.Date.Compare)
	if found {
		return s.days[i], true
	}
	if i == len(s.days) {
		return date.Date{}, false // target is after the last available trading day
	}
	return s.days[i], true
}
