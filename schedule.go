package timeinmarket

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/timeinmarket/date"
)

// Schedule derives the exact trading days on which a recurring contribution
// occurs, given the trading calendar of a price series.
//
// Both implementations share the same roll-forward rule: a target calendar
// date resolves to the first trading day on or after it, see
// [PriceSeries.NextTradingDay]. Resolved dates are deduplicated, so a target
// that rolls forward onto an already claimed day produces no extra
// contribution.
type Schedule interface {
	// InvestmentDates returns the ordered, deduplicated trading days on
	// which a contribution occurs. Every returned date is present in the
	// series.
	InvestmentDates(s *PriceSeries) []date.Date

	// String returns a human description like "monthly on day 1".
	String() string
}

// Monthly schedules one contribution per calendar month on a given day of
// the month. A month lacking that day (e.g. day 31 in April) snaps to the
// month's last calendar day.
type Monthly struct{ day int }

// NewMonthly returns a monthly schedule for the given day of month (1-31).
func NewMonthly(day int) (Monthly, error) {
	if day < 1 || day > 31 {
		return Monthly{}, fmt.Errorf("invalid day of month %d: must be in 1-31", day)
	}
	return Monthly{day: day}, nil
}

// Day returns the scheduled day of the month.
func (m Monthly) Day() int { return m.day }

func (m Monthly) String() string { return fmt.Sprintf("monthly on day %d", m.day) }

func (m Monthly) InvestmentDates(s *PriceSeries) []date.Date {
	var dates []date.Date
	seen := make(map[date.Date]bool)

	// Visit each calendar month actually represented in the series. Months
	// with zero trading days produce no target.
	var year int
	var month time.Month
	for on := range s.Values() {
		if on.Year() == year && on.Month() == month {
			continue // month already handled
		}
		year, month = on.Year(), on.Month()

		target := date.New(year, month, m.day)
		if target.Month() != month {
			// The month has no such day (e.g. Feb 30): snap to its last calendar day.
			target = date.New(year, month, 1).EndOfMonth()
		}
		actual, ok := s.NextTradingDay(target)
		if !ok {
			continue // target is past the last trading day
		}
		// A late-month target can roll forward into a day already claimed
		// by the next month's resolution.
		if !seen[actual] {
			seen[actual] = true
			dates = append(dates, actual)
		}
	}
	return dates
}

// Weekly schedules one contribution per week on a given weekday
// (Monday through Friday).
type Weekly struct{ weekday time.Weekday }

// NewWeekly returns a weekly schedule for the given weekday.
// Saturday and Sunday are rejected: there is no trading to contribute on.
func NewWeekly(weekday time.Weekday) (Weekly, error) {
	if weekday < time.Monday || weekday > time.Friday {
		return Weekly{}, fmt.Errorf("invalid weekday %s: must be Monday through Friday", weekday)
	}
	return Weekly{weekday: weekday}, nil
}

// Weekday returns the scheduled day of the week.
func (w Weekly) Weekday() time.Weekday { return w.weekday }

func (w Weekly) String() string { return fmt.Sprintf("weekly on %ss", w.weekday) }

func (w Weekly) InvestmentDates(s *PriceSeries) []date.Date {
	var dates []date.Date
	seen := make(map[date.Date]bool)

	// Walk every calendar day (not just trading days) from the first to the
	// last trading day. A scheduled day falling on a holiday rolls forward
	// to the next trading day.
	for on := range s.Range().Days() {
		if on.Weekday() != w.weekday {
			continue
		}
		actual, ok := s.NextTradingDay(on)
		if !ok {
			continue
		}
		if !seen[actual] {
			seen[actual] = true
			dates = append(dates, actual)
		}
	}
	return dates
}

// ParseWeekday parses a weekday name like "Monday". It is case-insensitive.
func ParseWeekday(str string) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(str, wd.String()) {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", str)
}

// ParseSchedule builds a Schedule from its textual form, as collected on the
// command line: frequency is "monthly" or "weekly", value is a day of month
// ("15") or a weekday name ("Monday") accordingly.
func ParseSchedule(frequency, value string) (Schedule, error) {
	switch strings.ToLower(frequency) {
	case "monthly", "month":
		day, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid day of month %q: %w", value, err)
		}
		return NewMonthly(day)
	case "weekly", "week":
		weekday, err := ParseWeekday(value)
		if err != nil {
			return nil, err
		}
		return NewWeekly(weekday)
	default:
		return nil, fmt.Errorf("unknown frequency %q: want monthly or weekly", frequency)
	}
}
