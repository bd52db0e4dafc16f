package timeinmarket

import (
	"testing"
	"time"

	"github.com/etnz/timeinmarket/date"
)

func datesEqual(t *testing.T, got []date.Date, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d investment dates %v, want %d %v", len(got), got, len(want), want)
	}
	for i, w := range want {
		if got[i] != day(w) {
			t.Errorf("investment date %d: got %s, want %s", i, got[i], w)
		}
	}
}

func TestMonthlyOnTradingDay(t *testing.T) {
	// Two plain months, the 15th is a trading day in both.
	s := series(
		"2025-01-14", 10.0, "2025-01-15", 10.0, "2025-01-16", 10.0,
		"2025-02-14", 10.0, "2025-02-17", 10.0,
	)
	m, err := NewMonthly(15)
	if err != nil {
		t.Fatal(err)
	}
	// Feb 15 2025 is a Saturday: rolls forward to Monday Feb 17.
	datesEqual(t, m.InvestmentDates(s), "2025-01-15", "2025-02-17")
}

func TestMonthlySnapsToEndOfShortMonth(t *testing.T) {
	// April has 30 days: day 31 snaps to April 30, itself a trading day.
	s := series(
		"2025-04-28", 10.0, "2025-04-29", 10.0, "2025-04-30", 10.0,
	)
	m, _ := NewMonthly(31)
	datesEqual(t, m.InvestmentDates(s), "2025-04-30")
}

func TestMonthlySnapThenRollForward(t *testing.T) {
	// Day 30 in February snaps to Feb 28, which is absent (holiday):
	// it rolls forward to the next trading day, March 3.
	s := series(
		"2025-02-27", 10.0,
		"2025-03-03", 10.0, "2025-03-28", 10.0, "2025-03-31", 10.0,
	)
	m, _ := NewMonthly(30)
	// Feb -> Mar 3 (rolled), Mar -> Mar 31 (wait: Mar 30 is a Sunday).
	datesEqual(t, m.InvestmentDates(s), "2025-03-03", "2025-03-31")
}

func TestMonthlyDedupesRolledTargets(t *testing.T) {
	// No trading day between Jan 15 and Feb 20: both months resolve to
	// Feb 20, which must be invested only once.
	s := series("2025-01-02", 10.0, "2025-02-20", 10.0)
	m, _ := NewMonthly(15)
	datesEqual(t, m.InvestmentDates(s), "2025-02-20")
}

func TestMonthlyTargetPastSeriesEnd(t *testing.T) {
	// The series ends before the last month's target: no date for that month.
	s := series("2025-01-15", 10.0, "2025-02-03", 10.0)
	m, _ := NewMonthly(15)
	datesEqual(t, m.InvestmentDates(s), "2025-01-15")
}

func TestWeeklyMondayHolidayRollsForward(t *testing.T) {
	// Two weeks; the first Monday (Jan 6) is a holiday, so that week's
	// contribution lands on Tuesday Jan 7.
	s := series(
		"2025-01-03", 10.0,
		"2025-01-07", 10.0, "2025-01-08", 10.0, "2025-01-09", 10.0, "2025-01-10", 10.0,
		"2025-01-13", 10.0, "2025-01-14", 10.0,
	)
	w, err := NewWeekly(time.Monday)
	if err != nil {
		t.Fatal(err)
	}
	datesEqual(t, w.InvestmentDates(s), "2025-01-07", "2025-01-13")
}

func TestWeeklyRollSharesSlotWithNextWeek(t *testing.T) {
	// Monday Jan 6 and its whole week are holidays: it rolls forward to
	// Monday Jan 13, which is also that week's own slot. One contribution.
	s := series("2025-01-03", 10.0, "2025-01-13", 10.0, "2025-01-14", 10.0)
	w, _ := NewWeekly(time.Monday)
	datesEqual(t, w.InvestmentDates(s), "2025-01-13")
}

func TestWeeklyEveryWeekHit(t *testing.T) {
	s := series(
		"2025-01-06", 10.0, "2025-01-07", 10.0,
		"2025-01-13", 10.0, "2025-01-14", 10.0,
		"2025-01-20", 10.0,
	)
	w, _ := NewWeekly(time.Tuesday)
	// The last week's Tuesday (Jan 21) is past the last trading day.
	datesEqual(t, w.InvestmentDates(s), "2025-01-07", "2025-01-14")
}

func TestNewMonthlyRejectsOutOfRange(t *testing.T) {
	for _, d := range []int{-1, 0, 32} {
		if _, err := NewMonthly(d); err == nil {
			t.Errorf("NewMonthly(%d) accepted an out-of-range day", d)
		}
	}
}

func TestNewWeeklyRejectsWeekend(t *testing.T) {
	for _, wd := range []time.Weekday{time.Saturday, time.Sunday} {
		if _, err := NewWeekly(wd); err == nil {
			t.Errorf("NewWeekly(%s) accepted a weekend day", wd)
		}
	}
}

func TestParseSchedule(t *testing.T) {
	testCases := []struct {
		name      string
		freq, val string
		want      string
		expectErr bool
	}{
		{"monthly", "monthly", "1", "monthly on day 1", false},
		{"monthly short", "month", "15", "monthly on day 15", false},
		{"weekly", "weekly", "Monday", "weekly on Mondays", false},
		{"weekly lowercase", "weekly", "friday", "weekly on Fridays", false},
		{"bad frequency", "daily", "1", "", true},
		{"bad day", "monthly", "32", "", true},
		{"bad weekday", "weekly", "Caturday", "", true},
		{"weekend weekday", "weekly", "Sunday", "", true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sched, err := ParseSchedule(tc.freq, tc.val)
			if tc.expectErr {
				if err == nil {
					t.Fatalf("ParseSchedule(%q, %q) did not fail", tc.freq, tc.val)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSchedule(%q, %q) failed: %v", tc.freq, tc.val, err)
			}
			if sched.String() != tc.want {
				t.Errorf("schedule = %q, want %q", sched.String(), tc.want)
			}
		})
	}
}
