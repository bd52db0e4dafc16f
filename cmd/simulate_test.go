package cmd

import (
	"testing"

	"github.com/etnz/timeinmarket"
	"github.com/etnz/timeinmarket/date"
)

func TestSimulateSchedule(t *testing.T) {
	c := &simulateCmd{freq: "monthly", day: 15}
	s, err := c.schedule()
	if err != nil {
		t.Fatalf("schedule() error: %v", err)
	}
	m, ok := s.(timeinmarket.Monthly)
	if !ok {
		t.Fatalf("schedule() = %T, want Monthly", s)
	}
	if m.Day() != 15 {
		t.Errorf("Day() = %d, want 15", m.Day())
	}

	c = &simulateCmd{freq: "weekly", weekday: "friday"}
	s, err = c.schedule()
	if err != nil {
		t.Fatalf("schedule() error: %v", err)
	}
	if _, ok := s.(timeinmarket.Weekly); !ok {
		t.Fatalf("schedule() = %T, want Weekly", s)
	}

	c = &simulateCmd{freq: "weekly", weekday: "someday"}
	if _, err = c.schedule(); err == nil {
		t.Error("schedule() accepted an invalid weekday")
	}
}

func TestSimulateDateRange(t *testing.T) {
	c := &simulateCmd{from: "2015-06-01", to: "2025-06-01"}
	r, err := c.dateRange()
	if err != nil {
		t.Fatalf("dateRange() error: %v", err)
	}
	want := date.NewRange(date.MustParse("2015-06-01"), date.MustParse("2025-06-01"))
	if r != want {
		t.Errorf("dateRange() = %v, want %v", r, want)
	}

	// Without flags the range ends today and starts ten years earlier.
	c = &simulateCmd{}
	r, err = c.dateRange()
	if err != nil {
		t.Fatalf("dateRange() error: %v", err)
	}
	if r.To != date.Today() {
		t.Errorf("default To = %v, want today", r.To)
	}
	if r.From != r.To.AddYears(-10) {
		t.Errorf("default From = %v, want ten years before %v", r.From, r.To)
	}

	c = &simulateCmd{from: "not-a-date"}
	if _, err = c.dateRange(); err == nil {
		t.Error("dateRange() accepted an invalid -from date")
	}
}
