package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/timeinmarket"
	"github.com/etnz/timeinmarket/date"
)

func testSimulation(t *testing.T) *timeinmarket.Simulation {
	t.Helper()
	s := timeinmarket.NewPriceSeries()
	s.Append(date.MustParse("2025-01-06"), 10)
	s.Append(date.MustParse("2025-01-07"), 20)
	s.Append(date.MustParse("2025-01-13"), 15)
	w, err := timeinmarket.NewWeekly(time.Monday)
	if err != nil {
		t.Fatal(err)
	}
	sim, err := timeinmarket.Simulate(s, 100, w)
	if err != nil {
		t.Fatal(err)
	}
	return sim
}

func TestSimulationMarkdown(t *testing.T) {
	sim := testSimulation(t)
	out, err := SimulationMarkdown(sim, "ACME Index Fund", "ACME.PA", "EUR", Options{Table: true})
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"# Time In Market: ACME Index Fund (ACME.PA)",
		"invested weekly on Mondays",
		"Total invested",
		"€200.00",
		"## Portfolio value",
		"## Daily detail",
		"2025-01-13",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report does not contain %q\n%s", want, out)
		}
	}
}

func TestSimulationMarkdownWithoutTable(t *testing.T) {
	sim := testSimulation(t)
	out, err := SimulationMarkdown(sim, "ACME", "ACME.PA", "EUR", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "Daily detail") {
		t.Error("table rendered without Options.Table")
	}
}

func TestRowsMarkdownLimitsRows(t *testing.T) {
	sim := testSimulation(t)
	out := rowsMarkdown(sim.Rows, 2)
	if strings.Contains(out, "2025-01-06") {
		t.Error("limited table still contains the first row")
	}
	if !strings.Contains(out, "Last 2 trading days.") {
		t.Error("limited table does not say so")
	}
}

func TestHistoryMarkdown(t *testing.T) {
	s := timeinmarket.NewPriceSeries()
	s.Append(date.MustParse("2025-01-06"), 10.5)
	out := HistoryMarkdown("ACME.PA", s)
	if !strings.Contains(out, "# History for ACME.PA") || !strings.Contains(out, "10.50") {
		t.Errorf("unexpected history report:\n%s", out)
	}
}

func TestSparkline(t *testing.T) {
	if got := sparkline(nil, 10); got != "" {
		t.Errorf("sparkline(nil) = %q", got)
	}
	if got := sparkline([]float64{1, 1, 1}, 10); got != "▁▁▁" {
		t.Errorf("flat sparkline = %q", got)
	}
	got := sparkline([]float64{0, 1}, 10)
	if got != "▁█" {
		t.Errorf("sparkline = %q", got)
	}
	// More values than width: output is downsampled to the width.
	long := make([]float64, 500)
	for i := range long {
		long[i] = float64(i)
	}
	if got := sparkline(long, 60); len([]rune(got)) != 60 {
		t.Errorf("downsampled sparkline has %d runes, want 60", len([]rune(got)))
	}
}
