package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/etnz/timeinmarket"
	"github.com/etnz/timeinmarket/date"
	"github.com/etnz/timeinmarket/renderer"
	"github.com/etnz/timeinmarket/yahoo"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	isin     string
	symbol   string
	amount   float64
	freq     string
	day      int
	weekday  string
	from     string
	to       string
	currency string
	table    bool
	last     int
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "simulate a recurring investment plan on real prices" }
func (*simulateCmd) Usage() string {
	return `tims simulate -i <isin> [-amount <n>] [-freq monthly|weekly] [-day <1-31>] [-weekday <name>] [-from <date>] [-to <date>]

  Simulates investing a fixed amount on a recurring schedule, at the daily
  closing prices of the instrument, and displays the resulting plan.

Usage Examples:
# 250 every month on the 1st, over the default last 10 years.
$ tims simulate -i IE00B4L5Y983 -amount 250

# 50 every Friday of 2024, with the full per-day table.
$ tims simulate -symbol IWDA.AS -amount 50 -freq weekly -weekday Friday -from 2024-01-01 -to 2024-12-31 -table
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.isin, "i", "", "ISIN of the instrument to simulate (resolved via Yahoo Finance)")
	f.StringVar(&c.symbol, "symbol", "", "Yahoo symbol to simulate, skips the ISIN lookup")
	f.Float64Var(&c.amount, "amount", 100, "Amount invested per contribution")
	f.StringVar(&c.freq, "freq", "monthly", "Contribution frequency (monthly, weekly)")
	f.IntVar(&c.day, "day", 1, "Day of month to invest on (monthly frequency)")
	f.StringVar(&c.weekday, "weekday", "Monday", "Day of week to invest on (weekly frequency)")
	f.StringVar(&c.from, "from", "", "Start date (defaults to 10 years before the end date)")
	f.StringVar(&c.to, "to", "", "End date (defaults to today)")
	f.StringVar(&c.currency, "currency", "EUR", "Display currency for the report")
	f.BoolVar(&c.table, "table", false, "Also display the per-day table")
	f.IntVar(&c.last, "last", 0, "Limit the per-day table to the last n rows")
}

// schedule builds the Schedule from the frequency flags.
func (c *simulateCmd) schedule() (timeinmarket.Schedule, error) {
	switch c.freq {
	case "monthly", "month":
		return timeinmarket.ParseSchedule(c.freq, strconv.Itoa(c.day))
	default:
		return timeinmarket.ParseSchedule(c.freq, c.weekday)
	}
}

// dateRange builds the simulated range from the -from and -to flags.
func (c *simulateCmd) dateRange() (date.Range, error) {
	to := date.Today()
	if c.to != "" {
		var err error
		if to, err = date.Parse(c.to); err != nil {
			return date.Range{}, fmt.Errorf("invalid -to date: %w", err)
		}
	}
	from := to.AddYears(-10)
	if c.from != "" {
		var err error
		if from, err = date.Parse(c.from); err != nil {
			return date.Range{}, fmt.Errorf("invalid -from date: %w", err)
		}
	}
	return date.NewRange(from, to), nil
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	schedule, err := c.schedule()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	r, err := c.dateRange()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	symbol, name := c.symbol, c.symbol
	if symbol == "" {
		if c.isin == "" {
			fmt.Fprintln(os.Stderr, "Error: an instrument is required, use -i <isin> or -symbol <symbol>.")
			return subcommands.ExitUsageError
		}
		symbol, name, err = yahoo.Resolve(c.isin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving %q: %v\n", c.isin, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Found: %s (%s)\n", name, symbol)
	}

	prices, err := yahoo.History(symbol, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching prices: %v\n", err)
		return subcommands.ExitFailure
	}

	sim, err := timeinmarket.Simulate(prices, c.amount, schedule)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md, err := renderer.SimulationMarkdown(sim, name, symbol, c.currency, renderer.Options{Table: c.table, Last: c.last})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
