package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/timeinmarket/date"
	"github.com/etnz/timeinmarket/renderer"
	"github.com/etnz/timeinmarket/yahoo"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	symbol string
	from   string
	to     string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the daily closing prices of an instrument" }
func (*historyCmd) Usage() string {
	return `tims history -symbol <symbol> [-from <date>] [-to <date>]

  Fetches and displays the daily closing prices of an instrument over a
  date range (defaults to the last year).

Usage Examples:
$ tims history -symbol IWDA.AS -from 2024-01-01
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Yahoo symbol to fetch")
	f.StringVar(&c.from, "from", "", "Start date (defaults to one year before the end date)")
	f.StringVar(&c.to, "to", "", "End date (defaults to today)")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required.")
		return subcommands.ExitUsageError
	}

	to := date.Today()
	if c.to != "" {
		var err error
		if to, err = date.Parse(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -to date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	from := to.AddYears(-1)
	if c.from != "" {
		var err error
		if from, err = date.Parse(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -from date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	prices, err := yahoo.History(c.symbol, date.NewRange(from, to))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching prices: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(c.symbol, prices))
	return subcommands.ExitSuccess
}
