package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/timeinmarket/yahoo"
)

// searchCmd holds the flags for the 'search' subcommand.
type searchCmd struct {
	quote bool
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search Yahoo Finance for instruments" }
func (*searchCmd) Usage() string {
	return `tims search [-quote] <terms...>

  Searches Yahoo Finance by name, symbol or ISIN, and prints the matching
  instruments with a ready-to-use simulate command line for each.

Usage Examples:
$ tims search iShares Core MSCI World
$ tims search -quote IE00B4L5Y983
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.quote, "quote", false, "Also fetch the latest close for each match")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	term := strings.Join(f.Args(), " ")
	if term == "" {
		fmt.Fprintln(os.Stderr, "Error: search terms are required.")
		return subcommands.ExitUsageError
	}

	results, err := yahoo.Search(term)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching %q: %v\n", term, err)
		return subcommands.ExitFailure
	}
	if len(results) == 0 {
		fmt.Printf("No instrument found for %q.\n", term)
		return subcommands.ExitSuccess
	}

	for _, r := range results {
		fmt.Printf("%s: %s (%s, %s)\n", r.Symbol, r.Name(), r.QuoteType, r.Exchange)
		if c.quote {
			if last, err := yahoo.PreviousClose(r.Symbol); err == nil {
				fmt.Printf("    last close: %.2f\n", last)
			}
		}
		fmt.Printf("    tims simulate -symbol %s -amount 100\n", r.Symbol)
	}
	return subcommands.ExitSuccess
}
