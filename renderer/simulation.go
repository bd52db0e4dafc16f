package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/timeinmarket"
)

// Options holds configuration for rendering a simulation report.
type Options struct {
	Table bool // Also render the per-day table.
	Last  int  // Limit the table to the last n rows, 0 keeps everything.
}

// SimulationMarkdown renders a full simulation report to a markdown string:
// title, summary figures, value sparkline, and optionally the per-day table.
func SimulationMarkdown(sim *timeinmarket.Simulation, name, symbol, currency string, opts Options) (string, error) {
	sum, err := sim.Summary()
	if err != nil {
		return "", err
	}

	out := SummaryMarkdown(sim, sum, name, symbol, currency)
	if opts.Table {
		out += "\n" + rowsMarkdown(sim.Rows, opts.Last)
	}
	return out, nil
}

// SummaryMarkdown renders the headline figures of a simulation.
func SummaryMarkdown(sim *timeinmarket.Simulation, sum *timeinmarket.Summary, name, symbol, currency string) string {
	partials := map[string]string{
		"simulation_title":   "simulation_title.md",
		"simulation_summary": "simulation_summary.md",
	}
	return renderTemplate("simulation", "simulation.md", partials, newView(sim, sum, name, symbol, currency))
}

// rowsMarkdown renders the per-day rows as a markdown table.
// A positive 'last' keeps only the trailing rows.
func rowsMarkdown(rows []timeinmarket.Row, last int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Daily detail")
	if last > 0 && last < len(rows) {
		rows = rows[len(rows)-last:]
		doc.PlainText(fmt.Sprintf("Last %d trading days.", last))
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Close", "Invested", "Total Invested", "Total Shares", "Value", "P&L"},
		Rows:   [][]string{},
	}
	for _, row := range rows {
		invested := "-"
		if row.Invested > 0 {
			invested = fmt.Sprintf("%.2f", row.Invested)
		}
		table.Rows = append(table.Rows, []string{
			row.Date.String(),
			fmt.Sprintf("%.2f", row.Close),
			invested,
			fmt.Sprintf("%.2f", row.TotalInvested),
			fmt.Sprintf("%.4f", row.TotalShares),
			fmt.Sprintf("%.2f", row.Value),
			row.ProfitPct.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
