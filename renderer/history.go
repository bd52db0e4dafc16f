package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/timeinmarket"
)

// HistoryMarkdown renders the raw daily close history of a symbol.
func HistoryMarkdown(symbol string, prices *timeinmarket.PriceSeries) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", symbol))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Close"},
		Rows:   [][]string{},
	}
	for on, close := range prices.Values() {
		table.Rows = append(table.Rows, []string{
			on.String(),
			fmt.Sprintf("%.2f", close),
		})
	}
	doc.Table(table)

	return doc.String()
}
