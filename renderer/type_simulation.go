package renderer

import (
	"github.com/etnz/timeinmarket"
)

// view holds the pre-formatted fields the simulation templates consume.
type view struct {
	Name     string
	Symbol   string
	Amount   string
	Schedule string
	Start    string
	End      string

	Contributions int
	TotalInvested string
	FinalValue    string
	Profit        string
	ROI           string

	AnnualizedPriceReturn string
	AnnualizedVolatility  string
	MaxDrawdown           string

	Sparkline string
}

// newView formats the simulation figures in the given display currency.
func newView(sim *timeinmarket.Simulation, sum *timeinmarket.Summary, name, symbol, currency string) *view {
	v := &view{
		Name:     name,
		Symbol:   symbol,
		Amount:   timeinmarket.M(sim.Amount, currency).String(),
		Schedule: sim.Schedule.String(),
		Start:    sum.Start.String(),
		End:      sum.End.String(),

		Contributions: sum.Contributions,
		TotalInvested: timeinmarket.M(sum.TotalInvested, currency).String(),
		FinalValue:    timeinmarket.M(sum.FinalValue, currency).String(),
		Profit:        timeinmarket.M(sum.Profit, currency).SignedString(),
		ROI:           sum.ROI.SignedString(),

		AnnualizedPriceReturn: sum.AnnualizedPriceReturn.SignedString(),
		AnnualizedVolatility:  sum.AnnualizedVolatility.String(),
		MaxDrawdown:           sum.MaxDrawdown.String(),
	}

	values := make([]float64, 0, len(sim.Rows))
	for _, row := range sim.Rows {
		values = append(values, row.Value)
	}
	v.Sparkline = sparkline(values, sparklineWidth)
	return v
}
