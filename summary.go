package timeinmarket

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/etnz/timeinmarket/date"
)

// tradingDaysPerYear is the usual annualization factor for daily series.
const tradingDaysPerYear = 252

// Summary condenses a simulation into the headline figures of the plan.
type Summary struct {
	Start, End    date.Date
	Contributions int // number of trading days with a contribution

	TotalInvested float64
	FinalValue    float64
	Profit        float64
	ROI           Percent // profit relative to total invested

	// Figures about the underlying instrument and the value curve.
	AnnualizedPriceReturn Percent // CAGR of the closing price over the period
	AnnualizedVolatility  Percent // stdev of daily close returns, annualized
	MaxDrawdown           Percent // worst peak-to-trough drop of portfolio value
}

// Summary computes the aggregate figures of the simulation.
func (sim *Simulation) Summary() (*Summary, error) {
	if len(sim.Rows) == 0 {
		return nil, ErrNoPrices
	}
	last := sim.Last()
	s := &Summary{
		Start:         sim.Rows[0].Date,
		End:           last.Date,
		Contributions: len(sim.InvestmentDates),
		TotalInvested: last.TotalInvested,
		FinalValue:    last.Value,
		Profit:        last.Profit,
		ROI:           last.ProfitPct,
		MaxDrawdown:   Percent(100 * maxDrawdown(sim.Rows)),
	}

	if len(sim.Rows) >= 2 {
		returns := make([]float64, 0, len(sim.Rows)-1)
		for i := 1; i < len(sim.Rows); i++ {
			returns = append(returns, sim.Rows[i].Close/sim.Rows[i-1].Close-1)
		}
		stdev, err := stats.StandardDeviationSample(returns)
		if err != nil {
			return nil, err
		}
		s.AnnualizedVolatility = Percent(100 * stdev * math.Sqrt(tradingDaysPerYear))

		years := float64(len(returns)) / tradingDaysPerYear
		first := sim.Rows[0].Close
		s.AnnualizedPriceReturn = Percent(100 * (math.Pow(last.Close/first, 1/years) - 1))
	}
	return s, nil
}

// maxDrawdown returns the largest peak-to-trough decline of the portfolio
// value, as a fraction in [0, 1]. Days before the first contribution carry a
// zero value and are skipped.
func maxDrawdown(rows []Row) float64 {
	var peak, worst float64
	for _, row := range rows {
		if row.Value > peak {
			peak = row.Value
		}
		if peak == 0 {
			continue
		}
		if dd := (peak - row.Value) / peak; dd > worst {
			worst = dd
		}
	}
	return worst
}
