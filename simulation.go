package timeinmarket

import (
	"errors"
	"fmt"

	"github.com/etnz/timeinmarket/date"
)

// ErrNoPrices is returned when a simulation is requested on a price series
// without a single trading day.
var ErrNoPrices = errors.New("price series has no trading days")

// Row holds the state of the plan on one trading day.
type Row struct {
	Date  date.Date
	Close float64

	Invested     float64 // amount contributed that day, 0 if none
	SharesBought float64 // shares bought that day, 0 if none

	TotalInvested float64 // cash put in, up to and including this day
	TotalShares   float64 // shares owned, up to and including this day

	Value     float64 // TotalShares * Close
	Profit    float64 // Value - TotalInvested
	ProfitPct Percent // 100 * Profit / TotalInvested, 0 before the first contribution
}

// Simulation is the result of running a systematic investment plan over a
// price series: one Row per trading day, aligned 1:1 with the input.
type Simulation struct {
	Amount   float64
	Schedule Schedule

	// InvestmentDates are the trading days on which a contribution occurred.
	InvestmentDates []date.Date

	Rows []Row
}

// Simulate runs a systematic investment plan over the price series: on every
// trading day resolved by the schedule, 'amount' is invested at that day's
// closing price, and running totals are carried through every trading day.
//
// It is a pure function of its inputs: the series is never mutated, and
// running it twice yields identical results. It fails, without partial
// output, on an empty series, a nil schedule, or a non-positive amount.
func Simulate(prices *PriceSeries, amount float64, schedule Schedule) (*Simulation, error) {
	if prices == nil || prices.Len() == 0 {
		return nil, ErrNoPrices
	}
	if schedule == nil {
		return nil, errors.New("no schedule provided")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("invalid contribution amount %g: must be positive", amount)
	}

	investing := make(map[date.Date]bool)
	investmentDates := schedule.InvestmentDates(prices)
	for _, on := range investmentDates {
		investing[on] = true
	}

	sim := &Simulation{
		Amount:          amount,
		Schedule:        schedule,
		InvestmentDates: investmentDates,
		Rows:            make([]Row, 0, prices.Len()),
	}

	// Single left-to-right pass: prefix sums plus pointwise derived fields.
	var totalInvested, totalShares float64
	for on, close := range prices.Values() {
		row := Row{Date: on, Close: close}
		if investing[on] {
			row.Invested = amount
			row.SharesBought = amount / close
		}
		totalInvested += row.Invested
		totalShares += row.SharesBought

		row.TotalInvested = totalInvested
		row.TotalShares = totalShares
		row.Value = totalShares * close
		row.Profit = row.Value - totalInvested
		if totalInvested > 0 {
			row.ProfitPct = Percent(100 * row.Profit / totalInvested)
		}
		sim.Rows = append(sim.Rows, row)
	}
	return sim, nil
}

// Last returns the final row of the simulation.
func (sim *Simulation) Last() Row { return sim.Rows[len(sim.Rows)-1] }

// Range returns the range spanned by the simulation, from first to last trading day.
func (sim *Simulation) Range() date.Range {
	return date.NewRange(sim.Rows[0].Date, sim.Last().Date)
}
