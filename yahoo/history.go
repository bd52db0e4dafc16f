package yahoo

import (
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"github.com/etnz/timeinmarket"
	"github.com/etnz/timeinmarket/date"
)

// History fetches the daily closing prices of a symbol over the given range,
// boundaries included. Non-trading days are simply absent from the result.
func History(symbol string, r date.Range) (*timeinmarket.PriceSeries, error) {
	start := time.Date(r.From.Year(), r.From.Month(), r.From.Day(), 0, 0, 0, 0, time.UTC)
	// The chart API treats the end bound as exclusive.
	to := r.To.Add(1)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	prices := timeinmarket.NewPriceSeries()
	for iter.Next() {
		bar := iter.Bar()
		on := date.Unix(int64(bar.Timestamp))
		if !r.Contains(on) {
			continue
		}
		prices.Append(on, bar.Close.InexactFloat64())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}
	if prices.Len() == 0 {
		return nil, fmt.Errorf("%w for %s (%s to %s)", ErrNoData, symbol, r.From, r.To)
	}
	return prices, nil
}
