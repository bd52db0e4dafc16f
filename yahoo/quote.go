package yahoo

import (
	"fmt"
	"math"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "chart": {
	        "result": [
	            {
	                "meta": {
	                    "currency": "USD",
	                    "symbol": "AAPL",
	                    "regularMarketPrice": 232.8,
	                    "chartPreviousClose": 229.87,
	                    ...
*/

// PreviousClose returns the last daily closing price Yahoo knows for a
// symbol. It is display information for search results, not simulation data.
func PreviousClose(symbol string) (float64, error) {
	addr := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=1d", url.PathEscape(symbol))
	var jobj any
	if err := jwget(newCachingClient(), addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", symbol, err)
	}
	return previousClose(jobj, symbol)
}

// previousClose extracts the previous close from a decoded chart payload.
func previousClose(jobj any, symbol string) (float64, error) {
	path := "$.chart.result[0].meta.chartPreviousClose"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", symbol, path, "not a float", jval)
	}
	return val, nil
}
