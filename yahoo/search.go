package yahoo

import (
	"fmt"
	"net/url"
)

// SearchResult matches the structure of a single quote in the Yahoo Finance
// search API response.
type SearchResult struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	QuoteType string `json:"quoteType"`
	Exchange  string `json:"exchange"`
}

// Name returns the best display name available for the result.
func (r SearchResult) Name() string {
	if r.LongName != "" {
		return r.LongName
	}
	if r.ShortName != "" {
		return r.ShortName
	}
	return r.Symbol
}

// Search searches Yahoo Finance for instruments matching the term, typically
// an ISIN or a company name.
func Search(term string) ([]SearchResult, error) {
	addr := fmt.Sprintf("https://query2.finance.yahoo.com/v1/finance/search?q=%s", url.QueryEscape(term))

	// that's the payload
	var content struct {
		Quotes []SearchResult `json:"quotes"`
	}
	if err := jwget(newCachingClient(), addr, &content); err != nil {
		return nil, err
	}
	return content.Quotes, nil
}

// Resolve maps an identifier (usually an ISIN) to the symbol and display
// name of the best matching instrument.
func Resolve(identifier string) (symbol, name string, err error) {
	results, err := Search(identifier)
	if err != nil {
		return "", "", err
	}
	if len(results) == 0 {
		return "", "", fmt.Errorf("%w for %q", ErrNotFound, identifier)
	}
	// Yahoo ranks its answers, the first one is the intended match.
	best := results[0]
	return best.Symbol, best.Name(), nil
}
