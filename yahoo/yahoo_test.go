package yahoo

import (
	"encoding/json"
	"testing"
)

const searchPayload = `{
  "quotes": [
    {"symbol": "IWDA.AS", "shortname": "ISHARES CORE MSCI WORLD", "longname": "iShares Core MSCI World UCITS ETF USD (Acc)", "quoteType": "ETF", "exchange": "AMS"},
    {"symbol": "SWDA.L", "shortname": "ISHSVII CORE MSCI WLD", "quoteType": "ETF", "exchange": "LSE"}
  ]
}`

func TestSearchResultDecoding(t *testing.T) {
	var content struct {
		Quotes []SearchResult `json:"quotes"`
	}
	if err := json.Unmarshal([]byte(searchPayload), &content); err != nil {
		t.Fatal(err)
	}
	if len(content.Quotes) != 2 {
		t.Fatalf("got %d quotes, want 2", len(content.Quotes))
	}
	first := content.Quotes[0]
	if first.Symbol != "IWDA.AS" {
		t.Errorf("Symbol = %q", first.Symbol)
	}
	if first.Name() != "iShares Core MSCI World UCITS ETF USD (Acc)" {
		t.Errorf("Name() = %q, want the long name", first.Name())
	}
	// The second quote has no longname: Name falls back to shortname.
	if got := content.Quotes[1].Name(); got != "ISHSVII CORE MSCI WLD" {
		t.Errorf("Name() = %q, want the short name", got)
	}
}

func TestSearchResultNameFallsBackToSymbol(t *testing.T) {
	r := SearchResult{Symbol: "ABC.DE"}
	if r.Name() != "ABC.DE" {
		t.Errorf("Name() = %q", r.Name())
	}
}

const chartMetaPayload = `{
  "chart": {
    "result": [
      {"meta": {"currency": "USD", "symbol": "AAPL", "regularMarketPrice": 232.8, "chartPreviousClose": 229.87}}
    ],
    "error": null
  }
}`

func TestPreviousCloseExtraction(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(chartMetaPayload), &jobj); err != nil {
		t.Fatal(err)
	}
	v, err := previousClose(jobj, "AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if v != 229.87 {
		t.Errorf("previousClose = %g, want 229.87", v)
	}
}

func TestPreviousCloseMissingMeta(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(`{"chart":{"result":[],"error":null}}`), &jobj); err != nil {
		t.Fatal(err)
	}
	if _, err := previousClose(jobj, "AAPL"); err == nil {
		t.Error("previousClose accepted an empty result set")
	}
}
