package fmp

import "context"

// QuoteCategory wraps the real-time quote endpoints.
type QuoteCategory struct {
	client *Client
}

// Quote returns the full real-time quote for a symbol.
//
// Endpoint: /quote
func (q *QuoteCategory) Quote(ctx context.Context, symbol string) (any, error) {
	return q.client.MakeRequest(ctx, "quote", Params{"symbol": symbol})
}

// QuoteShort returns the price, change and volume for a symbol.
//
// Endpoint: /quote-short
func (q *QuoteCategory) QuoteShort(ctx context.Context, symbol string) (any, error) {
	return q.client.MakeRequest(ctx, "quote-short", Params{"symbol": symbol})
}

// AftermarketTrade returns the latest after-hours trade for a symbol.
//
// Endpoint: /aftermarket-trade
func (q *QuoteCategory) AftermarketTrade(ctx context.Context, symbol string) (any, error) {
	return q.client.MakeRequest(ctx, "aftermarket-trade", Params{"symbol": symbol})
}

// AftermarketQuote returns the after-hours bid/ask for a symbol.
//
// Endpoint: /aftermarket-quote
func (q *QuoteCategory) AftermarketQuote(ctx context.Context, symbol string) (any, error) {
	return q.client.MakeRequest(ctx, "aftermarket-quote", Params{"symbol": symbol})
}

// PriceChange returns price changes over standard windows (1D to max).
//
// Endpoint: /stock-price-change
func (q *QuoteCategory) PriceChange(ctx context.Context, symbol string) (any, error) {
	return q.client.MakeRequest(ctx, "stock-price-change", Params{"symbol": symbol})
}

// BatchQuotes returns full quotes for multiple symbols in one call.
//
// Endpoint: /batch-quote
func (q *QuoteCategory) BatchQuotes(ctx context.Context, symbols []string) (any, error) {
	params := Params{}
	params.SetSymbols("symbols", symbols)
	return q.client.MakeRequest(ctx, "batch-quote", params)
}

// BatchQuotesShort returns short quotes for multiple symbols in one call.
//
// Endpoint: /batch-quote-short
func (q *QuoteCategory) BatchQuotesShort(ctx context.Context, symbols []string) (any, error) {
	params := Params{}
	params.SetSymbols("symbols", symbols)
	return q.client.MakeRequest(ctx, "batch-quote-short", params)
}
