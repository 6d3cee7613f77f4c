package fmp

import "context"

// SearchCategory wraps the symbol search and screener endpoints.
type SearchCategory struct {
	client *Client
}

// Symbols searches for stock symbols by ticker or company name.
//
// Endpoint: /search-symbol
func (s *SearchCategory) Symbols(ctx context.Context, query string, limit *int, exchange string) (any, error) {
	params := Params{"query": query}
	params.SetInt("limit", limit)
	params.SetString("exchange", exchange)
	return s.client.MakeRequest(ctx, "search-symbol", params)
}

// Companies searches for companies by name.
//
// Endpoint: /search-name
func (s *SearchCategory) Companies(ctx context.Context, query string, limit *int, exchange string) (any, error) {
	params := Params{"query": query}
	params.SetInt("limit", limit)
	params.SetString("exchange", exchange)
	return s.client.MakeRequest(ctx, "search-name", params)
}

// ExchangeVariants lists all exchanges a symbol trades on.
//
// Endpoint: /search-exchange-variants
func (s *SearchCategory) ExchangeVariants(ctx context.Context, symbol string) (any, error) {
	return s.client.MakeRequest(ctx, "search-exchange-variants", Params{"symbol": symbol})
}

// ScreenerOptions holds the optional screening criteria. Nil fields are
// omitted from the query.
type ScreenerOptions struct {
	MarketCapMoreThan      *float64
	MarketCapLowerThan     *float64
	Sector                 string
	Industry               string
	BetaMoreThan           *float64
	BetaLowerThan          *float64
	PriceMoreThan          *float64
	PriceLowerThan         *float64
	DividendMoreThan       *float64
	DividendLowerThan      *float64
	VolumeMoreThan         *int
	VolumeLowerThan        *int
	Exchange               string
	Country                string
	IsETF                  *bool
	IsFund                 *bool
	IsActivelyTrading      *bool
	Limit                  *int
	IncludeAllShareClasses *bool
}

// ToParams converts the options to query parameters using the external
// field names the screener endpoint documents.
func (o ScreenerOptions) ToParams() Params {
	params := Params{}
	params.SetFloat("marketCapMoreThan", o.MarketCapMoreThan)
	params.SetFloat("marketCapLowerThan", o.MarketCapLowerThan)
	params.SetString("sector", o.Sector)
	params.SetString("industry", o.Industry)
	params.SetFloat("betaMoreThan", o.BetaMoreThan)
	params.SetFloat("betaLowerThan", o.BetaLowerThan)
	params.SetFloat("priceMoreThan", o.PriceMoreThan)
	params.SetFloat("priceLowerThan", o.PriceLowerThan)
	params.SetFloat("dividendMoreThan", o.DividendMoreThan)
	params.SetFloat("dividendLowerThan", o.DividendLowerThan)
	params.SetInt("volumeMoreThan", o.VolumeMoreThan)
	params.SetInt("volumeLowerThan", o.VolumeLowerThan)
	params.SetString("exchange", o.Exchange)
	params.SetString("country", o.Country)
	params.SetBool("isEtf", o.IsETF)
	params.SetBool("isFund", o.IsFund)
	params.SetBool("isActivelyTrading", o.IsActivelyTrading)
	params.SetInt("limit", o.Limit)
	params.SetBool("includeAllShareClasses", o.IncludeAllShareClasses)
	return params
}

// Screener screens stocks by market cap, sector, price and other criteria.
//
// Endpoint: /company-screener
func (s *SearchCategory) Screener(ctx context.Context, opts ScreenerOptions) (any, error) {
	return s.client.MakeRequest(ctx, "company-screener", opts.ToParams())
}
