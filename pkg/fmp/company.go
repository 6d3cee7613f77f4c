package fmp

import "context"

// CompanyCategory wraps the company profile and metadata endpoints.
type CompanyCategory struct {
	client *Client
}

// Profile returns the company profile for a symbol.
//
// Endpoint: /profile
func (c *CompanyCategory) Profile(ctx context.Context, symbol string) (any, error) {
	return c.client.MakeRequest(ctx, "profile", Params{"symbol": symbol})
}

// Notes returns the notes due issued by a company.
//
// Endpoint: /company-notes
func (c *CompanyCategory) Notes(ctx context.Context, symbol string) (any, error) {
	return c.client.MakeRequest(ctx, "company-notes", Params{"symbol": symbol})
}

// PeerList returns companies that trade similarly to the given symbol.
//
// Endpoint: /stock-peers
func (c *CompanyCategory) PeerList(ctx context.Context, symbol string) (any, error) {
	return c.client.MakeRequest(ctx, "stock-peers", Params{"symbol": symbol})
}

// MarketCap returns the market capitalization for a symbol.
//
// Endpoint: /market-capitalization
func (c *CompanyCategory) MarketCap(ctx context.Context, symbol string) (any, error) {
	return c.client.MakeRequest(ctx, "market-capitalization", Params{"symbol": symbol})
}

// SharesFloat returns the liquidity and float for a symbol.
//
// Endpoint: /shares-float
func (c *CompanyCategory) SharesFloat(ctx context.Context, symbol string) (any, error) {
	return c.client.MakeRequest(ctx, "shares-float", Params{"symbol": symbol})
}

// Executives returns the executive roster for a symbol.
//
// Endpoint: /key-executives
func (c *CompanyCategory) Executives(ctx context.Context, symbol string, active *bool) (any, error) {
	params := Params{"symbol": symbol}
	params.SetBool("active", active)
	return c.client.MakeRequest(ctx, "key-executives", params)
}

// EmployeeCount returns the reported employee count history for a symbol.
//
// Endpoint: /employee-count
func (c *CompanyCategory) EmployeeCount(ctx context.Context, symbol string, limit *int) (any, error) {
	params := Params{"symbol": symbol}
	params.SetInt("limit", limit)
	return c.client.MakeRequest(ctx, "employee-count", params)
}
