package fmp

import "context"

// CalendarCategory wraps the dividends, earnings, IPO and split calendars.
type CalendarCategory struct {
	client *Client
}

// Dividends returns the dividend history for a symbol.
//
// Endpoint: /dividends
func (c *CalendarCategory) Dividends(ctx context.Context, symbol string, limit *int) (any, error) {
	params := Params{"symbol": symbol}
	params.SetInt("limit", limit)
	return c.client.MakeRequest(ctx, "dividends", params)
}

// DividendsCalendar returns upcoming dividend events in a date window.
//
// Endpoint: /dividends-calendar
func (c *CalendarCategory) DividendsCalendar(ctx context.Context, from, to string) (any, error) {
	params := Params{}
	params.SetString("from", from)
	params.SetString("to", to)
	return c.client.MakeRequest(ctx, "dividends-calendar", params)
}

// EarningsReport returns the earnings report history for a symbol.
//
// Endpoint: /earnings
func (c *CalendarCategory) EarningsReport(ctx context.Context, symbol string, limit *int) (any, error) {
	params := Params{"symbol": symbol}
	params.SetInt("limit", limit)
	return c.client.MakeRequest(ctx, "earnings", params)
}

// EarningsCalendar returns upcoming earnings announcements in a date window.
//
// Endpoint: /earnings-calendar
func (c *CalendarCategory) EarningsCalendar(ctx context.Context, from, to string) (any, error) {
	params := Params{}
	params.SetString("from", from)
	params.SetString("to", to)
	return c.client.MakeRequest(ctx, "earnings-calendar", params)
}

// IPOsCalendar returns upcoming IPOs in a date window.
//
// Endpoint: /ipos-calendar
func (c *CalendarCategory) IPOsCalendar(ctx context.Context, from, to string) (any, error) {
	params := Params{}
	params.SetString("from", from)
	params.SetString("to", to)
	return c.client.MakeRequest(ctx, "ipos-calendar", params)
}

// SplitsCalendar returns upcoming stock splits in a date window.
//
// Endpoint: /splits-calendar
func (c *CalendarCategory) SplitsCalendar(ctx context.Context, from, to string) (any, error) {
	params := Params{}
	params.SetString("from", from)
	params.SetString("to", to)
	return c.client.MakeRequest(ctx, "splits-calendar", params)
}
