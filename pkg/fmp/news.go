package fmp

import "context"

// NewsCategory wraps the news and press-release endpoints.
type NewsCategory struct {
	client *Client
}

func (n *NewsCategory) newsWindow(ctx context.Context, endpoint, from, to string, page, limit *int) (any, error) {
	params := Params{}
	params.SetString("from", from)
	params.SetString("to", to)
	params.SetInt("page", page)
	params.SetInt("limit", limit)
	return n.client.MakeRequest(ctx, endpoint, params)
}

// FMPArticles returns articles published by FMP.
//
// Endpoint: /fmp-articles
func (n *NewsCategory) FMPArticles(ctx context.Context, page, limit *int) (any, error) {
	params := Params{}
	params.SetInt("page", page)
	params.SetInt("limit", limit)
	return n.client.MakeRequest(ctx, "fmp-articles", params)
}

// GeneralNews returns the latest general market news.
//
// Endpoint: /news/general-latest
func (n *NewsCategory) GeneralNews(ctx context.Context, from, to string, page, limit *int) (any, error) {
	return n.newsWindow(ctx, "news/general-latest", from, to, page, limit)
}

// StockNews returns the latest stock market news.
//
// Endpoint: /news/stock-latest
func (n *NewsCategory) StockNews(ctx context.Context, from, to string, page, limit *int) (any, error) {
	return n.newsWindow(ctx, "news/stock-latest", from, to, page, limit)
}

// CryptoNews returns the latest cryptocurrency news.
//
// Endpoint: /news/crypto-latest
func (n *NewsCategory) CryptoNews(ctx context.Context, from, to string, page, limit *int) (any, error) {
	return n.newsWindow(ctx, "news/crypto-latest", from, to, page, limit)
}

// ForexNews returns the latest forex news.
//
// Endpoint: /news/forex-latest
func (n *NewsCategory) ForexNews(ctx context.Context, from, to string, page, limit *int) (any, error) {
	return n.newsWindow(ctx, "news/forex-latest", from, to, page, limit)
}

// SearchStockNews searches stock news for specific symbols.
//
// Endpoint: /news/stock
func (n *NewsCategory) SearchStockNews(ctx context.Context, symbols []string, from, to string, page, limit *int) (any, error) {
	params := Params{}
	params.SetSymbols("symbols", symbols)
	params.SetString("from", from)
	params.SetString("to", to)
	params.SetInt("page", page)
	params.SetInt("limit", limit)
	return n.client.MakeRequest(ctx, "news/stock", params)
}
