package fmp

import "context"

// StatementsCategory wraps the financial statement endpoints.
type StatementsCategory struct {
	client *Client
}

func (s *StatementsCategory) statement(ctx context.Context, endpoint, symbol string, limit *int, period string) (any, error) {
	params := Params{"symbol": symbol}
	params.SetInt("limit", limit)
	params.SetString("period", period)
	return s.client.MakeRequest(ctx, endpoint, params)
}

// IncomeStatement returns income statements for a symbol. Period is
// "annual" or "quarter".
//
// Endpoint: /income-statement
func (s *StatementsCategory) IncomeStatement(ctx context.Context, symbol string, limit *int, period string) (any, error) {
	return s.statement(ctx, "income-statement", symbol, limit, period)
}

// BalanceSheetStatement returns balance sheet statements for a symbol.
//
// Endpoint: /balance-sheet-statement
func (s *StatementsCategory) BalanceSheetStatement(ctx context.Context, symbol string, limit *int, period string) (any, error) {
	return s.statement(ctx, "balance-sheet-statement", symbol, limit, period)
}

// CashFlowStatement returns cash flow statements for a symbol.
//
// Endpoint: /cash-flow-statement
func (s *StatementsCategory) CashFlowStatement(ctx context.Context, symbol string, limit *int, period string) (any, error) {
	return s.statement(ctx, "cash-flow-statement", symbol, limit, period)
}

// KeyMetrics returns key financial metrics for a symbol.
//
// Endpoint: /key-metrics
func (s *StatementsCategory) KeyMetrics(ctx context.Context, symbol string, limit *int, period string) (any, error) {
	return s.statement(ctx, "key-metrics", symbol, limit, period)
}

// FinancialRatios returns financial ratios for a symbol.
//
// Endpoint: /ratios
func (s *StatementsCategory) FinancialRatios(ctx context.Context, symbol string, limit *int, period string) (any, error) {
	return s.statement(ctx, "ratios", symbol, limit, period)
}
