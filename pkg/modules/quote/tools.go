package quote

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/openfmp/fmp-mcp-server/pkg/toolkit"
)

// ToolConfig defines configuration for a single tool
type ToolConfig struct {
	Enabled     bool   // Whether the tool is enabled
	Name        string // Tool name
	Description string // Tool description
}

// QuoteToolsConfig defines configuration for all tools
type QuoteToolsConfig struct {
	Quote            ToolConfig
	QuoteShort       ToolConfig
	BatchQuotes      ToolConfig
	AftermarketTrade ToolConfig
	AftermarketQuote ToolConfig
	PriceChange      ToolConfig
	QuoteSummary     ToolConfig
}

// GetDefaultToolsConfig returns default tool configuration
func GetDefaultToolsConfig() QuoteToolsConfig {
	return QuoteToolsConfig{
		Quote: ToolConfig{
			Enabled:     true,
			Name:        "get-quote",
			Description: "Get the full real-time quote for a stock symbol: price, change, volume, day range, market cap and averages.",
		},
		QuoteShort: ToolConfig{
			Enabled:     true,
			Name:        "get-quote-short",
			Description: "Get a condensed real-time quote for a stock symbol: price, change and volume.",
		},
		BatchQuotes: ToolConfig{
			Enabled:     true,
			Name:        "get-batch-quotes",
			Description: "Get real-time quotes for multiple symbols in one call. Symbols are comma-separated, e.g. 'AAPL,MSFT,GOOG'.",
		},
		AftermarketTrade: ToolConfig{
			Enabled:     true,
			Name:        "get-aftermarket-trade",
			Description: "Get the latest after-hours trade for a stock symbol.",
		},
		AftermarketQuote: ToolConfig{
			Enabled:     true,
			Name:        "get-aftermarket-quote",
			Description: "Get the after-hours bid and ask for a stock symbol.",
		},
		PriceChange: ToolConfig{
			Enabled:     true,
			Name:        "get-price-change",
			Description: "Get price changes for a stock symbol over standard windows (1 day to max).",
		},
		QuoteSummary: ToolConfig{
			Enabled:     true,
			Name:        "get-quote-summary",
			Description: "Get quotes for multiple symbols with price summary statistics (min/max/avg) and display-formatted values.",
		},
	}
}

// Tool definition builder methods

func (m *Module) symbolToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol (e.g., AAPL)")),
	)
}

func (m *Module) buildQuoteToolDefinition(config ToolConfig) mcp.Tool {
	return m.symbolToolDefinition(config)
}

func (m *Module) buildQuoteShortToolDefinition(config ToolConfig) mcp.Tool {
	return m.symbolToolDefinition(config)
}

func (m *Module) buildAftermarketTradeToolDefinition(config ToolConfig) mcp.Tool {
	return m.symbolToolDefinition(config)
}

func (m *Module) buildAftermarketQuoteToolDefinition(config ToolConfig) mcp.Tool {
	return m.symbolToolDefinition(config)
}

func (m *Module) buildPriceChangeToolDefinition(config ToolConfig) mcp.Tool {
	return m.symbolToolDefinition(config)
}

func (m *Module) buildBatchQuotesToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("symbols", mcp.Required(), mcp.Description("Comma-separated list of stock symbols (e.g., 'AAPL,MSFT,GOOG')")),
		mcp.WithBoolean("short", mcp.Description("Return condensed quotes instead of full quotes")),
	)
}

func (m *Module) buildQuoteSummaryToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("symbols", mcp.Required(), mcp.Description("Comma-separated list of stock symbols (e.g., 'AAPL,MSFT,GOOG')")),
	)
}

// Tool handlers

func (m *Module) symbolArg(request mcp.CallToolRequest) (string, error) {
	return toolkit.Symbol(request.GetArguments()["symbol"])
}

func (m *Module) handleQuote(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	symbol, err := m.symbolArg(request)
	if err != nil {
		return nil, err
	}
	return m.client.Quote.Quote(ctx, symbol)
}

func (m *Module) handleQuoteShort(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	symbol, err := m.symbolArg(request)
	if err != nil {
		return nil, err
	}
	return m.client.Quote.QuoteShort(ctx, symbol)
}

func (m *Module) handleAftermarketTrade(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	symbol, err := m.symbolArg(request)
	if err != nil {
		return nil, err
	}
	return m.client.Quote.AftermarketTrade(ctx, symbol)
}

func (m *Module) handleAftermarketQuote(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	symbol, err := m.symbolArg(request)
	if err != nil {
		return nil, err
	}
	return m.client.Quote.AftermarketQuote(ctx, symbol)
}

func (m *Module) handlePriceChange(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	symbol, err := m.symbolArg(request)
	if err != nil {
		return nil, err
	}
	return m.client.Quote.PriceChange(ctx, symbol)
}

func (m *Module) handleBatchQuotes(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	args := request.GetArguments()

	symbols, err := toolkit.SymbolList(args, "symbols")
	if err != nil {
		return nil, err
	}
	short, err := toolkit.OptionalBool(args, "short")
	if err != nil {
		return nil, err
	}

	if short != nil && *short {
		return m.client.Quote.BatchQuotesShort(ctx, symbols)
	}
	return m.client.Quote.BatchQuotes(ctx, symbols)
}

func (m *Module) handleQuoteSummary(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	symbols, err := toolkit.SymbolList(request.GetArguments(), "symbols")
	if err != nil {
		return nil, err
	}

	data, err := m.client.Quote.BatchQuotes(ctx, symbols)
	if err != nil {
		return nil, err
	}

	quotes := toolkit.AsMapSlice(data)
	priceStats := toolkit.SummaryStats(quotes, "price")

	display := make([]map[string]string, 0, len(quotes))
	for _, q := range quotes {
		entry := map[string]string{
			"price":             toolkit.FormatCurrency(toolkit.FloatField(q, "price"), "USD"),
			"change_percentage": toolkit.FormatPercentage(toolkit.FloatField(q, "changePercentage"), 2),
			"market_cap":        toolkit.FormatLargeNumber(toolkit.FloatField(q, "marketCap")),
			"volume":            toolkit.FormatLargeNumber(toolkit.FloatField(q, "volume")),
		}
		if symbol, ok := q["symbol"].(string); ok {
			entry["symbol"] = symbol
		}
		display = append(display, entry)
	}

	return map[string]any{
		"quotes":      quotes,
		"price_stats": priceStats,
		"display":     display,
	}, nil
}
