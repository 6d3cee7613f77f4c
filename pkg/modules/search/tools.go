package search

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/openfmp/fmp-mcp-server/pkg/fmp"
	"github.com/openfmp/fmp-mcp-server/pkg/toolkit"
)

// ToolConfig defines configuration for a single tool
type ToolConfig struct {
	Enabled     bool   // Whether the tool is enabled
	Name        string // Tool name
	Description string // Tool description
}

// SearchToolsConfig defines configuration for all tools
type SearchToolsConfig struct {
	Symbols          ToolConfig
	Companies        ToolConfig
	Screener         ToolConfig
	ExchangeVariants ToolConfig
}

// GetDefaultToolsConfig returns default tool configuration
func GetDefaultToolsConfig() SearchToolsConfig {
	return SearchToolsConfig{
		Symbols: ToolConfig{
			Enabled:     true,
			Name:        "search-symbols",
			Description: "Search for stock symbols by ticker or company name. Returns matching symbols with company name, currency and exchange.",
		},
		Companies: ToolConfig{
			Enabled:     true,
			Name:        "search-companies",
			Description: "Search for companies by name or partial name. Returns matching companies with their symbols.",
		},
		Screener: ToolConfig{
			Enabled:     true,
			Name:        "screen-stocks",
			Description: "Screen stocks by market cap, sector, industry, beta, price, dividend, volume, exchange, country and fund type. All criteria are optional.",
		},
		ExchangeVariants: ToolConfig{
			Enabled:     true,
			Name:        "search-exchange-variants",
			Description: "Find all exchanges where a given symbol is listed.",
		},
	}
}

// Tool definition builder methods

func (m *Module) buildSymbolsToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query (symbol or company name)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (1-10000)")),
		mcp.WithString("exchange", mcp.Description("Filter by exchange (e.g., NASDAQ, NYSE)")),
	)
}

func (m *Module) buildCompaniesToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("query", mcp.Required(), mcp.Description("Company name or partial name to search for")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (1-10000)")),
		mcp.WithString("exchange", mcp.Description("Filter by exchange (e.g., NASDAQ, NYSE)")),
	)
}

func (m *Module) buildScreenerToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithNumber("market_cap_more_than", mcp.Description("Minimum market cap value")),
		mcp.WithNumber("market_cap_lower_than", mcp.Description("Maximum market cap value")),
		mcp.WithString("sector", mcp.Description("Filter by sector (e.g., Technology, Healthcare)")),
		mcp.WithString("industry", mcp.Description("Filter by industry (e.g., Consumer Electronics)")),
		mcp.WithNumber("beta_more_than", mcp.Description("Minimum beta value")),
		mcp.WithNumber("beta_lower_than", mcp.Description("Maximum beta value")),
		mcp.WithNumber("price_more_than", mcp.Description("Minimum stock price")),
		mcp.WithNumber("price_lower_than", mcp.Description("Maximum stock price")),
		mcp.WithNumber("dividend_more_than", mcp.Description("Minimum dividend yield")),
		mcp.WithNumber("dividend_lower_than", mcp.Description("Maximum dividend yield")),
		mcp.WithNumber("volume_more_than", mcp.Description("Minimum trading volume")),
		mcp.WithNumber("volume_lower_than", mcp.Description("Maximum trading volume")),
		mcp.WithString("exchange", mcp.Description("Filter by exchange (e.g., NASDAQ, NYSE)")),
		mcp.WithString("country", mcp.Description("Filter by country (e.g., US, CA)")),
		mcp.WithBoolean("is_etf", mcp.Description("Filter for ETFs only")),
		mcp.WithBoolean("is_fund", mcp.Description("Filter for funds only")),
		mcp.WithBoolean("is_actively_trading", mcp.Description("Filter for actively trading securities")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (1-10000)")),
		mcp.WithBoolean("include_all_share_classes", mcp.Description("Include all share classes")),
	)
}

func (m *Module) buildExchangeVariantsToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol to look up (e.g., AAPL)")),
	)
}

// Tool handlers

func (m *Module) handleSymbols(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	args := request.GetArguments()

	query, err := toolkit.RequiredString(args, "query")
	if err != nil {
		return nil, err
	}
	limit, err := toolkit.Limit(args["limit"])
	if err != nil {
		return nil, err
	}
	exchange, err := toolkit.OptionalString(args, "exchange")
	if err != nil {
		return nil, err
	}

	return m.client.Search.Symbols(ctx, query, limit, exchange)
}

func (m *Module) handleCompanies(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	args := request.GetArguments()

	query, err := toolkit.RequiredString(args, "query")
	if err != nil {
		return nil, err
	}
	limit, err := toolkit.Limit(args["limit"])
	if err != nil {
		return nil, err
	}
	exchange, err := toolkit.OptionalString(args, "exchange")
	if err != nil {
		return nil, err
	}

	return m.client.Search.Companies(ctx, query, limit, exchange)
}

func (m *Module) handleScreener(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	args := request.GetArguments()

	var opts fmp.ScreenerOptions
	var err error

	if opts.MarketCapMoreThan, err = toolkit.OptionalFloat(args, "market_cap_more_than"); err != nil {
		return nil, err
	}
	if opts.MarketCapLowerThan, err = toolkit.OptionalFloat(args, "market_cap_lower_than"); err != nil {
		return nil, err
	}
	if opts.Sector, err = toolkit.OptionalString(args, "sector"); err != nil {
		return nil, err
	}
	if opts.Industry, err = toolkit.OptionalString(args, "industry"); err != nil {
		return nil, err
	}
	if opts.BetaMoreThan, err = toolkit.OptionalFloat(args, "beta_more_than"); err != nil {
		return nil, err
	}
	if opts.BetaLowerThan, err = toolkit.OptionalFloat(args, "beta_lower_than"); err != nil {
		return nil, err
	}
	if opts.PriceMoreThan, err = toolkit.OptionalFloat(args, "price_more_than"); err != nil {
		return nil, err
	}
	if opts.PriceLowerThan, err = toolkit.OptionalFloat(args, "price_lower_than"); err != nil {
		return nil, err
	}
	if opts.DividendMoreThan, err = toolkit.OptionalFloat(args, "dividend_more_than"); err != nil {
		return nil, err
	}
	if opts.DividendLowerThan, err = toolkit.OptionalFloat(args, "dividend_lower_than"); err != nil {
		return nil, err
	}
	if opts.Exchange, err = toolkit.OptionalString(args, "exchange"); err != nil {
		return nil, err
	}
	if opts.Country, err = toolkit.OptionalString(args, "country"); err != nil {
		return nil, err
	}
	if opts.IsETF, err = toolkit.OptionalBool(args, "is_etf"); err != nil {
		return nil, err
	}
	if opts.IsFund, err = toolkit.OptionalBool(args, "is_fund"); err != nil {
		return nil, err
	}
	if opts.IsActivelyTrading, err = toolkit.OptionalBool(args, "is_actively_trading"); err != nil {
		return nil, err
	}
	if opts.IncludeAllShareClasses, err = toolkit.OptionalBool(args, "include_all_share_classes"); err != nil {
		return nil, err
	}

	if volumeMore, err := toolkit.OptionalFloat(args, "volume_more_than"); err != nil {
		return nil, err
	} else if volumeMore != nil {
		v := int(*volumeMore)
		opts.VolumeMoreThan = &v
	}
	if volumeLower, err := toolkit.OptionalFloat(args, "volume_lower_than"); err != nil {
		return nil, err
	} else if volumeLower != nil {
		v := int(*volumeLower)
		opts.VolumeLowerThan = &v
	}
	if opts.Limit, err = toolkit.Limit(args["limit"]); err != nil {
		return nil, err
	}

	return m.client.Search.Screener(ctx, opts)
}

func (m *Module) handleExchangeVariants(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	symbol, err := toolkit.Symbol(request.GetArguments()["symbol"])
	if err != nil {
		return nil, err
	}
	return m.client.Search.ExchangeVariants(ctx, symbol)
}
