package news

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/openfmp/fmp-mcp-server/pkg/toolkit"
)

// newsWindowFunc is the shared signature of the date-windowed news
// endpoints.
type newsWindowFunc func(ctx context.Context, from, to string, page, limit *int) (any, error)

// ToolConfig defines configuration for a single tool
type ToolConfig struct {
	Enabled     bool   // Whether the tool is enabled
	Name        string // Tool name
	Description string // Tool description
}

// NewsToolsConfig defines configuration for all tools
type NewsToolsConfig struct {
	FMPArticles     ToolConfig
	GeneralNews     ToolConfig
	StockNews       ToolConfig
	CryptoNews      ToolConfig
	ForexNews       ToolConfig
	SearchStockNews ToolConfig
}

// GetDefaultToolsConfig returns default tool configuration
func GetDefaultToolsConfig() NewsToolsConfig {
	return NewsToolsConfig{
		FMPArticles: ToolConfig{
			Enabled:     true,
			Name:        "get-fmp-articles",
			Description: "Get articles published by Financial Modeling Prep.",
		},
		GeneralNews: ToolConfig{
			Enabled:     true,
			Name:        "get-general-news",
			Description: "Get the latest general market news, optionally within a date window.",
		},
		StockNews: ToolConfig{
			Enabled:     true,
			Name:        "get-stock-news",
			Description: "Get the latest stock market news, optionally within a date window.",
		},
		CryptoNews: ToolConfig{
			Enabled:     true,
			Name:        "get-crypto-news",
			Description: "Get the latest cryptocurrency news, optionally within a date window.",
		},
		ForexNews: ToolConfig{
			Enabled:     true,
			Name:        "get-forex-news",
			Description: "Get the latest forex news, optionally within a date window.",
		},
		SearchStockNews: ToolConfig{
			Enabled:     true,
			Name:        "search-stock-news",
			Description: "Search stock news for specific symbols, optionally within a date window. Symbols are comma-separated.",
		},
	}
}

// Tool definition builder methods

func (m *Module) buildFMPArticlesToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 0")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of articles per page (1-10000)")),
	)
}

func (m *Module) buildNewsWindowToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("from", mcp.Description("Window start date in YYYY-MM-DD format")),
		mcp.WithString("to", mcp.Description("Window end date in YYYY-MM-DD format")),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 0")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of articles per page (1-10000)")),
	)
}

func (m *Module) buildSearchStockNewsToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("symbols", mcp.Required(), mcp.Description("Comma-separated list of stock symbols (e.g., 'AAPL,MSFT')")),
		mcp.WithString("from", mcp.Description("Window start date in YYYY-MM-DD format")),
		mcp.WithString("to", mcp.Description("Window end date in YYYY-MM-DD format")),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 0")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of articles per page (1-10000)")),
	)
}

// Tool handlers

func (m *Module) handleFMPArticles(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	args := request.GetArguments()

	page, err := toolkit.Page(args["page"])
	if err != nil {
		return nil, err
	}
	limit, err := toolkit.Limit(args["limit"])
	if err != nil {
		return nil, err
	}

	return m.client.News.FMPArticles(ctx, page, limit)
}

// newsHandler adapts a date-windowed news endpoint into a tool operation.
func (m *Module) newsHandler(fetch newsWindowFunc) toolkit.Operation {
	return func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		args := request.GetArguments()

		from, to, page, limit, err := newsWindowArgs(args)
		if err != nil {
			return nil, err
		}

		return fetch(ctx, from, to, page, limit)
	}
}

func (m *Module) handleSearchStockNews(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	args := request.GetArguments()

	symbols, err := toolkit.SymbolList(args, "symbols")
	if err != nil {
		return nil, err
	}
	from, to, page, limit, err := newsWindowArgs(args)
	if err != nil {
		return nil, err
	}

	return m.client.News.SearchStockNews(ctx, symbols, from, to, page, limit)
}

func newsWindowArgs(args map[string]any) (from, to string, page, limit *int, err error) {
	if from, err = toolkit.Date(args["from"]); err != nil {
		return
	}
	if to, err = toolkit.Date(args["to"]); err != nil {
		return
	}
	if page, err = toolkit.Page(args["page"]); err != nil {
		return
	}
	limit, err = toolkit.Limit(args["limit"])
	return
}
