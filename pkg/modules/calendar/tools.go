package calendar

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/openfmp/fmp-mcp-server/pkg/toolkit"
)

// windowFunc is the shared signature of the date-window calendar endpoints.
type windowFunc func(ctx context.Context, from, to string) (any, error)

// ToolConfig defines configuration for a single tool
type ToolConfig struct {
	Enabled     bool   // Whether the tool is enabled
	Name        string // Tool name
	Description string // Tool description
}

// CalendarToolsConfig defines configuration for all tools
type CalendarToolsConfig struct {
	Dividends         ToolConfig
	DividendsCalendar ToolConfig
	EarningsReport    ToolConfig
	EarningsCalendar  ToolConfig
	IPOsCalendar      ToolConfig
	SplitsCalendar    ToolConfig
}

// GetDefaultToolsConfig returns default tool configuration
func GetDefaultToolsConfig() CalendarToolsConfig {
	return CalendarToolsConfig{
		Dividends: ToolConfig{
			Enabled:     true,
			Name:        "get-dividends",
			Description: "Get the dividend history for a stock symbol.",
		},
		DividendsCalendar: ToolConfig{
			Enabled:     true,
			Name:        "get-dividends-calendar",
			Description: "Get upcoming dividend events in a date window. Dates are YYYY-MM-DD.",
		},
		EarningsReport: ToolConfig{
			Enabled:     true,
			Name:        "get-earnings-report",
			Description: "Get the earnings report history for a stock symbol.",
		},
		EarningsCalendar: ToolConfig{
			Enabled:     true,
			Name:        "get-earnings-calendar",
			Description: "Get upcoming earnings announcements in a date window. Dates are YYYY-MM-DD.",
		},
		IPOsCalendar: ToolConfig{
			Enabled:     true,
			Name:        "get-ipos-calendar",
			Description: "Get upcoming IPOs in a date window. Dates are YYYY-MM-DD.",
		},
		SplitsCalendar: ToolConfig{
			Enabled:     true,
			Name:        "get-splits-calendar",
			Description: "Get upcoming stock splits in a date window. Dates are YYYY-MM-DD.",
		},
	}
}

// Tool definition builder methods

func (m *Module) buildDividendsToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol (e.g., AAPL)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of records to return (1-10000)")),
	)
}

func (m *Module) buildEarningsReportToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol (e.g., AAPL)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of records to return (1-10000)")),
	)
}

func (m *Module) buildWindowToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("from", mcp.Description("Window start date in YYYY-MM-DD format")),
		mcp.WithString("to", mcp.Description("Window end date in YYYY-MM-DD format")),
	)
}

// Tool handlers

func (m *Module) handleDividends(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	args := request.GetArguments()

	symbol, err := toolkit.Symbol(args["symbol"])
	if err != nil {
		return nil, err
	}
	limit, err := toolkit.Limit(args["limit"])
	if err != nil {
		return nil, err
	}

	return m.client.Calendar.Dividends(ctx, symbol, limit)
}

func (m *Module) handleEarningsReport(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	args := request.GetArguments()

	symbol, err := toolkit.Symbol(args["symbol"])
	if err != nil {
		return nil, err
	}
	limit, err := toolkit.Limit(args["limit"])
	if err != nil {
		return nil, err
	}

	return m.client.Calendar.EarningsReport(ctx, symbol, limit)
}

// windowHandler adapts a date-window calendar endpoint into a tool
// operation; from/to are validated but optional.
func (m *Module) windowHandler(fetch windowFunc) toolkit.Operation {
	return func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		args := request.GetArguments()

		from, err := toolkit.Date(args["from"])
		if err != nil {
			return nil, err
		}
		to, err := toolkit.Date(args["to"])
		if err != nil {
			return nil, err
		}

		return fetch(ctx, from, to)
	}
}
