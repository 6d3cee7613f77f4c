package company

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

// CompanyToolsConfig defines configuration for all tools
type CompanyToolsConfig struct {
	Profile       ToolConfig
	Notes         ToolConfig
	PeerList      ToolConfig
	MarketCap     ToolConfig
	SharesFloat   ToolConfig
	Executives    ToolConfig
	EmployeeCount ToolConfig
}

// GetDefaultToolsConfig returns default tool configuration
func GetDefaultToolsConfig() CompanyToolsConfig {
	return CompanyToolsConfig{
		Profile: ToolConfig{
			Enabled:     true,
			Name:        "get-company-profile",
			Description: "Get the company profile for a symbol: description, sector, industry, CEO, website, market cap and more.",
		},
		Notes: ToolConfig{
			Enabled:     true,
			Name:        "get-company-notes",
			Description: "Get the notes due issued by a company.",
		},
		PeerList: ToolConfig{
			Enabled:     true,
			Name:        "get-peer-list",
			Description: "Get companies that trade similarly to the given symbol.",
		},
		MarketCap: ToolConfig{
			Enabled:     true,
			Name:        "get-market-cap",
			Description: "Get the market capitalization for a symbol.",
		},
		SharesFloat: ToolConfig{
			Enabled:     true,
			Name:        "get-shares-float",
			Description: "Get the share float and liquidity for a symbol.",
		},
		Executives: ToolConfig{
			Enabled:     true,
			Name:        "get-executives",
			Description: "Get the executive roster for a symbol, optionally active executives only.",
		},
		EmployeeCount: ToolConfig{
			Enabled:     true,
			Name:        "get-employee-count",
			Description: "Get the reported employee count history for a symbol.",
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

func (m *Module) buildProfileToolDefinition(config ToolConfig) mcp.Tool {
	return m.symbolToolDefinition(config)
}

func (m *Module) buildNotesToolDefinition(config ToolConfig) mcp.Tool {
	return m.symbolToolDefinition(config)
}

func (m *Module) buildPeerListToolDefinition(config ToolConfig) mcp.Tool {
	return m.symbolToolDefinition(config)
}

func (m *Module) buildMarketCapToolDefinition(config ToolConfig) mcp.Tool {
	return m.symbolToolDefinition(config)
}

func (m *Module) buildSharesFloatToolDefinition(config ToolConfig) mcp.Tool {
	return m.symbolToolDefinition(config)
}

func (m *Module) buildExecutivesToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol (e.g., AAPL)")),
		mcp.WithBoolean("active", mcp.Description("Return only currently active executives")),
	)
}

func (m *Module) buildEmployeeCountToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol (e.g., AAPL)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of periods to return (1-10000)")),
	)
}

// Tool handlers

func (m *Module) symbolArg(request mcp.CallToolRequest) (string, error) {
	return toolkit.Symbol(request.GetArguments()["symbol"])
}

func (m *Module) handleProfile(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	symbol, err := m.symbolArg(request)
	if err != nil {
		return nil, err
	}
	return m.client.Company.Profile(ctx, symbol)
}

func (m *Module) handleNotes(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	symbol, err := m.symbolArg(request)
	if err != nil {
		return nil, err
	}
	return m.client.Company.Notes(ctx, symbol)
}

func (m *Module) handlePeerList(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	symbol, err := m.symbolArg(request)
	if err != nil {
		return nil, err
	}
	return m.client.Company.PeerList(ctx, symbol)
}

func (m *Module) handleMarketCap(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	symbol, err := m.symbolArg(request)
	if err != nil {
		return nil, err
	}
	return m.client.Company.MarketCap(ctx, symbol)
}

func (m *Module) handleSharesFloat(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	symbol, err := m.symbolArg(request)
	if err != nil {
		return nil, err
	}
	return m.client.Company.SharesFloat(ctx, symbol)
}

func (m *Module) handleExecutives(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	args := request.GetArguments()

	symbol, err := toolkit.Symbol(args["symbol"])
	if err != nil {
		return nil, err
	}
	active, err := toolkit.OptionalBool(args, "active")
	if err != nil {
		return nil, err
	}

	return m.client.Company.Executives(ctx, symbol, active)
}

func (m *Module) handleEmployeeCount(ctx context.Context, request mcp.CallToolRequest) (any, error) {
	args := request.GetArguments()

	symbol, err := toolkit.Symbol(args["symbol"])
	if err != nil {
		return nil, err
	}
	limit, err := toolkit.Limit(args["limit"])
	if err != nil {
		return nil, err
	}

	return m.client.Company.EmployeeCount(ctx, symbol, limit)
}
