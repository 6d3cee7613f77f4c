package statements

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// statementFunc is the shared signature of the statement category methods.
type statementFunc func(ctx context.Context, symbol string, limit *int, period string) (any, error)

// ToolConfig defines configuration for a single tool
type ToolConfig struct {
	Enabled     bool   // Whether the tool is enabled
	Name        string // Tool name
	Description string // Tool description
}

// StatementsToolsConfig defines configuration for all tools
type StatementsToolsConfig struct {
	IncomeStatement ToolConfig
	BalanceSheet    ToolConfig
	CashFlow        ToolConfig
	KeyMetrics      ToolConfig
	FinancialRatios ToolConfig
}

// GetDefaultToolsConfig returns default tool configuration
func GetDefaultToolsConfig() StatementsToolsConfig {
	return StatementsToolsConfig{
		IncomeStatement: ToolConfig{
			Enabled:     true,
			Name:        "get-income-statement",
			Description: "Get income statements for a symbol. Period is 'annual' or 'quarter'.",
		},
		BalanceSheet: ToolConfig{
			Enabled:     true,
			Name:        "get-balance-sheet",
			Description: "Get balance sheet statements for a symbol. Period is 'annual' or 'quarter'.",
		},
		CashFlow: ToolConfig{
			Enabled:     true,
			Name:        "get-cash-flow",
			Description: "Get cash flow statements for a symbol. Period is 'annual' or 'quarter'.",
		},
		KeyMetrics: ToolConfig{
			Enabled:     true,
			Name:        "get-key-metrics",
			Description: "Get key financial metrics for a symbol (revenue per share, ROE, debt ratios and more).",
		},
		FinancialRatios: ToolConfig{
			Enabled:     true,
			Name:        "get-financial-ratios",
			Description: "Get financial ratios for a symbol (P/E, current ratio, margins and more).",
		},
	}
}

// buildStatementToolDefinition builds the shared definition every statement
// tool uses; they differ only in name and description.
func (m *Module) buildStatementToolDefinition(config ToolConfig) mcp.Tool {
	return mcp.NewTool(m.BuildToolName(config.Name),
		mcp.WithDescription(config.Description),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol (e.g., AAPL)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of periods to return (1-10000)")),
		mcp.WithString("period", mcp.Description("Reporting period: 'annual' or 'quarter'")),
	)
}
