package statements

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/openfmp/fmp-mcp-server/pkg/fmp"
	"github.com/openfmp/fmp-mcp-server/pkg/toolkit"
)

// Config contains statements module configuration
type Config struct {
	Tools ToolsConfig `mapstructure:"tools" json:"tools" yaml:"tools"`
}

// ToolsConfig contains tools configuration
type ToolsConfig struct {
	Prefix string `mapstructure:"prefix" json:"prefix" yaml:"prefix"`
	Suffix string `mapstructure:"suffix" json:"suffix" yaml:"suffix"`
}

// Module represents the financial statements module
type Module struct {
	config *Config
	logger *zap.Logger
	client *fmp.Client
}

// New creates a new statements module
func New(config *Config, client *fmp.Client, logger *zap.Logger) (*Module, error) {
	if config == nil {
		return nil, fmt.Errorf("statements config is required")
	}
	if client == nil {
		return nil, fmt.Errorf("fmp client is required")
	}

	m := &Module{
		config: config,
		logger: logger.Named("statements"),
		client: client,
	}

	m.logger.Info("Statements module created")
	return m, nil
}

// GetTools returns all MCP tools for the statements module
func (m *Module) GetTools() []server.ServerTool {
	return m.BuildTools(GetDefaultToolsConfig())
}

// BuildToolName builds tool name based on configuration
func (m *Module) BuildToolName(baseName string) string {
	toolName := baseName
	if m.config.Tools.Prefix != "" {
		toolName = m.config.Tools.Prefix + toolName
	}
	if m.config.Tools.Suffix != "" {
		toolName = toolName + m.config.Tools.Suffix
	}
	return toolName
}

// BuildTools builds tool list based on configuration
func (m *Module) BuildTools(toolsConfig StatementsToolsConfig) []server.ServerTool {
	var tools []server.ServerTool

	add := func(config ToolConfig, op toolkit.Operation) {
		if config.Enabled {
			tools = append(tools, server.ServerTool{
				Tool:    m.buildStatementToolDefinition(config),
				Handler: toolkit.WrapHandler(m.logger, "statements", m.BuildToolName(config.Name), op),
			})
		}
	}

	add(toolsConfig.IncomeStatement, m.statementHandler(m.client.Statements.IncomeStatement))
	add(toolsConfig.BalanceSheet, m.statementHandler(m.client.Statements.BalanceSheetStatement))
	add(toolsConfig.CashFlow, m.statementHandler(m.client.Statements.CashFlowStatement))
	add(toolsConfig.KeyMetrics, m.statementHandler(m.client.Statements.KeyMetrics))
	add(toolsConfig.FinancialRatios, m.statementHandler(m.client.Statements.FinancialRatios))

	return tools
}

// statementHandler adapts a statement category method into a tool
// operation. Every statement endpoint takes the same three arguments.
func (m *Module) statementHandler(fetch statementFunc) toolkit.Operation {
	return func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		args := request.GetArguments()

		symbol, err := toolkit.Symbol(args["symbol"])
		if err != nil {
			return nil, err
		}
		limit, err := toolkit.Limit(args["limit"])
		if err != nil {
			return nil, err
		}
		period, err := toolkit.OptionalString(args, "period")
		if err != nil {
			return nil, err
		}
		if period != "" && period != "annual" && period != "quarter" {
			return nil, toolkit.NewValidationError("period must be 'annual' or 'quarter'")
		}

		return fetch(ctx, symbol, limit, period)
	}
}
