package quote

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/openfmp/fmp-mcp-server/pkg/fmp"
	"github.com/openfmp/fmp-mcp-server/pkg/toolkit"
)

// Config contains quote module configuration
type Config struct {
	Tools ToolsConfig `mapstructure:"tools" json:"tools" yaml:"tools"`
}

// ToolsConfig contains tools configuration
type ToolsConfig struct {
	Prefix string `mapstructure:"prefix" json:"prefix" yaml:"prefix"`
	Suffix string `mapstructure:"suffix" json:"suffix" yaml:"suffix"`
}

// Module represents the quote module
type Module struct {
	config *Config
	logger *zap.Logger
	client *fmp.Client
}

// New creates a new quote module
func New(config *Config, client *fmp.Client, logger *zap.Logger) (*Module, error) {
	if config == nil {
		return nil, fmt.Errorf("quote config is required")
	}
	if client == nil {
		return nil, fmt.Errorf("fmp client is required")
	}

	m := &Module{
		config: config,
		logger: logger.Named("quote"),
		client: client,
	}

	m.logger.Info("Quote module created")
	return m, nil
}

// GetTools returns all MCP tools for the quote module
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
func (m *Module) BuildTools(toolsConfig QuoteToolsConfig) []server.ServerTool {
	var tools []server.ServerTool

	add := func(config ToolConfig, definition func(ToolConfig) mcp.Tool, op toolkit.Operation) {
		if config.Enabled {
			tools = append(tools, server.ServerTool{
				Tool:    definition(config),
				Handler: toolkit.WrapHandler(m.logger, "quote", m.BuildToolName(config.Name), op),
			})
		}
	}

	add(toolsConfig.Quote, m.buildQuoteToolDefinition, m.handleQuote)
	add(toolsConfig.QuoteShort, m.buildQuoteShortToolDefinition, m.handleQuoteShort)
	add(toolsConfig.BatchQuotes, m.buildBatchQuotesToolDefinition, m.handleBatchQuotes)
	add(toolsConfig.AftermarketTrade, m.buildAftermarketTradeToolDefinition, m.handleAftermarketTrade)
	add(toolsConfig.AftermarketQuote, m.buildAftermarketQuoteToolDefinition, m.handleAftermarketQuote)
	add(toolsConfig.PriceChange, m.buildPriceChangeToolDefinition, m.handlePriceChange)
	add(toolsConfig.QuoteSummary, m.buildQuoteSummaryToolDefinition, m.handleQuoteSummary)

	return tools
}
