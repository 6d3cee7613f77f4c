package search

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/openfmp/fmp-mcp-server/pkg/fmp"
	"github.com/openfmp/fmp-mcp-server/pkg/toolkit"
)

// Config contains search module configuration
type Config struct {
	Tools ToolsConfig `mapstructure:"tools" json:"tools" yaml:"tools"`
}

// ToolsConfig contains tools configuration
type ToolsConfig struct {
	Prefix string `mapstructure:"prefix" json:"prefix" yaml:"prefix"`
	Suffix string `mapstructure:"suffix" json:"suffix" yaml:"suffix"`
}

// Module represents the search module
type Module struct {
	config *Config
	logger *zap.Logger
	client *fmp.Client
}

// New creates a new search module
func New(config *Config, client *fmp.Client, logger *zap.Logger) (*Module, error) {
	if config == nil {
		return nil, fmt.Errorf("search config is required")
	}
	if client == nil {
		return nil, fmt.Errorf("fmp client is required")
	}

	m := &Module{
		config: config,
		logger: logger.Named("search"),
		client: client,
	}

	m.logger.Info("Search module created")
	return m, nil
}

// GetTools returns all MCP tools for the search module
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
func (m *Module) BuildTools(toolsConfig SearchToolsConfig) []server.ServerTool {
	var tools []server.ServerTool

	if toolsConfig.Symbols.Enabled {
		tools = append(tools, server.ServerTool{
			Tool:    m.buildSymbolsToolDefinition(toolsConfig.Symbols),
			Handler: toolkit.WrapHandler(m.logger, "search", m.BuildToolName(toolsConfig.Symbols.Name), m.handleSymbols),
		})
	}

	if toolsConfig.Companies.Enabled {
		tools = append(tools, server.ServerTool{
			Tool:    m.buildCompaniesToolDefinition(toolsConfig.Companies),
			Handler: toolkit.WrapHandler(m.logger, "search", m.BuildToolName(toolsConfig.Companies.Name), m.handleCompanies),
		})
	}

	if toolsConfig.Screener.Enabled {
		tools = append(tools, server.ServerTool{
			Tool:    m.buildScreenerToolDefinition(toolsConfig.Screener),
			Handler: toolkit.WrapHandler(m.logger, "search", m.BuildToolName(toolsConfig.Screener.Name), m.handleScreener),
		})
	}

	if toolsConfig.ExchangeVariants.Enabled {
		tools = append(tools, server.ServerTool{
			Tool:    m.buildExchangeVariantsToolDefinition(toolsConfig.ExchangeVariants),
			Handler: toolkit.WrapHandler(m.logger, "search", m.BuildToolName(toolsConfig.ExchangeVariants.Name), m.handleExchangeVariants),
		})
	}

	return tools
}
