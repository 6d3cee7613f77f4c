package company

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/openfmp/fmp-mcp-server/pkg/fmp"
	"github.com/openfmp/fmp-mcp-server/pkg/toolkit"
)

// Config contains company module configuration
type Config struct {
	Tools ToolsConfig `mapstructure:"tools" json:"tools" yaml:"tools"`
}

// ToolsConfig contains tools configuration
type ToolsConfig struct {
	Prefix string `mapstructure:"prefix" json:"prefix" yaml:"prefix"`
	Suffix string `mapstructure:"suffix" json:"suffix" yaml:"suffix"`
}

// Module represents the company module
type Module struct {
	config *Config
	logger *zap.Logger
	client *fmp.Client
}

// New creates a new company module
func New(config *Config, client *fmp.Client, logger *zap.Logger) (*Module, error) {
	if config == nil {
		return nil, fmt.Errorf("company config is required")
	}
	if client == nil {
		return nil, fmt.Errorf("fmp client is required")
	}

	m := &Module{
		config: config,
		logger: logger.Named("company"),
		client: client,
	}

	m.logger.Info("Company module created")
	return m, nil
}

// GetTools returns all MCP tools for the company module
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
func (m *Module) BuildTools(toolsConfig CompanyToolsConfig) []server.ServerTool {
	var tools []server.ServerTool

	add := func(config ToolConfig, definition func(ToolConfig) mcp.Tool, op toolkit.Operation) {
		if config.Enabled {
			tools = append(tools, server.ServerTool{
				Tool:    definition(config),
				Handler: toolkit.WrapHandler(m.logger, "company", m.BuildToolName(config.Name), op),
			})
		}
	}

	add(toolsConfig.Profile, m.buildProfileToolDefinition, m.handleProfile)
	add(toolsConfig.Notes, m.buildNotesToolDefinition, m.handleNotes)
	add(toolsConfig.PeerList, m.buildPeerListToolDefinition, m.handlePeerList)
	add(toolsConfig.MarketCap, m.buildMarketCapToolDefinition, m.handleMarketCap)
	add(toolsConfig.SharesFloat, m.buildSharesFloatToolDefinition, m.handleSharesFloat)
	add(toolsConfig.Executives, m.buildExecutivesToolDefinition, m.handleExecutives)
	add(toolsConfig.EmployeeCount, m.buildEmployeeCountToolDefinition, m.handleEmployeeCount)

	return tools
}
