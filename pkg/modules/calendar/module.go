package calendar

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/openfmp/fmp-mcp-server/pkg/fmp"
	"github.com/openfmp/fmp-mcp-server/pkg/toolkit"
)

// Config contains calendar module configuration
type Config struct {
	Tools ToolsConfig `mapstructure:"tools" json:"tools" yaml:"tools"`
}

// ToolsConfig contains tools configuration
type ToolsConfig struct {
	Prefix string `mapstructure:"prefix" json:"prefix" yaml:"prefix"`
	Suffix string `mapstructure:"suffix" json:"suffix" yaml:"suffix"`
}

// Module represents the calendar module
type Module struct {
	config *Config
	logger *zap.Logger
	client *fmp.Client
}

// New creates a new calendar module
func New(config *Config, client *fmp.Client, logger *zap.Logger) (*Module, error) {
	if config == nil {
		return nil, fmt.Errorf("calendar config is required")
	}
	if client == nil {
		return nil, fmt.Errorf("fmp client is required")
	}

	m := &Module{
		config: config,
		logger: logger.Named("calendar"),
		client: client,
	}

	m.logger.Info("Calendar module created")
	return m, nil
}

// GetTools returns all MCP tools for the calendar module
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
func (m *Module) BuildTools(toolsConfig CalendarToolsConfig) []server.ServerTool {
	var tools []server.ServerTool

	add := func(config ToolConfig, definition func(ToolConfig) mcp.Tool, op toolkit.Operation) {
		if config.Enabled {
			tools = append(tools, server.ServerTool{
				Tool:    definition(config),
				Handler: toolkit.WrapHandler(m.logger, "calendar", m.BuildToolName(config.Name), op),
			})
		}
	}

	add(toolsConfig.Dividends, m.buildDividendsToolDefinition, m.handleDividends)
	add(toolsConfig.DividendsCalendar, m.buildWindowToolDefinition, m.windowHandler(m.client.Calendar.DividendsCalendar))
	add(toolsConfig.EarningsReport, m.buildEarningsReportToolDefinition, m.handleEarningsReport)
	add(toolsConfig.EarningsCalendar, m.buildWindowToolDefinition, m.windowHandler(m.client.Calendar.EarningsCalendar))
	add(toolsConfig.IPOsCalendar, m.buildWindowToolDefinition, m.windowHandler(m.client.Calendar.IPOsCalendar))
	add(toolsConfig.SplitsCalendar, m.buildWindowToolDefinition, m.windowHandler(m.client.Calendar.SplitsCalendar))

	return tools
}
