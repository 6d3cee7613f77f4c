package docs

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/openfmp/fmp-mcp-server/cmd/version"
)

// Collector gathers tool information from the registered modules for the
// documentation endpoint.
type Collector struct {
	logger  *zap.Logger
	modules []string
	tools   []ToolInfo
}

// NewCollector creates a new docs collector
func NewCollector(logger *zap.Logger) *Collector {
	return &Collector{
		logger: logger.Named("docs"),
	}
}

// Register records the tools of one enabled module.
func (c *Collector) Register(module string, tools []server.ServerTool) {
	c.modules = append(c.modules, module)
	for _, serverTool := range tools {
		c.tools = append(c.tools, ToolInfo{
			Name:        serverTool.Tool.Name,
			Description: serverTool.Tool.Description,
			Parameters:  serverTool.Tool.InputSchema.Properties,
			Module:      module,
		})
	}
	c.logger.Debug("Module tools registered",
		zap.String("module", module),
		zap.Int("tools", len(tools)))
}

// CollectToolsInfo builds the catalog of every registered tool.
func (c *Collector) CollectToolsInfo() ToolsInfoResponse {
	return ToolsInfoResponse{
		Service:    "fmp-mcp-server",
		Version:    version.Get().Version,
		TotalTools: len(c.tools),
		Modules:    c.modules,
		Tools:      c.tools,
	}
}
