package mcp

import (
	"context"
	"sort"

	"github.com/fastertools/weather-mcp/internal/weather"
)

// ToolDefinition represents the definition of an MCP tool
type ToolDefinition struct {
	Name        string
	Description string
	Schema      map[string]interface{}
}

// Tool represents a weather tool that can be exposed via MCP or the CLI
type Tool interface {
	Definition() ToolDefinition
	Execute(ctx context.Context, args map[string]interface{}) (string, error)
}

// ToolRegistry manages all available weather tools
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a registry holding the alerts and forecast tools
func NewToolRegistry(service *weather.Service) *ToolRegistry {
	registry := &ToolRegistry{
		tools: make(map[string]Tool),
	}

	registry.registerTool(&AlertsTool{service: service})
	registry.registerTool(&ForecastTool{service: service})

	return registry
}

// registerTool adds a tool to the registry under its definition name
func (r *ToolRegistry) registerTool(tool Tool) {
	r.tools[tool.Definition().Name] = tool
}

// GetTool retrieves a tool by name
func (r *ToolRegistry) GetTool(name string) (Tool, bool) {
	tool, exists := r.tools[name]
	return tool, exists
}

// ListTools returns all registered tools sorted by name
func (r *ToolRegistry) ListTools() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Definition().Name < tools[j].Definition().Name
	})
	return tools
}
