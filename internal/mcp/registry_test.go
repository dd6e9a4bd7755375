package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewToolRegistry(t *testing.T) {
	registry := NewToolRegistry(newTestService(t))

	assert.NotNil(t, registry)
	assert.NotNil(t, registry.tools)
	assert.Equal(t, 2, len(registry.tools))

	expectedTools := []string{
		"get_alerts",
		"get_forecast",
	}

	for _, toolName := range expectedTools {
		tool, exists := registry.GetTool(toolName)
		assert.True(t, exists, "Tool %s should exist", toolName)
		assert.NotNil(t, tool)

		def := tool.Definition()
		assert.Equal(t, toolName, def.Name)
		assert.NotEmpty(t, def.Description)
		assert.NotNil(t, def.Schema)
	}
}

func TestToolRegistryGetTool(t *testing.T) {
	registry := NewToolRegistry(newTestService(t))

	tool, exists := registry.GetTool("get_alerts")
	assert.True(t, exists)
	assert.NotNil(t, tool)

	tool, exists = registry.GetTool("non-existent")
	assert.False(t, exists)
	assert.Nil(t, tool)
}

func TestToolRegistryListTools(t *testing.T) {
	registry := NewToolRegistry(newTestService(t))

	tools := registry.ListTools()
	assert.Equal(t, 2, len(tools))

	// Sorted by name
	assert.Equal(t, "get_alerts", tools[0].Definition().Name)
	assert.Equal(t, "get_forecast", tools[1].Definition().Name)
}
