package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastertools/weather-mcp/internal/weather"
)

func textOf(t *testing.T, content []mcp.Content) string {
	t.Helper()
	require.Len(t, content, 1)
	text, ok := content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", content[0])
	return text.Text
}

func TestNewServer(t *testing.T) {
	server := NewServer(newTestService(t), "test", nil)
	assert.NotNil(t, server)
	assert.NotNil(t, server.server)
	assert.NotNil(t, server.registry)
	assert.Same(t, server.registry, server.Registry())
}

func TestRegisterTools(t *testing.T) {
	server := NewServer(newTestService(t), "test", nil)
	assert.NotPanics(t, server.RegisterTools)
}

func TestGetAlertsHandler(t *testing.T) {
	server := NewServer(newTestService(t), "test", nil)
	ctx := context.Background()

	params := &mcp.CallToolParamsFor[AlertsParams]{
		Arguments: AlertsParams{State: "ca"},
	}

	result, err := server.handleGetAlerts(ctx, nil, params)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
	assert.Contains(t, textOf(t, result.Content), "Event: Winter Storm Warning\n")

	// Upstream 404 is a normal result carrying the fixed message
	params.Arguments.State = "zz"
	result, err = server.handleGetAlerts(ctx, nil, params)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, weather.NoAlertsMessage, textOf(t, result.Content))
}

func TestGetForecastHandler(t *testing.T) {
	server := NewServer(newTestService(t), "test", nil)
	ctx := context.Background()

	params := &mcp.CallToolParamsFor[ForecastParams]{
		Arguments: ForecastParams{Latitude: 38.9, Longitude: -120},
	}

	result, err := server.handleGetForecast(ctx, nil, params)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
	assert.Equal(t, "Tonight:\nTemperature: 28°F\nWind: 10 mph SW\nForecast: Snow likely.\n", textOf(t, result.Content))

	params.Arguments = ForecastParams{Latitude: 1, Longitude: 2}
	result, err = server.handleGetForecast(ctx, nil, params)
	require.NoError(t, err)
	assert.Equal(t, weather.PointFailureMessage, textOf(t, result.Content))
}

func TestCallToolUnknown(t *testing.T) {
	server := NewServer(newTestService(t), "test", nil)

	result := server.callTool(context.Background(), "get_tides", nil)
	assert.True(t, result.IsError)
	assert.Equal(t, "Unknown tool: get_tides", textOf(t, result.Content))
}

func TestCallToolInvalidArguments(t *testing.T) {
	server := NewServer(newTestService(t), "test", nil)

	result := server.callTool(context.Background(), "get_alerts", map[string]interface{}{})
	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result.Content), "state parameter is required")
}

func TestServerOverInMemorySession(t *testing.T) {
	server := NewServer(newTestService(t), "test", nil)
	server.RegisterTools()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport)
	require.NoError(t, err)
	defer clientSession.Close()

	tools, err := clientSession.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"get_alerts", "get_forecast"}, names)

	result, err := clientSession.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_alerts",
		Arguments: map[string]any{"state": "CA"},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, textOf(t, result.Content), "Severity: Severe\n")

	result, err = clientSession.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_forecast",
		Arguments: map[string]any{"latitude": 38.9, "longitude": -120.0},
	})
	require.NoError(t, err)
	assert.Contains(t, textOf(t, result.Content), "Tonight:\n")
}
