package mcp

import (
	"context"
	"fmt"

	"github.com/fastertools/weather-mcp/internal/weather"
)

// Tool names as announced to MCP clients
const (
	AlertsToolName   = "get_alerts"
	ForecastToolName = "get_forecast"
)

// AlertsTool returns active weather alerts for a US state
type AlertsTool struct {
	service *weather.Service
}

func (t *AlertsTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name:        AlertsToolName,
		Description: "Get active weather alerts for a US state",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"state": map[string]interface{}{
					"type":        "string",
					"description": "Two-letter US state code (e.g. CA, NY)",
				},
			},
			"required": []string{"state"},
		},
	}
}

func (t *AlertsTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	state, ok := args["state"].(string)
	if !ok {
		return "", fmt.Errorf("state parameter is required")
	}

	return t.service.Alerts(ctx, state), nil
}

// ForecastTool returns the next forecast periods for a coordinate pair
type ForecastTool struct {
	service *weather.Service
}

func (t *ForecastTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name:        ForecastToolName,
		Description: fmt.Sprintf("Get the next %d forecast periods for a location", weather.MaxForecastPeriods),
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"latitude": map[string]interface{}{
					"type":        "number",
					"description": "Latitude of the location",
				},
				"longitude": map[string]interface{}{
					"type":        "number",
					"description": "Longitude of the location",
				},
			},
			"required": []string{"latitude", "longitude"},
		},
	}
}

func (t *ForecastTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	latitude, ok := args["latitude"].(float64) // JSON numbers are float64
	if !ok {
		return "", fmt.Errorf("latitude parameter is required")
	}
	longitude, ok := args["longitude"].(float64)
	if !ok {
		return "", fmt.Errorf("longitude parameter is required")
	}

	return t.service.Forecast(ctx, latitude, longitude), nil
}
