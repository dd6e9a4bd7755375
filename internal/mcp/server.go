// Package mcp exposes the weather tools over the Model Context Protocol.
package mcp

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/fastertools/weather-mcp/internal/weather"
)

// ServerName is the implementation name announced during initialization
const ServerName = "weather"

// Server represents an MCP server that exposes the weather tools
type Server struct {
	server   *mcp.Server
	registry *ToolRegistry
	log      logrus.FieldLogger
}

// NewServer creates a new MCP server backed by service
func NewServer(service *weather.Service, version string, log logrus.FieldLogger) *Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, &mcp.ServerOptions{
		Instructions: "Weather server - active alerts by US state and short forecasts by coordinates from the National Weather Service",
	})

	if log == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		log = logger
	}

	return &Server{
		server:   server,
		registry: NewToolRegistry(service),
		log:      log,
	}
}

// Registry returns the tools served by this server
func (s *Server) Registry() *ToolRegistry {
	return s.registry
}

// RegisterTools registers all weather tools with the MCP server
func (s *Server) RegisterTools() {
	alerts, _ := s.registry.GetTool(AlertsToolName)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        alerts.Definition().Name,
		Description: alerts.Definition().Description,
	}, s.handleGetAlerts)

	forecast, _ := s.registry.GetTool(ForecastToolName)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        forecast.Definition().Name,
		Description: forecast.Definition().Description,
	}, s.handleGetForecast)

	s.log.WithField("count", len(s.registry.tools)).Debug("registered weather tools")
}

// RunStdio serves a single session over standard input and output
func (s *Server) RunStdio(ctx context.Context) error {
	return s.server.Run(ctx, mcp.NewStdioTransport())
}

// Tool handlers

// AlertsParams represents parameters for get_alerts
type AlertsParams struct {
	State string `json:"state" jsonschema:"Two-letter US state code (e.g. CA, NY)"`
}

// ForecastParams represents parameters for get_forecast
type ForecastParams struct {
	Latitude  float64 `json:"latitude" jsonschema:"Latitude of the location"`
	Longitude float64 `json:"longitude" jsonschema:"Longitude of the location"`
}

func (s *Server) handleGetAlerts(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[AlertsParams]) (*mcp.CallToolResultFor[struct{}], error) {
	return s.callTool(ctx, AlertsToolName, map[string]interface{}{
		"state": params.Arguments.State,
	}), nil
}

func (s *Server) handleGetForecast(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[ForecastParams]) (*mcp.CallToolResultFor[struct{}], error) {
	return s.callTool(ctx, ForecastToolName, map[string]interface{}{
		"latitude":  params.Arguments.Latitude,
		"longitude": params.Arguments.Longitude,
	}), nil
}

// callTool runs a registered tool and wraps its text as a tool result.
// Upstream failures are already folded into the text, so only argument
// errors produce an error result.
func (s *Server) callTool(ctx context.Context, name string, args map[string]interface{}) *mcp.CallToolResultFor[struct{}] {
	log := s.log.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"tool":       name,
	})
	log.WithField("args", args).Debug("tool call")

	tool, ok := s.registry.GetTool(name)
	if !ok {
		log.Error("tool not registered")
		return &mcp.CallToolResultFor[struct{}]{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: "Unknown tool: " + name}},
		}
	}

	start := time.Now()
	text, err := tool.Execute(ctx, args)
	if err != nil {
		log.WithError(err).Warn("tool call rejected")
		return &mcp.CallToolResultFor[struct{}]{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: "Invalid arguments: " + err.Error()}},
		}
	}

	log.WithField("duration", time.Since(start).String()).Info("tool call completed")
	return &mcp.CallToolResultFor[struct{}]{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
