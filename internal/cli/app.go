package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/fastertools/weather-mcp/internal/config"
	"github.com/fastertools/weather-mcp/internal/nws"
	"github.com/fastertools/weather-mcp/internal/telemetry"
	"github.com/fastertools/weather-mcp/internal/weather"
)

const serviceName = "weather-mcp"

// app holds the dependencies that live for the whole process
type app struct {
	cfg             *config.Config
	log             *logrus.Logger
	client          *nws.Client
	service         *weather.Service
	shutdownTracing telemetry.ShutdownFunc
}

// newApp builds the process dependencies from the loaded configuration.
// Logs and traces go to stderr so that stdout stays free for tool output
// and the stdio transport.
func newApp(stderr io.Writer) (*app, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	if IsVerbose() {
		cfg.Log.Level = logrus.DebugLevel.String()
	}

	logger, err := cfg.Log.NewLogger(stderr)
	if err != nil {
		return nil, err
	}

	shutdownTracing, err := telemetry.Setup(cfg.Trace.Enabled, stderr, serviceName, version)
	if err != nil {
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}

	client := nws.NewClient(cfg.NWS.NWSOptions(logger))
	Debug("Using NWS API at %s", cfg.NWS.BaseURL)

	return &app{
		cfg:             cfg,
		log:             logger,
		client:          client,
		service:         weather.NewService(client, cfg.NWS.BaseURL, logger),
		shutdownTracing: shutdownTracing,
	}, nil
}

// Close releases pooled connections and flushes pending spans
func (a *app) Close() {
	a.client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.shutdownTracing(ctx); err != nil {
		a.log.WithError(err).Warn("failed to flush traces")
	}
}
