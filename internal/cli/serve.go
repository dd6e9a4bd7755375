package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fastertools/weather-mcp/internal/config"
	"github.com/fastertools/weather-mcp/internal/mcp"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the weather MCP server",
		Long: `Start an MCP (Model Context Protocol) server exposing the get_alerts and
get_forecast tools. The HTTP transport serves the streamable MCP endpoint at
/mcp and a liveness probe at /healthz; the stdio transport serves a single
session over standard input and output.`,
		Example: `  # Serve over HTTP on 0.0.0.0:8080
  weather-mcp serve

  # Serve over stdio (for desktop MCP clients)
  weather-mcp serve --transport stdio

  # Serve on a different port
  weather-mcp serve --port 9000`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("transport", string(config.TransportHTTP), "MCP transport (stdio, http)")
	cmd.Flags().String("host", "0.0.0.0", "host to bind the HTTP transport to")
	cmd.Flags().Int("port", 8080, "port for the HTTP transport")

	_ = viper.BindPFlag("server.transport", cmd.Flags().Lookup("transport"))
	_ = viper.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	server := mcp.NewServer(a.service, version, a.log)
	server.RegisterTools()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch a.cfg.Server.Transport {
	case config.TransportStdio:
		a.log.Info("serving MCP over stdio")
		if err := server.RunStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	default:
		return server.ListenAndServe(ctx, a.cfg.Server.Address())
	}
}
