package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fastertools/weather-mcp/internal/mcp"
)

func newAlertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts <state>",
		Short: "Show active weather alerts for a US state",
		Example: `  weather-mcp alerts CA
  weather-mcp alerts ny`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, mcp.AlertsToolName, map[string]interface{}{
				"state": args[0],
			})
		},
	}
}

func newForecastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forecast <latitude> <longitude>",
		Short: "Show the next forecast periods for a location",
		Long: `Show the next forecast periods for a location.

Negative coordinates must follow "--" so they are not read as flags.`,
		Example: `  weather-mcp forecast 39.7456 97.0892
  weather-mcp forecast -- 37.7749 -122.4194`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			latitude, err := parseCoordinate("latitude", args[0])
			if err != nil {
				return err
			}
			longitude, err := parseCoordinate("longitude", args[1])
			if err != nil {
				return err
			}
			return runTool(cmd, mcp.ForecastToolName, map[string]interface{}{
				"latitude":  latitude,
				"longitude": longitude,
			})
		},
	}
}

func parseCoordinate(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", name, value)
	}
	return f, nil
}

// runTool executes a registered tool once and prints its text to stdout
func runTool(cmd *cobra.Command, name string, args map[string]interface{}) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	tool, ok := mcp.NewToolRegistry(a.service).GetTool(name)
	if !ok {
		return fmt.Errorf("unknown tool %q", name)
	}

	text, err := tool.Execute(context.Background(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprint(out, text)
	if !strings.HasSuffix(text, "\n") {
		_, _ = fmt.Fprintln(out)
	}
	return nil
}
