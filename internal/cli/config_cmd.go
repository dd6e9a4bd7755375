package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fastertools/weather-mcp/internal/config"
)

func newConfigCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration resolved from defaults, the config file and
WEATHER_* environment variables, as YAML.`,
		Example: `  weather-mcp config
  WEATHER_SERVER_PORT=9000 weather-mcp config
  weather-mcp config --check --config ./weather-mcp.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.GetViper())
			if err != nil {
				return err
			}

			if check {
				Success("Configuration is valid")
				return nil
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "only validate the configuration")

	return cmd
}
