package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fastertools/weather-mcp/internal/mcp"
)

func newToolsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the MCP tools served by this server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			table := NewTableBuilder("NAME", "DESCRIPTION", "ARGUMENTS")
			for _, tool := range mcp.NewToolRegistry(a.service).ListTools() {
				def := tool.Definition()
				table.AddRow(def.Name, def.Description, strings.Join(argumentNames(def.Schema), ", "))
			}
			return table.Write(NewDataWriter(cmd.OutOrStdout(), format))
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "table", "Output format (table, json)")

	return cmd
}

// argumentNames lists the schema properties, required ones first
func argumentNames(schema map[string]interface{}) []string {
	properties, _ := schema["properties"].(map[string]interface{})
	required, _ := schema["required"].([]string)

	isRequired := make(map[string]bool, len(required))
	names := make([]string, 0, len(properties))
	for _, name := range required {
		isRequired[name] = true
		names = append(names, name)
	}

	var optional []string
	for name := range properties {
		if !isRequired[name] {
			optional = append(optional, name+"?")
		}
	}
	sort.Strings(optional)
	return append(names, optional...)
}
