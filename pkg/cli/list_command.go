package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/OlaoluwaM/scaffy/pkg/config"
	"github.com/OlaoluwaM/scaffy/pkg/console"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the tools defined in the scaffy config",
		Long: `List every tool in the scaffy config after entries have been normalized and
extends declarations applied, with the number of dependencies and
configuration files each one contributes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderToolTable(loaded))
			return nil
		},
	}
}

func renderToolTable(loaded *config.Loaded) string {
	names := loaded.Schema.Names()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		entry := loaded.Schema[name]
		extends := "-"
		if entry.Extends.IsSet() {
			extends = entry.Extends.String()
		}
		rows = append(rows, []string{
			name,
			strconv.Itoa(len(entry.DepNames)),
			strconv.Itoa(len(entry.DevDepNames)),
			strconv.Itoa(len(entry.LocalConfigurationPaths)),
			strconv.Itoa(len(entry.RemoteConfigurationUrls)),
			extends,
		})
	}

	return console.RenderTable(console.TableConfig{
		Title:   fmt.Sprintf("Tools in %s", loaded.Path),
		Headers: []string{"Tool", "Deps", "Dev Deps", "Local", "Remote", "Extends"},
		Rows:    rows,
	})
}
