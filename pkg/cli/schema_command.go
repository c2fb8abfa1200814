package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OlaoluwaM/scaffy/pkg/config"
)

// NewSchemaCommand creates the schema command
func NewSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the scaffy config format",
		Long: `Print the JSON Schema describing scaffy config files. Point your editor at it
to get completion and inline errors:

  scaffy schema > scaffy.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.JSONSchemaBytes()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
