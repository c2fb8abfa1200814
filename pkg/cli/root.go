// Package cli implements scaffy's cobra commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OlaoluwaM/scaffy/pkg/console"
	"github.com/OlaoluwaM/scaffy/pkg/constants"
	"github.com/OlaoluwaM/scaffy/pkg/logger"
)

var rootLog = logger.New("cli:root")

// NewRootCommand builds the scaffy command tree.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   constants.CLIName,
		Short: "Install tools and their configuration files from a scaffy config",
		Long: `scaffy reads a project-local config that maps tool names to the packages
they need and the configuration files that go with them, then installs those
packages and copies or downloads the files into the project root.

The config is discovered automatically (any *scaffy.json, *scaffy.yaml or
*scaffy.yml under the current directory) unless --config is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				console.SetColorEnabled(false)
			}
			rootLog.Printf("Running %s with args %v", cmd.CommandPath(), args)
		},
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to the scaffy config file (default: discovered)")
	cmd.PersistentFlags().Bool("verbose", false, "Show dropped config entries and command output")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.Version = version
	cmd.SetVersionTemplate(fmt.Sprintf("%s version %s\n", constants.CLIName, version))

	cmd.AddGroup(
		&cobra.Group{ID: "setup", Title: "Setup Commands:"},
		&cobra.Group{ID: "config", Title: "Config Commands:"},
	)

	for _, sub := range []*cobra.Command{NewInstallCommand(), NewUninstallCommand()} {
		sub.GroupID = "setup"
		cmd.AddCommand(sub)
	}
	for _, sub := range []*cobra.Command{NewValidateCommand(), NewListCommand(), NewSchemaCommand()} {
		sub.GroupID = "config"
		cmd.AddCommand(sub)
	}

	return cmd
}
