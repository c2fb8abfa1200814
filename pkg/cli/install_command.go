package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OlaoluwaM/scaffy/pkg/config"
	"github.com/OlaoluwaM/scaffy/pkg/console"
	"github.com/OlaoluwaM/scaffy/pkg/installer"
	"github.com/OlaoluwaM/scaffy/pkg/logger"
	"github.com/OlaoluwaM/scaffy/pkg/stringutil"
)

var installLog = logger.New("cli:install_command")

// NewInstallCommand creates the install command
func NewInstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "install <tool>...",
		Aliases: []string{"i", "bootstrap"},
		Short:   "Install tools' dependencies and configuration files",
		Long: `Install the dependencies of each tool with the project's package manager and
copy or download its configuration files into the project root.

Dependencies of all tools are combined and installed in one package manager
call (one more for dev dependencies). The package manager is npm unless
SCAFFY_PACKAGE_MANAGER is set to pnpm or yarn.

Examples:
  scaffy install eslint prettier     # Install two tools
  scaffy i eslint --dry-run          # Show what would happen
  scaffy install jest -j 8           # Download with up to 8 parallel jobs`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithInstaller(cmd, args, "Installing", func(inst *installer.Installer, schema config.Schema, tools []string) error {
				return inst.Install(cmd.Context(), schema, tools)
			})
		},
	}

	addInstallerFlags(cmd)
	return cmd
}

// NewUninstallCommand creates the uninstall command
func NewUninstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "uninstall <tool>...",
		Aliases: []string{"un", "remove"},
		Short:   "Remove tools' dependencies and configuration files",
		Long: `Uninstall the dependencies of each tool and delete its configuration files
from the project root. Files are matched by base name, so a remote
configuration https://example.com/.prettierrc removes ./.prettierrc.

Examples:
  scaffy uninstall prettier          # Remove one tool
  scaffy un eslint jest --dry-run    # Show what would be removed`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithInstaller(cmd, args, "Uninstalling", func(inst *installer.Installer, schema config.Schema, tools []string) error {
				return inst.Uninstall(cmd.Context(), schema, tools)
			})
		},
	}

	addInstallerFlags(cmd)
	return cmd
}

func addInstallerFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Print the planned actions without running them")
	cmd.Flags().Bool("fail-fast", false, "Stop at the first failure instead of collecting all of them")
	cmd.Flags().IntP("jobs", "j", 0, "Maximum parallel configuration downloads (default: $SCAFFY_MAX_JOBS or 4)")
}

type installerAction func(inst *installer.Installer, schema config.Schema, tools []string) error

// runWithInstaller loads the config, selects the requested tools and runs
// action, showing a spinner unless verbose or dry-run output is wanted.
func runWithInstaller(cmd *cobra.Command, args []string, verb string, action installerAction) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	failFast, _ := cmd.Flags().GetBool("fail-fast")
	jobs, _ := cmd.Flags().GetInt("jobs")
	verbose, _ := cmd.Flags().GetBool("verbose")
	stderr := cmd.ErrOrStderr()

	loaded, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	tools, err := selectTools(stderr, loaded.Schema, args)
	if err != nil {
		return err
	}

	pm, err := installer.ResolvePackageManager()
	if err != nil {
		return err
	}

	spinner := console.NewSpinner(fmt.Sprintf("%s %s...", verb, stringutil.GrammaticalList(tools, "and")))
	showProgress := verbose || dryRun || !spinner.IsEnabled()

	var out io.Writer = io.Discard
	if showProgress {
		out = stderr
	}

	inst := installer.New(installer.Options{
		PackageManager: pm,
		Jobs:           jobs,
		FailFast:       failFast,
		DryRun:         dryRun,
		Runner:         installer.NewExecRunner(verbose),
		Out:            out,
	})
	installLog.Printf("%s %v with %s (jobs=%d)", verb, tools, pm, inst.Jobs())

	if !showProgress {
		spinner.Start()
	}
	err = action(inst, loaded.Schema, tools)
	spinner.Stop()
	if err != nil {
		return err
	}

	if !dryRun {
		fmt.Fprintln(stderr, console.FormatSuccessMessage(fmt.Sprintf("Done %s %s", strings.ToLower(verb), stringutil.GrammaticalList(tools, "and"))))
	}
	return nil
}
