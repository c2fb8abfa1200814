package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/OlaoluwaM/scaffy/pkg/config"
	"github.com/OlaoluwaM/scaffy/pkg/console"
	"github.com/OlaoluwaM/scaffy/pkg/logger"
	"github.com/OlaoluwaM/scaffy/pkg/stringutil"
)

var commonLog = logger.New("cli:common")

// resolveConfigPath returns --config, or the config discovered under the
// working directory.
func resolveConfigPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine the working directory: %w", err)
	}
	return config.Discover(wd)
}

// loadConfig resolves and loads the config, printing its report.
func loadConfig(cmd *cobra.Command) (*config.Loaded, error) {
	path, err := resolveConfigPath(cmd)
	if err != nil {
		return nil, err
	}

	loaded, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	printReport(cmd.ErrOrStderr(), loaded.Report, verbose)
	return loaded, nil
}

// printReport prints warnings always and notices only when verbose.
func printReport(w io.Writer, report config.Report, verbose bool) {
	for _, f := range report.Findings {
		switch f.Severity {
		case config.SeverityWarning:
			fmt.Fprintln(w, console.FormatWarningMessage(f.String()))
		default:
			if verbose {
				fmt.Fprintln(w, console.FormatVerboseMessage(f.String()))
			}
		}
	}
}

// selectTools keeps the requested tools that the config defines, warning
// about the rest.
func selectTools(w io.Writer, schema config.Schema, requested []string) ([]string, error) {
	found, missing := schema.Select(requested)
	commonLog.Printf("Selected tools: found=%v, missing=%v", found, missing)

	if len(missing) > 0 {
		noun := stringutil.Pluralize("tool", len(missing))
		fmt.Fprintln(w, console.FormatWarningMessage(fmt.Sprintf(
			"Skipping %s not in your scaffy config: %s", noun, stringutil.GrammaticalList(missing, "and"))))
	}

	if len(found) == 0 {
		return nil, fmt.Errorf("none of those tools were specified in your scaffy config")
	}
	return found, nil
}
