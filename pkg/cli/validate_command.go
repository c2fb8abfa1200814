package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/OlaoluwaM/scaffy/pkg/config"
	"github.com/OlaoluwaM/scaffy/pkg/constants"
	"github.com/OlaoluwaM/scaffy/pkg/logger"
)

var validateLog = logger.New("cli:validate_command")

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a scaffy config and report what would be ignored",
		Long: `Validate the scaffy config and print every entry or field that was dropped
and every extends declaration that could not be applied.

By default only a config that cannot be read at all is a failure. With
--strict the raw file is also checked against the published JSON Schema
and extends warnings fail validation.

Examples:
  scaffy validate                    # Validate the discovered config
  scaffy validate -c tools.scaffy.yaml
  scaffy validate --strict           # Fail on anything that would be ignored
  scaffy validate --json             # Output results in JSON format
  scaffy validate --watch            # Re-validate whenever the config changes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")
			jsonOutput, _ := cmd.Flags().GetBool("json")
			watch, _ := cmd.Flags().GetBool("watch")
			verbose, _ := cmd.Flags().GetBool("verbose")

			path, err := resolveConfigPath(cmd)
			if err != nil {
				return err
			}
			validateLog.Printf("Running validate command: path=%s, strict=%v, json=%v, watch=%v", path, strict, jsonOutput, watch)

			opts := validateOptions{Strict: strict, JSON: jsonOutput, Verbose: verbose}
			if watch {
				return watchConfig(cmd.Context(), cmd.OutOrStdout(), path, func() {
					if err := runValidation(cmd.OutOrStdout(), path, opts); err != nil {
						validateLog.Printf("Validation failed while watching %s: %v", path, err)
					}
				})
			}

			return runValidation(cmd.OutOrStdout(), path, opts)
		},
	}

	cmd.Flags().Bool("strict", false, "Check against the JSON Schema and treat warnings as errors")
	cmd.Flags().Bool("json", false, "Output results in JSON format")
	cmd.Flags().BoolP("watch", "w", false, "Watch the config file and re-validate on change")

	return cmd
}

type validateOptions struct {
	Strict  bool
	JSON    bool
	Verbose bool
}

// validateFile checks the config at path. It never fails itself; problems
// are recorded in the result.
func validateFile(path string, strict bool) ValidationResult {
	result := ValidationResult{Path: path, Valid: true}

	loaded, err := config.Load(path)
	if err != nil {
		result.addError(err)
		return result
	}

	result.Tools = loaded.Schema.Names()
	result.Findings = loaded.Report.Findings

	if strict {
		if err := config.ValidateStrict(path, loaded.Raw); err != nil {
			result.addError(err)
		}
		for _, w := range loaded.Report.Warnings() {
			result.addError(errors.New(w.String()))
		}
	}
	return result
}

// runValidation validates path and writes the outcome to w. An invalid
// config yields an *ExitError with the validation exit code.
func runValidation(w io.Writer, path string, opts validateOptions) error {
	result := validateFile(path, opts.Strict)
	validateLog.Printf("Validated %s: valid=%v, errors=%d", path, result.Valid, len(result.Errors))

	if opts.JSON {
		if err := writeValidationJSON(w, result); err != nil {
			return err
		}
	} else {
		writeValidationText(w, result, opts.Verbose)
	}

	if !result.Valid {
		return exitError(constants.ExitValidation, "%s", invalidMessage(result))
	}
	return nil
}

func invalidMessage(result ValidationResult) string {
	if len(result.Errors) == 1 {
		return fmt.Sprintf("%s is invalid", result.Path)
	}
	return fmt.Sprintf("%s is invalid (%d errors)", result.Path, len(result.Errors))
}
