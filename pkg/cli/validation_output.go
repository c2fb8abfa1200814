package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/OlaoluwaM/scaffy/pkg/config"
	"github.com/OlaoluwaM/scaffy/pkg/console"
)

// FormatValidationError formats a validation or command error for console output.
// Multi-line errors keep their structure.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}
	return console.FormatErrorMessage(err.Error())
}

// ValidationResult is the outcome of validating one config file.
type ValidationResult struct {
	Path     string           `json:"path"`
	Valid    bool             `json:"valid"`
	Tools    []string         `json:"tools"`
	Findings []config.Finding `json:"findings"`
	Errors   []string         `json:"errors,omitempty"`
}

func (r *ValidationResult) addError(err error) {
	r.Valid = false
	r.Errors = append(r.Errors, err.Error())
}

func writeValidationJSON(w io.Writer, result ValidationResult) error {
	if result.Tools == nil {
		result.Tools = []string{}
	}
	if result.Findings == nil {
		result.Findings = []config.Finding{}
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode validation result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeValidationText(w io.Writer, result ValidationResult, verbose bool) {
	printReport(w, config.Report{Findings: result.Findings}, verbose)
	for _, msg := range result.Errors {
		fmt.Fprintln(w, console.FormatErrorMessage(msg))
	}

	if result.Valid {
		fmt.Fprintln(w, console.FormatSuccessMessage(fmt.Sprintf("%s is valid (%d tools: %s)",
			result.Path, len(result.Tools), strings.Join(result.Tools, ", "))))
	}
}
