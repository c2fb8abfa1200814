//go:build !integration

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OlaoluwaM/scaffy/pkg/config"
	"github.com/OlaoluwaM/scaffy/pkg/constants"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "should write config fixture")
	return path
}

// executeRoot runs the root command with args and returns stdout, stderr
// and the command error.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand("1.2.3")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Structure(t *testing.T) {
	cmd := NewRootCommand("1.2.3")

	assert.Equal(t, constants.CLIName, cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)
	assert.True(t, cmd.SilenceUsage, "usage should not be printed on errors")
	assert.True(t, cmd.SilenceErrors, "main prints errors")

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag, "should have --config flag")
	assert.Equal(t, "c", configFlag.Shorthand)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag, "should have --verbose flag")
	assert.Empty(t, verboseFlag.Shorthand, "-v is reserved for --version")

	require.NotNil(t, cmd.PersistentFlags().Lookup("no-color"), "should have --no-color flag")

	tests := []struct {
		name    string
		aliases []string
		group   string
	}{
		{name: "install", aliases: []string{"i", "bootstrap"}, group: "setup"},
		{name: "uninstall", aliases: []string{"un", "remove"}, group: "setup"},
		{name: "validate", group: "config"},
		{name: "list", aliases: []string{"ls"}, group: "config"},
		{name: "schema", group: "config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{tt.name})
			require.NoError(t, err, "command should exist")
			assert.Equal(t, tt.name, sub.Name())
			assert.Equal(t, tt.group, sub.GroupID)
			for _, alias := range tt.aliases {
				assert.Contains(t, sub.Aliases, alias)
			}
		})
	}
}

func TestRootCommand_Version(t *testing.T) {
	stdout, _, err := executeRoot(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "scaffy version 1.2.3\n", stdout)

	stdout, _, err = executeRoot(t, "-v")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1.2.3")
}

func TestInstallCommand_Flags(t *testing.T) {
	tests := []struct {
		name string
		cmd  *cobra.Command
	}{
		{name: "install", cmd: NewInstallCommand()},
		{name: "uninstall", cmd: NewUninstallCommand()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := tt.cmd.Flags()
			require.NotNil(t, flags.Lookup("dry-run"), "should have --dry-run flag")
			require.NotNil(t, flags.Lookup("fail-fast"), "should have --fail-fast flag")

			jobsFlag := flags.Lookup("jobs")
			require.NotNil(t, jobsFlag, "should have --jobs flag")
			assert.Equal(t, "j", jobsFlag.Shorthand)
			assert.Equal(t, "0", jobsFlag.DefValue)
		})
	}
}

func TestInstallCommand_RequiresTools(t *testing.T) {
	_, _, err := executeRoot(t, "install")
	require.Error(t, err, "install without tools should fail")
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestInstallCommand_DryRun(t *testing.T) {
	path := writeConfig(t, "scaffy.json", `{
		"prettier": {"devDepNames": ["prettier@3.0.0"]},
		"eslint": {"depNames": ["eslint"]}
	}`)
	t.Setenv(constants.PackageManagerEnvVar, "pnpm")

	_, stderr, err := executeRoot(t, "install", "prettier", "ghost", "--dry-run", "-c", path)
	require.NoError(t, err)

	assert.Contains(t, stderr, "Skipping tool not in your scaffy config: ghost")
	assert.Contains(t, stderr, "[dry-run] pnpm install -D prettier@3.0.0")
	assert.NotContains(t, stderr, "eslint", "unrequested tools should not be installed")
}

func TestInstallCommand_UnsupportedPackageManager(t *testing.T) {
	path := writeConfig(t, "scaffy.json", `{"prettier": {"depNames": ["prettier"]}}`)
	t.Setenv(constants.PackageManagerEnvVar, "bun")

	_, _, err := executeRoot(t, "install", "prettier", "--dry-run", "-c", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported package manager")
}

func TestSelectTools(t *testing.T) {
	schema := config.Schema{
		"eslint":   {},
		"prettier": {},
	}

	tests := []struct {
		name        string
		requested   []string
		want        []string
		wantWarning string
		wantErr     bool
	}{
		{
			name:      "all present",
			requested: []string{"prettier", "eslint"},
			want:      []string{"prettier", "eslint"},
		},
		{
			name:        "some missing",
			requested:   []string{"prettier", "jest", "vitest"},
			want:        []string{"prettier"},
			wantWarning: "Skipping tools not in your scaffy config: jest and vitest",
		},
		{
			name:      "none present",
			requested: []string{"jest"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := selectTools(&out, schema, tt.requested)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "none of those tools were specified in your scaffy config", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.wantWarning != "" {
				assert.Contains(t, out.String(), tt.wantWarning)
			} else {
				assert.Empty(t, out.String())
			}
		})
	}
}

func TestPrintReport(t *testing.T) {
	report := config.Report{Findings: []config.Finding{
		{Tool: "a", Severity: config.SeverityNotice, Message: "field depNames ignored"},
		{Tool: "b", Severity: config.SeverityWarning, Message: `extends ignored: no entry named "ghost"`},
	}}

	var quiet bytes.Buffer
	printReport(&quiet, report, false)
	assert.NotContains(t, quiet.String(), "depNames", "notices need --verbose")
	assert.Contains(t, quiet.String(), `b: extends ignored: no entry named "ghost"`)

	var verbose bytes.Buffer
	printReport(&verbose, report, true)
	assert.Contains(t, verbose.String(), "a: field depNames ignored")
	assert.Contains(t, verbose.String(), "b: extends ignored")
}

func TestListCommand(t *testing.T) {
	path := writeConfig(t, "scaffy.json", `{
		"base": {"depNames": ["a", "b"], "localConfigurationPaths": ["./x.json"]},
		"child": {"devDepNames": ["c"], "extends": "base"}
	}`)

	stdout, _, err := executeRoot(t, "list", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Tools in "+path)
	assert.Contains(t, stdout, "base")
	assert.Contains(t, stdout, "child")
	assert.Contains(t, stdout, "Extends")
}

func TestSchemaCommand(t *testing.T) {
	stdout, _, err := executeRoot(t, "schema")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc), "schema output should be JSON")
	assert.Equal(t, config.SchemaID, doc["$id"])
	assert.Equal(t, "object", doc["type"])
}

func TestExitCode(t *testing.T) {
	cancelled, cancel := context.WithCancelCause(context.Background())
	cancel(&SignalError{Signal: syscall.SIGINT})

	tests := []struct {
		name string
		ctx  context.Context
		err  error
		want int
	}{
		{name: "success", ctx: context.Background(), want: 0},
		{name: "general error", ctx: context.Background(), err: errors.New("boom"), want: constants.ExitGeneral},
		{name: "exit error", ctx: context.Background(), err: exitError(constants.ExitValidation, "bad"), want: 2},
		{name: "wrapped exit error", ctx: context.Background(), err: fmt.Errorf("ctx: %w", exitError(3, "bad")), want: 3},
		{name: "unknown command", ctx: context.Background(), err: errors.New(`unknown command "nope" for "scaffy"`), want: 127},
		{name: "interrupted", ctx: cancelled, err: context.Canceled, want: 128 + 2},
		{name: "interrupted after success", ctx: cancelled, want: 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.ctx, tt.err))
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := executeRoot(t, "frobnicate")
	require.Error(t, err)
	assert.Equal(t, constants.ExitUnknownCommand, ExitCode(context.Background(), err))
}

func TestExitError(t *testing.T) {
	err := exitError(2, "%s is invalid", "scaffy.json")
	assert.Equal(t, "scaffy.json is invalid", err.Error())
	assert.Equal(t, 2, err.Code)
}
