//go:build !integration

package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// plain disables styling for the duration of a test.
func plain(t *testing.T) {
	t.Helper()
	orig := colorEnabled
	colorEnabled = false
	t.Cleanup(func() { colorEnabled = orig })
}

func TestFormatMessages(t *testing.T) {
	plain(t)

	tests := []struct {
		name   string
		format func(string) string
		want   string
	}{
		{"info", FormatInfoMessage, "ℹ loading scaffy.json"},
		{"success", FormatSuccessMessage, "✓ loading scaffy.json"},
		{"warning", FormatWarningMessage, "⚠ loading scaffy.json"},
		{"error", FormatErrorMessage, "✗ loading scaffy.json"},
		{"verbose", FormatVerboseMessage, "  loading scaffy.json"},
		{"command", FormatCommandMessage, "⚡ loading scaffy.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format("loading scaffy.json"))
		})
	}
}

func TestFormatList(t *testing.T) {
	plain(t)

	got := FormatList([]string{"eslint", "prettier"})
	assert.Equal(t, "  • eslint\n  • prettier", got)
	assert.Empty(t, FormatList(nil), "empty lists render as nothing")
}

func TestRenderTable(t *testing.T) {
	plain(t)

	out := RenderTable(TableConfig{
		Title:   "Tools",
		Headers: []string{"Tool", "Deps"},
		Rows: [][]string{
			{"eslint", "3"},
			{"prettier", "1"},
		},
	})

	assert.True(t, strings.HasPrefix(out, "Tools\n"), "title should come first, got %q", out)
	for _, want := range []string{"Tool", "Deps", "eslint", "prettier", "3"} {
		assert.Contains(t, out, want, "table should contain %q", want)
	}
	assert.Empty(t, RenderTable(TableConfig{}), "empty table renders as nothing")
}

func TestIsAccessibleMode(t *testing.T) {
	t.Setenv("ACCESSIBLE", "")
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")
	assert.False(t, IsAccessibleMode())

	t.Setenv("TERM", "dumb")
	assert.True(t, IsAccessibleMode())
}
