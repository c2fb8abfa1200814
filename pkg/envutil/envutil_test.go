//go:build !integration

package envutil

import (
	"testing"

	"github.com/OlaoluwaM/scaffy/pkg/logger"
)

func TestGetIntFromEnv(t *testing.T) {
	const testEnvVar = "SCAFFY_TEST_INT_VALUE"

	tests := []struct {
		name         string
		envValue     string
		defaultValue int
		minValue     int
		maxValue     int
		expected     int
	}{
		{"default when env var not set", "", 4, 1, 32, 4},
		{"valid value within range", "8", 4, 1, 32, 8},
		{"valid value at minimum", "1", 4, 1, 32, 1},
		{"valid value at maximum", "32", 4, 1, 32, 32},
		{"invalid non-numeric value", "lots", 4, 1, 32, 4},
		{"value below minimum", "0", 4, 1, 32, 4},
		{"value above maximum", "33", 4, 1, 32, 4},
		{"surrounding whitespace is trimmed", "  6 ", 4, 1, 32, 6},
		{"negative range", "-5", 0, -10, 10, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(testEnvVar, tt.envValue)

			got := GetIntFromEnv(testEnvVar, tt.defaultValue, tt.minValue, tt.maxValue, logger.New("test:envutil"))
			if got != tt.expected {
				t.Errorf("GetIntFromEnv(%q=%q) = %d, want %d", testEnvVar, tt.envValue, got, tt.expected)
			}
		})
	}
}

func TestGetIntFromEnv_WithoutLogger(t *testing.T) {
	const testEnvVar = "SCAFFY_TEST_INT_NO_LOGGER"
	t.Setenv(testEnvVar, "not-a-number")

	if got := GetIntFromEnv(testEnvVar, 3, 1, 10, nil); got != 3 {
		t.Errorf("GetIntFromEnv with nil logger = %d, want 3", got)
	}
}

func TestGetStringFromEnv(t *testing.T) {
	const testEnvVar = "SCAFFY_TEST_STRING_VALUE"

	t.Setenv(testEnvVar, "")
	if got := GetStringFromEnv(testEnvVar, "npm"); got != "npm" {
		t.Errorf("GetStringFromEnv(unset) = %q, want %q", got, "npm")
	}

	t.Setenv(testEnvVar, " pnpm ")
	if got := GetStringFromEnv(testEnvVar, "npm"); got != "pnpm" {
		t.Errorf("GetStringFromEnv(set) = %q, want %q", got, "pnpm")
	}
}
