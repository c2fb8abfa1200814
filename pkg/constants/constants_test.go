//go:build !integration

package constants

import (
	"slices"
	"testing"
)

func TestConfigGlobs(t *testing.T) {
	expected := []string{"**/*scaffy.json", "**/*scaffy.yaml", "**/*scaffy.yml"}
	if !slices.Equal(ConfigGlobs, expected) {
		t.Errorf("ConfigGlobs = %v, want %v", ConfigGlobs, expected)
	}
}

func TestIgnoredDirs(t *testing.T) {
	for _, dir := range []string{"node_modules", ".git"} {
		if !slices.Contains(IgnoredDirs, dir) {
			t.Errorf("IgnoredDirs should contain %q", dir)
		}
	}
}

func TestConstantValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"CLIName", CLIName, "scaffy"},
		{"MaxJobsEnvVar", MaxJobsEnvVar, "SCAFFY_MAX_JOBS"},
		{"PackageManagerEnvVar", PackageManagerEnvVar, "SCAFFY_PACKAGE_MANAGER"},
		{"FarewellMessage", FarewellMessage, "Till next time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.value, tt.expected)
			}
		})
	}
}

func TestNumericConstants(t *testing.T) {
	if DefaultMaxJobs < MinMaxJobs || DefaultMaxJobs > MaxMaxJobs {
		t.Errorf("DefaultMaxJobs = %d, want within [%d, %d]", DefaultMaxJobs, MinMaxJobs, MaxMaxJobs)
	}

	codes := []int{ExitGeneral, ExitValidation, ExitUnknownCommand, ExitSignalBase}
	expected := []int{1, 2, 127, 128}
	if !slices.Equal(codes, expected) {
		t.Errorf("exit codes = %v, want %v", codes, expected)
	}
}

func TestPackageManager(t *testing.T) {
	tests := []struct {
		pm    PackageManager
		valid bool
	}{
		{NPM, true},
		{PNPM, true},
		{Yarn, true},
		{PackageManager("bun"), false},
		{PackageManager(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.pm.String(), func(t *testing.T) {
			if got := tt.pm.IsValid(); got != tt.valid {
				t.Errorf("PackageManager(%q).IsValid() = %v, want %v", tt.pm, got, tt.valid)
			}
		})
	}

	if DefaultPackageManager != NPM {
		t.Errorf("DefaultPackageManager = %q, want %q", DefaultPackageManager, NPM)
	}
}
