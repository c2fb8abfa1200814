// Package constants holds the names, file patterns, environment variables and
// limits shared across scaffy's packages.
package constants

import "time"

// CLIName is the executable name used in help text and messages.
const CLIName = "scaffy"

// ConfigSuffix is the file name suffix shared by all scaffy config files.
const ConfigSuffix = "scaffy"

// ConfigGlobs are the doublestar patterns used to discover config files,
// relative to the search root.
var ConfigGlobs = []string{
	"**/*" + ConfigSuffix + ".json",
	"**/*" + ConfigSuffix + ".yaml",
	"**/*" + ConfigSuffix + ".yml",
}

// IgnoredDirs are never descended into while discovering config files.
var IgnoredDirs = []string{"node_modules", ".git"}

// Environment variables read by scaffy.
const (
	MaxJobsEnvVar        = "SCAFFY_MAX_JOBS"
	PackageManagerEnvVar = "SCAFFY_PACKAGE_MANAGER"
)

// Retrieval pool sizing.
const (
	DefaultMaxJobs = 4
	MinMaxJobs     = 1
	MaxMaxJobs     = 32
)

// WatchDebounce is how long validate --watch waits for writes to settle.
const WatchDebounce = 150 * time.Millisecond

// PackageManager names the executable used to install and uninstall dependencies.
type PackageManager string

// String returns the executable name.
func (p PackageManager) String() string {
	return string(p)
}

// IsValid reports whether p is one of the supported package managers.
func (p PackageManager) IsValid() bool {
	for _, pm := range SupportedPackageManagers {
		if pm == p {
			return true
		}
	}
	return false
}

const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Yarn PackageManager = "yarn"

	DefaultPackageManager = NPM
)

// SupportedPackageManagers lists every PackageManager scaffy can drive.
var SupportedPackageManagers = []PackageManager{NPM, PNPM, Yarn}

// Process exit codes.
const (
	ExitGeneral        = 1
	ExitValidation     = 2
	ExitUnknownCommand = 127
	ExitSignalBase     = 128
)

// FarewellMessage is printed when scaffy is interrupted.
const FarewellMessage = "Till next time"
