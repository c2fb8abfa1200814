package installer

import (
	"fmt"
	"strings"

	"github.com/OlaoluwaM/scaffy/pkg/constants"
	"github.com/OlaoluwaM/scaffy/pkg/envutil"
	"github.com/OlaoluwaM/scaffy/pkg/validator"
)

// ResolvePackageManager reads the package manager from the environment,
// defaulting to npm.
func ResolvePackageManager() (constants.PackageManager, error) {
	value := envutil.GetStringFromEnv(constants.PackageManagerEnvVar, string(constants.DefaultPackageManager))
	return ParsePackageManager(value)
}

// ParsePackageManager validates name against the supported package managers.
func ParsePackageManager(name string) (constants.PackageManager, error) {
	supported := make([]string, len(constants.SupportedPackageManagers))
	for i, pm := range constants.SupportedPackageManagers {
		supported[i] = pm.String()
	}

	check := validator.String(validator.AllowEmpty(false), validator.OneOf(supported...))
	res := validator.Validate(check, name, validator.Root(constants.PackageManagerEnvVar))
	if !res.Valid {
		return "", fmt.Errorf("unsupported package manager: %s", strings.Join(res.Issues(), "; "))
	}
	return constants.PackageManager(name), nil
}

// installArgs builds "<pm> install [-D] deps...". Every supported manager
// accepts the same shape.
func installArgs(dev bool, deps []string) []string {
	args := []string{"install"}
	if dev {
		args = append(args, "-D")
	}
	return append(args, deps...)
}

// uninstallArgs builds "<pm> uninstall deps...".
func uninstallArgs(deps []string) []string {
	return append([]string{"uninstall"}, deps...)
}
