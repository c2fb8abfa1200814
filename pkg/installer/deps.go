package installer

import (
	"strings"

	"golang.org/x/mod/semver"

	"github.com/OlaoluwaM/scaffy/pkg/config"
	"github.com/OlaoluwaM/scaffy/pkg/sliceutil"
)

// Dependencies are the packages of several tools combined.
type Dependencies struct {
	Deps    []string
	DevDeps []string
}

// IsEmpty reports whether there is nothing to install.
func (d Dependencies) IsEmpty() bool {
	return len(d.Deps) == 0 && len(d.DevDeps) == 0
}

// All returns regular then dev dependencies without duplicates.
func (d Dependencies) All() []string {
	return sliceutil.Union(d.Deps, d.DevDeps)
}

// CollectDependencies combines the dependencies of tools, in tool order,
// without duplicates.
func CollectDependencies(schema config.Schema, tools []string) Dependencies {
	deps := Dependencies{Deps: []string{}, DevDeps: []string{}}
	for _, tool := range tools {
		entry := schema[tool]
		deps.Deps = sliceutil.Union(deps.Deps, entry.DepNames)
		deps.DevDeps = sliceutil.Union(deps.DevDeps, entry.DevDepNames)
	}
	return deps
}

// StripVersion removes a trailing "@<semver>" from a dependency name, keeping
// the leading "@" of scoped packages: "@types/node@18.0.0" -> "@types/node".
func StripVersion(dep string) string {
	at := strings.LastIndex(dep, "@")
	if at <= 0 {
		return dep
	}

	version := dep[at+1:]
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return dep
	}
	return dep[:at]
}
