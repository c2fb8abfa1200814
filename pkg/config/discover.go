package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/OlaoluwaM/scaffy/pkg/constants"
	"github.com/OlaoluwaM/scaffy/pkg/logger"
)

var discoverLog = logger.New("config:discover")

// Discovery failures. Discover wraps them with the paths involved.
var (
	ErrNotFound  = errors.New("no scaffy config file found")
	ErrAmbiguous = errors.New("found more than one scaffy config file")
)

// Discover searches root for a single config file matching
// constants.ConfigGlobs, skipping constants.IgnoredDirs.
func Discover(root string) (string, error) {
	matches, err := FindConfigFiles(root)
	if err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w under %s: create a file named %s.json (or %s.yaml)",
			ErrNotFound, root, constants.ConfigSuffix, constants.ConfigSuffix)
	case 1:
		return filepath.Join(root, filepath.FromSlash(matches[0])), nil
	default:
		return "", fmt.Errorf("%w: %s; choose one with --config",
			ErrAmbiguous, strings.Join(matches, ", "))
	}
}

// FindConfigFiles returns every config file under root, as sorted slash
// separated paths relative to root.
func FindConfigFiles(root string) ([]string, error) {
	discoverLog.Printf("Searching for config files under %s", root)

	for _, pattern := range constants.ConfigGlobs {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid config pattern %q", pattern)
		}
	}

	var matches []string
	err := fs.WalkDir(os.DirFS(root), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && slices.Contains(constants.IgnoredDirs, d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if matchesAny(path) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %s for config files: %w", root, err)
	}

	slices.Sort(matches)
	discoverLog.Printf("Found %d config files", len(matches))
	return matches, nil
}

func matchesAny(path string) bool {
	for _, pattern := range constants.ConfigGlobs {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}
