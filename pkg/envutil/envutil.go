// Package envutil reads typed configuration values from the environment.
package envutil

import (
	"os"
	"strconv"
	"strings"

	"github.com/OlaoluwaM/scaffy/pkg/logger"
)

// GetIntFromEnv returns the integer in envVar when it parses and lies within
// [minValue, maxValue]; otherwise defaultValue. Rejected values are reported
// through log when it is non-nil.
func GetIntFromEnv(envVar string, defaultValue, minValue, maxValue int, log *logger.Logger) int {
	raw := strings.TrimSpace(os.Getenv(envVar))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		if log != nil {
			log.Printf("Ignoring %s=%q: not an integer, using default %d", envVar, raw, defaultValue)
		}
		return defaultValue
	}

	if value < minValue || value > maxValue {
		if log != nil {
			log.Printf("Ignoring %s=%d: outside [%d, %d], using default %d", envVar, value, minValue, maxValue, defaultValue)
		}
		return defaultValue
	}

	return value
}

// GetStringFromEnv returns the trimmed value of envVar, or defaultValue when
// it is unset or blank.
func GetStringFromEnv(envVar, defaultValue string) string {
	if raw := strings.TrimSpace(os.Getenv(envVar)); raw != "" {
		return raw
	}
	return defaultValue
}
