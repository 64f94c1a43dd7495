package utils

import (
	"os"
	"strings"
)

// GetEnvVariable reads an environment variable with a fallback default.
func GetEnvVariable(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// NormalizeName collapses inner whitespace and trims the edges of a
// submitted name so "  Jane   Doe " is stored as "Jane Doe".
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
