package config

import (
	"fmt"
	"strings"
)

// ParseOutputFormat converts a string to an OutputFormat.
// Returns an error for unsupported formats.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("unsupported output format %q (expected text or json)", s)
	}
	return f, nil
}

// ParseColorMode converts a string to a ColorMode.
// Returns an error for unsupported modes.
func ParseColorMode(s string) (ColorMode, error) {
	m := ColorMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("unsupported color mode %q (expected auto, always, or never)", s)
	}
	return m, nil
}
