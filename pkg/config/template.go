package config

import (
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every setting with its default value.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}

	if opts.Full {
		return []byte(fullTemplate), nil
	}
	return []byte(minimalTemplate), nil
}

const minimalTemplate = `# gofixit configuration
# See: https://github.com/yaklabco/gofixit

# Marker inserted before the extension of derived output files
# ("scan.c" becomes "scan.fixit.c")
suffix: fixit

# Identify input languages for reporting
# detect_language: true

# Fail the run when error diagnostics were counted
# strict: false

# Number of parallel workers (0 = one per CPU)
# jobs: 0

# File patterns to skip during directory expansion (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"

# Backup behavior for in-place rewrites
# backups:
#   enabled: true
#   mode: sidecar
`

const fullTemplate = `# gofixit configuration - Full Template
# See: https://github.com/yaklabco/gofixit
#
# This template includes every setting with its default value.
# Uncomment and modify settings as needed.

# Marker inserted before the extension of derived output files
# ("scan.c" becomes "scan.fixit.c")
suffix: fixit

# Identify input languages for reporting
detect_language: true

# Fail the run when error diagnostics were counted, even if every
# fix-it applied cleanly
strict: false

# Output format: text or json
format: text

# Number of parallel workers (0 = one per CPU)
jobs: 0

# Backup behavior for in-place rewrites
backups:
  enabled: true
  mode: sidecar

# File patterns to skip during directory expansion (glob patterns)
ignore:
  - "vendor/**"
  - "node_modules/**"
  - ".git/**"
`

// templateToJSON renders the default configuration as JSON.
func templateToJSON() ([]byte, error) {
	cfg := map[string]any{
		"suffix":          "fixit",
		"detect_language": true,
		"strict":          false,
		"format":          "text",
		"jobs":            0,
		"backups": map[string]any{
			"enabled": true,
			"mode":    "sidecar",
		},
		"ignore": []string{"vendor/**", "node_modules/**", ".git/**"},
	}

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gofixit configuration
# See: https://github.com/yaklabco/gofixit`
}
