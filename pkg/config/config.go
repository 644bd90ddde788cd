// Package config defines core configuration types for gofixit.
// These types are pure data structures with no external dependencies on Viper or other config loaders.
package config

// BackupsConfig controls backup behavior when rewriting files in place.
type BackupsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Mode    string `mapstructure:"mode" yaml:"mode"` // "sidecar" or "none"
}

// OutputFormat specifies the output format for run results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ColorMode controls when styled terminal output is emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is supported.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for gofixit.
type Config struct {
	// Suffix is the marker inserted before the extension of derived
	// output files ("scan.c" becomes "scan.fixit.c").
	Suffix string `mapstructure:"suffix" yaml:"suffix"`

	// DetectLanguage enables input language identification for reporting.
	DetectLanguage bool `mapstructure:"detect_language" yaml:"detect_language"`

	// Strict fails the run when error diagnostics were counted, even if
	// every fix-it applied cleanly.
	Strict bool `mapstructure:"strict" yaml:"strict"`

	// Format specifies the output format ("text" or "json").
	Format OutputFormat `mapstructure:"format" yaml:"format"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"jobs" yaml:"jobs"`

	// Ignore contains glob patterns for files to skip during directory
	// expansion.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// Backups configures backup behavior for in-place rewrites.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// FixitsPath is the hints document to apply.
	FixitsPath string `mapstructure:"-" yaml:"-"`

	// Output overrides the derived destination (single input only).
	Output string `mapstructure:"-" yaml:"-"`

	// InPlace rewrites inputs instead of writing sibling files.
	InPlace bool `mapstructure:"-" yaml:"-"`

	// DryRun shows what would change without writing anything.
	DryRun bool `mapstructure:"-" yaml:"-"`

	// Debug enables debug logging.
	Debug bool `mapstructure:"-" yaml:"-"`

	// Color controls styled output ("auto", "always", "never").
	Color ColorMode `mapstructure:"-" yaml:"-"`

	// ConfigPath is an explicit config file given with --config.
	ConfigPath string `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Suffix:         "fixit",
		DetectLanguage: true,
		Format:         FormatText,
		Jobs:           0, // 0 means one worker per CPU
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Color: ColorAuto,
	}
}
