package configloader

import "github.com/yaklabco/gofixit/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	// Scalars: override overwrites base if set (non-zero value)
	if override.Suffix != "" {
		result.Suffix = override.Suffix
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.FixitsPath != "" {
		result.FixitsPath = override.FixitsPath
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.ConfigPath != "" {
		result.ConfigPath = override.ConfigPath
	}

	// Booleans: these are tricky because false is the zero value.
	// We only detect "true" being set, so an override can enable but not
	// disable. Callers that need to force a false value (e.g. --no-backup)
	// must set it on the merged result directly.
	if override.Strict {
		result.Strict = override.Strict
	}
	if override.InPlace {
		result.InPlace = override.InPlace
	}
	if override.DryRun {
		result.DryRun = override.DryRun
	}
	if override.Debug {
		result.Debug = override.Debug
	}
	if override.DetectLanguage {
		result.DetectLanguage = override.DetectLanguage
	}

	// Backups: merge individual fields
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = override.Backups.Enabled
	}

	// Slices: override replaces base entirely if non-nil
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
