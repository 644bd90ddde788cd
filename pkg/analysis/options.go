package analysis

// SortField specifies how to sort the by-code view.
type SortField string

const (
	// SortByCount sorts by diagnostic count (descending by default).
	SortByCount SortField = "count"
	// SortByAlpha sorts alphabetically by code.
	SortByAlpha SortField = "alpha"
	// SortBySeverity sorts by severity (fatals first).
	SortBySeverity SortField = "severity"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortBySeverity:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// IncludeDiagnostics nests each run's diagnostics under its file
	// report.
	IncludeDiagnostics bool

	// IncludeByCode includes the per-code aggregation.
	IncludeByCode bool

	// SortBy specifies how to sort ByCode.
	SortBy SortField

	// SortDesc sorts in descending order (highest first).
	SortDesc bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeDiagnostics: true,
		IncludeByCode:      true,
		SortBy:             SortByCount,
		SortDesc:           true,
	}
}
