// Package diag defines the diagnostic data model consumed by the fix-it
// engine: severities, fix-it hints, diagnostics, and the consumer
// contract through which diagnostics flow one at a time in emission
// order.
package diag

import "fmt"

// Severity is the level of a diagnostic.
type Severity uint8

const (
	// SeverityNote is informational commentary attached to other output.
	SeverityNote Severity = iota
	// SeverityWarning flags a problem that does not block the producing tool.
	SeverityWarning
	// SeverityError flags a problem the producing tool could not recover from.
	SeverityError
	// SeverityFatal flags a problem that aborted the producing tool.
	SeverityFatal
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityNote:
		return "note"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return fmt.Sprintf("severity(%d)", uint8(s))
	}
}

// IsError reports whether the severity is Error or Fatal. Rejected
// diagnostics at these levels count as unrecoverable failures.
func (s Severity) IsError() bool {
	return s >= SeverityError
}

// ParseSeverity converts an interchange-format name into a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch name {
	case "note":
		return SeverityNote, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	case "fatal":
		return SeverityFatal, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", name)
	}
}
