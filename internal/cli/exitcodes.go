package cli

import (
	"errors"

	"github.com/yaklabco/gofixit/pkg/fsutil"
	"github.com/yaklabco/gofixit/pkg/hintfile"
	"github.com/yaklabco/gofixit/pkg/runner"
)

// Exit codes for gofixit (sysexits-flavored).
const (
	// ExitSuccess indicates the run completed and nothing was suppressed.
	// Covers written, unchanged and clean dry runs.
	ExitSuccess = 0

	// ExitFixFailures indicates fix-it failures occurred and output was
	// suppressed for at least one input.
	ExitFixFailures = 1

	// ExitErrorDiagnostics indicates a clean run that forwarded Error or
	// Fatal diagnostics. Only reported under --strict.
	ExitErrorDiagnostics = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration or hints-file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors carrying run outcomes out of RunE. main maps them to
// exit codes; they are signals, not faults, and are never logged.
var (
	// ErrFixFailures is returned when any run suppressed its output.
	ErrFixFailures = errors.New("fix-it failures detected")

	// ErrStrictErrors is returned under --strict when Error or Fatal
	// diagnostics were forwarded even though every fix applied cleanly.
	ErrStrictErrors = errors.New("error diagnostics reported")

	// ErrUsage wraps flag-combination faults the flag parser cannot
	// catch on its own.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig wraps configuration loading and validation faults.
	ErrConfig = errors.New("configuration error")
)

// ExitCodeFromResult determines the exit code for a completed batch.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasSuppressed() || result.Stats.FailuresTotal > 0 {
		return ExitFixFailures
	}

	if strict && result.HasCountedErrors() {
		return ExitErrorDiagnostics
	}

	return ExitSuccess
}

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrFixFailures):
		return ExitFixFailures
	case errors.Is(err, ErrStrictErrors):
		return ExitErrorDiagnostics
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig),
		errors.Is(err, hintfile.ErrSchema),
		errors.Is(err, hintfile.ErrVersion):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// IsOutcomeError reports whether err is a run-outcome signal rather
// than a fault worth logging.
func IsOutcomeError(err error) bool {
	return errors.Is(err, ErrFixFailures) || errors.Is(err, ErrStrictErrors)
}
