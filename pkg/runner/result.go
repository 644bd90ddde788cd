package runner

import "github.com/yaklabco/gofixit/pkg/fixit"

// FileOutcome pairs one input with its run result.
type FileOutcome struct {
	// Path is the input as the run saw it.
	Path string

	// Result is the pipeline result. Nil when the run errored.
	Result *fixit.PipelineResult

	// Err is set when the input could not be processed at all.
	Err error
}

// Stats aggregates a batch run.
type Stats struct {
	// FilesDiscovered is how many inputs expansion produced.
	FilesDiscovered int

	// FilesProcessed is how many runs completed, in any status.
	FilesProcessed int

	// FilesErrored is how many runs failed outright.
	FilesErrored int

	// FilesWritten, FilesUnchanged, FilesSuppressed and FilesPreviewed
	// bucket the completed runs by materialization status.
	FilesWritten    int
	FilesUnchanged  int
	FilesSuppressed int
	FilesPreviewed  int

	// FailuresTotal sums the per-run failure counters.
	FailuresTotal int

	// EditsApplied sums applied edits across runs.
	EditsApplied int

	// BytesWritten sums the bytes materialized across runs.
	BytesWritten int

	// DiagnosticsTotal counts every diagnostic forwarded.
	DiagnosticsTotal int

	// DiagnosticsBySeverity tallies forwarded diagnostics by severity
	// name.
	DiagnosticsBySeverity map[string]int

	// ErrorsCounted sums Error and Fatal diagnostics from runs whose
	// consumer chain participates in counts.
	ErrorsCounted int
}

// Result is the overall batch outcome. Files holds one entry per
// expanded input, in deterministic order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasSuppressed reports whether any run withheld its output.
func (r *Result) HasSuppressed() bool {
	return r != nil && r.Stats.FilesSuppressed > 0
}

// HasCountedErrors reports whether counted Error or Fatal diagnostics
// were forwarded anywhere in the batch.
func (r *Result) HasCountedErrors() bool {
	return r != nil && r.Stats.ErrorsCounted > 0
}

// HasRunErrors reports whether any input failed to process.
func (r *Result) HasRunErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// FirstError returns the first per-file error, or nil.
func (r *Result) FirstError() error {
	if r == nil {
		return nil
	}
	for _, f := range r.Files {
		if f.Err != nil {
			return f.Err
		}
	}
	return nil
}

func newStats() Stats {
	return Stats{
		DiagnosticsBySeverity: make(map[string]int),
	}
}

// accumulate folds one outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Err != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	res := outcome.Result
	r.Stats.FilesProcessed++

	switch res.Status {
	case fixit.StatusWritten:
		r.Stats.FilesWritten++
	case fixit.StatusUnchanged:
		r.Stats.FilesUnchanged++
	case fixit.StatusSuppressed:
		r.Stats.FilesSuppressed++
	case fixit.StatusPreviewed:
		r.Stats.FilesPreviewed++
	}

	r.Stats.FailuresTotal += res.Failures
	if res.Status != fixit.StatusSuppressed {
		r.Stats.EditsApplied += res.EditCount
	}
	r.Stats.BytesWritten += res.Bytes
	r.Stats.ErrorsCounted += res.Errors

	r.Stats.DiagnosticsTotal += len(res.Diagnostics)
	for _, d := range res.Diagnostics {
		r.Stats.DiagnosticsBySeverity[d.Severity.String()]++
	}
}
