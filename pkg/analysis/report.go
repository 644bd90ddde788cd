package analysis

import "time"

// Report contains pre-computed views of a fix run.
// Computed once by Analyze(), used by the machine-readable renderers.
type Report struct {
	// Files lists per-input outcomes in run order. Diagnostics nest
	// under the run that saw them.
	Files []FileReport `json:"files"`

	// ByCode groups diagnostics by the producing tool's code.
	ByCode []CodeAnalysis `json:"byCode,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// FileReport describes one input's outcome.
type FileReport struct {
	Path        string            `json:"path"`
	Language    string            `json:"language,omitempty"`
	Status      string            `json:"status"`
	Output      string            `json:"output,omitempty"`
	Backup      string            `json:"backup,omitempty"`
	Bytes       int               `json:"bytes,omitempty"`
	Edits       int               `json:"edits"`
	Failures    int               `json:"failures"`
	Error       string            `json:"error,omitempty"`
	Diff        string            `json:"diff,omitempty"`
	Diagnostics []DiagnosticEntry `json:"diagnostics,omitempty"`
}

// DiagnosticEntry represents a single diagnostic in the report.
type DiagnosticEntry struct {
	FilePath string      `json:"filePath,omitempty"`
	Severity string      `json:"severity"`
	Code     string      `json:"code,omitempty"`
	Message  string      `json:"message"`
	Line     int         `json:"line,omitempty"`
	Column   int         `json:"column,omitempty"`
	Hints    []HintEntry `json:"hints,omitempty"`
}

// HintEntry represents a single fix-it hint. Offsets address the
// original text; line and column locate the hint's anchor.
type HintEntry struct {
	Op          string `json:"op"`
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	Line        int    `json:"line,omitempty"`
	Column      int    `json:"column,omitempty"`
	Text        string `json:"text,omitempty"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files         int            `json:"files"`
	Written       int            `json:"written"`
	Unchanged     int            `json:"unchanged"`
	Suppressed    int            `json:"suppressed"`
	Previewed     int            `json:"previewed"`
	Errored       int            `json:"errored"`
	Diagnostics   int            `json:"diagnostics"`
	BySeverity    map[string]int `json:"bySeverity"`
	Edits         int            `json:"editsApplied"`
	Failures      int            `json:"fixitFailures"`
	ErrorsCounted int            `json:"errorsCounted"`
	BytesWritten  int            `json:"bytesWritten,omitempty"`
}

// HasFailures returns true if any run recorded fix-it failures.
func (t Totals) HasFailures() bool {
	return t.Failures > 0
}

// HasErrors returns true if counted Error or Fatal diagnostics were
// forwarded.
func (t Totals) HasErrors() bool {
	return t.ErrorsCounted > 0
}

// CodeAnalysis contains aggregated data for a single diagnostic code.
type CodeAnalysis struct {
	Code      string   `json:"code"`
	Count     int      `json:"count"`
	Fatals    int      `json:"fatals,omitempty"`
	Errors    int      `json:"errors"`
	Warnings  int      `json:"warnings"`
	Notes     int      `json:"notes"`
	WithHints int      `json:"withHints"`
	Files     []string `json:"files,omitempty"`
}
