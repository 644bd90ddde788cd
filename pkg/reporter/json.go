package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gofixit/pkg/analysis"
	"github.com/yaklabco/gofixit/pkg/runner"
)

// JSONReporter serializes the analyzed run report.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	report := analysis.Analyze(result, analysis.Options{
		IncludeDiagnostics: true,
		IncludeByCode:      true,
		SortBy:             analysis.SortByCount,
		SortDesc:           true,
		WorkingDir:         r.opts.WorkingDir,
	})

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(report); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return report.Totals.Diagnostics, nil
}
