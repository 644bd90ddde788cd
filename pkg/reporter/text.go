package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gofixit/internal/ui/pretty"
	"github.com/yaklabco/gofixit/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to fix."))
		}
		return 0, nil
	}

	r.reportFiles(result)

	batch := len(result.Files) > 1
	if batch {
		r.writeTable(result)
	}

	if r.opts.ShowSummary {
		if batch {
			fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
		} else {
			fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
		}
	}

	return result.Stats.DiagnosticsTotal, nil
}

// reportFiles writes per-file sections: run errors, diagnostics and
// dry-run patches.
func (r *TextReporter) reportFiles(result *runner.Result) {
	var patched, additions, deletions int

	for _, file := range result.Files {
		// Handle file errors
		if file.Err != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Err)),
			)
			continue
		}

		res := file.Result
		if res == nil {
			continue
		}

		if r.opts.ShowDiagnostics && len(res.Diagnostics) > 0 {
			fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.Path, len(res.Diagnostics)))
			for _, d := range res.Diagnostics {
				fmt.Fprint(r.bw, r.styles.FormatDiagnostic(d, res.Files, r.opts.ShowContext))
			}
			// Blank line between files
			fmt.Fprintln(r.bw)
		}

		if res.Patch.HasChanges() {
			patched++
			additions += res.Patch.Additions
			deletions += res.Patch.Deletions
			r.writePatch(res.Patch)
		}
	}

	if patched > 0 && r.opts.ShowSummary {
		r.writePatchSummary(patched, additions, deletions)
	}
}
