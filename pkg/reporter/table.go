package reporter

import (
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/yaklabco/gofixit/internal/ui/pretty"
	"github.com/yaklabco/gofixit/pkg/runner"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// writeTable renders the per-file outcomes table for batch runs.
func (r *TextReporter) writeTable(result *runner.Result) {
	formatter := pretty.NewTableFormatter(r.styles, getTerminalWidth(r.opts.Writer))
	fmt.Fprint(r.bw, formatter.FormatTable(result))

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, formatter.FormatTableSummary(result.Stats))
	}
	fmt.Fprintln(r.bw)
}

// getTerminalWidth attempts to get the terminal width from the writer.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
