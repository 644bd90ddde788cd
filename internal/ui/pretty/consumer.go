package pretty

import (
	"fmt"
	"io"

	"github.com/yaklabco/gofixit/pkg/diag"
	"github.com/yaklabco/gofixit/pkg/source"
)

// Compile-time interface check for Consumer.
var _ diag.Consumer = (*Consumer)(nil)

// Consumer streams styled diagnostics to a writer as they arrive. It
// implements diag.Consumer plus the pipeline's file set binding, so
// locations resolve against the run that produced them. A Consumer
// observes one run at a time; concurrent runs must not share one.
type Consumer struct {
	out         io.Writer
	styles      *Styles
	files       *source.FileSet
	showContext bool
}

// NewConsumer creates a streaming diagnostic printer.
func NewConsumer(out io.Writer, styles *Styles, showContext bool) *Consumer {
	return &Consumer{
		out:         out,
		styles:      styles,
		showContext: showContext,
	}
}

// BindFiles attaches the file set diagnostic locations resolve against.
func (c *Consumer) BindFiles(files *source.FileSet) {
	c.files = files
}

// HandleDiagnostic renders the diagnostic immediately.
func (c *Consumer) HandleDiagnostic(d diag.Diagnostic) {
	fmt.Fprint(c.out, c.styles.FormatDiagnostic(d, c.files, c.showContext))
}

// ParticipatesInCounts reports true: rendered diagnostics are client
// output and count toward run statistics.
func (c *Consumer) ParticipatesInCounts() bool {
	return true
}
