// Package fixit applies fix-it hints carried by diagnostics to source
// text. It consumes diagnostics one at a time, validates each
// diagnostic's hints as a unit, applies accepted edits best-effort
// through a rewrite buffer, tracks failures, and materializes the
// corrected output only when the whole run stayed clean.
package fixit

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gofixit/pkg/diag"
	"github.com/yaklabco/gofixit/pkg/rewrite"
	"github.com/yaklabco/gofixit/pkg/source"
)

// DefaultSuffix is the marker inserted before the extension of derived
// output paths.
const DefaultSuffix = "fixit"

// Options configures a Rewriter.
type Options struct {
	// Client is the downstream diagnostic consumer. Every diagnostic
	// is forwarded to it unmodified, before any edit logic runs. May
	// be nil.
	Client diag.Consumer

	// Logger receives operator-facing messages (the once-only
	// "no advice" warning and the write-time suppression notice).
	// Defaults to the charmbracelet default logger.
	Logger *log.Logger

	// Suffix is the derived-output marker. Defaults to DefaultSuffix.
	Suffix string

	// Stdout is the destination for the "-" sentinel. Defaults to
	// os.Stdout.
	Stdout io.Writer
}

// Rewriter applies each diagnostic's fix-it hints as they arrive. It
// implements diag.Consumer and wraps an optional downstream consumer:
// rewriting is a side effect, never a filter on diagnostic visibility.
type Rewriter struct {
	client  diag.Consumer
	files   *source.FileSet
	rewrite *rewrite.Rewriter
	primary source.FileID

	logger *log.Logger
	suffix string
	stdout io.Writer

	// failures counts rejected error-level diagnostics and failed
	// applications. It is owned by this instance, only ever grows,
	// and gates materialization.
	failures       int
	warnedNoAdvice bool
}

// New creates a Rewriter over the given file set. primary names the
// file whose buffer is materialized at the end of the run; hints may
// touch other registered files, but only the primary is written.
func New(files *source.FileSet, primary source.FileID, opts Options) *Rewriter {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	suffix := opts.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Rewriter{
		client:  opts.Client,
		files:   files,
		rewrite: rewrite.New(files),
		primary: primary,
		logger:  logger,
		suffix:  suffix,
		stdout:  stdout,
	}
}

// HandleDiagnostic processes one diagnostic: forward it downstream,
// validate its hints as a unit, then apply them best-effort.
func (r *Rewriter) HandleDiagnostic(d diag.Diagnostic) {
	// Forwarding happens first and unconditionally.
	if r.client != nil {
		r.client.HandleDiagnostic(d)
	}

	if !r.canApply(d) {
		// The diagnostic is rejected whole: none of its edits are
		// applied. Losing the advice of an error-level diagnostic is
		// unrecoverable for the run.
		if d.Severity.IsError() {
			r.failures++
			if !r.warnedNoAdvice {
				r.warnedNoAdvice = true
				r.logger.Warn("error without fix-it advice detected; fix-it will produce no output")
			}
		}
		return
	}

	failed := false
	for _, h := range d.Hints {
		if err := r.applyHint(h); err != nil {
			// Siblings still get their chance.
			failed = true
			r.logger.Debug("fix-it application failed", "hint", h.String(), "err", err)
		}
	}
	if failed {
		r.failures++
	}
}

// ParticipatesInCounts delegates to the downstream consumer, defaulting
// to true.
func (r *Rewriter) ParticipatesInCounts() bool {
	if r.client != nil {
		return r.client.ParticipatesInCounts()
	}
	return true
}

// Failures returns how many diagnostics could not be fully honored.
func (r *Rewriter) Failures() int {
	return r.failures
}

// HasFailures reports whether materialization would be suppressed.
func (r *Rewriter) HasFailures() bool {
	return r.failures > 0
}

// Primary returns the file materialized at the end of the run.
func (r *Rewriter) Primary() source.FileID {
	return r.primary
}

// PrimaryBuffer returns the primary file's rewrite buffer, or nil when
// no edit ever touched it.
func (r *Rewriter) PrimaryBuffer() *rewrite.Buffer {
	return r.rewrite.BufferFor(r.primary)
}

// canApply reports whether every hint of the diagnostic is
// individually well-formed. A diagnostic without hints is never
// applicable.
func (r *Rewriter) canApply(d diag.Diagnostic) bool {
	if !d.HasHints() {
		return false
	}
	for _, h := range d.Hints {
		if err := r.ValidateHint(h); err != nil {
			return false
		}
	}
	return true
}

func (r *Rewriter) applyHint(h diag.Hint) error {
	switch h.Op() {
	case diag.OpInsert:
		return r.rewrite.InsertTextBefore(h.InsertionLoc, h.Text)
	case diag.OpRemove:
		return r.rewrite.RemoveText(h.RemoveRange.Start, r.rewrite.RangeSize(h.RemoveRange))
	default:
		return r.rewrite.ReplaceText(h.RemoveRange.Start, r.rewrite.RangeSize(h.RemoveRange), h.Text)
	}
}
