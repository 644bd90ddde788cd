package diag

import "github.com/yaklabco/gofixit/pkg/source"

// Diagnostic is one message from the producing tool, optionally
// carrying an ordered sequence of fix-it hints. Hint order is
// significant: it is the intended application order.
type Diagnostic struct {
	// Severity of the message.
	Severity Severity

	// Code is the producing tool's identifier for this kind of
	// diagnostic, when it has one.
	Code string

	// Message is opaque human-readable text. The engine forwards it
	// unmodified and never interprets it.
	Message string

	// Loc is the primary position, used for display only. May be
	// invalid when the producing tool gave none.
	Loc source.Location

	// Hints are the suggested edits, in application order. May be
	// empty.
	Hints []Hint
}

// HasHints reports whether the diagnostic carries at least one hint.
func (d Diagnostic) HasHints() bool {
	return len(d.Hints) > 0
}

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnostic starts building a diagnostic with the given severity
// and message.
func NewDiagnostic(severity Severity, message string) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		diag: Diagnostic{Severity: severity, Message: message},
	}
}

// WithCode sets the producing tool's diagnostic code.
func (b *DiagnosticBuilder) WithCode(code string) *DiagnosticBuilder {
	b.diag.Code = code
	return b
}

// At sets the primary display position.
func (b *DiagnosticBuilder) At(loc source.Location) *DiagnosticBuilder {
	b.diag.Loc = loc
	return b
}

// WithHint appends one hint.
func (b *DiagnosticBuilder) WithHint(h Hint) *DiagnosticBuilder {
	b.diag.Hints = append(b.diag.Hints, h)
	return b
}

// WithHints appends hints in order.
func (b *DiagnosticBuilder) WithHints(hints ...Hint) *DiagnosticBuilder {
	b.diag.Hints = append(b.diag.Hints, hints...)
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
