package diag

// Consumer receives diagnostics one at a time, in emission order.
// Implementations that wrap another consumer form a decorator chain:
// each link forwards the diagnostic unmodified and delegates
// ParticipatesInCounts to the wrapped consumer.
type Consumer interface {
	// HandleDiagnostic is called exactly once per diagnostic.
	HandleDiagnostic(d Diagnostic)

	// ParticipatesInCounts reports whether diagnostics seen by this
	// consumer should be tallied by external statistics aggregation.
	ParticipatesInCounts() bool
}

// Recorder is a Consumer that tallies severities and retains the
// diagnostics it saw, optionally forwarding to a wrapped consumer.
// Used for run statistics and in tests.
type Recorder struct {
	next   Consumer
	diags  []Diagnostic
	counts [SeverityFatal + 1]int
}

// NewRecorder builds a Recorder forwarding to next. next may be nil.
func NewRecorder(next Consumer) *Recorder {
	return &Recorder{next: next}
}

// HandleDiagnostic records the diagnostic, then forwards it.
func (r *Recorder) HandleDiagnostic(d Diagnostic) {
	r.diags = append(r.diags, d)
	if d.Severity <= SeverityFatal {
		r.counts[d.Severity]++
	}
	if r.next != nil {
		r.next.HandleDiagnostic(d)
	}
}

// ParticipatesInCounts delegates to the wrapped consumer, defaulting
// to true.
func (r *Recorder) ParticipatesInCounts() bool {
	if r.next != nil {
		return r.next.ParticipatesInCounts()
	}
	return true
}

// Diagnostics returns the recorded diagnostics in arrival order.
func (r *Recorder) Diagnostics() []Diagnostic {
	return r.diags
}

// Count returns how many diagnostics of the given severity arrived.
func (r *Recorder) Count(s Severity) int {
	if s > SeverityFatal {
		return 0
	}
	return r.counts[s]
}

// Total returns the number of diagnostics recorded.
func (r *Recorder) Total() int {
	return len(r.diags)
}

// HasErrors reports whether any Error or Fatal diagnostic arrived.
func (r *Recorder) HasErrors() bool {
	return r.counts[SeverityError] > 0 || r.counts[SeverityFatal] > 0
}

// Silent is a Consumer that drops everything and opts out of counts.
type Silent struct{}

// HandleDiagnostic discards the diagnostic.
func (Silent) HandleDiagnostic(Diagnostic) {}

// ParticipatesInCounts reports false.
func (Silent) ParticipatesInCounts() bool { return false }
