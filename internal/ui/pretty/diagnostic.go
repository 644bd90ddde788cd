package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gofixit/pkg/diag"
	"github.com/yaklabco/gofixit/pkg/source"
)

// FormatDiagnostic formats a single diagnostic for terminal output.
// files resolves the diagnostic's location; it may be nil, in which
// case the location is omitted.
func (s *Styles) FormatDiagnostic(d diag.Diagnostic, files *source.FileSet, showContext bool) string {
	var builder strings.Builder

	severity := s.FormatSeverity(d.Severity)

	// Location: path:line:col, when the diagnostic has one.
	var sourceLine string
	var column int
	location := ""
	if files != nil && d.Loc.IsValid() {
		if file, lc := files.Resolve(d.Loc); file != nil {
			location = fmt.Sprintf("%s:%d:%d",
				s.FilePath.Render(file.Path),
				lc.Line,
				lc.Col,
			)
			sourceLine = file.Line(lc.Line)
			column = lc.Col
		}
	}

	// Code identifier, when the producing tool gave one.
	codeDisplay := ""
	if d.Code != "" {
		codeDisplay = s.Code.Render("(" + d.Code + ")")
	}

	// Main line: location  severity  message  (code)
	parts := make([]string, 0, 4)
	if location != "" {
		parts = append(parts, location)
	}
	parts = append(parts, severity, s.Message.Render(d.Message))
	if codeDisplay != "" {
		parts = append(parts, codeDisplay)
	}
	builder.WriteString("  " + strings.Join(parts, "  ") + "\n")

	// Source context
	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, column))
	}

	// Fix-it hints
	for _, h := range d.Hints {
		builder.WriteString("    " + s.Dim.Render("fix-it:") + " " +
			s.Hint.Render(DescribeHint(h, files)) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev diag.Severity) string {
	switch sev {
	case diag.SeverityFatal:
		return s.Fatal.Render("fatal")
	case diag.SeverityError:
		return s.Error.Render("error")
	case diag.SeverityWarning:
		return s.Warning.Render("warning")
	case diag.SeverityNote:
		return s.Note.Render("note")
	default:
		return sev.String()
	}
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with diagnostic output
	const indent = "        "

	// Source line
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	// Caret marker
	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, diagCount int) string {
	header := s.FilePath.Render(path)
	if diagCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d diagnostics)", diagCount))
	}
	return header
}

// DescribeHint renders a hint in human-readable form, with positions
// resolved to line:col when the file set can place them.
func DescribeHint(h diag.Hint, files *source.FileSet) string {
	switch h.Op() {
	case diag.OpInsert:
		return fmt.Sprintf("insert %q at %s", h.Text, describeLoc(h.InsertionLoc, files))
	case diag.OpRemove:
		return "remove " + describeRange(h.RemoveRange, files)
	default:
		return fmt.Sprintf("replace %s with %q", describeRange(h.RemoveRange, files), h.Text)
	}
}

// describeLoc renders a location as line:col, falling back to the raw
// form when it cannot be resolved.
func describeLoc(loc source.Location, files *source.FileSet) string {
	if files == nil || !loc.IsValid() {
		return loc.String()
	}
	file, lc := files.Resolve(loc)
	if file == nil {
		return loc.String()
	}
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}

// describeRange renders a range as line:col-line:col within one file.
func describeRange(rng source.Range, files *source.FileSet) string {
	if files == nil || !rng.IsValid() {
		return rng.String()
	}
	file, start := files.Resolve(rng.Start)
	if file == nil {
		return rng.String()
	}
	end := file.LineColAt(rng.End.Offset)
	if start.Line == end.Line {
		return fmt.Sprintf("%d:%d-%d", start.Line, start.Col, end.Col)
	}
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}
