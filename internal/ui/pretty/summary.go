package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gofixit/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 diagnostics (2 errors, 10 warnings), 8 edits applied, 3 files written".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.DiagnosticsTotal == 0 && stats.FilesErrored == 0 {
		fileWord := wordFiles
		if stats.FilesProcessed == 1 {
			fileWord = wordFile
		}
		return s.Success.Render("No diagnostics") +
			s.Dim.Render(fmt.Sprintf(" (%d %s processed)", stats.FilesProcessed, fileWord)) + "\n"
	}

	var parts []string

	// Total diagnostics with severity breakdown
	if stats.DiagnosticsTotal > 0 {
		diagWord := "diagnostics"
		if stats.DiagnosticsTotal == 1 {
			diagWord = "diagnostic"
		}

		var severityParts []string
		if fatals := stats.DiagnosticsBySeverity["fatal"]; fatals > 0 {
			severityParts = append(severityParts, s.Fatal.Render(fmt.Sprintf("%d fatal", fatals)))
		}
		if errors := stats.DiagnosticsBySeverity["error"]; errors > 0 {
			severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d errors", errors)))
		}
		if warnings := stats.DiagnosticsBySeverity["warning"]; warnings > 0 {
			severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
		}
		if notes := stats.DiagnosticsBySeverity["note"]; notes > 0 {
			severityParts = append(severityParts, s.Note.Render(fmt.Sprintf("%d notes", notes)))
		}

		if len(severityParts) > 0 {
			parts = append(parts, fmt.Sprintf("%d %s (%s)", stats.DiagnosticsTotal, diagWord, strings.Join(severityParts, ", ")))
		} else {
			parts = append(parts, fmt.Sprintf("%d %s", stats.DiagnosticsTotal, diagWord))
		}
	}

	// Edits applied
	if stats.EditsApplied > 0 {
		editWord := "edits"
		if stats.EditsApplied == 1 {
			editWord = "edit"
		}
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s applied", stats.EditsApplied, editWord)))
	}

	// Fix-it failures
	if stats.FailuresTotal > 0 {
		failWord := "failures"
		if stats.FailuresTotal == 1 {
			failWord = "failure"
		}
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d fix-it %s", stats.FailuresTotal, failWord)))
	}

	// Files written
	if stats.FilesWritten > 0 {
		fileWord := wordFiles
		if stats.FilesWritten == 1 {
			fileWord = wordFile
		}
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s written", stats.FilesWritten, fileWord)))
	}

	// Run errors
	if stats.FilesErrored > 0 {
		fileWord := wordFiles
		if stats.FilesErrored == 1 {
			fileWord = wordFile
		}
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s errored", stats.FilesErrored, fileWord)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Files by outcome
	builder.WriteString("  Files processed:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesWritten > 0 {
		builder.WriteString("  Written:           " +
			s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
	}
	if stats.FilesUnchanged > 0 {
		builder.WriteString("  Unchanged:         " +
			s.SummaryValue.Render(strconv.Itoa(stats.FilesUnchanged)) + "\n")
	}
	if stats.FilesPreviewed > 0 {
		builder.WriteString("  Previewed:         " +
			s.SummaryValue.Render(strconv.Itoa(stats.FilesPreviewed)) + "\n")
	}
	if stats.FilesSuppressed > 0 {
		builder.WriteString("  Suppressed:        " +
			s.Failure.Render(strconv.Itoa(stats.FilesSuppressed)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Errored:           " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	// Diagnostics by severity
	builder.WriteString("  Total diagnostics: " +
		s.SummaryValue.Render(strconv.Itoa(stats.DiagnosticsTotal)) + "\n")

	if fatals := stats.DiagnosticsBySeverity["fatal"]; fatals > 0 {
		builder.WriteString("    Fatal:           " +
			s.Fatal.Render(strconv.Itoa(fatals)) + "\n")
	}
	if errors := stats.DiagnosticsBySeverity["error"]; errors > 0 {
		builder.WriteString("    Errors:          " +
			s.Error.Render(strconv.Itoa(errors)) + "\n")
	}
	if warnings := stats.DiagnosticsBySeverity["warning"]; warnings > 0 {
		builder.WriteString("    Warnings:        " +
			s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if notes := stats.DiagnosticsBySeverity["note"]; notes > 0 {
		builder.WriteString("    Notes:           " +
			s.Note.Render(strconv.Itoa(notes)) + "\n")
	}

	builder.WriteString("\n")

	// Edits and failures
	builder.WriteString("  Edits applied:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.EditsApplied)) + "\n")
	if stats.FailuresTotal > 0 {
		builder.WriteString("  Fix-it failures:   " +
			s.Failure.Render(strconv.Itoa(stats.FailuresTotal)) + "\n")
	}

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.FailuresTotal > 0 || stats.FilesSuppressed > 0 || stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Fix-it failed"))
	case stats.ErrorsCounted > 0:
		builder.WriteString(s.Error.Render("Fix-it completed with errors"))
	default:
		builder.WriteString(s.Success.Render("Fix-it complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}
