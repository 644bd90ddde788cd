package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/gofixit/pkg/fixit"
	"github.com/yaklabco/gofixit/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 5 // FILE, STATUS, EDITS, FAILURES, OUTPUT
	minFileWidth     = 20
	minStatusWidth   = 10
	minNumWidth      = 5
	minOutputWidth   = 20
	heavySeparator   = "="
	defaultTermWidth = 100

	statusErrored = "error"
)

// TableRow is one input's outcome in the table.
type TableRow struct {
	File     string
	Status   string
	Edits    int
	Failures int
	Output   string
}

// TableFormatter formats per-file outcomes as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatTable formats batch outcomes as a styled table, one row per
// input in result order.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	rows := collectRows(result)
	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	return builder.String()
}

// OutcomeToTableRow converts one file outcome to a table row.
func OutcomeToTableRow(outcome runner.FileOutcome) TableRow {
	row := TableRow{File: outcome.Path}

	if outcome.Err != nil {
		row.Status = statusErrored
		row.Output = outcome.Err.Error()
		return row
	}
	if outcome.Result == nil {
		row.Status = statusErrored
		return row
	}

	res := outcome.Result
	row.Status = res.Status.String()
	row.Edits = res.EditCount
	row.Failures = res.Failures

	switch res.Status {
	case fixit.StatusWritten:
		row.Output = res.OutputPath
	case fixit.StatusPreviewed:
		if res.Patch.HasChanges() {
			row.Output = fmt.Sprintf("+%d -%d", res.Patch.Additions, res.Patch.Deletions)
		}
	}
	return row
}

func collectRows(result *runner.Result) []TableRow {
	rows := make([]TableRow, 0, len(result.Files))
	for _, outcome := range result.Files {
		rows = append(rows, OutcomeToTableRow(outcome))
	}
	return rows
}

type columnWidths struct {
	file   int
	status int
	num    int
	output int
}

// calculateColumnWidths determines column widths based on content.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		file:   minFileWidth,
		status: minStatusWidth,
		num:    minNumWidth,
		output: minOutputWidth,
	}

	for _, row := range rows {
		if len(row.File) > widths.file {
			widths.file = len(row.File)
		}
		if len(row.Status) > widths.status {
			widths.status = len(row.Status)
		}
		if len(row.Output) > widths.output {
			widths.output = len(row.Output)
		}
	}

	// Constrain to terminal width
	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		// Reduce output width first
		excess := totalWidth - t.termWidth
		widths.output = max(minOutputWidth, widths.output-excess)

		// If still too wide, reduce file width
		totalWidth = t.calculateTotalWidth(widths)
		if totalWidth > t.termWidth {
			excess = totalWidth - t.termWidth
			widths.file = max(minFileWidth, widths.file-excess)
		}
	}

	return widths
}

func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.file + widths.status + 2*widths.num + widths.output +
		(tablePadding * tableColumnCount)
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %*s  %*s  %-*s ",
		widths.file, "FILE",
		widths.status, "STATUS",
		widths.num, "EDITS",
		widths.num, "FAILS",
		widths.output, "OUTPUT",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	sep := strings.Repeat(heavySeparator, t.calculateTotalWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// formatRow formats a single row with status-based styling.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	// Truncate fields if necessary - keep the tail of file paths
	file := truncateFilePath(row.File, widths.file)
	output := truncateString(row.Output, widths.output)

	content := fmt.Sprintf(" %-*s  %-*s  %*s  %*s  %-*s ",
		widths.file, file,
		widths.status, row.Status,
		widths.num, strconv.Itoa(row.Edits),
		widths.num, strconv.Itoa(row.Failures),
		widths.output, output,
	)

	return t.rowStyle(row.Status).Render(content)
}

// rowStyle returns the style for a row's write status.
func (t *TableFormatter) rowStyle(status string) lipgloss.Style {
	switch status {
	case fixit.StatusWritten.String():
		return t.styles.TableWritten
	case fixit.StatusUnchanged.String():
		return t.styles.TableUnchanged
	case fixit.StatusSuppressed.String():
		return t.styles.TableSuppressed
	case fixit.StatusPreviewed.String():
		return t.styles.TablePreviewed
	case statusErrored:
		return t.styles.TableErrored
	default:
		return lipgloss.NewStyle()
	}
}

// FormatTableSummary formats a one-line tally after the table.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("%d files processed", stats.FilesProcessed))

	if stats.FilesWritten > 0 {
		parts = append(parts, t.styles.Success.Render(fmt.Sprintf("%d written", stats.FilesWritten)))
	}
	if stats.FilesSuppressed > 0 {
		parts = append(parts, t.styles.Failure.Render(fmt.Sprintf("%d suppressed", stats.FilesSuppressed)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, t.styles.Failure.Render(fmt.Sprintf("%d errored", stats.FilesErrored)))
	}
	if stats.EditsApplied > 0 {
		parts = append(parts, fmt.Sprintf("%d edits", stats.EditsApplied))
	}

	return " " + strings.Join(parts, " | ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
