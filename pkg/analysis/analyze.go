package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/gofixit/pkg/diag"
	"github.com/yaklabco/gofixit/pkg/fixit"
	"github.com/yaklabco/gofixit/pkg/runner"
	"github.com/yaklabco/gofixit/pkg/source"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// Status string for inputs that failed before producing a run result.
const statusErrored = "error"

// makeRelativePath converts an absolute path to a relative path from
// workDir. If workDir is empty or conversion fails, returns the
// original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	codeMap   map[string]*CodeAnalysis
	codeFiles map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		codeMap:   make(map[string]*CodeAnalysis),
		codeFiles: make(map[string]map[string]bool),
	}
}

// getOrCreateCodeAnalysis returns existing or creates new CodeAnalysis.
// Diagnostics without a code bucket under the empty string.
func (ctx *analysisContext) getOrCreateCodeAnalysis(code string) *CodeAnalysis {
	if _, ok := ctx.codeMap[code]; !ok {
		ctx.codeMap[code] = &CodeAnalysis{Code: code}
		ctx.codeFiles[code] = make(map[string]bool)
	}
	return ctx.codeMap[code]
}

// incrementCodeSeverity updates code analysis severity counts.
func incrementCodeSeverity(sev diag.Severity, ca *CodeAnalysis) {
	switch sev {
	case diag.SeverityFatal:
		ca.Fatals++
	case diag.SeverityError:
		ca.Errors++
	case diag.SeverityWarning:
		ca.Warnings++
	case diag.SeverityNote:
		ca.Notes++
	}
}

// makeDiagnosticEntry builds a DiagnosticEntry. The file path and
// position come from resolving the diagnostic's location against the
// run's file set; an unresolvable location falls back to the input
// path with no position.
func makeDiagnosticEntry(inputPath string, d diag.Diagnostic, files *source.FileSet, workDir string) DiagnosticEntry {
	entry := DiagnosticEntry{
		FilePath: inputPath,
		Severity: d.Severity.String(),
		Code:     d.Code,
		Message:  d.Message,
	}
	if files != nil && d.Loc.IsValid() {
		if f, lc := files.Resolve(d.Loc); f != nil {
			entry.FilePath = makeRelativePath(f.Path, workDir)
			entry.Line = lc.Line
			entry.Column = lc.Col
		}
	}
	for _, h := range d.Hints {
		entry.Hints = append(entry.Hints, makeHintEntry(h, files))
	}
	return entry
}

// makeHintEntry builds a HintEntry. Offsets address the original text;
// line and column resolve the hint's anchor when the file set knows it.
func makeHintEntry(h diag.Hint, files *source.FileSet) HintEntry {
	entry := HintEntry{
		Op:   h.Op().String(),
		Text: h.Text,
	}

	anchor := h.InsertionLoc
	if h.RemoveRange.IsValid() {
		anchor = h.RemoveRange.Start
		entry.StartOffset = h.RemoveRange.Start.Offset
		entry.EndOffset = h.RemoveRange.End.Offset
	} else {
		entry.StartOffset = h.InsertionLoc.Offset
		entry.EndOffset = h.InsertionLoc.Offset
	}

	if files != nil && anchor.IsValid() {
		if f, lc := files.Resolve(anchor); f != nil {
			entry.Line = lc.Line
			entry.Column = lc.Col
		}
	}
	return entry
}

// buildByCode constructs the ByCode slice from accumulated data.
func (ctx *analysisContext) buildByCode(opts Options) []CodeAnalysis {
	result := make([]CodeAnalysis, 0, len(ctx.codeMap))
	for code, ca := range ctx.codeMap {
		for f := range ctx.codeFiles[code] {
			ca.Files = append(ca.Files, f)
		}
		slices.Sort(ca.Files)
		result = append(result, *ca)
	}
	sortCodeAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// Analyze transforms a runner.Result into a Report. It performs a
// single pass through the outcomes to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}
	report.Totals.BySeverity = make(map[string]int)

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		report.Totals.Files++
		displayPath := makeRelativePath(file.Path, opts.WorkingDir)

		if file.Err != nil {
			report.Totals.Errored++
			report.Files = append(report.Files, FileReport{
				Path:   displayPath,
				Status: statusErrored,
				Error:  file.Err.Error(),
			})
			continue
		}
		res := file.Result
		if res == nil {
			continue
		}

		fr := FileReport{
			Path:     displayPath,
			Language: res.Language,
			Status:   res.Status.String(),
			Output:   res.OutputPath,
			Backup:   res.BackupPath,
			Bytes:    res.Bytes,
			Edits:    res.EditCount,
			Failures: res.Failures,
		}
		if res.Patch.HasChanges() {
			fr.Diff = res.Patch.FullString()
		}

		switch res.Status {
		case fixit.StatusWritten:
			report.Totals.Written++
		case fixit.StatusUnchanged:
			report.Totals.Unchanged++
		case fixit.StatusSuppressed:
			report.Totals.Suppressed++
		case fixit.StatusPreviewed:
			report.Totals.Previewed++
		}

		report.Totals.Failures += res.Failures
		if res.Status != fixit.StatusSuppressed {
			report.Totals.Edits += res.EditCount
		}
		report.Totals.BytesWritten += res.Bytes
		report.Totals.ErrorsCounted += res.Errors

		for _, d := range res.Diagnostics {
			report.Totals.Diagnostics++
			report.Totals.BySeverity[d.Severity.String()]++

			ca := ctx.getOrCreateCodeAnalysis(d.Code)
			ca.Count++
			incrementCodeSeverity(d.Severity, ca)
			if d.HasHints() {
				ca.WithHints++
			}
			ctx.codeFiles[d.Code][displayPath] = true

			if opts.IncludeDiagnostics {
				fr.Diagnostics = append(fr.Diagnostics, makeDiagnosticEntry(displayPath, d, res.Files, opts.WorkingDir))
			}
		}

		report.Files = append(report.Files, fr)
	}

	if opts.IncludeByCode {
		report.ByCode = ctx.buildByCode(opts)
	}

	return report
}

func sortCodeAnalysis(codes []CodeAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(codes, func(left, right CodeAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.Code, right.Code)
		case SortBySeverity:
			// Fatals first, then errors, then warnings (always
			// descending by severity)
			result := cmp.Compare(right.Fatals, left.Fatals)
			if result == 0 {
				result = cmp.Compare(right.Errors, left.Errors)
			}
			if result == 0 {
				result = cmp.Compare(right.Warnings, left.Warnings)
			}
			if result == 0 {
				result = cmp.Compare(right.Count, left.Count)
			}
			return result
		default: // SortByCount
			result := cmp.Compare(left.Count, right.Count)
			if desc {
				result = -result
			}
			return result
		}
	})
}
