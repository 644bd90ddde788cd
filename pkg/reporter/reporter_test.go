package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofixit/pkg/analysis"
	"github.com/yaklabco/gofixit/pkg/diag"
	"github.com/yaklabco/gofixit/pkg/diff"
	"github.com/yaklabco/gofixit/pkg/fixit"
	"github.com/yaklabco/gofixit/pkg/reporter"
	"github.com/yaklabco/gofixit/pkg/runner"
	"github.com/yaklabco/gofixit/pkg/source"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "unknown format", input: "xml", wantErr: true},
		{name: "sarif unsupported", input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	tests := []struct {
		format reporter.Format
		want   bool
	}{
		{reporter.FormatText, true},
		{reporter.FormatJSON, true},
		{reporter.Format("unknown"), false},
		{reporter.Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := reporter.Options{
				Writer: &buf,
				Format: tt.format,
				Color:  "never",
			}

			rep, err := reporter.New(opts)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, rep)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func TestTextReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "No files to fix")
}

func TestTextReporter_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	result := &runner.Result{
		Files: []runner.FileOutcome{},
		Stats: runner.Stats{
			DiagnosticsBySeverity: make(map[string]int),
		},
	}

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestTextReporter_WithDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:          &buf,
		Color:           "never",
		ShowDiagnostics: true,
		ShowSummary:     true,
	})

	result := createTestResult()

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	output := buf.String()
	assert.Contains(t, output, "test.c")
	assert.Contains(t, output, "E001")
	assert.Contains(t, output, "error")
	assert.Contains(t, output, "2 diagnostics") // One-line summary format
	assert.Contains(t, output, "1 file written")
}

func TestTextReporter_SkipsDiagnosticsWhenStreamed(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:          &buf,
		Color:           "never",
		ShowDiagnostics: false,
		ShowSummary:     true,
	})

	result := createTestResult()

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	output := buf.String()
	assert.NotContains(t, output, "E001")
	assert.Contains(t, output, "2 diagnostics")
}

func TestTextReporter_RunError(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:          &buf,
		Color:           "never",
		ShowDiagnostics: true,
	})

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "missing.c", Err: errors.New("permission denied")},
		},
		Stats: runner.Stats{
			FilesErrored:          1,
			DiagnosticsBySeverity: make(map[string]int),
		},
	}

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "missing.c")
	assert.Contains(t, output, "error: permission denied")
}

func TestTextReporter_PreviewPatch(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:          &buf,
		Color:           "never",
		ShowDiagnostics: true,
		ShowSummary:     true,
	})

	patch := diff.Compute("test.c", []byte("int y == 2;\n"), []byte("int y = 2;\n"))
	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "test.c",
				Result: &fixit.PipelineResult{
					Input:     "test.c",
					Status:    fixit.StatusPreviewed,
					EditCount: 1,
					Patch:     patch,
				},
			},
		},
		Stats: runner.Stats{
			FilesProcessed:        1,
			FilesPreviewed:        1,
			EditsApplied:          1,
			DiagnosticsBySeverity: make(map[string]int),
		},
	}

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "diff --git a/test.c b/test.c")
	assert.Contains(t, output, "--- a/test.c")
	assert.Contains(t, output, "+++ b/test.c")
	assert.Contains(t, output, "-int y == 2;")
	assert.Contains(t, output, "+int y = 2;")
	assert.Contains(t, output, "1 file changed")
	assert.Contains(t, output, "1 insertion(+)")
	assert.Contains(t, output, "1 deletion(-)")
}

func TestTextReporter_BatchRendersTable(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:          &buf,
		Color:           "never",
		ShowDiagnostics: true,
		ShowSummary:     true,
	})

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "a.c",
				Result: &fixit.PipelineResult{
					Input:      "a.c",
					Status:     fixit.StatusWritten,
					OutputPath: "a.fixit.c",
					EditCount:  2,
				},
			},
			{
				Path: "b.c",
				Result: &fixit.PipelineResult{
					Input:    "b.c",
					Status:   fixit.StatusSuppressed,
					Failures: 1,
				},
			},
		},
		Stats: runner.Stats{
			FilesProcessed:        2,
			FilesWritten:          1,
			FilesSuppressed:       1,
			FailuresTotal:         1,
			EditsApplied:          2,
			DiagnosticsBySeverity: make(map[string]int),
		},
	}

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "FILE")
	assert.Contains(t, output, "STATUS")
	assert.Contains(t, output, "a.fixit.c")
	assert.Contains(t, output, "suppressed")
	assert.Contains(t, output, "Summary")
	assert.Contains(t, output, "Fix-it failed")
}

func TestJSONReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Should still produce valid JSON
	var report analysis.Report
	err = json.Unmarshal(buf.Bytes(), &report)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", report.Version)
	assert.Empty(t, report.Files)
}

func TestJSONReporter_WithDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	result := createTestResult()

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var report analysis.Report
	err = json.Unmarshal(buf.Bytes(), &report)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", report.Version)
	require.Len(t, report.Files, 1)
	assert.Equal(t, "written", report.Files[0].Status)
	assert.Len(t, report.Files[0].Diagnostics, 2)
	assert.Equal(t, 2, report.Totals.Diagnostics)
	assert.Equal(t, 1, report.Totals.Written)
	assert.NotEmpty(t, report.ByCode)
}

func TestJSONReporter_Compact(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer:  &buf,
		Color:   "never",
		Compact: true,
	})

	result := createTestResult()

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	// Compact output should be a single line
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}

func TestDefaultOptions(t *testing.T) {
	opts := reporter.DefaultOptions()

	assert.NotNil(t, opts.Writer)
	assert.NotNil(t, opts.ErrorWriter)
	assert.Equal(t, reporter.FormatText, opts.Format)
	assert.Equal(t, "auto", opts.Color)
	assert.True(t, opts.ShowDiagnostics)
	assert.True(t, opts.ShowContext)
	assert.True(t, opts.ShowSummary)
	assert.False(t, opts.Compact)
}

// createTestResult creates a test runner.Result with one written file
// and sample diagnostics.
func createTestResult() *runner.Result {
	files := source.NewFileSet()
	id := files.AddVirtual("test.c", []byte("int x = 1;\nint y == 2;\n"))

	res := &fixit.PipelineResult{
		Input:      "test.c",
		Status:     fixit.StatusWritten,
		OutputPath: "test.fixit.c",
		Bytes:      22,
		EditCount:  1,
		Diagnostics: []diag.Diagnostic{
			diag.NewDiagnostic(diag.SeverityError, "invalid '==' in initializer").
				WithCode("E001").
				At(source.Location{File: id, Offset: 17}).
				WithHint(diag.Replacement(source.NewRange(id, 17, 19), "=")).
				Build(),
			diag.NewDiagnostic(diag.SeverityWarning, "unused variable 'x'").
				WithCode("W002").
				At(source.Location{File: id, Offset: 4}).
				Build(),
		},
		Files: files,
	}

	return &runner.Result{
		Files: []runner.FileOutcome{{Path: "test.c", Result: res}},
		Stats: runner.Stats{
			FilesDiscovered:       1,
			FilesProcessed:        1,
			FilesWritten:          1,
			EditsApplied:          1,
			BytesWritten:          22,
			DiagnosticsTotal:      2,
			DiagnosticsBySeverity: map[string]int{"error": 1, "warning": 1},
		},
	}
}
