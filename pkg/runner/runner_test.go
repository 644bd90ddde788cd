package runner_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gofixit/pkg/fixit"
	"github.com/yaklabco/gofixit/pkg/hintfile"
	"github.com/yaklabco/gofixit/pkg/runner"
)

func intp(v int) *int { return &v }

// constifyDoc fixes "int x = 1;" to "const int x = 2;" for the named
// file, or for the run's input when file is empty.
func constifyDoc(file string) *hintfile.Document {
	return &hintfile.Document{
		Version: 1,
		Diagnostics: []hintfile.DiagnosticSpec{
			{
				Severity: "warning",
				Message:  "variable is never reassigned",
				File:     file,
				Hints: []hintfile.HintSpec{
					{Offset: intp(0), Text: "const "},
					{Start: intp(8), End: intp(9), Text: "2"},
				},
			},
		},
	}
}

func quietPipeline() fixit.PipelineOptions {
	return fixit.PipelineOptions{Logger: log.New(io.Discard)}
}

func TestRunner_Run_NoMatches(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	fixRunner := runner.New(&hintfile.Document{Version: 1})
	result, err := fixRunner.Run(context.Background(), runner.Options{
		Inputs:     []string{"."},
		WorkingDir: dir,
		Pipeline:   quietPipeline(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 0 {
		t.Errorf("FilesDiscovered = %d, want 0", result.Stats.FilesDiscovered)
	}
	if len(result.Files) != 0 {
		t.Errorf("len(Files) = %d, want 0", len(result.Files))
	}
}

func TestRunner_Run_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "scan.c")
	if err := os.WriteFile(input, []byte("int x = 1;\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	fixRunner := runner.New(constifyDoc(""))
	result, err := fixRunner.Run(context.Background(), runner.Options{
		Inputs:   []string{input},
		Pipeline: quietPipeline(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 1 {
		t.Fatalf("FilesDiscovered = %d, want 1", result.Stats.FilesDiscovered)
	}
	if result.Stats.FilesWritten != 1 {
		t.Errorf("FilesWritten = %d, want 1", result.Stats.FilesWritten)
	}
	if result.Stats.EditsApplied != 2 {
		t.Errorf("EditsApplied = %d, want 2", result.Stats.EditsApplied)
	}
	if result.Stats.DiagnosticsBySeverity["warning"] != 1 {
		t.Errorf("DiagnosticsBySeverity[warning] = %d, want 1", result.Stats.DiagnosticsBySeverity["warning"])
	}

	fixed, err := os.ReadFile(fixit.FixedPath(input, fixit.DefaultSuffix))
	if err != nil {
		t.Fatalf("reading fixed file: %v", err)
	}
	if string(fixed) != "const int x = 2;\n" {
		t.Errorf("fixed content = %q, want %q", fixed, "const int x = 2;\n")
	}
}

func TestRunner_Run_DirectoryInputsKeepOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.c", "b.c", "c.c"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("int x = 1;\n"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	t.Chdir(dir)

	doc := &hintfile.Document{
		Version: 1,
		Diagnostics: []hintfile.DiagnosticSpec{
			{Severity: "warning", Message: "a", File: "a.c", Hints: []hintfile.HintSpec{{Offset: intp(0), Text: "const "}}},
			{Severity: "warning", Message: "b", File: "b.c", Hints: []hintfile.HintSpec{{Offset: intp(0), Text: "const "}}},
			{Severity: "warning", Message: "c", File: "c.c", Hints: []hintfile.HintSpec{{Offset: intp(0), Text: "const "}}},
		},
	}

	fixRunner := runner.New(doc)
	result, err := fixRunner.Run(context.Background(), runner.Options{
		Inputs:   []string{"."},
		Jobs:     3,
		Pipeline: quietPipeline(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"a.c", "b.c", "c.c"}
	if len(result.Files) != len(want) {
		t.Fatalf("len(Files) = %d, want %d", len(result.Files), len(want))
	}
	for i, outcome := range result.Files {
		if outcome.Path != want[i] {
			t.Errorf("Files[%d].Path = %q, want %q", i, outcome.Path, want[i])
		}
		if outcome.Err != nil {
			t.Errorf("Files[%d].Err = %v", i, outcome.Err)
		}
	}
	if result.Stats.FilesWritten != 3 {
		t.Errorf("FilesWritten = %d, want 3", result.Stats.FilesWritten)
	}
}

func TestRunner_Run_MultipleInputsNeedExplicitFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var inputs []string
	for _, name := range []string{"a.c", "b.c"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("int x = 1;\n"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		inputs = append(inputs, path)
	}

	fixRunner := runner.New(constifyDoc(""))
	_, err := fixRunner.Run(context.Background(), runner.Options{
		Inputs:   inputs,
		Pipeline: quietPipeline(),
	})
	if !errors.Is(err, hintfile.ErrSchema) {
		t.Errorf("Run() error = %v, want %v", err, hintfile.ErrSchema)
	}
}

func TestRunner_Run_AggregatesSuppression(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "scan.c")
	if err := os.WriteFile(input, []byte("abcdefgh\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	doc := &hintfile.Document{
		Version: 1,
		Diagnostics: []hintfile.DiagnosticSpec{
			{
				Severity: "warning",
				Message:  "overlapping removals",
				Hints: []hintfile.HintSpec{
					{Start: intp(0), End: intp(4)},
					{Start: intp(2), End: intp(6)},
				},
			},
		},
	}

	fixRunner := runner.New(doc)
	result, err := fixRunner.Run(context.Background(), runner.Options{
		Inputs:   []string{input},
		Pipeline: quietPipeline(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !result.HasSuppressed() {
		t.Error("HasSuppressed() = false, want true")
	}
	if result.Stats.FilesSuppressed != 1 {
		t.Errorf("FilesSuppressed = %d, want 1", result.Stats.FilesSuppressed)
	}
	if result.Stats.FailuresTotal != 1 {
		t.Errorf("FailuresTotal = %d, want 1", result.Stats.FailuresTotal)
	}
	if result.Stats.EditsApplied != 0 {
		t.Errorf("EditsApplied = %d, want 0 for suppressed run", result.Stats.EditsApplied)
	}
}

func TestRunner_Run_CountsErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "scan.c")
	if err := os.WriteFile(input, []byte("int x = 1;\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	doc := &hintfile.Document{
		Version: 1,
		Diagnostics: []hintfile.DiagnosticSpec{
			{Severity: "error", Message: "no advice for this one"},
		},
	}

	fixRunner := runner.New(doc)
	result, err := fixRunner.Run(context.Background(), runner.Options{
		Inputs:   []string{input},
		Pipeline: quietPipeline(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !result.HasCountedErrors() {
		t.Error("HasCountedErrors() = false, want true")
	}
	if result.Stats.ErrorsCounted != 1 {
		t.Errorf("ErrorsCounted = %d, want 1", result.Stats.ErrorsCounted)
	}
	// The error had no hints, so the run failed and suppressed.
	if result.Stats.FilesSuppressed != 1 {
		t.Errorf("FilesSuppressed = %d, want 1", result.Stats.FilesSuppressed)
	}
}

func TestRunner_Run_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "scan.c")
	if err := os.WriteFile(input, []byte("int x = 1;\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fixRunner := runner.New(constifyDoc(""))
	_, err := fixRunner.Run(ctx, runner.Options{
		Inputs:   []string{input},
		Pipeline: quietPipeline(),
	})
	if err == nil {
		t.Fatal("Run() with cancelled context succeeded, want error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}
}
