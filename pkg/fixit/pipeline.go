package fixit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gofixit/pkg/diag"
	"github.com/yaklabco/gofixit/pkg/diff"
	"github.com/yaklabco/gofixit/pkg/fsutil"
	"github.com/yaklabco/gofixit/pkg/langdetect"
	"github.com/yaklabco/gofixit/pkg/source"
)

// ErrNoLoader is returned when a pipeline is run without a diagnostic
// loader.
var ErrNoLoader = errors.New("fixit: no diagnostic loader configured")

// DiagnosticLoader produces the diagnostics to apply against a file
// set. primary identifies the input file the run is correcting.
// Implementations may register additional files in the set.
type DiagnosticLoader func(files *source.FileSet, primary source.FileID) ([]diag.Diagnostic, error)

// FileSetBinder is implemented by consumers that resolve diagnostic
// locations. ProcessFile binds the run's file set before any
// diagnostic is delivered. A bound consumer observes one run at a
// time; concurrent batch runs must not share one.
type FileSetBinder interface {
	BindFiles(files *source.FileSet)
}

// PipelineOptions configures a single-file fix run.
type PipelineOptions struct {
	// Loader supplies the diagnostics. Required.
	Loader DiagnosticLoader

	// Client receives every diagnostic after recording. Optional.
	Client diag.Consumer

	// Logger receives progress and warnings. Defaults to log.Default().
	Logger *log.Logger

	// Suffix is the output marker for derived sibling paths.
	// Defaults to DefaultSuffix.
	Suffix string

	// OutputName overrides the destination. Takes precedence over
	// InPlace.
	OutputName string

	// InPlace writes the corrected text back over the input instead
	// of a sibling file. Ignored for standard input.
	InPlace bool

	// DryRun renders a diff instead of writing anything.
	DryRun bool

	// DetectLanguage enables content-based language detection for
	// reporting.
	DetectLanguage bool

	// Backups controls input preservation for in-place writes.
	Backups fsutil.BackupConfig

	// Stdin is the reader used when the input name is "-".
	// Defaults to os.Stdin.
	Stdin io.Reader

	// Stdout is the writer used when output goes to standard output.
	// Defaults to os.Stdout.
	Stdout io.Writer
}

// PipelineResult describes one completed fix run.
type PipelineResult struct {
	// Input is the input path as given.
	Input string

	// Language is the detected language, empty when detection is off.
	Language string

	// Status is the materialization outcome.
	Status WriteStatus

	// OutputPath is the resolved destination. "-" means standard
	// output. Empty when suppression skipped resolution.
	OutputPath string

	// BackupPath is the sidecar backup location, when one was made.
	BackupPath string

	// Bytes is the number of bytes written.
	Bytes int

	// EditCount is how many edits reached the primary buffer.
	EditCount int

	// Failures is the run's failure count.
	Failures int

	// Diagnostics are the diagnostics seen, in emission order.
	Diagnostics []diag.Diagnostic

	// Errors counts Error and Fatal diagnostics, zero when the
	// consumer chain opted out of counting.
	Errors int

	// Counted reports whether Errors reflects the run.
	Counted bool

	// Patch is the dry-run preview. Nil outside dry runs and for
	// unchanged or suppressed runs.
	Patch *diff.Patch

	// Files is the run's file set. Diagnostic locations resolve
	// against it.
	Files *source.FileSet
}

// Summary renders a one-line account of the run.
func (r *PipelineResult) Summary() string {
	switch r.Status {
	case StatusWritten:
		return fmt.Sprintf("%s: wrote %s (%d bytes, %d edits)", r.Input, r.OutputPath, r.Bytes, r.EditCount)
	case StatusUnchanged:
		return fmt.Sprintf("%s: unchanged", r.Input)
	case StatusSuppressed:
		return fmt.Sprintf("%s: output suppressed (%d failures)", r.Input, r.Failures)
	case StatusPreviewed:
		if r.Patch.HasChanges() {
			return fmt.Sprintf("%s: preview (+%d -%d)", r.Input, r.Patch.Additions, r.Patch.Deletions)
		}
		return fmt.Sprintf("%s: preview", r.Input)
	default:
		return fmt.Sprintf("%s: %s", r.Input, r.Status)
	}
}

// ProcessFile runs the full fix pipeline for one input: read, load
// diagnostics, apply hints, and materialize the result. path may be
// "-" for standard input. Diagnostic and hint problems surface in the
// result, not the error; the error reports I/O and loader faults.
func ProcessFile(ctx context.Context, path string, opts PipelineOptions) (*PipelineResult, error) {
	if opts.Loader == nil {
		return nil, ErrNoLoader
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	content, info, err := readInput(ctx, path, opts.Stdin)
	if err != nil {
		return nil, err
	}

	files := source.NewFileSet()
	primary := files.Add(path, content, 0)
	if binder, ok := opts.Client.(FileSetBinder); ok {
		binder.BindFiles(files)
	}

	res := &PipelineResult{Input: path, Files: files}
	if opts.DetectLanguage {
		res.Language = langdetect.DetectFile(path, content)
		logger.Debug("detected language", "path", path, "language", res.Language)
	}

	diags, err := opts.Loader(files, primary)
	if err != nil {
		return nil, fmt.Errorf("load diagnostics: %w", err)
	}

	recorder := diag.NewRecorder(opts.Client)
	applier := New(files, primary, Options{
		Client: recorder,
		Logger: logger,
		Suffix: opts.Suffix,
		Stdout: opts.Stdout,
	})

	for _, d := range diags {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		applier.HandleDiagnostic(d)
	}

	res.Failures = applier.Failures()
	res.Diagnostics = recorder.Diagnostics()
	res.Counted = applier.ParticipatesInCounts()
	if res.Counted {
		res.Errors = recorder.Count(diag.SeverityError) + recorder.Count(diag.SeverityFatal)
	}

	buf := applier.PrimaryBuffer()
	if buf != nil {
		res.EditCount = buf.EditCount()
	}

	if opts.DryRun {
		return previewResult(res, applier, content, logger), nil
	}

	outputName := opts.OutputName
	willWrite := !applier.HasFailures() && buf != nil && buf.HasEdits()
	if outputName == "" && opts.InPlace && path != StdinName {
		outputName = path
		if willWrite {
			if err := guardInPlace(ctx, path, info, opts.Backups, logger); err != nil {
				return nil, err
			}
			if opts.Backups.Enabled {
				res.BackupPath = fsutil.BackupPath(path, opts.Backups.Mode)
			}
		}
	}

	wr, err := applier.WriteFixedFile(ctx, path, outputName)
	if err != nil {
		return nil, err
	}
	res.Status = wr.Status
	res.OutputPath = wr.Path
	res.Bytes = wr.Bytes
	return res, nil
}

func readInput(ctx context.Context, path string, stdin io.Reader) ([]byte, *fsutil.FileInfo, error) {
	if path == StdinName {
		if stdin == nil {
			stdin = os.Stdin
		}
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
		return content, nil, nil
	}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	return content, info, nil
}

// previewResult finishes a dry run: the same suppression and
// unchanged gates as materialization, with a patch instead of a write.
func previewResult(res *PipelineResult, applier *Rewriter, original []byte, logger *log.Logger) *PipelineResult {
	if applier.HasFailures() {
		logger.Warn("fix-it failures detected; code will not be modified", "failures", applier.Failures())
		res.Status = StatusSuppressed
		return res
	}

	buf := applier.PrimaryBuffer()
	if buf == nil || !buf.HasEdits() {
		logger.Info("file unchanged", "path", res.Input)
		res.Status = StatusUnchanged
		return res
	}

	res.Patch = diff.Compute(res.Input, original, buf.Render())
	res.Status = StatusPreviewed
	return res
}

// guardInPlace refuses to clobber an input that changed since it was
// read, then takes a backup when configured.
func guardInPlace(ctx context.Context, path string, info *fsutil.FileInfo, backups fsutil.BackupConfig, logger *log.Logger) error {
	if info != nil {
		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil {
			return fmt.Errorf("recheck %s: %w", path, err)
		}
		if modified {
			return fmt.Errorf("%s: file changed since it was read", path)
		}
	}

	created, err := fsutil.CreateBackup(ctx, path, backups)
	if err != nil {
		return fmt.Errorf("backup %s: %w", path, err)
	}
	if created {
		logger.Debug("created backup", "path", fsutil.BackupPath(path, backups.Mode))
	}
	return nil
}
