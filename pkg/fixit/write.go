package fixit

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gofixit/pkg/fsutil"
)

// StdinName is the sentinel input name meaning "read standard input,
// write standard output".
const StdinName = "-"

// WriteStatus is the outcome of materialization.
type WriteStatus uint8

const (
	// StatusWritten means the corrected text reached its destination.
	StatusWritten WriteStatus = iota
	// StatusUnchanged means no edit touched the primary file, so no
	// output was produced.
	StatusUnchanged
	// StatusSuppressed means failures occurred during the run and all
	// output was withheld.
	StatusSuppressed
	// StatusPreviewed means a dry run rendered the corrected text
	// without writing it anywhere.
	StatusPreviewed
)

func (s WriteStatus) String() string {
	switch s {
	case StatusWritten:
		return "written"
	case StatusUnchanged:
		return "unchanged"
	case StatusSuppressed:
		return "suppressed"
	case StatusPreviewed:
		return "previewed"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// WriteResult reports what materialization did.
type WriteResult struct {
	// Status is the outcome.
	Status WriteStatus

	// Path is the resolved destination. "-" means standard output.
	// Empty when suppression skipped resolution entirely.
	Path string

	// Failures is the failure count that gated the write.
	Failures int

	// Bytes is the number of bytes written.
	Bytes int
}

// WriteFixedFile materializes the primary file's corrected text.
//
// Any failure recorded during the run suppresses all output: a
// half-corrected file is never written. Otherwise the destination is
// the explicit outputName when given, standard output when inputName
// is the "-" sentinel, or a sibling path with the suffix marker
// inserted before the extension. When the primary buffer has no
// applied edits nothing is produced and the result says unchanged.
func (r *Rewriter) WriteFixedFile(ctx context.Context, inputName, outputName string) (*WriteResult, error) {
	if r.failures > 0 {
		r.logger.Warn("fix-it failures detected; code will not be modified", "failures", r.failures)
		return &WriteResult{Status: StatusSuppressed, Failures: r.failures}, nil
	}

	dest := resolveDestination(inputName, outputName, r.suffix)

	buf := r.rewrite.BufferFor(r.primary)
	if buf == nil || !buf.HasEdits() {
		r.logger.Info("file unchanged", "path", inputName)
		return &WriteResult{Status: StatusUnchanged, Path: dest}, nil
	}

	content := buf.Render()

	if dest == StdinName {
		w := bufio.NewWriter(r.stdout)
		if _, err := w.Write(content); err != nil {
			return nil, fmt.Errorf("write stdout: %w", err)
		}
		if err := w.Flush(); err != nil {
			return nil, fmt.Errorf("flush stdout: %w", err)
		}
		return &WriteResult{Status: StatusWritten, Path: dest, Bytes: len(content)}, nil
	}

	mode := fsutil.DefaultFileMode
	if inputName != StdinName {
		if stat, err := os.Stat(inputName); err == nil {
			mode = stat.Mode()
		}
	}
	if err := fsutil.WriteAtomic(ctx, dest, content, mode); err != nil {
		return nil, fmt.Errorf("write %s: %w", dest, err)
	}

	r.logger.Debug("wrote fixed file", "path", dest, "bytes", len(content))
	return &WriteResult{Status: StatusWritten, Path: dest, Bytes: len(content)}, nil
}

// FixedPath derives the default output path for input: the marker goes
// between the base name and the extension, so "foo.c" becomes
// "foo.fixit.c" and extensionless "foo" becomes "foo.fixit".
func FixedPath(path, marker string) string {
	if marker == "" {
		marker = DefaultSuffix
	}
	ext := filepath.Ext(path)
	if ext == "" {
		return path + "." + marker
	}
	return strings.TrimSuffix(path, ext) + "." + marker + ext
}

func resolveDestination(inputName, outputName, suffix string) string {
	if outputName != "" {
		return outputName
	}
	if inputName == StdinName {
		return StdinName
	}
	return FixedPath(inputName, suffix)
}
