package hintfile

import (
	"fmt"

	"github.com/yaklabco/gofixit/pkg/diag"
	"github.com/yaklabco/gofixit/pkg/source"
)

// Bind resolves the document's diagnostics against a file set.
// Diagnostics naming a file that is not in the set are skipped: in a
// batch run they belong to another input. Diagnostics with no file
// bind to primary. Hint anchors that cannot be resolved are kept
// unresolved rather than dropped, so the applier can report them as
// failures instead of silently losing advice.
func (d *Document) Bind(files *source.FileSet, primary source.FileID) ([]diag.Diagnostic, error) {
	if files.Get(primary) == nil {
		return nil, fmt.Errorf("bind hints: unknown primary file %d", primary)
	}

	var out []diag.Diagnostic
	for i, spec := range d.Diagnostics {
		severity, err := diag.ParseSeverity(spec.Severity)
		if err != nil {
			return nil, fmt.Errorf("%w: diagnostic %d: %v", ErrSchema, i+1, err)
		}

		target := primary
		if spec.File != "" {
			f, ok := files.GetByPath(spec.File)
			if !ok {
				continue
			}
			target = f.ID
		}

		b := diag.NewDiagnostic(severity, spec.Message).WithCode(spec.Code)
		if spec.Line > 0 {
			b = b.At(resolvePoint(files, target, nil, spec.Line, spec.Column))
		}
		for j, h := range spec.Hints {
			if h.hasRange() && h.hasPoint() {
				return nil, fmt.Errorf("%w: diagnostic %d hint %d: both range and insertion anchors", ErrSchema, i+1, j+1)
			}
			b = b.WithHint(bindHint(files, target, h))
		}
		out = append(out, b.Build())
	}
	return out, nil
}

// RequireExplicitFiles checks that every diagnostic names its file.
// Batch runs call this before fan-out: a diagnostic relying on the
// single-input default would otherwise bind to every input at once.
func (d *Document) RequireExplicitFiles() error {
	for i, spec := range d.Diagnostics {
		if spec.File == "" {
			return fmt.Errorf("%w: diagnostic %d names no file; required when fixing multiple inputs", ErrSchema, i+1)
		}
	}
	return nil
}

// Loader adapts a parsed document to the pipeline's loader shape, so
// one document can serve many runs.
func Loader(doc *Document) func(*source.FileSet, source.FileID) ([]diag.Diagnostic, error) {
	return func(files *source.FileSet, primary source.FileID) ([]diag.Diagnostic, error) {
		return doc.Bind(files, primary)
	}
}

func bindHint(files *source.FileSet, target source.FileID, h HintSpec) diag.Hint {
	id := target
	if h.File != "" {
		f, ok := files.GetByPath(h.File)
		if !ok {
			id = 0
		} else {
			id = f.ID
		}
	}

	switch {
	case h.hasRange():
		rng := resolveRange(files, id, h)
		if h.Text == "" {
			return diag.Removal(rng)
		}
		return diag.Replacement(rng, h.Text)
	case h.hasPoint():
		return diag.Insertion(resolvePoint(files, id, h.Offset, h.Line, h.Column), h.Text)
	default:
		return diag.Hint{Text: h.Text}
	}
}

// resolvePoint turns an offset or a 1-based line/column pair into a
// location. Unresolvable positions yield NoLocation.
func resolvePoint(files *source.FileSet, id source.FileID, offset *int, line, col int) source.Location {
	f := files.Get(id)
	if f == nil {
		return source.NoLocation
	}
	if offset != nil {
		return source.Location{File: id, Offset: *offset}
	}
	if line > 0 {
		if col < 1 {
			col = 1
		}
		if off, ok := f.OffsetAt(source.LineCol{Line: line, Col: col}); ok {
			return source.Location{File: id, Offset: off}
		}
	}
	return source.NoLocation
}

// resolveRange turns a pair of offsets or line/column pairs into a
// range. Either endpoint failing to resolve yields the zero Range.
func resolveRange(files *source.FileSet, id source.FileID, h HintSpec) source.Range {
	if files.Get(id) == nil {
		return source.Range{}
	}
	if h.Start != nil && h.End != nil {
		return source.NewRange(id, *h.Start, *h.End)
	}

	start := resolvePoint(files, id, nil, h.StartLine, h.StartColumn)
	end := resolvePoint(files, id, nil, h.EndLine, h.EndColumn)
	if !start.IsValid() || !end.IsValid() {
		return source.Range{}
	}
	return source.Range{Start: start, End: end}
}
