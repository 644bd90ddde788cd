// Package rewrite maintains rewritten views of original source text.
// Edits arrive in original-text coordinates, are recorded as an ordered
// splice log, and are only composed into output when rendering. Raw
// offsets are never rewritten destructively, so positions computed
// before any edit existed stay resolvable for the whole run.
package rewrite

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/yaklabco/gofixit/pkg/source"
)

var (
	// ErrConflict means an edit overlaps a previously applied edit.
	ErrConflict = errors.New("conflicts with a previously applied edit")

	// ErrOutOfBounds means an edit addresses text outside the original.
	ErrOutOfBounds = errors.New("position outside original text")

	// ErrUnknownFile means a location's file is not in the file set.
	ErrUnknownFile = errors.New("unknown file")
)

// splice replaces original bytes [start, end) with text. An insertion
// has start == end.
type splice struct {
	start int
	end   int
	text  string
}

// Buffer is the rewritten view of one file. It holds the immutable
// original plus the log of applied splices, sorted by original
// position.
type Buffer struct {
	file    *source.File
	splices []splice
}

func newBuffer(f *source.File) *Buffer {
	return &Buffer{file: f}
}

// File returns the original file this buffer rewrites.
func (b *Buffer) File() *source.File {
	return b.file
}

// RangeSize returns the size of r in original text units, or -1 when
// the range cannot be materialized contiguously: invalid, not in this
// buffer's file, or extending past the original content.
func (b *Buffer) RangeSize(r source.Range) int {
	if !r.IsValid() || r.Start.File != b.file.ID {
		return -1
	}
	if r.Start.Offset < 0 || r.End.Offset > b.file.Size() {
		return -1
	}
	return r.Len()
}

// IsRewritable reports whether inserting at loc is structurally legal:
// the location addresses this buffer's original text and does not fall
// strictly inside an already excised or replaced region. Boundary
// positions of applied splices remain legal insertion points.
func (b *Buffer) IsRewritable(loc source.Location) bool {
	if !loc.IsValid() || loc.File != b.file.ID {
		return false
	}
	if loc.Offset < 0 || loc.Offset > b.file.Size() {
		return false
	}
	return !b.insertionBlocked(loc.Offset)
}

// InsertTextBefore splices text immediately before loc's current
// rendered position. Text previously inserted at the same original
// offset renders after the new text.
func (b *Buffer) InsertTextBefore(loc source.Location, text string) error {
	if !loc.IsValid() || loc.File != b.file.ID {
		return fmt.Errorf("%w: %s", ErrUnknownFile, loc)
	}
	return b.applySplice(loc.Offset, loc.Offset, text)
}

// RemoveText excises size original bytes starting at start.
func (b *Buffer) RemoveText(start source.Location, size int) error {
	if !start.IsValid() || start.File != b.file.ID {
		return fmt.Errorf("%w: %s", ErrUnknownFile, start)
	}
	if size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrOutOfBounds, size)
	}
	return b.applySplice(start.Offset, start.Offset+size, "")
}

// ReplaceText substitutes size original bytes at start with text, as
// one operation.
func (b *Buffer) ReplaceText(start source.Location, size int, text string) error {
	if !start.IsValid() || start.File != b.file.ID {
		return fmt.Errorf("%w: %s", ErrUnknownFile, start)
	}
	if size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrOutOfBounds, size)
	}
	return b.applySplice(start.Offset, start.Offset+size, text)
}

// HasEdits reports whether at least one splice was applied.
func (b *Buffer) HasEdits() bool {
	return len(b.splices) > 0
}

// EditCount returns the number of applied splices.
func (b *Buffer) EditCount() int {
	return len(b.splices)
}

// Render materializes the current text in a single pass over the
// original and the splice log.
func (b *Buffer) Render() []byte {
	content := b.file.Content
	if len(b.splices) == 0 {
		out := make([]byte, len(content))
		copy(out, content)
		return out
	}

	delta := 0
	for _, s := range b.splices {
		delta += len(s.text) - (s.end - s.start)
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, s := range b.splices {
		out.Write(content[cursor:s.start])
		out.WriteString(s.text)
		cursor = s.end
	}
	out.Write(content[cursor:])

	return out.Bytes()
}

// renderedOffset translates an original offset into its position in
// the rendered text, accounting for every applied splice that ends at
// or before it. Callers work in original coordinates throughout; this
// exists to check the splice log composes consistently with Render.
func (b *Buffer) renderedOffset(offset int) int {
	return offset + cumulativeDelta(b.splices, offset)
}

func (b *Buffer) applySplice(start, end int, text string) error {
	if start < 0 || end < start || end > b.file.Size() {
		return fmt.Errorf("%w: [%d,%d) in %d bytes", ErrOutOfBounds, start, end, b.file.Size())
	}
	cand := splice{start: start, end: end, text: text}
	for _, applied := range b.splices {
		if splicesConflict(applied, cand) {
			return fmt.Errorf("%w: [%d,%d) overlaps [%d,%d)", ErrConflict, start, end, applied.start, applied.end)
		}
	}
	b.splices = insertSpliceSorted(b.splices, cand)
	return nil
}

// insertionBlocked reports whether offset lies strictly inside an
// applied non-empty splice.
func (b *Buffer) insertionBlocked(offset int) bool {
	for _, s := range b.splices {
		if s.start < offset && offset < s.end {
			return true
		}
	}
	return false
}

// splicesConflict reports whether two splices cannot coexist. Extents
// are half-open [start, end). Two insertions never conflict. An
// insertion conflicts with a non-empty splice only when it falls
// strictly inside it: both boundaries stay legal insertion points.
// Two non-empty splices conflict on any overlap; adjacency is legal.
func splicesConflict(a, b splice) bool {
	if a.start == a.end && b.start == b.end {
		return false
	}
	if a.start == a.end {
		return b.start < a.start && a.start < b.end
	}
	if b.start == b.end {
		return a.start < b.start && b.start < a.end
	}
	return a.start < b.end && b.start < a.end
}

// insertSpliceSorted keeps the log ordered by (start, end). A new
// splice with the same key lands before existing ones, which gives
// insert-before semantics for same-offset insertions.
func insertSpliceSorted(splices []splice, s splice) []splice {
	idx := sort.Search(len(splices), func(i int) bool {
		if splices[i].start == s.start {
			return splices[i].end >= s.end
		}
		return splices[i].start > s.start
	})
	splices = append(splices, splice{})
	copy(splices[idx+1:], splices[idx:])
	splices[idx] = s
	return splices
}

func cumulativeDelta(splices []splice, pos int) int {
	delta := 0
	for _, s := range splices {
		if s.start > pos {
			break
		}
		if s.end <= pos {
			delta += len(s.text) - (s.end - s.start)
		}
	}
	return delta
}
