package rewrite

import (
	"fmt"

	"github.com/yaklabco/gofixit/pkg/source"
)

// Rewriter dispatches edit operations to per-file buffers, creating
// them lazily on first touch. Files never edited never get a buffer,
// which is how "unchanged" is detected at materialization time.
type Rewriter struct {
	files   *source.FileSet
	buffers map[source.FileID]*Buffer
}

// New creates a Rewriter over the given file set.
func New(fs *source.FileSet) *Rewriter {
	return &Rewriter{
		files:   fs,
		buffers: make(map[source.FileID]*Buffer),
	}
}

// FileSet returns the underlying file set.
func (r *Rewriter) FileSet() *source.FileSet {
	return r.files
}

// RangeSize returns the original-text size of rng, or -1 when the
// range is invalid, crosses files, or addresses an unknown file.
func (r *Rewriter) RangeSize(rng source.Range) int {
	if !rng.IsValid() {
		return -1
	}
	f := r.files.Get(rng.Start.File)
	if f == nil {
		return -1
	}
	if rng.Start.Offset < 0 || rng.End.Offset > f.Size() {
		return -1
	}
	return rng.Len()
}

// IsRewritable reports whether an insertion at loc is structurally
// legal given the edits applied so far.
func (r *Rewriter) IsRewritable(loc source.Location) bool {
	if !loc.IsValid() {
		return false
	}
	f := r.files.Get(loc.File)
	if f == nil {
		return false
	}
	if buf, ok := r.buffers[loc.File]; ok {
		return buf.IsRewritable(loc)
	}
	return loc.Offset >= 0 && loc.Offset <= f.Size()
}

// InsertTextBefore inserts text immediately before loc.
func (r *Rewriter) InsertTextBefore(loc source.Location, text string) error {
	buf, err := r.editBuffer(loc.File)
	if err != nil {
		return err
	}
	return buf.InsertTextBefore(loc, text)
}

// RemoveText excises size original bytes starting at start.
func (r *Rewriter) RemoveText(start source.Location, size int) error {
	buf, err := r.editBuffer(start.File)
	if err != nil {
		return err
	}
	return buf.RemoveText(start, size)
}

// ReplaceText substitutes size original bytes at start with text.
func (r *Rewriter) ReplaceText(start source.Location, size int, text string) error {
	buf, err := r.editBuffer(start.File)
	if err != nil {
		return err
	}
	return buf.ReplaceText(start, size, text)
}

// BufferFor returns the buffer for id, or nil when the file was never
// touched by an edit operation.
func (r *Rewriter) BufferFor(id source.FileID) *Buffer {
	return r.buffers[id]
}

func (r *Rewriter) editBuffer(id source.FileID) (*Buffer, error) {
	if buf, ok := r.buffers[id]; ok {
		return buf, nil
	}
	f := r.files.Get(id)
	if f == nil {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownFile, id)
	}
	buf := newBuffer(f)
	r.buffers[id] = buf
	return buf, nil
}
