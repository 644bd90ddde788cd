// Package source models immutable source text and addressable positions
// within it. Files are registered in a FileSet which hands out FileIDs;
// locations and ranges address the original bytes of one file and stay
// valid for the lifetime of the set.
package source

type (
	// FileID uniquely identifies a file within a FileSet. The zero value
	// is reserved and never allocated, so a zero Location is invalid.
	FileID uint32

	// FileFlags encodes metadata about how a file entered the set.
	FileFlags uint8
)

const (
	// FileVirtual marks a file added from memory (stdin, tests).
	FileVirtual FileFlags = 1 << iota
)

// File holds the metadata and immutable content of a single source file.
// Content is the raw original bytes: no newline or BOM normalization is
// performed, because hint offsets were computed against the bytes the
// producing tool saw.
type File struct {
	ID      FileID
	Path    string
	Content []byte

	// lineStarts[i] is the byte offset at which line i+1 begins.
	// lineStarts[0] is always 0, including for empty files.
	lineStarts []int

	Hash  [32]byte
	Flags FileFlags
}

// LineCol is a human-readable position. Both fields are 1-based.
type LineCol struct {
	Line int
	Col  int
}

// Size returns the length of the original content in bytes.
func (f *File) Size() int {
	return len(f.Content)
}

// LineCount returns the number of lines in the file. An empty file has
// one (empty) line.
func (f *File) LineCount() int {
	return len(f.lineStarts)
}

// Line returns the content of the given 1-based line without its
// trailing newline. Out-of-range line numbers yield "".
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lineStarts) {
		return ""
	}
	start := f.lineStarts[n-1]
	end := len(f.Content)
	if n < len(f.lineStarts) {
		end = f.lineStarts[n] - 1
	}
	if start > end {
		return ""
	}
	return string(f.Content[start:end])
}

// LineColAt converts a byte offset into a 1-based line/column pair.
// Offsets past the end of content resolve to the position just after
// the final byte.
func (f *File) LineColAt(offset int) LineCol {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.Content) {
		offset = len(f.Content)
	}
	// Binary search for the last line start <= offset.
	lo, hi := 0, len(f.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return LineCol{Line: lo + 1, Col: offset - f.lineStarts[lo] + 1}
}

// OffsetAt converts a 1-based line/column pair into a byte offset.
// The column may point one past the last character of the line (the
// newline position, or end of file on the final line), which addresses
// an insertion point. Reports false for positions outside the file.
func (f *File) OffsetAt(lc LineCol) (int, bool) {
	if lc.Line < 1 || lc.Col < 1 || lc.Line > len(f.lineStarts) {
		return 0, false
	}
	start := f.lineStarts[lc.Line-1]
	end := len(f.Content)
	if lc.Line < len(f.lineStarts) {
		end = f.lineStarts[lc.Line] - 1
	}
	offset := start + lc.Col - 1
	if offset > end {
		return 0, false
	}
	return offset, true
}

func buildLineStarts(content []byte) []int {
	starts := make([]int, 1, 16)
	starts[0] = 0
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
