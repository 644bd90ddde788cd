package source

import "fmt"

// Location is a position within one file's original text, identified by
// file and byte offset. Locations are comparable and totally ordered
// within a file; locations from different files are never ordered
// against each other. The zero value is the invalid location.
type Location struct {
	File   FileID
	Offset int
}

// NoLocation is the invalid location.
var NoLocation = Location{}

// IsValid reports whether the location refers to a real file.
func (l Location) IsValid() bool {
	return l.File != 0
}

// Before reports whether l precedes other. Both locations must be in
// the same file; comparing across files is always false.
func (l Location) Before(other Location) bool {
	return l.File == other.File && l.Offset < other.Offset
}

func (l Location) String() string {
	if !l.IsValid() {
		return "<invalid loc>"
	}
	return fmt.Sprintf("file%d:+%d", l.File, l.Offset)
}

// Range is a half-open interval [Start, End) within one file. The zero
// value is the invalid range.
type Range struct {
	Start Location
	End   Location
}

// NewRange builds a range within a single file.
func NewRange(file FileID, start, end int) Range {
	return Range{
		Start: Location{File: file, Offset: start},
		End:   Location{File: file, Offset: end},
	}
}

// IsValid reports whether both ends are valid, belong to the same file,
// and are properly ordered.
func (r Range) IsValid() bool {
	return r.Start.IsValid() && r.End.IsValid() &&
		r.Start.File == r.End.File && r.Start.Offset <= r.End.Offset
}

// Empty reports whether the range covers zero bytes.
func (r Range) Empty() bool {
	return r.Start.Offset == r.End.Offset
}

// Len returns the number of bytes covered. Callers wanting validity
// checking should go through the rewrite buffer's RangeSize instead.
func (r Range) Len() int {
	return r.End.Offset - r.Start.Offset
}

func (r Range) String() string {
	if !r.IsValid() {
		return "<invalid range>"
	}
	return fmt.Sprintf("file%d:[%d,%d)", r.Start.File, r.Start.Offset, r.End.Offset)
}
