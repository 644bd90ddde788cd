package fixit

import (
	"errors"
	"fmt"

	"github.com/yaklabco/gofixit/pkg/diag"
)

// Sentinel errors for hint validation, matchable with errors.Is.
var (
	// ErrInvalidRange means a hint's removal range has no defined size
	// in the original text.
	ErrInvalidRange = errors.New("fix-it range has undefined size")

	// ErrUnrewritableInsertion means a hint's insertion location is
	// not currently a legal insertion point.
	ErrUnrewritableInsertion = errors.New("fix-it insertion location is not rewritable")
)

// ValidateHint checks one hint's structural well-formedness against
// the current rewrite state. A nil return does not guarantee success
// at application time: a conflict with an edit applied later by a
// different diagnostic can still fail the splice.
func (r *Rewriter) ValidateHint(h diag.Hint) error {
	if h.RemoveRange.IsValid() {
		if r.rewrite.RangeSize(h.RemoveRange) == -1 {
			return fmt.Errorf("%w: %s", ErrInvalidRange, h.RemoveRange)
		}
		// Removals and replacements are anchored by their range; any
		// clash with an edit another diagnostic already applied is a
		// splice failure, not a validation failure. Only pure
		// insertions check the current rewrite state here.
		return nil
	}
	if h.InsertionLoc.IsValid() && !r.rewrite.IsRewritable(h.InsertionLoc) {
		return fmt.Errorf("%w: %s", ErrUnrewritableInsertion, h.InsertionLoc)
	}
	return nil
}
