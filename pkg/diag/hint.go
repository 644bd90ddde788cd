package diag

import (
	"fmt"

	"github.com/yaklabco/gofixit/pkg/source"
)

// EditOp classifies what applying a hint does. The classification is
// derived from the hint's fields, never stored.
type EditOp uint8

const (
	// OpInsert adds text at a location.
	OpInsert EditOp = iota
	// OpRemove deletes the text covered by a range.
	OpRemove
	// OpReplace substitutes the text covered by a range.
	OpReplace
)

func (op EditOp) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpReplace:
		return "replace"
	default:
		return fmt.Sprintf("op(%d)", uint8(op))
	}
}

// Hint is one suggested edit attached to a diagnostic. All positions
// are coordinates in the original text, computed by the producing tool
// before any edit existed.
type Hint struct {
	// RemoveRange is the original text to excise. Invalid for pure
	// insertions.
	RemoveRange source.Range

	// InsertionLoc is where Text lands. Invalid for pure removals.
	InsertionLoc source.Location

	// Text is the replacement text. Empty for removals.
	Text string
}

// Insertion builds a hint that inserts text immediately before loc.
func Insertion(loc source.Location, text string) Hint {
	return Hint{InsertionLoc: loc, Text: text}
}

// Removal builds a hint that deletes the text covered by rng.
func Removal(rng source.Range) Hint {
	return Hint{RemoveRange: rng}
}

// Replacement builds a hint that substitutes the text covered by rng.
func Replacement(rng source.Range, text string) Hint {
	return Hint{RemoveRange: rng, InsertionLoc: rng.Start, Text: text}
}

// Op derives the operation class: no valid removal range means an
// insertion, an empty replacement text means a removal, anything else
// is a replacement.
func (h Hint) Op() EditOp {
	if !h.RemoveRange.IsValid() {
		return OpInsert
	}
	if h.Text == "" {
		return OpRemove
	}
	return OpReplace
}

func (h Hint) String() string {
	switch h.Op() {
	case OpInsert:
		return fmt.Sprintf("insert %q at %s", h.Text, h.InsertionLoc)
	case OpRemove:
		return fmt.Sprintf("remove %s", h.RemoveRange)
	default:
		return fmt.Sprintf("replace %s with %q", h.RemoveRange, h.Text)
	}
}
