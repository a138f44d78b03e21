package cipher

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks fatal input problems: wrong ciphertext length,
// non-alphabetic characters, out-of-range positions. Wrapped with
// detail via %w; no partial result accompanies it.
var ErrInvalidInput = errors.New("invalid input")

// UnknownFamilyError is raised at schedule-load time for a family tag
// outside the closed set.
type UnknownFamilyError struct {
	Name string
}

func (e *UnknownFamilyError) Error() string {
	return fmt.Sprintf("unknown cipher family %q", e.Name)
}

// SlotConflict reports two positions forcing different key residues
// into the same wheel slot. It is the engine's signature error: a
// schedule that produces one is infeasible for the given constraints,
// and the record pins down exactly why.
type SlotConflict struct {
	Class         int // class whose wheel conflicted
	Slot          int // slot index within the wheel
	Position      int // position whose proposal conflicted
	FirstPosition int // position that originally set the slot
	Existing      int // residue already in the slot
	Proposed      int // residue the new position required
}

func (e *SlotConflict) Error() string {
	return fmt.Sprintf(
		"slot conflict: class %d slot %d holds residue %d (set by position %d) but position %d requires %d",
		e.Class, e.Slot, e.Existing, e.FirstPosition, e.Position, e.Proposed)
}
