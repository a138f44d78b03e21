package cipher

import (
	"fmt"
	"sort"
	"strings"
)

// WheelConfig is one class's entry in a schedule: which family the
// wheel runs, its period (key length) and its phase offset.
type WheelConfig struct {
	Family Family
	Period int
	Phase  int
}

// Schedule assigns one wheel configuration to each of the six classes.
type Schedule [NumClasses]WheelConfig

// Wheels builds a fresh, empty wheel per class. Schedules are inputs,
// never derived here; validation mirrors what the loaders enforce so
// programmatic callers get the same errors as file-driven ones.
func (s Schedule) Wheels() (Wheels, error) {
	var ws Wheels
	for c, cfg := range s {
		w, err := NewWheel(c, cfg.Family, cfg.Period, cfg.Phase)
		if err != nil {
			return Wheels{}, err
		}
		ws[c] = w
	}
	return ws, nil
}

// String renders a compact one-line schedule summary, e.g.
// "0:vigenere/L15+0 1:beaufort/L10+0 ...".
func (s Schedule) String() string {
	parts := make([]string, 0, NumClasses)
	for c, cfg := range s {
		name := "?"
		if cfg.Family != nil {
			name = cfg.Family.Name()
		}
		parts = append(parts, fmt.Sprintf("%d:%s/L%d+%d", c, name, cfg.Period, cfg.Phase))
	}
	return strings.Join(parts, " ")
}

// Wheels is one wheel per class, indexed by class id.
type Wheels [NumClasses]*Wheel

// Wheel holds one class's cipher state: the family operation, the
// repeating slot geometry, and the partial slot-to-residue map built
// up from constraints. A slot, once assigned, never changes; a
// disagreeing proposal is a conflict, not an overwrite.
type Wheel struct {
	class  int
	family Family
	period int
	phase  int

	residues map[int]int // slot -> key residue
	setters  map[int]int // slot -> position that first forced it
}

// NewWheel constructs an empty wheel for a class.
func NewWheel(class int, family Family, period, phase int) (*Wheel, error) {
	if class < 0 || class >= NumClasses {
		return nil, fmt.Errorf("%w: class %d outside 0-%d", ErrInvalidInput, class, NumClasses-1)
	}
	if family == nil {
		return nil, &UnknownFamilyError{Name: ""}
	}
	if period < 1 {
		return nil, fmt.Errorf("%w: class %d period %d must be positive", ErrInvalidInput, class, period)
	}
	phase %= period
	if phase < 0 {
		phase += period
	}
	return &Wheel{
		class:    class,
		family:   family,
		period:   period,
		phase:    phase,
		residues: make(map[int]int),
		setters:  make(map[int]int),
	}, nil
}

func (w *Wheel) Class() int     { return w.class }
func (w *Wheel) Family() Family { return w.family }
func (w *Wheel) Period() int    { return w.period }
func (w *Wheel) Phase() int     { return w.phase }

// SlotFor maps a ciphertext position onto the wheel's repeating slot
// index.
func (w *Wheel) SlotFor(position int) int {
	s := (position - w.phase) % w.period
	if s < 0 {
		s += w.period
	}
	return s
}

// Propose constrains the slot under position to the given residue.
// Setting an empty slot and re-asserting an identical value both
// succeed; a differing value returns a *SlotConflict naming both
// contributing positions. There is no last-write-wins path.
func (w *Wheel) Propose(position, residue int) error {
	slot := w.SlotFor(position)
	existing, ok := w.residues[slot]
	if !ok {
		w.residues[slot] = residue
		w.setters[slot] = position
		return nil
	}
	if existing == residue {
		return nil
	}
	return &SlotConflict{
		Class:         w.class,
		Slot:          slot,
		Position:      position,
		FirstPosition: w.setters[slot],
		Existing:      existing,
		Proposed:      residue,
	}
}

// ResidueAt looks up the residue governing a ciphertext position,
// reporting whether the slot has been determined.
func (w *Wheel) ResidueAt(position int) (int, bool) {
	r, ok := w.residues[w.SlotFor(position)]
	return r, ok
}

// Residue looks up a slot directly.
func (w *Wheel) Residue(slot int) (int, bool) {
	r, ok := w.residues[slot]
	return r, ok
}

// FilledSlots counts slots holding a residue.
func (w *Wheel) FilledSlots() int { return len(w.residues) }

// UndeterminedSlots counts slots never forced by any constraint.
func (w *Wheel) UndeterminedSlots() int { return w.period - len(w.residues) }

// SlotMap returns a copy of the sparse slot-to-residue map.
func (w *Wheel) SlotMap() map[int]int {
	out := make(map[int]int, len(w.residues))
	for s, r := range w.residues {
		out[s] = r
	}
	return out
}

// FilledSlotIndices returns the determined slot indices in order, for
// stable reporting.
func (w *Wheel) FilledSlotIndices() []int {
	out := make([]int, 0, len(w.residues))
	for s := range w.residues {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}
