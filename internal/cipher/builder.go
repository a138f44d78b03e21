package cipher

import (
	"fmt"
	"sort"

	"github.com/aviswerdlow/k4-sub008/internal/alphabet"
)

// BuildResult is the outcome of a successful anchor fold: the six
// wheels (possibly with unfilled slots) plus diagnostics for auditors.
type BuildResult struct {
	Wheels Wheels

	// Forced maps class -> slot -> residue for every slot the anchors
	// determined.
	Forced map[int]map[int]int

	// UndeterminedSlots is the total number of slots across all
	// classes that no anchor reached.
	UndeterminedSlots int
}

// BuildWheels folds every anchor constraint into fresh wheels. Each
// anchor position resolves its class, derives the key residue its
// family would need to decrypt the ciphertext letter into the required
// plaintext letter, and proposes it to the class wheel. The first
// conflict is terminal: the returned error is the exact *SlotConflict
// and no wheels accompany it, since a partially contaminated wheel set
// must never be decrypted from.
//
// Anchors constrain, never override: duplicate constraints on a slot
// are accepted only when they agree, by Propose's contract.
func BuildWheels(ciphertext string, sched Schedule, anchors map[int]rune) (*BuildResult, error) {
	codes, err := alphabet.Codes(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext: %v", ErrInvalidInput, err)
	}
	wheels, err := sched.Wheels()
	if err != nil {
		return nil, err
	}

	// Deterministic fold order so the first conflict reported is
	// stable across runs.
	positions := make([]int, 0, len(anchors))
	for p := range anchors {
		positions = append(positions, p)
	}
	sort.Ints(positions)

	for _, pos := range positions {
		if pos < 0 || pos >= len(codes) {
			return nil, fmt.Errorf("%w: anchor position %d outside 0-%d", ErrInvalidInput, pos, len(codes)-1)
		}
		plain, err := alphabet.CodeOf(anchors[pos])
		if err != nil {
			return nil, fmt.Errorf("%w: anchor at position %d: %v", ErrInvalidInput, pos, err)
		}
		w := wheels[ClassOf(pos)]
		residue := w.Family().KeyOf(codes[pos], plain)
		if err := w.Propose(pos, residue); err != nil {
			return nil, err
		}
	}

	res := &BuildResult{
		Wheels: wheels,
		Forced: make(map[int]map[int]int, NumClasses),
	}
	for c, w := range wheels {
		if w.FilledSlots() > 0 {
			res.Forced[c] = w.SlotMap()
		}
		res.UndeterminedSlots += w.UndeterminedSlots()
	}
	return res, nil
}
