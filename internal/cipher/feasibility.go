package cipher

import (
	"fmt"

	"github.com/aviswerdlow/k4-sub008/internal/alphabet"
)

// Verdict is the outcome of a feasibility audit. An infeasible
// candidate is a result, not a process error: Feasible is false and
// Conflict pins down the exact contradiction.
type Verdict struct {
	Feasible bool

	// Conflict is set iff Feasible is false.
	Conflict *SlotConflict

	// Wheels are the fully re-derived wheels; only set on success.
	Wheels Wheels

	// SlotsFilled is the total number of distinct slots the candidate
	// touched across all classes.
	SlotsFilled int

	// KeySizes is each class's implied key size, i.e. its period,
	// regardless of how many slots this pass filled.
	KeySizes [NumClasses]int
}

// TestFeasibility verifies a complete candidate plaintext against a
// ciphertext under a schedule: the same fold as BuildWheels, but every
// position acts as a constraint using the candidate's letter there.
// Zero conflicts means the candidate is a consistent decryption of the
// ciphertext for that schedule. Evaluation stops at the first
// conflict; the verdict carries its full detail so an auditor can
// point at the exact position, slot and residue pair that broke.
func TestFeasibility(ciphertext, candidate string, sched Schedule) (*Verdict, error) {
	ctCodes, err := alphabet.Codes(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext: %v", ErrInvalidInput, err)
	}
	ptCodes, err := alphabet.Codes(candidate)
	if err != nil {
		return nil, fmt.Errorf("%w: candidate plaintext: %v", ErrInvalidInput, err)
	}
	if len(ptCodes) != len(ctCodes) {
		return nil, fmt.Errorf("%w: candidate length %d, ciphertext length %d",
			ErrInvalidInput, len(ptCodes), len(ctCodes))
	}
	wheels, err := sched.Wheels()
	if err != nil {
		return nil, err
	}

	verdict := &Verdict{}
	for c, cfg := range sched {
		verdict.KeySizes[c] = cfg.Period
	}

	for pos := range ctCodes {
		w := wheels[ClassOf(pos)]
		residue := w.Family().KeyOf(ctCodes[pos], ptCodes[pos])
		if err := w.Propose(pos, residue); err != nil {
			verdict.Conflict = err.(*SlotConflict)
			return verdict, nil
		}
	}

	verdict.Feasible = true
	verdict.Wheels = wheels
	for _, w := range wheels {
		verdict.SlotsFilled += w.FilledSlots()
	}
	return verdict, nil
}
