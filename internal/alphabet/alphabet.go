// Package alphabet provides the letter/code mapping shared by every
// arithmetic component. Codes are 0-based (A=0..Z=25) throughout the
// engine; 1-based ordinals exist only as helpers because published K4
// worksheets count letters from 1. All tables are immutable.
package alphabet

import "fmt"

// Size is the number of letters in the cipher alphabet.
const Size = 26

// Undetermined marks a plaintext position whose wheel slot was never
// forced by any constraint. It is emitted instead of guessing.
const Undetermined = '?'

// CodeOf maps an uppercase letter A-Z to its 0-based code.
func CodeOf(r rune) (int, error) {
	if r < 'A' || r > 'Z' {
		return 0, fmt.Errorf("letter %q outside A-Z", r)
	}
	return int(r - 'A'), nil
}

// LetterOf maps a 0-based code back to its uppercase letter.
func LetterOf(code int) (rune, error) {
	if code < 0 || code >= Size {
		return 0, fmt.Errorf("code %d outside 0-%d", code, Size-1)
	}
	return rune('A' + code), nil
}

// OrdinalOf returns the 1-based ordinal of an uppercase letter (A=1).
func OrdinalOf(r rune) (int, error) {
	c, err := CodeOf(r)
	if err != nil {
		return 0, err
	}
	return c + 1, nil
}

// LetterAt1 maps a 1-based ordinal back to its letter (1=A..26=Z).
func LetterAt1(ordinal int) (rune, error) {
	return LetterOf(ordinal - 1)
}

// Codes converts an all-uppercase string into its code sequence,
// rejecting any rune outside A-Z.
func Codes(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for i, r := range s {
		c, err := CodeOf(r)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Mod reduces v into [0, Size), handling negative values.
func Mod(v int) int {
	v %= Size
	if v < 0 {
		v += Size
	}
	return v
}
