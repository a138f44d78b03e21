package cipher

import (
	"fmt"
	"strings"

	"github.com/aviswerdlow/k4-sub008/internal/alphabet"
)

// Rendering is the output of running wheels across a text in either
// direction: the resolved letters with '?' where no slot value exists,
// plus the indices left unresolved. Re-running always produces a fresh
// value; a Rendering is never mutated in place.
type Rendering struct {
	Text         string
	Undetermined []int
}

// UndeterminedCount returns how many positions stayed unresolved.
func (r *Rendering) UndeterminedCount() int { return len(r.Undetermined) }

// Decrypt applies the wheels to a ciphertext. Positions whose slot was
// never determined render as the undetermined marker; the engine never
// guesses and never substitutes a filler letter.
func (ws Wheels) Decrypt(ciphertext string) (*Rendering, error) {
	return ws.render(ciphertext, func(f Family, code, residue int) int {
		return f.PlainOf(code, residue)
	})
}

// Encrypt is the symmetric direction, plaintext to ciphertext, with
// the same slot lookup and the same undetermined-marker policy. It
// exists for round-trip verification.
func (ws Wheels) Encrypt(plaintext string) (*Rendering, error) {
	return ws.render(plaintext, func(f Family, code, residue int) int {
		return f.CipherOf(code, residue)
	})
}

func (ws Wheels) render(text string, apply func(f Family, code, residue int) int) (*Rendering, error) {
	codes, err := alphabet.Codes(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for c, w := range ws {
		if w == nil {
			return nil, fmt.Errorf("%w: no wheel for class %d", ErrInvalidInput, c)
		}
	}

	var b strings.Builder
	b.Grow(len(codes))
	out := &Rendering{}
	for pos, code := range codes {
		w := ws[ClassOf(pos)]
		residue, ok := w.ResidueAt(pos)
		if !ok {
			b.WriteRune(alphabet.Undetermined)
			out.Undetermined = append(out.Undetermined, pos)
			continue
		}
		letter, err := alphabet.LetterOf(apply(w.Family(), code, residue))
		if err != nil {
			return nil, err
		}
		b.WriteRune(letter)
	}
	out.Text = b.String()
	return out, nil
}
