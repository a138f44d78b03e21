package cipher

import "github.com/aviswerdlow/k4-sub008/internal/alphabet"

// Family is one of the closed set of reversible letter operations a
// wheel can run. Implementations are fixed singletons resolved once by
// ParseFamily at schedule-load time; nothing re-dispatches per letter.
//
// All three methods operate on 0-25 codes and satisfy
// PlainOf(CipherOf(p,k), k) == p and KeyOf(CipherOf(p,k), p) == k.
type Family interface {
	Name() string
	// CipherOf computes the ciphertext code from plaintext and key.
	CipherOf(plain, key int) int
	// PlainOf computes the plaintext code from ciphertext and key.
	PlainOf(cipher, key int) int
	// KeyOf computes the key residue that maps plain to cipher.
	KeyOf(cipher, plain int) int
}

// Family tags accepted in schedules.
const (
	FamilyVigenere           = "vigenere"
	FamilyBeaufort           = "beaufort"
	FamilyVariantBeaufort    = "variant-beaufort"
	FamilyVariantBeaufortRev = "variant-beaufort-rev"
)

// ParseFamily resolves a schedule tag to its fixed implementation.
// An unrecognized tag is an *UnknownFamilyError.
func ParseFamily(name string) (Family, error) {
	switch name {
	case FamilyVigenere:
		return vigenere{}, nil
	case FamilyBeaufort:
		return beaufort{}, nil
	case FamilyVariantBeaufort:
		return variantBeaufort{}, nil
	case FamilyVariantBeaufortRev:
		return variantBeaufortRev{}, nil
	}
	return nil, &UnknownFamilyError{Name: name}
}

// Families returns the accepted tags in declaration order.
func Families() []string {
	return []string{
		FamilyVigenere,
		FamilyBeaufort,
		FamilyVariantBeaufort,
		FamilyVariantBeaufortRev,
	}
}

// vigenere: c = p + k.
type vigenere struct{}

func (vigenere) Name() string               { return FamilyVigenere }
func (vigenere) CipherOf(plain, key int) int { return alphabet.Mod(plain + key) }
func (vigenere) PlainOf(cipher, key int) int { return alphabet.Mod(cipher - key) }
func (vigenere) KeyOf(cipher, plain int) int { return alphabet.Mod(cipher - plain) }

// beaufort: c = k - p. Self-inverse: decryption is the same operation
// applied to the ciphertext.
type beaufort struct{}

func (beaufort) Name() string               { return FamilyBeaufort }
func (beaufort) CipherOf(plain, key int) int { return alphabet.Mod(key - plain) }
func (beaufort) PlainOf(cipher, key int) int { return alphabet.Mod(key - cipher) }
func (beaufort) KeyOf(cipher, plain int) int { return alphabet.Mod(cipher + plain) }

// variantBeaufort: c = p - k, so decryption is p = c + k. This is the
// canonical sign convention for the variant family.
type variantBeaufort struct{}

func (variantBeaufort) Name() string               { return FamilyVariantBeaufort }
func (variantBeaufort) CipherOf(plain, key int) int { return alphabet.Mod(plain - key) }
func (variantBeaufort) PlainOf(cipher, key int) int { return alphabet.Mod(cipher + key) }
func (variantBeaufort) KeyOf(cipher, plain int) int { return alphabet.Mod(plain - cipher) }

// variantBeaufortRev is the opposite sign convention seen in some K4
// worksheets: decryption is p = c - k, which forces encryption c = p + k.
// Algebraically this coincides with vigenere, but it stays a distinct
// tag so schedules state which convention they mean instead of the
// engine guessing.
type variantBeaufortRev struct{}

func (variantBeaufortRev) Name() string               { return FamilyVariantBeaufortRev }
func (variantBeaufortRev) CipherOf(plain, key int) int { return alphabet.Mod(plain + key) }
func (variantBeaufortRev) PlainOf(cipher, key int) int { return alphabet.Mod(cipher - key) }
func (variantBeaufortRev) KeyOf(cipher, plain int) int { return alphabet.Mod(cipher - plain) }
