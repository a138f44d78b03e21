package cipher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The reference instance: the 97-letter K4 ciphertext and the four
// canonical anchor cribs at their documented 0-based positions.
const k4Ciphertext = "OBKRUOXOGHULBSOLIFBBWFLRVQQPRNGKSSOTWTQSJQSSEKZZWATJKLUDIAWINFBNYPVTTMZFPKWGDKZXTJCDIGKUHUAUEKCAR"

var anchorWords = []struct {
	Start int
	Word  string
}{
	{21, "EAST"},
	{25, "NORTHEAST"},
	{63, "BERLIN"},
	{69, "CLOCK"},
}

func canonicalAnchors() map[int]rune {
	anchors := make(map[int]rune)
	for _, aw := range anchorWords {
		for i, r := range aw.Word {
			anchors[aw.Start+i] = r
		}
	}
	return anchors
}

func mustFamily(t *testing.T, name string) Family {
	t.Helper()
	f, err := ParseFamily(name)
	require.NoError(t, err)
	return f
}

// referenceSchedule is a schedule verified to be conflict-free for the
// canonical anchors: mixed families, periods (15,10,15,11,10,5),
// phase 0. It leaves exactly 26 positions undetermined.
func referenceSchedule(t *testing.T) Schedule {
	t.Helper()
	return Schedule{
		{Family: mustFamily(t, FamilyVigenere), Period: 15},
		{Family: mustFamily(t, FamilyBeaufort), Period: 10},
		{Family: mustFamily(t, FamilyVariantBeaufort), Period: 15},
		{Family: mustFamily(t, FamilyVigenere), Period: 11},
		{Family: mustFamily(t, FamilyBeaufort), Period: 10},
		{Family: mustFamily(t, FamilyVariantBeaufort), Period: 5},
	}
}

// fullSchedule pairs with fullWheels for round-trip tests.
func fullSchedule(t *testing.T) Schedule {
	t.Helper()
	return referenceSchedule(t)
}

// fullWheels returns wheels with every slot determined, for tests that
// need a complete decryption.
func fullWheels(t *testing.T) Wheels {
	t.Helper()
	wheels, err := fullSchedule(t).Wheels()
	require.NoError(t, err)
	for c, w := range wheels {
		for slot := 0; slot < w.Period(); slot++ {
			// Arbitrary but fixed residues.
			require.NoError(t, w.Propose(slot+w.Phase(), (slot*7+c)%26))
		}
	}
	return wheels
}
