package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassOfPartitionsAllPositions(t *testing.T) {
	sizes := make(map[int]int)
	for i := 0; i < len(k4Ciphertext); i++ {
		c := ClassOf(i)
		assert.GreaterOrEqual(t, c, 0)
		assert.Less(t, c, NumClasses)
		sizes[c]++
	}

	total := 0
	for c := 0; c < NumClasses; c++ {
		assert.NotZero(t, sizes[c], "class %d is empty", c)
		total += sizes[c]
	}
	assert.Equal(t, len(k4Ciphertext), total)

	// For length 97 the sizes are fixed: class 0 picks up the extra
	// position.
	assert.Equal(t, 17, sizes[0])
	for c := 1; c < NumClasses; c++ {
		assert.Equal(t, 16, sizes[c], "class %d", c)
	}
}

func TestClassOfIsPeriodic(t *testing.T) {
	// The formula depends only on i mod 6.
	for i := 0; i < 97; i++ {
		assert.Equal(t, ClassOf(i%6), ClassOf(i))
	}
}
