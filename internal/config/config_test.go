package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviswerdlow/k4-sub008/internal/cipher"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCiphertext(t *testing.T) {
	t.Run("accepts single line with trailing newline", func(t *testing.T) {
		path := writeFile(t, "ct.txt", "OBKRUOXOGH\n")
		ct, err := LoadCiphertext(path, 10)
		require.NoError(t, err)
		assert.Equal(t, "OBKRUOXOGH", ct)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		path := writeFile(t, "ct.txt", "OBKR\n")
		_, err := LoadCiphertext(path, 97)
		assert.ErrorIs(t, err, cipher.ErrInvalidInput)
	})

	t.Run("rejects non-alphabetic characters", func(t *testing.T) {
		path := writeFile(t, "ct.txt", "OBKR UOXO\n")
		_, err := LoadCiphertext(path, 0)
		assert.ErrorIs(t, err, cipher.ErrInvalidInput)
	})

	t.Run("rejects lowercase", func(t *testing.T) {
		path := writeFile(t, "ct.txt", "obkr\n")
		_, err := LoadCiphertext(path, 0)
		assert.ErrorIs(t, err, cipher.ErrInvalidInput)
	})

	t.Run("rejects multiple lines", func(t *testing.T) {
		path := writeFile(t, "ct.txt", "OBKR\nUOXO\n")
		_, err := LoadCiphertext(path, 0)
		assert.ErrorIs(t, err, cipher.ErrInvalidInput)
	})

	t.Run("rejects empty file", func(t *testing.T) {
		path := writeFile(t, "ct.txt", "\n")
		_, err := LoadCiphertext(path, 0)
		assert.ErrorIs(t, err, cipher.ErrInvalidInput)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCiphertext(filepath.Join(t.TempDir(), "absent.txt"), 0)
		assert.Error(t, err)
	})
}

func TestLoadAnchors(t *testing.T) {
	t.Run("expands words and positions", func(t *testing.T) {
		path := writeFile(t, "anchors.yaml", `
words:
  - start: 21
    word: EAST
  - start: 63
    word: BERLIN
positions:
  3: K
`)
		anchors, err := LoadAnchors(path, 97)
		require.NoError(t, err)
		assert.Len(t, anchors, 11)
		assert.Equal(t, 'E', anchors[21])
		assert.Equal(t, 'T', anchors[24])
		assert.Equal(t, 'B', anchors[63])
		assert.Equal(t, 'N', anchors[68])
		assert.Equal(t, 'K', anchors[3])
	})

	t.Run("duplicate claim same letter is fine", func(t *testing.T) {
		path := writeFile(t, "anchors.yaml", `
words:
  - start: 0
    word: EAST
positions:
  0: E
`)
		anchors, err := LoadAnchors(path, 97)
		require.NoError(t, err)
		assert.Len(t, anchors, 4)
	})

	t.Run("conflicting claim rejected", func(t *testing.T) {
		path := writeFile(t, "anchors.yaml", `
words:
  - start: 0
    word: EAST
positions:
  0: X
`)
		_, err := LoadAnchors(path, 97)
		assert.ErrorIs(t, err, cipher.ErrInvalidInput)
	})

	t.Run("word overruns text", func(t *testing.T) {
		path := writeFile(t, "anchors.yaml", `
words:
  - start: 95
    word: CLOCK
`)
		_, err := LoadAnchors(path, 97)
		assert.ErrorIs(t, err, cipher.ErrInvalidInput)
	})

	t.Run("non-letter anchor rejected", func(t *testing.T) {
		path := writeFile(t, "anchors.yaml", "positions:\n  5: '9'\n")
		_, err := LoadAnchors(path, 97)
		assert.ErrorIs(t, err, cipher.ErrInvalidInput)
	})

	t.Run("empty set rejected", func(t *testing.T) {
		path := writeFile(t, "anchors.yaml", "words: []\n")
		_, err := LoadAnchors(path, 97)
		assert.ErrorIs(t, err, cipher.ErrInvalidInput)
	})
}

const validSchedule = `
classes:
  - {class: 0, family: vigenere, period: 15, phase: 0}
  - {class: 1, family: beaufort, period: 10, phase: 0}
  - {class: 2, family: variant-beaufort, period: 15, phase: 0}
  - {class: 3, family: vigenere, period: 11, phase: 0}
  - {class: 4, family: beaufort, period: 10, phase: 0}
  - {class: 5, family: variant-beaufort, period: 5, phase: 0}
`

func TestLoadSchedule(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeFile(t, "schedule.yaml", validSchedule)
		sched, err := LoadSchedule(path)
		require.NoError(t, err)
		assert.Equal(t, cipher.FamilyVigenere, sched[0].Family.Name())
		assert.Equal(t, 15, sched[0].Period)
		assert.Equal(t, cipher.FamilyVariantBeaufort, sched[5].Family.Name())
		assert.Equal(t, 5, sched[5].Period)
	})

	t.Run("unknown family", func(t *testing.T) {
		path := writeFile(t, "schedule.yaml", `
classes:
  - {class: 0, family: porta, period: 15}
`)
		_, err := LoadSchedule(path)
		require.Error(t, err)
		var unknown *cipher.UnknownFamilyError
		assert.ErrorAs(t, err, &unknown)
		assert.Equal(t, "porta", unknown.Name)
	})

	t.Run("missing class", func(t *testing.T) {
		path := writeFile(t, "schedule.yaml", `
classes:
  - {class: 0, family: vigenere, period: 15}
`)
		_, err := LoadSchedule(path)
		assert.ErrorIs(t, err, cipher.ErrInvalidInput)
		assert.ErrorContains(t, err, "missing classes [1 2 3 4 5]")
	})

	t.Run("duplicate class", func(t *testing.T) {
		path := writeFile(t, "schedule.yaml", `
classes:
  - {class: 0, family: vigenere, period: 15}
  - {class: 0, family: beaufort, period: 10}
`)
		_, err := LoadSchedule(path)
		assert.ErrorIs(t, err, cipher.ErrInvalidInput)
	})

	t.Run("non-positive period", func(t *testing.T) {
		path := writeFile(t, "schedule.yaml", `
classes:
  - {class: 0, family: vigenere, period: 0}
`)
		_, err := LoadSchedule(path)
		assert.ErrorIs(t, err, cipher.ErrInvalidInput)
	})
}
