package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)

	id1, err := j.Record(Entry{
		Kind:         "decrypt",
		Schedule:     "0:vigenere/L15+0",
		Feasible:     true,
		Undetermined: 26,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotEmpty(t, id1)

	id2, err := j.Record(Entry{
		Kind:     "verify",
		Schedule: "0:vigenere/L17+0",
		Feasible: false,
		Conflict: "slot conflict: class 3 slot 5",
		CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	entries, err := j.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, id2, entries[0].RunID)
	assert.False(t, entries[0].Feasible)
	assert.Contains(t, entries[0].Conflict, "class 3 slot 5")

	assert.Equal(t, id1, entries[1].RunID)
	assert.True(t, entries[1].Feasible)
	assert.Equal(t, 26, entries[1].Undetermined)
}

func TestRecentLimit(t *testing.T) {
	j := openTestJournal(t)
	for i := 0; i < 5; i++ {
		_, err := j.Record(Entry{Kind: "verify", Schedule: "s", Feasible: true})
		require.NoError(t, err)
	}
	entries, err := j.Recent(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestExplicitRunIDPreserved(t *testing.T) {
	j := openTestJournal(t)
	id, err := j.Record(Entry{RunID: "run-007", Kind: "decrypt", Schedule: "s"})
	require.NoError(t, err)
	assert.Equal(t, "run-007", id)

	// Duplicate ids violate the primary key.
	_, err = j.Record(Entry{RunID: "run-007", Kind: "decrypt", Schedule: "s"})
	assert.Error(t, err)
}

func TestReopenKeepsRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runs.db")

	j, err := Open(path)
	require.NoError(t, err)
	_, err = j.Record(Entry{Kind: "decrypt", Schedule: "s", Undetermined: 26, Feasible: true})
	require.NoError(t, err)
	require.NoError(t, j.Close())

	j2, err := Open(path)
	require.NoError(t, err)
	defer j2.Close()
	entries, err := j2.Recent(10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
