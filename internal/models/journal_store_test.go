package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalStore_AddAndGet(t *testing.T) {
	s := NewJournalStore(0, 0)
	require.True(t, s.Add(JournalEntry{ID: "e1", UserID: "u1", Mood: MoodHappy, CreatedAt: 1000}))
	require.True(t, s.Add(JournalEntry{ID: "e2", UserID: "u1", Mood: MoodSad, CreatedAt: 2000}))

	entries := s.Entries("u1")
	require.Len(t, entries, 2)
	assert.Equal(t, "e1", entries[0].ID)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.UserCount())
}

func TestJournalStore_EntriesReturnsCopy(t *testing.T) {
	s := NewJournalStore(0, 0)
	s.Add(JournalEntry{ID: "e1", UserID: "u1", Mood: MoodHappy, CreatedAt: 1000})

	entries := s.Entries("u1")
	entries[0].ID = "mutated"

	assert.Equal(t, "e1", s.Entries("u1")[0].ID)
}

func TestJournalStore_PerUserCapEvictsOldest(t *testing.T) {
	s := NewJournalStore(2, 0)
	s.Add(JournalEntry{ID: "old", UserID: "u1", Mood: MoodHappy, CreatedAt: 1000})
	s.Add(JournalEntry{ID: "mid", UserID: "u1", Mood: MoodHappy, CreatedAt: 2000})
	s.Add(JournalEntry{ID: "new", UserID: "u1", Mood: MoodHappy, CreatedAt: 3000})

	entries := s.Entries("u1")
	require.Len(t, entries, 2)
	ids := []string{entries[0].ID, entries[1].ID}
	assert.NotContains(t, ids, "old")
	assert.Contains(t, ids, "new")
}

func TestJournalStore_MaxUsers(t *testing.T) {
	s := NewJournalStore(0, 1)
	require.True(t, s.Add(JournalEntry{ID: "e1", UserID: "u1", Mood: MoodHappy, CreatedAt: 1000}))
	assert.False(t, s.Add(JournalEntry{ID: "e2", UserID: "u2", Mood: MoodHappy, CreatedAt: 1000}))
	// existing user still accepted
	assert.True(t, s.Add(JournalEntry{ID: "e3", UserID: "u1", Mood: MoodHappy, CreatedAt: 2000}))
}

func TestJournalStore_SnapshotRoundTrip(t *testing.T) {
	s := NewJournalStore(0, 0)
	s.Add(JournalEntry{ID: "e1", UserID: "u1", Mood: MoodHappy, CreatedAt: 1000})
	s.Add(JournalEntry{ID: "e2", UserID: "u2", Mood: MoodSad, CreatedAt: 2000})

	data := s.GetData()

	restored := NewJournalStore(0, 0)
	restored.PutData(data)

	assert.Equal(t, s.Len(), restored.Len())
	assert.Equal(t, "e2", restored.Entries("u2")[0].ID)
}

func TestJournalStore_SnapshotIsIndependent(t *testing.T) {
	s := NewJournalStore(0, 0)
	s.Add(JournalEntry{ID: "e1", UserID: "u1", Mood: MoodHappy, CreatedAt: 1000})

	data := s.GetData()
	data["u1"][0].ID = "mutated"

	assert.Equal(t, "e1", s.Entries("u1")[0].ID)
}
