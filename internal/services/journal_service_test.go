package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solaced/internal/models"
	"solaced/internal/structures"
)

func newJournalService() JournalServiceInterface {
	conf := &structures.Config{}
	conf.Journal.MaxEntriesPerUser = 100
	conf.Journal.MaxUsers = 1000
	return NewJournalService(conf)
}

func addEntry(t *testing.T, js JournalServiceInterface, userID string, mood models.Mood, at time.Time) models.JournalEntry {
	t.Helper()
	e, err := js.AddEntry(models.JournalEntry{
		UserID:    userID,
		Mood:      mood,
		CreatedAt: at.UnixMilli(),
	})
	require.NoError(t, err)
	return e
}

func TestJournalService_AddEntryAssignsID(t *testing.T) {
	js := newJournalService()
	e := addEntry(t, js, "u1", models.MoodHappy, time.Now())
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, 1, js.EntryCount())
	assert.Equal(t, 1, js.UserCount())
}

func TestJournalService_AddEntryRejectsUnknownMood(t *testing.T) {
	js := newJournalService()
	_, err := js.AddEntry(models.JournalEntry{UserID: "u1", Mood: "rage", CreatedAt: 1000})
	assert.ErrorIs(t, err, ErrInvalidMood)
}

func TestJournalService_AddEntryRejectsBadTimestamp(t *testing.T) {
	js := newJournalService()
	_, err := js.AddEntry(models.JournalEntry{UserID: "u1", Mood: models.MoodHappy, CreatedAt: 0})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestJournalService_EntriesLimitKeepsNewest(t *testing.T) {
	js := newJournalService()
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		addEntry(t, js, "u1", models.MoodNeutral, base.Add(time.Duration(i)*time.Hour))
	}
	entries := js.Entries("u1", 2)
	require.Len(t, entries, 2)
	assert.Equal(t, base.Add(4*time.Hour).UnixMilli(), entries[1].CreatedAt)
}

func TestJournalService_Streak(t *testing.T) {
	js := newJournalService()
	asOf := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	addEntry(t, js, "u1", models.MoodHappy, asOf.Add(-25*time.Hour))
	addEntry(t, js, "u1", models.MoodSad, asOf.Add(-1*time.Hour))

	status, err := js.Streak("u1", asOf)
	require.NoError(t, err)
	assert.Equal(t, 2, status.CurrentStreak)
	assert.Equal(t, 2, status.LongestStreak)
	assert.False(t, status.Warning)
}

func TestJournalService_StreakWarningWindow(t *testing.T) {
	asOf := time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		age  time.Duration
		warn bool
	}{
		{"just written", time.Hour, false},
		{"inside window", 21 * time.Hour, true},
		{"window start", 20 * time.Hour, true},
		{"window end already broken", 24 * time.Hour, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			js := newJournalService()
			addEntry(t, js, "u1", models.MoodHappy, asOf.Add(-c.age))
			status, err := js.Streak("u1", asOf)
			require.NoError(t, err)
			assert.Equal(t, c.warn, status.Warning)
		})
	}
}

func TestJournalService_AverageMood(t *testing.T) {
	js := newJournalService()
	now := time.Now()
	addEntry(t, js, "u1", models.MoodHappy, now.Add(-2*time.Hour))
	addEntry(t, js, "u1", models.MoodStressed, now.Add(-time.Hour))

	avg, ok := js.AverageMood("u1")
	require.True(t, ok)
	assert.InDelta(t, 3.0, avg, 0.0001)

	_, ok = js.AverageMood("nobody")
	assert.False(t, ok)
}

func TestJournalService_SnapshotRoundTrip(t *testing.T) {
	js := newJournalService()
	addEntry(t, js, "u1", models.MoodExcited, time.Now())

	restored := newJournalService()
	restored.Restore(js.Snapshot())
	assert.Equal(t, 1, restored.EntryCount())
	assert.Equal(t, []string{"u1"}, restored.UserIDs())
}
