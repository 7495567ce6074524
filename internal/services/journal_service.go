package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"solaced/internal/models"
	"solaced/internal/structures"
)

// Streak warning window: warn when the last entry is between 20 and 24
// hours old, i.e. the streak is still alive but about to break.
const (
	warnAfterHours  = 20
	warnBeforeHours = 24
)

var (
	ErrInvalidMood = errors.New("unknown mood")
	ErrStoreFull   = errors.New("journal store is full")
)

type StreakStatus struct {
	models.StreakResult
	Warning bool `json:"warning"`
}

type JournalServiceInterface interface {
	AddEntry(e models.JournalEntry) (models.JournalEntry, error)
	Entries(userID string, limit int) []models.JournalEntry
	Streak(userID string, asOf time.Time) (StreakStatus, error)
	AverageMood(userID string) (float64, bool)
	UserIDs() []string
	UserCount() int
	EntryCount() int
	Snapshot() map[string][]models.JournalEntry
	Restore(data map[string][]models.JournalEntry)
}

type JournalService struct {
	store *models.JournalStore
}

func NewJournalService(conf *structures.Config) JournalServiceInterface {
	return &JournalService{
		store: models.NewJournalStore(conf.Journal.MaxEntriesPerUser, conf.Journal.MaxUsers),
	}
}

func (js *JournalService) AddEntry(e models.JournalEntry) (models.JournalEntry, error) {
	if !e.Mood.Valid() {
		return models.JournalEntry{}, ErrInvalidMood
	}
	if e.CreatedAt <= 0 {
		return models.JournalEntry{}, &models.ValidationError{Reason: "createdAt is not a valid instant"}
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if !js.store.Add(e) {
		return models.JournalEntry{}, ErrStoreFull
	}
	return e, nil
}

func (js *JournalService) Entries(userID string, limit int) []models.JournalEntry {
	entries := js.store.Entries(userID)
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries
}

func (js *JournalService) Streak(userID string, asOf time.Time) (StreakStatus, error) {
	entries := js.store.Entries(userID)
	result, err := models.ComputeStreak(entries, asOf)
	if err != nil {
		return StreakStatus{}, err
	}
	return StreakStatus{
		StreakResult: result,
		Warning:      streakWarning(entries, asOf),
	}, nil
}

// streakWarning reports whether the user is inside the warning window:
// last entry 20-24h old, streak about to break.
func streakWarning(entries []models.JournalEntry, asOf time.Time) bool {
	latest := int64(0)
	for _, e := range entries {
		if e.CreatedAt > latest {
			latest = e.CreatedAt
		}
	}
	if latest == 0 {
		return false
	}
	hours := asOf.Sub(time.UnixMilli(latest)).Hours()
	return hours >= warnAfterHours && hours < warnBeforeHours
}

func (js *JournalService) AverageMood(userID string) (float64, bool) {
	entries := js.store.Entries(userID)
	if len(entries) == 0 {
		return 0, false
	}
	moods := make([]models.Mood, len(entries))
	for i, e := range entries {
		moods[i] = e.Mood
	}
	return models.AverageMood(moods), true
}

func (js *JournalService) UserIDs() []string {
	return js.store.Users()
}

func (js *JournalService) UserCount() int {
	return js.store.UserCount()
}

func (js *JournalService) EntryCount() int {
	return js.store.Len()
}

func (js *JournalService) Snapshot() map[string][]models.JournalEntry {
	return js.store.GetData()
}

func (js *JournalService) Restore(data map[string][]models.JournalEntry) {
	js.store.PutData(data)
}
