package models

import (
	"fmt"
	"sort"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// DayKey is a calendar day expressed as whole days since the unix epoch.
// Days are bucketed in UTC so streaks are deterministic across devices
// and timezone changes.
type DayKey int64

func DayKeyOf(t time.Time) DayKey {
	y, m, d := t.UTC().Date()
	return DayKey(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

func DayKeyOfMillis(ms int64) DayKey {
	return DayKeyOf(time.UnixMilli(ms))
}

func (d DayKey) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

func (d DayKey) String() string {
	return d.Time().Format("2006-01-02")
}

type StreakResult struct {
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	LastEntryDate string `json:"lastEntryDate,omitempty"`
	TotalEntries  int    `json:"totalEntries"`
}

// ValidationError reports a malformed timestamp in the input slice.
// Malformed entries are never coerced to "now" — that would silently
// corrupt streaks instead of surfacing the bad upstream data.
type ValidationError struct {
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("journal entry %d: %s", e.Index, e.Reason)
}

// ComputeStreak reduces a user's journal history to streak statistics.
// Pure function: entries may be unordered and may repeat days, asOf is
// the instant treated as "now". The current streak survives as long as
// the most recent entry day is today or yesterday relative to asOf.
func ComputeStreak(entries []JournalEntry, asOf time.Time) (StreakResult, error) {
	daySet := make(map[DayKey]struct{}, len(entries))
	for i, e := range entries {
		if e.CreatedAt <= 0 {
			return StreakResult{}, &ValidationError{Index: i, Reason: "createdAt is not a valid instant"}
		}
		daySet[DayKeyOfMillis(e.CreatedAt)] = struct{}{}
	}

	if len(daySet) == 0 {
		return StreakResult{}, nil
	}

	days := make([]DayKey, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] > days[j] })

	today := DayKeyOf(asOf)
	yesterday := today - 1

	currentStreak := 0
	if days[0] == today || days[0] == yesterday {
		currentStreak = 1
		for i := 1; i < len(days); i++ {
			if days[i] != days[i-1]-1 {
				break
			}
			currentStreak++
		}
	}

	longestStreak := 1
	run := 1
	for i := len(days) - 2; i >= 0; i-- {
		if days[i] == days[i+1]+1 {
			run++
			if run > longestStreak {
				longestStreak = run
			}
		} else {
			run = 1
		}
	}

	return StreakResult{
		CurrentStreak: currentStreak,
		LongestStreak: longestStreak,
		LastEntryDate: days[0].String(),
		TotalEntries:  len(entries),
	}, nil
}
