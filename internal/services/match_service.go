package services

import (
	"math"
	"sort"
)

// Compatibility scoring: 100 minus 35 points per unit of average-mood
// distance on the 1-5 scale, floored at 0. Users further than 1.5
// apart are not suggested at all.
const (
	compatibilityScale = 35
	maxMoodDistance    = 1.5
	fallbackAverage    = 3
)

type Suggestion struct {
	UserID        string  `json:"userId"`
	AverageMood   float64 `json:"averageMood"`
	Compatibility int     `json:"compatibility"`
	Reason        string  `json:"reason"`
}

type MatchServiceInterface interface {
	Suggestions(userID string) []Suggestion
}

type MatchService struct {
	journal JournalServiceInterface
}

func NewMatchService(journal JournalServiceInterface) MatchServiceInterface {
	return &MatchService{journal: journal}
}

func CompatibilityScore(myAvg, otherAvg float64) int {
	diff := math.Abs(myAvg - otherAvg)
	score := math.Max(0, 100-diff*compatibilityScale)
	return int(math.Round(score))
}

func MatchReason(score int) string {
	if score >= 85 {
		return "Very similar emotional wavelength"
	}
	if score >= 70 {
		return "Compatible vibes for meaningful connection"
	}
	return "Close enough for interesting conversation"
}

// Suggestions lists users whose average mood is close to the given
// user's, best match first. A user with no entries gets the neutral
// average rather than an error, matching app behavior.
func (ms *MatchService) Suggestions(userID string) []Suggestion {
	myAvg, ok := ms.journal.AverageMood(userID)
	if !ok {
		myAvg = fallbackAverage
	}

	var suggestions []Suggestion
	for _, other := range ms.journal.UserIDs() {
		if other == userID {
			continue
		}
		avg, ok := ms.journal.AverageMood(other)
		if !ok {
			continue
		}
		if math.Abs(avg-myAvg) > maxMoodDistance {
			continue
		}
		score := CompatibilityScore(myAvg, avg)
		suggestions = append(suggestions, Suggestion{
			UserID:        other,
			AverageMood:   avg,
			Compatibility: score,
			Reason:        MatchReason(score),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Compatibility != suggestions[j].Compatibility {
			return suggestions[i].Compatibility > suggestions[j].Compatibility
		}
		return suggestions[i].UserID < suggestions[j].UserID
	})
	return suggestions
}
