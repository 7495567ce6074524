// Package retention decides which messages have outlived their
// conversation's retention tier. Everything here is a pure function of
// (tier, createdAt, now); deletion itself belongs to the stores.
package retention

import (
	"time"

	"solaced/internal/models"
)

// tierDurations maps each finite tier to its window. Forever is absent
// on purpose: it never expires anything.
var tierDurations = map[models.RetentionTier]time.Duration{
	models.Retention24Hours:  24 * time.Hour,
	models.RetentionOneWeek:  7 * 24 * time.Hour,
	models.RetentionOneMonth: 30 * 24 * time.Hour,
}

type TierInfo struct {
	Tier        models.RetentionTier `json:"value"`
	Label       string               `json:"label"`
	Description string               `json:"description"`
	Icon        string               `json:"icon"`
}

var tierInfos = map[models.RetentionTier]TierInfo{
	models.Retention24Hours: {
		Tier:        models.Retention24Hours,
		Label:       "24 Hours",
		Description: "Messages disappear after 1 day",
		Icon:        "clock-fast",
	},
	models.RetentionOneWeek: {
		Tier:        models.RetentionOneWeek,
		Label:       "1 Week",
		Description: "Messages disappear after 7 days",
		Icon:        "clock-outline",
	},
	models.RetentionOneMonth: {
		Tier:        models.RetentionOneMonth,
		Label:       "1 Month",
		Description: "Messages disappear after 30 days",
		Icon:        "calendar-clock",
	},
	models.RetentionForever: {
		Tier:        models.RetentionForever,
		Label:       "Keep Forever",
		Description: "Messages never disappear",
		Icon:        "infinity",
	},
}

// Duration returns the tier's window and whether it is finite.
func Duration(tier models.RetentionTier) (time.Duration, bool) {
	d, ok := tierDurations[tier]
	return d, ok
}

// IsExpired reports whether a message created at createdAt (unix ms)
// fell outside the tier's window at instant now. The boundary is
// inclusive: a message exactly one window old is expired. A createdAt
// in the future (clock skew) is never expired.
func IsExpired(tier models.RetentionTier, createdAt int64, now time.Time) bool {
	d, finite := tierDurations[tier]
	if !finite {
		return false
	}
	return now.Sub(time.UnixMilli(createdAt)) >= d
}

// Describe returns the tier's display attributes, falling back to the
// forever tier for unknown values.
func Describe(tier models.RetentionTier) TierInfo {
	if info, ok := tierInfos[tier]; ok {
		return info
	}
	return tierInfos[models.RetentionForever]
}

// Tiers lists all tiers in display order.
func Tiers() []TierInfo {
	order := []models.RetentionTier{
		models.Retention24Hours,
		models.RetentionOneWeek,
		models.RetentionOneMonth,
		models.RetentionForever,
	}
	infos := make([]TierInfo, 0, len(order))
	for _, t := range order {
		infos = append(infos, tierInfos[t])
	}
	return infos
}

// SweepConversation returns the IDs of the messages expired under the
// given tier at instant now. It deletes nothing; callers pass the
// result to the store. now must be captured once per sweep so every
// message in the pass is judged against the same instant.
func SweepConversation(messages []models.Message, tier models.RetentionTier, now time.Time) []string {
	if _, finite := tierDurations[tier]; !finite {
		return nil
	}
	var expired []string
	for _, m := range messages {
		if IsExpired(tier, m.CreatedAt, now) {
			expired = append(expired, m.ID)
		}
	}
	return expired
}
