package models

// RetentionTier names how long a conversation keeps its messages. The
// wire values are the ones mobile clients already store in settings.
type RetentionTier string

const (
	Retention24Hours  RetentionTier = "24h"
	RetentionOneWeek  RetentionTier = "1week"
	RetentionOneMonth RetentionTier = "1month"
	RetentionForever  RetentionTier = "forever"
)

// DefaultRetention applies to conversations that never set a tier.
const DefaultRetention = RetentionForever

func (t RetentionTier) Valid() bool {
	switch t {
	case Retention24Hours, RetentionOneWeek, RetentionOneMonth, RetentionForever:
		return true
	}
	return false
}

type Message struct {
	ID        string `json:"id"`
	SenderID  string `json:"senderId"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

type Conversation struct {
	ID           string        `json:"id"`
	Participants []string      `json:"participants"`
	Retention    RetentionTier `json:"messageRetention"`
	CreatedAt    int64         `json:"createdAt"`
}
