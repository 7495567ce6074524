package models

type EmotionType string

const (
	EmotionLove       EmotionType = "love"
	EmotionCelebrate  EmotionType = "celebrate"
	EmotionSupport    EmotionType = "support"
	EmotionInsightful EmotionType = "insightful"
	EmotionCurious    EmotionType = "curious"
)

// Emotions is the fixed reaction set. A user holds at most one active
// emotion per post.
var Emotions = []EmotionType{
	EmotionLove,
	EmotionCelebrate,
	EmotionSupport,
	EmotionInsightful,
	EmotionCurious,
}

func (e EmotionType) Valid() bool {
	for _, known := range Emotions {
		if e == known {
			return true
		}
	}
	return false
}

type Post struct {
	ID           string                   `json:"id"`
	UserID       string                   `json:"userId" validate:"required"`
	Content      string                   `json:"content" validate:"required"`
	Mood         Mood                     `json:"mood,omitempty"`
	CreatedAt    int64                    `json:"createdAt"`
	Anonymous    bool                     `json:"isAnonymous"`
	LikedBy      []string                 `json:"likedBy"`
	Reactions    map[EmotionType][]string `json:"emotionReactions"`
	CommentCount int                      `json:"commentCount"`
}
