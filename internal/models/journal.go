package models

// JournalEntry is a single mood journal record. CreatedAt is unix
// milliseconds, matching what mobile clients send.
type JournalEntry struct {
	ID        string `json:"id"`
	UserID    string `json:"userId" validate:"required"`
	Mood      Mood   `json:"mood" validate:"required"`
	Note      string `json:"note"`
	CreatedAt int64  `json:"createdAt" validate:"required|int|min:1"`
	Anonymous bool   `json:"isAnonymous"`
}
