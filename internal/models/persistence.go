package models

// StorageVersion is the current snapshot envelope version.
const StorageVersion = 1

// Storage is the on-disk snapshot envelope. Files written before the
// version field existed carry journals only and unmarshal with
// Version == 0.
type Storage struct {
	Version       int                          `json:"version"`
	Journals      map[string][]JournalEntry    `json:"journals"`
	Conversations map[string]*ConversationData `json:"conversations"`
	Posts         map[string]*Post             `json:"posts"`
}
