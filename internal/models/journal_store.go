package models

import "sync"

const defaultMaxUsers = 100000

// JournalStore keeps journal entries per user. When a user exceeds the
// per-user cap the oldest entry is evicted first.
type JournalStore struct {
	mu         sync.RWMutex
	data       map[string][]JournalEntry
	maxPerUser int
	maxUsers   int
}

func NewJournalStore(maxPerUser, maxUsers int) *JournalStore {
	if maxUsers <= 0 {
		maxUsers = defaultMaxUsers
	}
	return &JournalStore{
		data:       make(map[string][]JournalEntry),
		maxPerUser: maxPerUser,
		maxUsers:   maxUsers,
	}
}

func (s *JournalStore) Add(e JournalEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.data[e.UserID]
	if !ok && len(s.data) >= s.maxUsers {
		return false
	}

	if s.maxPerUser > 0 && len(entries) >= s.maxPerUser {
		oldest := 0
		for i := 1; i < len(entries); i++ {
			if entries[i].CreatedAt < entries[oldest].CreatedAt {
				oldest = i
			}
		}
		entries = append(entries[:oldest], entries[oldest+1:]...)
	}

	s.data[e.UserID] = append(entries, e)
	return true
}

func (s *JournalStore) Entries(userID string) []JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, ok := s.data[userID]
	if !ok {
		return nil
	}
	out := make([]JournalEntry, len(entries))
	copy(out, entries)
	return out
}

func (s *JournalStore) Users() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]string, 0, len(s.data))
	for u := range s.data {
		users = append(users, u)
	}
	return users
}

func (s *JournalStore) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *JournalStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, entries := range s.data {
		total += len(entries)
	}
	return total
}

func (s *JournalStore) GetData() map[string][]JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string][]JournalEntry, len(s.data))
	for u, entries := range s.data {
		cp := make([]JournalEntry, len(entries))
		copy(cp, entries)
		result[u] = cp
	}
	return result
}

func (s *JournalStore) PutData(data map[string][]JournalEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string][]JournalEntry, len(data))
	for u, entries := range data {
		if u == "" || len(entries) == 0 {
			continue
		}
		s.data[u] = entries
	}
}
