package models

import (
	"sort"
	"sync"
)

// ConversationData is a conversation together with its live messages,
// keyed by message ID so deletion is idempotent by construction.
type ConversationData struct {
	Conversation Conversation       `json:"conversation"`
	Messages     map[string]Message `json:"messages"`
}

type ConversationStore struct {
	mu   sync.RWMutex
	data map[string]*ConversationData
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		data: make(map[string]*ConversationData),
	}
}

func (s *ConversationStore) Create(conv Conversation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.data[conv.ID]; exists {
		return false
	}
	if conv.Retention == "" {
		conv.Retention = DefaultRetention
	}
	s.data[conv.ID] = &ConversationData{
		Conversation: conv,
		Messages:     make(map[string]Message),
	}
	return true
}

func (s *ConversationStore) Get(id string) (Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cd, ok := s.data[id]
	if !ok {
		return Conversation{}, false
	}
	return cd.Conversation, true
}

func (s *ConversationStore) SetRetention(id string, tier RetentionTier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cd, ok := s.data[id]
	if !ok {
		return false
	}
	cd.Conversation.Retention = tier
	return true
}

// Retention returns the conversation's tier, falling back to the
// default for conversations persisted before tiers existed.
func (s *ConversationStore) Retention(id string) (RetentionTier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cd, ok := s.data[id]
	if !ok {
		return "", false
	}
	if cd.Conversation.Retention == "" {
		return DefaultRetention, true
	}
	return cd.Conversation.Retention, true
}

func (s *ConversationStore) Append(convID string, m Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cd, ok := s.data[convID]
	if !ok {
		return false
	}
	cd.Messages[m.ID] = m
	return true
}

// Messages returns the conversation's live messages ordered oldest first.
func (s *ConversationStore) Messages(convID string) ([]Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cd, ok := s.data[convID]
	if !ok {
		return nil, false
	}
	msgs := make([]Message, 0, len(cd.Messages))
	for _, m := range cd.Messages {
		msgs = append(msgs, m)
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].CreatedAt < msgs[j].CreatedAt })
	return msgs, true
}

// Delete removes the given message IDs and returns how many were
// actually present. Deleting an absent message is a no-op.
func (s *ConversationStore) Delete(convID string, ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cd, ok := s.data[convID]
	if !ok {
		return 0
	}
	removed := 0
	for _, id := range ids {
		if _, exists := cd.Messages[id]; exists {
			delete(cd.Messages, id)
			removed++
		}
	}
	return removed
}

func (s *ConversationStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids
}

func (s *ConversationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *ConversationStore) MessageCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, cd := range s.data {
		total += len(cd.Messages)
	}
	return total
}

func (s *ConversationStore) GetData() map[string]*ConversationData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*ConversationData, len(s.data))
	for id, cd := range s.data {
		msgs := make(map[string]Message, len(cd.Messages))
		for mid, m := range cd.Messages {
			msgs[mid] = m
		}
		result[id] = &ConversationData{
			Conversation: cd.Conversation,
			Messages:     msgs,
		}
	}
	return result
}

func (s *ConversationStore) PutData(data map[string]*ConversationData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]*ConversationData, len(data))
	for id, cd := range data {
		if id == "" || cd == nil {
			continue
		}
		if cd.Messages == nil {
			cd.Messages = make(map[string]Message)
		}
		s.data[id] = cd
	}
}
