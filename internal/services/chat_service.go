package services

import (
	"errors"

	"github.com/google/uuid"

	"solaced/internal/models"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrInvalidTier          = errors.New("unknown retention tier")
	ErrNoParticipants       = errors.New("conversation needs at least two participants")
)

type ChatServiceInterface interface {
	CreateConversation(participants []string, createdAt int64) (models.Conversation, error)
	Conversation(id string) (models.Conversation, bool)
	AppendMessage(convID string, m models.Message) (models.Message, error)
	Messages(convID string, limit int) ([]models.Message, error)
	SetRetention(convID string, tier models.RetentionTier) error
	Retention(convID string) (models.RetentionTier, error)
	ConversationIDs() []string
	DeleteMessages(convID string, ids []string) int
	ConversationCount() int
	MessageCount() int
	Snapshot() map[string]*models.ConversationData
	Restore(data map[string]*models.ConversationData)
}

type ChatService struct {
	store *models.ConversationStore
}

func NewChatService() ChatServiceInterface {
	return &ChatService{store: models.NewConversationStore()}
}

func (cs *ChatService) CreateConversation(participants []string, createdAt int64) (models.Conversation, error) {
	if len(participants) < 2 {
		return models.Conversation{}, ErrNoParticipants
	}
	conv := models.Conversation{
		ID:           uuid.NewString(),
		Participants: participants,
		Retention:    models.DefaultRetention,
		CreatedAt:    createdAt,
	}
	cs.store.Create(conv)
	return conv, nil
}

func (cs *ChatService) Conversation(id string) (models.Conversation, bool) {
	return cs.store.Get(id)
}

func (cs *ChatService) AppendMessage(convID string, m models.Message) (models.Message, error) {
	if m.CreatedAt <= 0 {
		return models.Message{}, &models.ValidationError{Reason: "createdAt is not a valid instant"}
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if !cs.store.Append(convID, m) {
		return models.Message{}, ErrConversationNotFound
	}
	return m, nil
}

func (cs *ChatService) Messages(convID string, limit int) ([]models.Message, error) {
	msgs, ok := cs.store.Messages(convID)
	if !ok {
		return nil, ErrConversationNotFound
	}
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

func (cs *ChatService) SetRetention(convID string, tier models.RetentionTier) error {
	if !tier.Valid() {
		return ErrInvalidTier
	}
	if !cs.store.SetRetention(convID, tier) {
		return ErrConversationNotFound
	}
	return nil
}

func (cs *ChatService) Retention(convID string) (models.RetentionTier, error) {
	tier, ok := cs.store.Retention(convID)
	if !ok {
		return "", ErrConversationNotFound
	}
	return tier, nil
}

func (cs *ChatService) ConversationIDs() []string {
	return cs.store.IDs()
}

func (cs *ChatService) DeleteMessages(convID string, ids []string) int {
	return cs.store.Delete(convID, ids)
}

func (cs *ChatService) ConversationCount() int {
	return cs.store.Len()
}

func (cs *ChatService) MessageCount() int {
	return cs.store.MessageCount()
}

func (cs *ChatService) Snapshot() map[string]*models.ConversationData {
	return cs.store.GetData()
}

func (cs *ChatService) Restore(data map[string]*models.ConversationData) {
	cs.store.PutData(data)
}
