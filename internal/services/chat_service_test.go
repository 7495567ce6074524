package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solaced/internal/models"
)

func newConversation(t *testing.T, cs ChatServiceInterface) models.Conversation {
	t.Helper()
	conv, err := cs.CreateConversation([]string{"u1", "u2"}, 1000)
	require.NoError(t, err)
	return conv
}

func TestChatService_CreateConversation(t *testing.T) {
	cs := NewChatService()
	conv := newConversation(t, cs)
	assert.NotEmpty(t, conv.ID)
	assert.Equal(t, models.RetentionForever, conv.Retention)
	assert.Equal(t, 1, cs.ConversationCount())
}

func TestChatService_CreateConversationNeedsTwoParticipants(t *testing.T) {
	cs := NewChatService()
	_, err := cs.CreateConversation([]string{"u1"}, 1000)
	assert.ErrorIs(t, err, ErrNoParticipants)
}

func TestChatService_AppendAndReadMessages(t *testing.T) {
	cs := NewChatService()
	conv := newConversation(t, cs)

	m, err := cs.AppendMessage(conv.ID, models.Message{SenderID: "u1", Text: "hi", CreatedAt: 2000})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)

	msgs, err := cs.Messages(conv.ID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hi", msgs[0].Text)
}

func TestChatService_AppendRejectsBadTimestamp(t *testing.T) {
	cs := NewChatService()
	conv := newConversation(t, cs)
	_, err := cs.AppendMessage(conv.ID, models.Message{SenderID: "u1", Text: "hi", CreatedAt: -5})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestChatService_AppendToMissingConversation(t *testing.T) {
	cs := NewChatService()
	_, err := cs.AppendMessage("ghost", models.Message{SenderID: "u1", CreatedAt: 1000})
	assert.ErrorIs(t, err, ErrConversationNotFound)

	_, err = cs.Messages("ghost", 0)
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestChatService_MessagesLimitKeepsNewest(t *testing.T) {
	cs := NewChatService()
	conv := newConversation(t, cs)
	for i := int64(1); i <= 5; i++ {
		_, err := cs.AppendMessage(conv.ID, models.Message{SenderID: "u1", CreatedAt: i * 1000})
		require.NoError(t, err)
	}
	msgs, err := cs.Messages(conv.ID, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, int64(4000), msgs[0].CreatedAt)
	assert.Equal(t, int64(5000), msgs[1].CreatedAt)
}

func TestChatService_Retention(t *testing.T) {
	cs := NewChatService()
	conv := newConversation(t, cs)

	tier, err := cs.Retention(conv.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RetentionForever, tier)

	require.NoError(t, cs.SetRetention(conv.ID, models.Retention24Hours))
	tier, err = cs.Retention(conv.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Retention24Hours, tier)

	assert.ErrorIs(t, cs.SetRetention(conv.ID, "2weeks"), ErrInvalidTier)
	assert.ErrorIs(t, cs.SetRetention("ghost", models.Retention24Hours), ErrConversationNotFound)
	_, err = cs.Retention("ghost")
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestChatService_DeleteMessages(t *testing.T) {
	cs := NewChatService()
	conv := newConversation(t, cs)
	m, err := cs.AppendMessage(conv.ID, models.Message{SenderID: "u1", CreatedAt: 1000})
	require.NoError(t, err)

	assert.Equal(t, 1, cs.DeleteMessages(conv.ID, []string{m.ID}))
	assert.Equal(t, 0, cs.DeleteMessages(conv.ID, []string{m.ID}))
	assert.Equal(t, 0, cs.MessageCount())
}

func TestChatService_SnapshotRoundTrip(t *testing.T) {
	cs := NewChatService()
	conv := newConversation(t, cs)
	require.NoError(t, cs.SetRetention(conv.ID, models.RetentionOneMonth))
	_, err := cs.AppendMessage(conv.ID, models.Message{SenderID: "u1", CreatedAt: 1000})
	require.NoError(t, err)

	restored := NewChatService()
	restored.Restore(cs.Snapshot())

	assert.Equal(t, 1, restored.ConversationCount())
	assert.Equal(t, 1, restored.MessageCount())
	tier, err := restored.Retention(conv.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RetentionOneMonth, tier)
}
