package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreWithConversation(t *testing.T) *ConversationStore {
	t.Helper()
	s := NewConversationStore()
	require.True(t, s.Create(Conversation{ID: "c1", Participants: []string{"u1", "u2"}, CreatedAt: 1000}))
	return s
}

func TestConversationStore_CreateDefaultsToForever(t *testing.T) {
	s := newStoreWithConversation(t)
	tier, ok := s.Retention("c1")
	require.True(t, ok)
	assert.Equal(t, RetentionForever, tier)
}

func TestConversationStore_CreateDuplicate(t *testing.T) {
	s := newStoreWithConversation(t)
	assert.False(t, s.Create(Conversation{ID: "c1"}))
}

func TestConversationStore_SetRetention(t *testing.T) {
	s := newStoreWithConversation(t)
	require.True(t, s.SetRetention("c1", Retention24Hours))
	tier, _ := s.Retention("c1")
	assert.Equal(t, Retention24Hours, tier)

	assert.False(t, s.SetRetention("missing", Retention24Hours))
}

func TestConversationStore_MessagesSortedByCreation(t *testing.T) {
	s := newStoreWithConversation(t)
	s.Append("c1", Message{ID: "m2", CreatedAt: 2000})
	s.Append("c1", Message{ID: "m1", CreatedAt: 1000})
	s.Append("c1", Message{ID: "m3", CreatedAt: 3000})

	msgs, ok := s.Messages("c1")
	require.True(t, ok)
	require.Len(t, msgs, 3)
	assert.Equal(t, "m1", msgs[0].ID)
	assert.Equal(t, "m3", msgs[2].ID)
}

func TestConversationStore_AppendToMissing(t *testing.T) {
	s := NewConversationStore()
	assert.False(t, s.Append("nope", Message{ID: "m1", CreatedAt: 1000}))
}

func TestConversationStore_DeleteIsIdempotent(t *testing.T) {
	s := newStoreWithConversation(t)
	s.Append("c1", Message{ID: "m1", CreatedAt: 1000})
	s.Append("c1", Message{ID: "m2", CreatedAt: 2000})

	assert.Equal(t, 2, s.Delete("c1", []string{"m1", "m2"}))
	// second pass deletes nothing, errors nothing
	assert.Equal(t, 0, s.Delete("c1", []string{"m1", "m2"}))
	assert.Equal(t, 0, s.MessageCount())
}

func TestConversationStore_DeleteUnknownIDsNoOp(t *testing.T) {
	s := newStoreWithConversation(t)
	s.Append("c1", Message{ID: "m1", CreatedAt: 1000})
	assert.Equal(t, 1, s.Delete("c1", []string{"ghost", "m1"}))
}

func TestConversationStore_SnapshotRoundTrip(t *testing.T) {
	s := newStoreWithConversation(t)
	s.SetRetention("c1", RetentionOneWeek)
	s.Append("c1", Message{ID: "m1", CreatedAt: 1000})

	restored := NewConversationStore()
	restored.PutData(s.GetData())

	tier, ok := restored.Retention("c1")
	require.True(t, ok)
	assert.Equal(t, RetentionOneWeek, tier)
	msgs, _ := restored.Messages("c1")
	require.Len(t, msgs, 1)
}

func TestConversationStore_SnapshotIsIndependent(t *testing.T) {
	s := newStoreWithConversation(t)
	s.Append("c1", Message{ID: "m1", CreatedAt: 1000})

	data := s.GetData()
	delete(data["c1"].Messages, "m1")

	msgs, _ := s.Messages("c1")
	assert.Len(t, msgs, 1)
}

func TestRetentionTier_Valid(t *testing.T) {
	assert.True(t, Retention24Hours.Valid())
	assert.True(t, RetentionForever.Valid())
	assert.False(t, RetentionTier("2weeks").Valid())
}
