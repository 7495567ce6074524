package sweep

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solaced/internal/models"
	"solaced/internal/services"
	"solaced/internal/structures"
	"solaced/internal/testutil"
)

func newTestFileManager(t *testing.T) (*FileManager, services.JournalServiceInterface, services.ChatServiceInterface, services.FeedServiceInterface) {
	t.Helper()
	conf := &structures.Config{}
	conf.Journal.MaxEntriesPerUser = 100
	conf.Journal.MaxUsers = 1000
	journal := services.NewJournalService(conf)
	chat := services.NewChatService()
	feed := services.NewFeedService()
	fm := NewFileManager(&testutil.MockCompressor{}, journal, chat, feed, &testutil.MockLogger{})
	return fm, journal, chat, feed
}

func snapshotPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "solaced.db")
}

func TestFileManager_SaveAndLoadRoundTrip(t *testing.T) {
	fm, journal, chat, feed := newTestFileManager(t)

	_, err := journal.AddEntry(models.JournalEntry{UserID: "u1", Mood: models.MoodHappy, CreatedAt: time.Now().UnixMilli()})
	require.NoError(t, err)
	conv, err := chat.CreateConversation([]string{"u1", "u2"}, 1000)
	require.NoError(t, err)
	_, err = chat.AppendMessage(conv.ID, models.Message{SenderID: "u1", Text: "hi", CreatedAt: 2000})
	require.NoError(t, err)
	_, err = feed.CreatePost(models.Post{UserID: "u1", Content: "post", CreatedAt: 3000})
	require.NoError(t, err)

	path := snapshotPath(t)
	require.NoError(t, fm.SaveToFile(path))

	fresh, journal2, chat2, feed2 := newTestFileManager(t)
	require.NoError(t, fresh.LoadFromFile(path))

	assert.Equal(t, 1, journal2.EntryCount())
	assert.Equal(t, 1, chat2.ConversationCount())
	assert.Equal(t, 1, chat2.MessageCount())
	assert.Equal(t, 1, feed2.PostCount())
}

func TestFileManager_LoadMissingFileIsNoOp(t *testing.T) {
	fm, journal, _, _ := newTestFileManager(t)
	require.NoError(t, fm.LoadFromFile(filepath.Join(t.TempDir(), "absent.db")))
	assert.Equal(t, 0, journal.EntryCount())
}

func TestFileManager_LoadCorruptFile(t *testing.T) {
	fm, _, _, _ := newTestFileManager(t)
	fm.compressor = &testutil.MockCompressor{
		DecompressFn: func([]byte) ([]byte, error) {
			return nil, errors.New("bad magic")
		},
	}

	path := snapshotPath(t)
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))
	assert.Error(t, fm.LoadFromFile(path))
}

func TestFileManager_MigratesLegacyJournalFormat(t *testing.T) {
	fm, journal, _, _ := newTestFileManager(t)

	legacy := map[string][]models.JournalEntry{
		"u1": {{ID: "e1", UserID: "u1", Mood: models.MoodNeutral, CreatedAt: 1000}},
	}
	data, err := json.Marshal(legacy)
	require.NoError(t, err)

	path := snapshotPath(t)
	require.NoError(t, os.WriteFile(path, data, 0644))

	require.NoError(t, fm.LoadFromFile(path))
	assert.Equal(t, 1, journal.EntryCount())
	assert.Equal(t, []string{"u1"}, journal.UserIDs())
}

func TestFileManager_RejectsUnknownFormat(t *testing.T) {
	fm, _, _, _ := newTestFileManager(t)

	path := snapshotPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
	assert.Error(t, fm.LoadFromFile(path))
}

func TestFileManager_SaveIsAtomic(t *testing.T) {
	fm, journal, _, _ := newTestFileManager(t)
	_, err := journal.AddEntry(models.JournalEntry{UserID: "u1", Mood: models.MoodSad, CreatedAt: time.Now().UnixMilli()})
	require.NoError(t, err)

	path := snapshotPath(t)
	require.NoError(t, fm.SaveToFile(path))
	assert.NoFileExists(t, path+".tmp")
}
