package sweep

import (
	"errors"
	"os"

	json "github.com/goccy/go-json"

	"solaced/internal/models"
	"solaced/internal/providers"
	"solaced/internal/services"
	"solaced/internal/sweep/interfaces"
)

type FileManager struct {
	journal    services.JournalServiceInterface
	chat       services.ChatServiceInterface
	feed       services.FeedServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, journal services.JournalServiceInterface, chat services.ChatServiceInterface, feed services.FeedServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		journal:    journal,
		chat:       chat,
		feed:       feed,
		compressor: compressor,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	storage := models.Storage{
		Version:       models.StorageVersion,
		Journals:      f.journal.Snapshot(),
		Conversations: f.chat.Snapshot(),
		Posts:         f.feed.Snapshot(),
	}

	jsonData, err := json.Marshal(storage)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	// Current format: versioned envelope
	var storage models.Storage
	if err := json.Unmarshal(decompressedData, &storage); err == nil && storage.Version >= models.StorageVersion {
		f.restore(&storage)
		return nil
	}

	// Legacy format: journals only, no envelope
	f.logger.Warnf(providers.TypeApp, "Inconsistent snapshot found, try to migrate from old data format")
	var journals map[string][]models.JournalEntry
	if err := json.Unmarshal(decompressedData, &journals); err != nil {
		f.logger.Warnf(providers.TypeApp, "Migration failed")
		return err
	}
	if len(journals) == 0 {
		f.logger.Warnf(providers.TypeApp, "Migration failed")
		return errors.New("unrecognized snapshot format")
	}
	f.logger.Warnf(providers.TypeApp, "Migration from journal-only format successful")
	f.journal.Restore(journals)
	return nil
}

func (f *FileManager) restore(storage *models.Storage) {
	if storage.Journals != nil {
		f.journal.Restore(storage.Journals)
	}
	if storage.Conversations != nil {
		f.chat.Restore(storage.Conversations)
	}
	if storage.Posts != nil {
		f.feed.Restore(storage.Posts)
	}
}
