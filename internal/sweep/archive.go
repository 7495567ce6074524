package sweep

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"solaced/internal/models"
	"solaced/internal/providers"
	"solaced/internal/structures"
	"solaced/internal/sweep/interfaces"
)

// ArchiveEntry is a single purged message kept for auditing.
type ArchiveEntry struct {
	Message  models.Message `json:"message"`
	PurgedAt time.Time      `json:"purged_at"`
}

// ArchiveFile is the on-disk format for a single conversation's purge
// archive.
type ArchiveFile struct {
	Entries []ArchiveEntry `json:"entries"`
}

// Archive keeps messages removed by retention sweeps in per-conversation
// compressed files. Appends land in a pending buffer; Flush is the only
// method that touches disk. Entries older than the archive TTL are
// dropped at flush time. The archive is write-only for the daemon -
// purged messages are never restored into a conversation.
type Archive struct {
	mu         sync.RWMutex
	dir        string
	pending    map[string][]ArchiveEntry // conversation → entries awaiting flush
	counts     map[string]int            // conversation → archived entries on disk
	archiveTTL time.Duration
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewArchive(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) *Archive {
	return &Archive{
		dir:        conf.Retention.ArchiveDir,
		pending:    make(map[string][]ArchiveEntry),
		counts:     make(map[string]int),
		archiveTTL: conf.Retention.ArchiveTTL,
		compressor: compressor,
		logger:     logger,
	}
}

// Append buffers purged messages for later flush. No disk I/O.
func (a *Archive) Append(convID string, msgs []models.Message, purgedAt time.Time) {
	if len(msgs) == 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, m := range msgs {
		a.pending[convID] = append(a.pending[convID], ArchiveEntry{Message: m, PurgedAt: purgedAt})
	}
}

// PendingCount reports entries buffered but not yet flushed.
func (a *Archive) PendingCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	total := 0
	for _, entries := range a.pending {
		total += len(entries)
	}
	return total
}

// Count reports entries on disk as of the last flush or index restore.
func (a *Archive) Count() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	total := 0
	for _, n := range a.counts {
		total += n
	}
	return total
}

// Flush merges pending entries into the on-disk files, dropping entries
// older than the archive TTL. Files that end up empty are removed.
func (a *Archive) Flush() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := time.Now()
	for convID, entries := range a.pending {
		af := a.loadArchiveFromDisk(convID)
		if af == nil {
			af = &ArchiveFile{}
		}
		af.Entries = append(af.Entries, entries...)
		af.Entries = a.dropExpired(af.Entries, now)

		if len(af.Entries) > 0 {
			if err := a.writeArchiveFile(convID, af); err != nil {
				return err
			}
			a.counts[convID] = len(af.Entries)
		} else {
			os.Remove(a.archivePath(convID))
			delete(a.counts, convID)
		}

		delete(a.pending, convID)
	}
	return nil
}

// Read returns a conversation's archived entries. Used by tests and
// operator tooling, not by the request path.
func (a *Archive) Read(convID string) []ArchiveEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	af := a.loadArchiveFromDisk(convID)
	if af == nil {
		return nil
	}
	return af.Entries
}

// RestoreIndex scans the archive directory and rebuilds the per-
// conversation entry counts. Called once at startup.
func (a *Archive) RestoreIndex() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return err
	}

	files, err := filepath.Glob(filepath.Join(a.dir, "*.purged.zst"))
	if err != nil {
		return err
	}

	for _, file := range files {
		convID := a.extractConversationID(file)
		af := a.loadArchiveFromDisk(convID)
		if af == nil {
			continue
		}
		a.counts[convID] = len(af.Entries)
	}
	return nil
}

func (a *Archive) Close() {
	a.compressor.Close()
}

func (a *Archive) dropExpired(entries []ArchiveEntry, now time.Time) []ArchiveEntry {
	if a.archiveTTL <= 0 {
		return entries
	}
	kept := entries[:0]
	for _, e := range entries {
		if now.Sub(e.PurgedAt) <= a.archiveTTL {
			kept = append(kept, e)
		}
	}
	return kept
}

// loadArchiveFromDisk reads and decompresses an archive file. Must be
// called under a.mu.
func (a *Archive) loadArchiveFromDisk(convID string) *ArchiveFile {
	path := a.archivePath(convID)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			a.logger.Errorf(providers.TypeApp, "Failed to read archive %s: %s", path, err)
		}
		return nil
	}

	decompressed, err := a.compressor.Decompress(data)
	if err != nil {
		a.logger.Errorf(providers.TypeApp, "Failed to decompress archive %s: %s", path, err)
		return nil
	}

	var af ArchiveFile
	if err := json.Unmarshal(decompressed, &af); err != nil {
		a.logger.Errorf(providers.TypeApp, "Failed to parse archive %s: %s", path, err)
		return nil
	}
	return &af
}

// writeArchiveFile serializes and atomically writes an archive file.
func (a *Archive) writeArchiveFile(convID string, af *ArchiveFile) error {
	jsonData, err := json.Marshal(af)
	if err != nil {
		return err
	}

	compressed, err := a.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	path := a.archivePath(convID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, compressed, 0644); err != nil {
		return err
	}

	return os.Rename(tmpFile, path)
}

func (a *Archive) archivePath(convID string) string {
	return filepath.Join(a.dir, convID+".purged.zst")
}

// "abc.purged.zst" → "abc"
func (a *Archive) extractConversationID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, ".purged.zst")
}
