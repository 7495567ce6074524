package sweep

import (
	"sync"
	"time"

	"go.uber.org/atomic"

	"solaced/internal/models"
	"solaced/internal/providers"
	"solaced/internal/retention"
	"solaced/internal/services"
	"solaced/internal/structures"
)

const defaultSweepWorkers = 4

type SweepSummary struct {
	Conversations int
	Deleted       int
}

// Sweeper runs retention passes over all conversations. Conversations
// are independent, so they are swept by a bounded worker pool with no
// cross-conversation coordination. "now" is captured once per run so
// every message in the pass is judged against the same instant.
type Sweeper struct {
	config  *structures.Config
	logger  providers.Logger
	service services.ChatServiceInterface
	archive *Archive
	metrics providers.MetricsProviderInterface

	runs    atomic.Int64
	deleted atomic.Int64
}

func NewSweeper(config *structures.Config, logger providers.Logger, service services.ChatServiceInterface, archive *Archive, metrics providers.MetricsProviderInterface) *Sweeper {
	return &Sweeper{
		config:  config,
		logger:  logger,
		service: service,
		archive: archive,
		metrics: metrics,
	}
}

func (s *Sweeper) Run(now time.Time) SweepSummary {
	start := time.Now()
	ids := s.service.ConversationIDs()

	workers := s.config.Retention.Workers
	if workers <= 0 {
		workers = defaultSweepWorkers
	}
	if workers > len(ids) {
		workers = len(ids)
	}

	jobs := make(chan string)
	var wg sync.WaitGroup
	var total atomic.Int64

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for convID := range jobs {
				total.Add(int64(s.sweepOne(convID, now)))
			}
		}()
	}
	for _, id := range ids {
		jobs <- id
	}
	close(jobs)
	wg.Wait()

	if err := s.archive.Flush(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Archive flush failed: %s", err)
	}

	deleted := int(total.Load())
	s.runs.Inc()
	s.deleted.Add(int64(deleted))
	s.metrics.AddSweptMessages(deleted)
	s.metrics.ObserveSweepDuration(time.Since(start))

	return SweepSummary{Conversations: len(ids), Deleted: deleted}
}

func (s *Sweeper) sweepOne(convID string, now time.Time) int {
	tier, err := s.service.Retention(convID)
	if err != nil {
		return 0
	}
	if _, finite := retention.Duration(tier); !finite {
		return 0
	}

	msgs, err := s.service.Messages(convID, 0)
	if err != nil {
		return 0
	}

	expired := retention.SweepConversation(msgs, tier, now)
	if len(expired) == 0 {
		return 0
	}

	expiredSet := make(map[string]struct{}, len(expired))
	for _, id := range expired {
		expiredSet[id] = struct{}{}
	}
	purged := make([]models.Message, 0, len(expired))
	for _, m := range msgs {
		if _, ok := expiredSet[m.ID]; ok {
			purged = append(purged, m)
		}
	}
	s.archive.Append(convID, purged, now)

	deleted := s.service.DeleteMessages(convID, expired)
	s.logger.Infof(providers.TypeApp, "Swept conversation %s: %d expired under tier %s", convID, deleted, tier)
	return deleted
}

// TotalDeleted reports messages purged since startup.
func (s *Sweeper) TotalDeleted() int64 {
	return s.deleted.Load()
}

// Runs reports completed sweep passes since startup.
func (s *Sweeper) Runs() int64 {
	return s.runs.Load()
}
