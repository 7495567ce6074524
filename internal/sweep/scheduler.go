package sweep

import (
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"solaced/internal/providers"
	"solaced/internal/structures"
	"solaced/internal/sweep/interfaces"
)

type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	sweeper     *Sweeper
	fileManager *FileManager
	archive     *Archive
	metrics     providers.MetricsProviderInterface
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	saveInterval := s.config.Persistence.SaveInterval
	sweepInterval := s.config.Retention.SweepInterval

	s.cron.AddFunc(gron.Every(saveInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		start := time.Now()
		err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
			return
		}
		s.metrics.ObservePersistenceDuration(time.Since(start))
		s.logger.Infof(providers.TypeApp, "Persisted data to file %s", s.config.Persistence.FilePath)
	})

	s.cron.AddFunc(gron.Every(sweepInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		s.logger.Infof(providers.TypeApp, "Retention sweep...")
		summary := s.sweeper.Run(time.Now())
		s.logger.Infof(providers.TypeApp, "Retention sweep done: %d conversations, %d messages purged", summary.Conversations, summary.Deleted)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	if err := s.fileManager.LoadFromFile(s.config.Persistence.FilePath); err != nil {
		return err
	}
	return s.archive.RestoreIndex()
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting state to file...")
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return s.archive.Flush()
}

func NewScheduler(config *structures.Config, logger providers.Logger, sweeper *Sweeper, fileManager *FileManager, archive *Archive, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		sweeper:     sweeper,
		fileManager: fileManager,
		archive:     archive,
		metrics:     metrics,
	}
}
