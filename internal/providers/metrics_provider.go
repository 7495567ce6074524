package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"solaced/internal/services"
	"solaced/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(duration time.Duration)
	ObserveSweepDuration(duration time.Duration)
	AddSweptMessages(count int)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration prometheus.Histogram
	sweepDuration       prometheus.Histogram
	sweptMessages       prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) ObserveSweepDuration(duration time.Duration) {
	m.sweepDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) AddSweptMessages(count int) {
	m.sweptMessages.Add(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, journal services.JournalServiceInterface, chat services.ChatServiceInterface, feed services.FeedServiceInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "solaced_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "solaced_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "solaced_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "solaced_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "solaced_persistence_duration_seconds",
			Help:    "Duration of snapshot persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		sweepDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "solaced_sweep_duration_seconds",
			Help:    "Duration of retention sweep runs in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		sweptMessages: promauto.NewCounter(prometheus.CounterOpts{
			Name: "solaced_swept_messages_total",
			Help: "Total number of messages purged by retention sweeps",
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "solaced_journal_users",
		Help: "Number of users with journal entries",
	}, func() float64 {
		return float64(journal.UserCount())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "solaced_journal_entries",
		Help: "Total number of journal entries",
	}, func() float64 {
		return float64(journal.EntryCount())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "solaced_conversations",
		Help: "Number of conversations",
	}, func() float64 {
		return float64(chat.ConversationCount())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "solaced_messages",
		Help: "Number of live (not yet purged) messages",
	}, func() float64 {
		return float64(chat.MessageCount())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "solaced_posts",
		Help: "Number of feed posts",
	}, func() float64 {
		return float64(feed.PostCount())
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) ObserveSweepDuration(_ time.Duration)             {}
func (n *noopMetrics) AddSweptMessages(_ int)                           {}
