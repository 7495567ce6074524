package providers

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solaced/internal/structures"
)

// nullLogger discards everything. testutil's mock lives downstream of
// this package, so provider tests carry their own.
type nullLogger struct{}

func (nullLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (nullLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (nullLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (nullLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (nullLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (nullLogger) Close()                                        {}

type countMetrics struct {
	mu     sync.Mutex
	hits   int
	misses int
}

func (m *countMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *countMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *countMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits++
}
func (m *countMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.misses++
}
func (m *countMetrics) ObservePersistenceDuration(_ time.Duration) {}
func (m *countMetrics) ObserveSweepDuration(_ time.Duration)       {}
func (m *countMetrics) AddSweptMessages(_ int)                     {}

func enabledCacheConfig() *structures.Config {
	conf := &structures.Config{}
	conf.Cache.Enabled = true
	conf.Cache.Size = 1
	conf.Cache.TTL = time.Minute
	return conf
}

func TestCacheProvider_SetAndGet(t *testing.T) {
	cache := NewCacheProvider(enabledCacheConfig(), nullLogger{})

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	cache.Set("k", []byte("v"))
	val, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), val)
}

func TestCacheProvider_DisabledIsNoop(t *testing.T) {
	conf := &structures.Config{}
	cache := NewCacheProvider(conf, nullLogger{})

	cache.Set("k", []byte("v"))
	_, ok := cache.Get("k")
	assert.False(t, ok)
}

func TestCacheProvider_ZeroSizeIsNoop(t *testing.T) {
	conf := &structures.Config{}
	conf.Cache.Enabled = true
	cache := NewCacheProvider(conf, nullLogger{})

	cache.Set("k", []byte("v"))
	_, ok := cache.Get("k")
	assert.False(t, ok)
}

func TestUnsafeStringToBytes(t *testing.T) {
	assert.Nil(t, unsafeStringToBytes(""))
	assert.Equal(t, []byte("streak:u1"), unsafeStringToBytes("streak:u1"))
}
