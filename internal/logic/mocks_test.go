package logic

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inmatchpro/analytics-api/internal/store"
)

// mockStore implements ReferenceStore over in-memory tables.
type mockStore struct {
	batters        map[string]store.BatterSummary
	bowlers        map[string]store.BowlerSummary
	fantasy        map[string]store.FantasyStats
	records        map[string]store.BatterRecord
	batterNames    []string
	perfNames      []string
	fantasyNames   []string
	batterClusters []store.BatterClusterRecord
	bowlerClusters []store.BowlerClusterRecord
}

func (m *mockStore) BatterSummary(name string) (store.BatterSummary, bool) {
	v, ok := m.batters[name]
	return v, ok
}

func (m *mockStore) BowlerSummary(name string) (store.BowlerSummary, bool) {
	v, ok := m.bowlers[name]
	return v, ok
}

func (m *mockStore) FantasyStats(name string) (store.FantasyStats, bool) {
	v, ok := m.fantasy[name]
	return v, ok
}

func (m *mockStore) BatterRecord(name string) (store.BatterRecord, bool) {
	v, ok := m.records[name]
	return v, ok
}

func (m *mockStore) BatterNames() []string      { return m.batterNames }
func (m *mockStore) PerformanceNames() []string { return m.perfNames }
func (m *mockStore) FantasyNames() []string     { return m.fantasyNames }

func (m *mockStore) BatterClusters() []store.BatterClusterRecord { return m.batterClusters }
func (m *mockStore) BowlerClusters() []store.BowlerClusterRecord { return m.bowlerClusters }

func (m *mockStore) BatterCluster(name string) (store.BatterClusterRecord, bool) {
	for _, r := range m.batterClusters {
		if r.Player == name {
			return r, true
		}
	}
	return store.BatterClusterRecord{}, false
}

func (m *mockStore) BowlerCluster(name string) (store.BowlerClusterRecord, bool) {
	for _, r := range m.bowlerClusters {
		if r.Player == name {
			return r, true
		}
	}
	return store.BowlerClusterRecord{}, false
}

// mockCache implements Cache over a plain map.
type mockCache struct {
	data map[string]string
	sets int
	gets int
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string]string)}
}

func (m *mockCache) Get(ctx context.Context, key string) *redis.StringCmd {
	m.gets++
	if v, ok := m.data[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.sets++
	if b, ok := value.([]byte); ok {
		m.data[key] = string(b)
	}
	return redis.NewStatusResult("OK", nil)
}
