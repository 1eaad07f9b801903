package logic

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/inmatchpro/analytics-api/internal/models"
)

// Cache keys for the cluster summaries. The tables only change on
// redeploy, so a short TTL is purely to bound staleness after one.
const (
	batterClustersCacheKey = "clusters:batters"
	bowlerClustersCacheKey = "clusters:bowlers"
)

type clusteringService struct {
	store    ReferenceStore
	cache    Cache
	cacheTTL time.Duration
	logger   *zap.SugaredLogger
}

// NewClusteringService builds the cluster lookup service. cache may be nil,
// in which case summaries are grouped on every call.
func NewClusteringService(store ReferenceStore, cache Cache, cacheTTL time.Duration, logger *zap.SugaredLogger) ClusteringService {
	return &clusteringService{store: store, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// BatterClusters groups the batter assignments by cluster label and
// averages the batting traits per group.
func (s *clusteringService) BatterClusters(ctx context.Context) ([]models.BatterCluster, error) {
	var cached []models.BatterCluster
	if s.fromCache(ctx, batterClustersCacheKey, &cached) {
		return cached, nil
	}

	groups := make(map[string][]int)
	records := s.store.BatterClusters()
	for i, r := range records {
		groups[r.Label] = append(groups[r.Label], i)
	}

	clusters := make([]models.BatterCluster, 0, len(groups))
	for _, label := range sortedKeys(groups) {
		var c models.BatterCluster
		c.ClusterLabel = label
		var sumSR, sum4s, sum6s float64
		for _, i := range groups[label] {
			r := records[i]
			c.Members = append(c.Members, r.Player)
			sumSR += r.StrikeRate
			sum4s += float64(r.Fours)
			sum6s += float64(r.Sixes)
		}
		n := float64(len(c.Members))
		c.AvgStrikeRate = round2(sumSR / n)
		c.Avg4s = round2(sum4s / n)
		c.Avg6s = round2(sum6s / n)
		c.Count = len(c.Members)
		clusters = append(clusters, c)
	}

	s.toCache(ctx, batterClustersCacheKey, clusters)
	return clusters, nil
}

// BowlerClusters groups the bowler assignments by cluster label and
// averages the bowling traits per group.
func (s *clusteringService) BowlerClusters(ctx context.Context) ([]models.BowlerCluster, error) {
	var cached []models.BowlerCluster
	if s.fromCache(ctx, bowlerClustersCacheKey, &cached) {
		return cached, nil
	}

	groups := make(map[string][]int)
	records := s.store.BowlerClusters()
	for i, r := range records {
		groups[r.Label] = append(groups[r.Label], i)
	}

	clusters := make([]models.BowlerCluster, 0, len(groups))
	for _, label := range sortedKeys(groups) {
		var c models.BowlerCluster
		c.ClusterLabel = label
		var sumEco, sumWkts float64
		for _, i := range groups[label] {
			r := records[i]
			c.Members = append(c.Members, r.Player)
			sumEco += r.Economy
			sumWkts += float64(r.Wickets)
		}
		n := float64(len(c.Members))
		c.AvgEconomy = round2(sumEco / n)
		c.AvgWickets = round2(sumWkts / n)
		c.Count = len(c.Members)
		clusters = append(clusters, c)
	}

	s.toCache(ctx, bowlerClustersCacheKey, clusters)
	return clusters, nil
}

// BatterCluster returns a single batter's cluster assignment.
func (s *clusteringService) BatterCluster(name string) (models.BatterClusterDetail, error) {
	r, ok := s.store.BatterCluster(name)
	if !ok {
		return models.BatterClusterDetail{}, ErrNotFound
	}
	return models.BatterClusterDetail{
		Player:       r.Player,
		Cluster:      r.Cluster,
		ClusterLabel: r.Label,
		StrikeRate:   round2(r.StrikeRate),
		Fours:        r.Fours,
		Sixes:        r.Sixes,
	}, nil
}

// BowlerCluster returns a single bowler's cluster assignment.
func (s *clusteringService) BowlerCluster(name string) (models.BowlerClusterDetail, error) {
	r, ok := s.store.BowlerCluster(name)
	if !ok {
		return models.BowlerClusterDetail{}, ErrNotFound
	}
	return models.BowlerClusterDetail{
		Player:       r.Player,
		Cluster:      r.Cluster,
		ClusterLabel: r.Label,
		Economy:      round2(r.Economy),
		Wickets:      r.Wickets,
	}, nil
}

// fromCache fills dest from a cached JSON value, reporting whether it hit.
// Cache failures are logged and treated as misses.
func (s *clusteringService) fromCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	data, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warnw("Could not decode cached clusters", "key", key, "error", err)
		return false
	}
	return true
}

func (s *clusteringService) toCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		s.logger.Warnw("Could not cache clusters", "key", key, "error", err)
	}
}

func sortedKeys(m map[string][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
