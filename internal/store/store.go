// Package store loads the static reference tables (player summaries,
// historical batter stats, cluster assignments) from CSV files once at
// startup and serves typed, case-insensitive point lookups. Tables are
// read-only for the process lifetime.
package store

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// BatterSummary is the batting history a performance prediction feeds on.
type BatterSummary struct {
	Name       string
	TotalRuns  float64
	StrikeRate float64
}

// BowlerSummary is the bowling history a performance prediction feeds on.
type BowlerSummary struct {
	Name         string
	TotalWickets float64
	Economy      float64
}

// FantasyStats is the fixed feature subset the fantasy model was trained on.
type FantasyStats struct {
	Name         string
	BatsmanRuns  float64
	WicketsTaken float64
	Caught       float64
	Stumped      float64
	RunOut       float64
}

// BatterRecord is the full historical record for one batter, including up
// to the ten most recent innings scores.
type BatterRecord struct {
	Name          string
	TotalRuns     int
	TotalMatches  int
	BallsFaced    int
	StrikeRate    float64
	HighestRun    int
	HalfCenturies int
	Centuries     int
	RecentScores  []int
}

// BatterClusterRecord is one batter's playing-style cluster assignment.
type BatterClusterRecord struct {
	Player     string
	Cluster    int
	Label      string
	StrikeRate float64
	Fours      int
	Sixes      int
}

// BowlerClusterRecord is one bowler's playing-style cluster assignment.
type BowlerClusterRecord struct {
	Player  string
	Cluster int
	Label   string
	Economy float64
	Wickets int
}

// Store holds every reference table. Lookup keys are lowercased player
// names; the records keep the original casing.
type Store struct {
	batterSummaries map[string]BatterSummary
	bowlerSummaries map[string]BowlerSummary
	fantasyStats    map[string]FantasyStats
	batterRecords   map[string]BatterRecord
	batterNames     []string

	batterClusters     []BatterClusterRecord
	bowlerClusters     []BowlerClusterRecord
	batterClusterIndex map[string]int
	bowlerClusterIndex map[string]int
}

// Open loads every reference table found in dir. A table that fails to
// load is logged and left empty; lookups against it return not-found, which
// downstream degrades to documented defaults instead of failing requests.
func Open(dir string, logger *zap.SugaredLogger) *Store {
	s := &Store{
		batterSummaries:    make(map[string]BatterSummary),
		bowlerSummaries:    make(map[string]BowlerSummary),
		fantasyStats:       make(map[string]FantasyStats),
		batterRecords:      make(map[string]BatterRecord),
		batterClusterIndex: make(map[string]int),
		bowlerClusterIndex: make(map[string]int),
	}
	s.loadBatterSummaries(dir, logger)
	s.loadBowlerSummaries(dir, logger)
	s.loadFantasyStats(dir, logger)
	s.loadBatterRecords(dir, logger)
	s.loadBatterClusters(dir, logger)
	s.loadBowlerClusters(dir, logger)

	logger.Infow("Reference tables loaded",
		"batter_summaries", len(s.batterSummaries),
		"bowler_summaries", len(s.bowlerSummaries),
		"fantasy_stats", len(s.fantasyStats),
		"batter_records", len(s.batterRecords),
		"batter_clusters", len(s.batterClusters),
		"bowler_clusters", len(s.bowlerClusters),
	)
	return s
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// BatterSummary looks up batting history by player name.
func (s *Store) BatterSummary(name string) (BatterSummary, bool) {
	v, ok := s.batterSummaries[key(name)]
	return v, ok
}

// BowlerSummary looks up bowling history by player name.
func (s *Store) BowlerSummary(name string) (BowlerSummary, bool) {
	v, ok := s.bowlerSummaries[key(name)]
	return v, ok
}

// FantasyStats looks up the fantasy feature subset by player name.
func (s *Store) FantasyStats(name string) (FantasyStats, bool) {
	v, ok := s.fantasyStats[key(name)]
	return v, ok
}

// BatterRecord looks up the full historical record by batter name.
func (s *Store) BatterRecord(name string) (BatterRecord, bool) {
	v, ok := s.batterRecords[key(name)]
	return v, ok
}

// BatterNames lists the batters in the historical stats table, in file
// order.
func (s *Store) BatterNames() []string {
	out := make([]string, len(s.batterNames))
	copy(out, s.batterNames)
	return out
}

// PerformanceNames lists every player with a batting or bowling summary,
// sorted and deduplicated.
func (s *Store) PerformanceNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, v := range s.batterSummaries {
		if _, ok := seen[v.Name]; !ok {
			seen[v.Name] = struct{}{}
			names = append(names, v.Name)
		}
	}
	for _, v := range s.bowlerSummaries {
		if _, ok := seen[v.Name]; !ok {
			seen[v.Name] = struct{}{}
			names = append(names, v.Name)
		}
	}
	sort.Strings(names)
	return names
}

// FantasyNames lists every player name known to the batter stats and
// cluster tables, sorted and deduplicated.
func (s *Store) FantasyNames() []string {
	seen := make(map[string]struct{})
	var names []string
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	for _, v := range s.batterRecords {
		add(v.Name)
	}
	for _, r := range s.batterClusters {
		add(r.Player)
	}
	for _, r := range s.bowlerClusters {
		add(r.Player)
	}
	sort.Strings(names)
	return names
}

// BatterClusters returns every batter cluster assignment in file order.
func (s *Store) BatterClusters() []BatterClusterRecord {
	out := make([]BatterClusterRecord, len(s.batterClusters))
	copy(out, s.batterClusters)
	return out
}

// BowlerClusters returns every bowler cluster assignment in file order.
func (s *Store) BowlerClusters() []BowlerClusterRecord {
	out := make([]BowlerClusterRecord, len(s.bowlerClusters))
	copy(out, s.bowlerClusters)
	return out
}

// BatterCluster looks up a batter's cluster assignment by name.
func (s *Store) BatterCluster(name string) (BatterClusterRecord, bool) {
	i, ok := s.batterClusterIndex[key(name)]
	if !ok {
		return BatterClusterRecord{}, false
	}
	return s.batterClusters[i], true
}

// BowlerCluster looks up a bowler's cluster assignment by name.
func (s *Store) BowlerCluster(name string) (BowlerClusterRecord, bool) {
	i, ok := s.bowlerClusterIndex[key(name)]
	if !ok {
		return BowlerClusterRecord{}, false
	}
	return s.bowlerClusters[i], true
}
