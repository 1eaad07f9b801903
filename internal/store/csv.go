package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Reference table file names inside the data directory.
const (
	batterSummaryFile  = "batter_summary.csv"
	bowlerSummaryFile  = "bowler_summary.csv"
	fantasySummaryFile = "fantasy_player_summary.csv"
	batterStatsFile    = "batter_stats.csv"
	batterClustersFile = "batter_clusters.csv"
	bowlerClustersFile = "bowler_clusters.csv"
)

// recentScoreColumns is the maximum number of per-match score columns
// (m1..m10) carried by the batter stats table.
const recentScoreColumns = 10

// csvRow gives header-name access to one data row. Headers are trimmed
// when the file is read, so lookups tolerate padded column names.
type csvRow struct {
	index  map[string]int
	fields []string
}

func (r csvRow) str(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r csvRow) float(col string) float64 {
	v, _ := strconv.ParseFloat(r.str(col), 64)
	return v
}

func (r csvRow) int(col string) int {
	// Stats exported through float-typed frames carry values like "42.0".
	return int(r.float(col))
}

func (r csvRow) has(col string) bool {
	_, ok := r.index[col]
	return ok && r.str(col) != ""
}

// readTable parses a CSV file and hands each data row to visit. Ragged
// rows are tolerated; lookups on absent columns fall back to zero values.
func readTable(path string, visit func(csvRow)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s is empty", filepath.Base(path))
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.TrimSpace(h)] = i
	}
	for _, fields := range rows[1:] {
		visit(csvRow{index: index, fields: fields})
	}
	return nil
}

func (s *Store) loadBatterSummaries(dir string, logger *zap.SugaredLogger) {
	err := readTable(filepath.Join(dir, batterSummaryFile), func(r csvRow) {
		name := r.str("batter")
		if name == "" {
			return
		}
		s.batterSummaries[key(name)] = BatterSummary{
			Name:       name,
			TotalRuns:  r.float("total_runs"),
			StrikeRate: r.float("strike_rate"),
		}
	})
	if err != nil {
		logger.Warnw("Could not load batter summaries", "error", err)
	}
}

func (s *Store) loadBowlerSummaries(dir string, logger *zap.SugaredLogger) {
	err := readTable(filepath.Join(dir, bowlerSummaryFile), func(r csvRow) {
		name := r.str("bowler")
		if name == "" {
			return
		}
		s.bowlerSummaries[key(name)] = BowlerSummary{
			Name:         name,
			TotalWickets: r.float("total_wickets"),
			Economy:      r.float("economy"),
		}
	})
	if err != nil {
		logger.Warnw("Could not load bowler summaries", "error", err)
	}
}

func (s *Store) loadFantasyStats(dir string, logger *zap.SugaredLogger) {
	err := readTable(filepath.Join(dir, fantasySummaryFile), func(r csvRow) {
		name := r.str("player_name")
		if name == "" {
			return
		}
		s.fantasyStats[key(name)] = FantasyStats{
			Name:         name,
			BatsmanRuns:  r.float("batsman_runs"),
			WicketsTaken: r.float("wickets_taken"),
			Caught:       r.float("caught"),
			Stumped:      r.float("stumped"),
			RunOut:       r.float("run_out"),
		}
	})
	if err != nil {
		logger.Warnw("Could not load fantasy player summary", "error", err)
	}
}

func (s *Store) loadBatterRecords(dir string, logger *zap.SugaredLogger) {
	err := readTable(filepath.Join(dir, batterStatsFile), func(r csvRow) {
		name := r.str("batter")
		if name == "" {
			return
		}
		rec := BatterRecord{
			Name:          name,
			TotalRuns:     r.int("total_runs"),
			TotalMatches:  r.int("total_matches"),
			BallsFaced:    r.int("balls_faced"),
			StrikeRate:    r.float("strike_rate"),
			HighestRun:    r.int("highest_run_in_match"),
			HalfCenturies: r.int("half_centuries"),
			Centuries:     r.int("centuries"),
		}
		for i := 1; i <= recentScoreColumns; i++ {
			col := "m" + strconv.Itoa(i)
			if !r.has(col) {
				continue
			}
			rec.RecentScores = append(rec.RecentScores, r.int(col))
		}
		if _, dup := s.batterRecords[key(name)]; !dup {
			s.batterNames = append(s.batterNames, name)
		}
		s.batterRecords[key(name)] = rec
	})
	if err != nil {
		logger.Warnw("Could not load batter stats", "error", err)
	}
}

func (s *Store) loadBatterClusters(dir string, logger *zap.SugaredLogger) {
	err := readTable(filepath.Join(dir, batterClustersFile), func(r csvRow) {
		name := r.str("player")
		if name == "" {
			return
		}
		s.batterClusters = append(s.batterClusters, BatterClusterRecord{
			Player:     name,
			Cluster:    r.int("cluster"),
			Label:      r.str("cluster_label"),
			StrikeRate: r.float("strike_rate"),
			Fours:      r.int("4s"),
			Sixes:      r.int("6s"),
		})
		if _, dup := s.batterClusterIndex[key(name)]; !dup {
			s.batterClusterIndex[key(name)] = len(s.batterClusters) - 1
		}
	})
	if err != nil {
		logger.Warnw("Could not load batter clusters", "error", err)
	}
}

func (s *Store) loadBowlerClusters(dir string, logger *zap.SugaredLogger) {
	err := readTable(filepath.Join(dir, bowlerClustersFile), func(r csvRow) {
		name := r.str("player")
		if name == "" {
			return
		}
		s.bowlerClusters = append(s.bowlerClusters, BowlerClusterRecord{
			Player:  name,
			Cluster: r.int("cluster"),
			Label:   r.str("cluster_label"),
			Economy: r.float("economy"),
			Wickets: r.int("wickets"),
		})
		if _, dup := s.bowlerClusterIndex[key(name)]; !dup {
			s.bowlerClusterIndex[key(name)] = len(s.bowlerClusters) - 1
		}
	})
	if err != nil {
		logger.Warnw("Could not load bowler clusters", "error", err)
	}
}
