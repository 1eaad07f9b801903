package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func writeTable(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func openFixture(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()

	writeTable(t, dir, batterSummaryFile,
		"batter,total_runs,strike_rate\n"+
			"V Kohli,7263,131.97\n"+
			"MS Dhoni,5082,135.92\n")
	writeTable(t, dir, bowlerSummaryFile,
		"bowler,total_wickets,economy\n"+
			"JJ Bumrah,145,7.39\n"+
			"MS Dhoni,0,6.0\n")
	writeTable(t, dir, fantasySummaryFile,
		"player_name,batsman_runs,wickets_taken,caught,stumped,run_out\n"+
			"V Kohli,7263,4,98,0,1\n")
	writeTable(t, dir, batterStatsFile,
		"batter,total_runs,total_matches,balls_faced,strike_rate,highest_run_in_match,half_centuries,centuries,m1,m2,m3,m4,m5,m6,m7,m8,m9,m10\n"+
			"V Kohli,7263,237,5535,131.2,113,50,7,12,45,3,77,20,55,8,90,33,61\n"+
			"RG Sharma,6211,243,4746,130.9,109,42,1,22,8,40,,,,,,,\n")
	writeTable(t, dir, batterClustersFile,
		"player,cluster,cluster_label,strike_rate,4s,6s\n"+
			"V Kohli,0,Anchor,131.2,643,234\n"+
			"AB de Villiers,1,Power Hitter,151.7,413,251\n")
	writeTable(t, dir, bowlerClustersFile,
		"player,cluster,cluster_label,economy,wickets\n"+
			"JJ Bumrah,0,Death Specialist,7.39,145\n")

	return Open(dir, zap.NewNop().Sugar())
}

func TestLookupsAreCaseInsensitive(t *testing.T) {
	s := openFixture(t)

	bat, ok := s.BatterSummary("v kohli")
	if !ok {
		t.Fatal("expected batter summary for lowercased name")
	}
	if bat.Name != "V Kohli" || bat.TotalRuns != 7263 {
		t.Errorf("unexpected summary: %+v", bat)
	}

	if _, ok := s.BowlerSummary("JJ BUMRAH"); !ok {
		t.Error("expected bowler summary for uppercased name")
	}
	if _, ok := s.BatterSummary("No Such Player"); ok {
		t.Error("unexpected hit for unknown player")
	}
}

func TestBatterRecordRecentScores(t *testing.T) {
	s := openFixture(t)

	rec, ok := s.BatterRecord("V Kohli")
	if !ok {
		t.Fatal("expected record")
	}
	want := []int{12, 45, 3, 77, 20, 55, 8, 90, 33, 61}
	if !reflect.DeepEqual(rec.RecentScores, want) {
		t.Errorf("RecentScores = %v, want %v", rec.RecentScores, want)
	}
	if rec.HighestRun != 113 || rec.Centuries != 7 {
		t.Errorf("unexpected record: %+v", rec)
	}

	// Blank trailing match columns are dropped, not zero-filled.
	rec, _ = s.BatterRecord("RG Sharma")
	if len(rec.RecentScores) != 3 {
		t.Errorf("partial history length = %d, want 3", len(rec.RecentScores))
	}
}

func TestNameListings(t *testing.T) {
	s := openFixture(t)

	perf := s.PerformanceNames()
	want := []string{"JJ Bumrah", "MS Dhoni", "V Kohli"}
	if !reflect.DeepEqual(perf, want) {
		t.Errorf("PerformanceNames() = %v, want %v", perf, want)
	}

	fantasy := s.FantasyNames()
	wantFantasy := []string{"AB de Villiers", "JJ Bumrah", "RG Sharma", "V Kohli"}
	if !reflect.DeepEqual(fantasy, wantFantasy) {
		t.Errorf("FantasyNames() = %v, want %v", fantasy, wantFantasy)
	}

	batters := s.BatterNames()
	if !reflect.DeepEqual(batters, []string{"V Kohli", "RG Sharma"}) {
		t.Errorf("BatterNames() = %v", batters)
	}
}

func TestClusterLookups(t *testing.T) {
	s := openFixture(t)

	if got := len(s.BatterClusters()); got != 2 {
		t.Errorf("BatterClusters() length = %d, want 2", got)
	}

	r, ok := s.BatterCluster("ab de villiers")
	if !ok {
		t.Fatal("expected cluster for lowercased name")
	}
	if r.Label != "Power Hitter" || r.Sixes != 251 {
		t.Errorf("unexpected cluster record: %+v", r)
	}

	if _, ok := s.BowlerCluster("V Kohli"); ok {
		t.Error("batter should not appear in bowler clusters")
	}
}

func TestMissingFilesLeaveTablesEmpty(t *testing.T) {
	s := Open(t.TempDir(), zap.NewNop().Sugar())

	if _, ok := s.BatterSummary("V Kohli"); ok {
		t.Error("expected empty tables")
	}
	if names := s.PerformanceNames(); len(names) != 0 {
		t.Errorf("PerformanceNames() = %v, want empty", names)
	}
	if clusters := s.BatterClusters(); len(clusters) != 0 {
		t.Errorf("BatterClusters() = %v, want empty", clusters)
	}
}
