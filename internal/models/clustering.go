package models

// BatterCluster is one playing-style group with averaged batting traits.
type BatterCluster struct {
	ClusterLabel  string   `json:"cluster_label"`
	Members       []string `json:"members"`
	AvgStrikeRate float64  `json:"avg_strike_rate"`
	Avg4s         float64  `json:"avg_4s"`
	Avg6s         float64  `json:"avg_6s"`
	Count         int      `json:"count"`
}

// BowlerCluster is one playing-style group with averaged bowling traits.
type BowlerCluster struct {
	ClusterLabel string   `json:"cluster_label"`
	Members      []string `json:"members"`
	AvgEconomy   float64  `json:"avg_economy"`
	AvgWickets   float64  `json:"avg_wickets"`
	Count        int      `json:"count"`
}

// BatterClusterDetail is a single batter's cluster assignment.
type BatterClusterDetail struct {
	Player       string  `json:"player"`
	Cluster      int     `json:"cluster"`
	ClusterLabel string  `json:"cluster_label"`
	StrikeRate   float64 `json:"strike_rate"`
	Fours        int     `json:"4s"`
	Sixes        int     `json:"6s"`
}

// BowlerClusterDetail is a single bowler's cluster assignment.
type BowlerClusterDetail struct {
	Player       string  `json:"player"`
	Cluster      int     `json:"cluster"`
	ClusterLabel string  `json:"cluster_label"`
	Economy      float64 `json:"economy"`
	Wickets      int     `json:"wickets"`
}
