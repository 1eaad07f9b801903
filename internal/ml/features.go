package ml

// BallsPerInnings is the number of legal deliveries in a 20-over innings.
const BallsPerInnings = 120

// NumericColumns is the fixed order of the raw and derived numeric
// features. The scaler was fitted on these columns in this order.
var NumericColumns = []string{
	"current_score", "wickets", "runs_last_5",
	"balls_remaining", "run_rate", "required_run_rate",
}

// InningsState is the raw in-innings match state the progress features are
// derived from. Target is nil in the first innings.
type InningsState struct {
	Over         int
	Ball         int
	CurrentScore int
	Wickets      int
	RunsLast5    int
	Target       *int
}

// BallsBowled returns the legal deliveries bowled so far.
func (s InningsState) BallsBowled() int {
	return s.Over*6 + s.Ball
}

// BallsRemaining returns the legal deliveries left in the innings.
func (s InningsState) BallsRemaining() int {
	return BallsPerInnings - s.BallsBowled()
}

// RunRate is runs per over bowled so far, 0 before the first ball. The
// denominator is overs, not balls.
func (s InningsState) RunRate() float64 {
	balls := s.BallsBowled()
	if balls == 0 {
		return 0
	}
	return float64(s.CurrentScore) / (float64(balls) / 6.0)
}

// RequiredRunRate is the runs-per-over pace needed to reach the target,
// 0 when no target is set or no balls remain.
func (s InningsState) RequiredRunRate() float64 {
	if s.Target == nil {
		return 0
	}
	remaining := s.BallsRemaining()
	if remaining <= 0 {
		return 0
	}
	runsRequired := *s.Target - s.CurrentScore
	return float64(runsRequired) / (float64(remaining) / 6.0)
}

// AppendNumeric attaches the numeric feature subset to r in NumericColumns
// order.
func (s InningsState) AppendNumeric(r *Row) {
	r.Set("current_score", float64(s.CurrentScore))
	r.Set("wickets", float64(s.Wickets))
	r.Set("runs_last_5", float64(s.RunsLast5))
	r.Set("balls_remaining", float64(s.BallsRemaining()))
	r.Set("run_rate", s.RunRate())
	r.Set("required_run_rate", s.RequiredRunRate())
}
