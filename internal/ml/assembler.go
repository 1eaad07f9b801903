package ml

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Assembler turns raw match state into the exact fixed-order vector the
// live-match model was trained on.
type Assembler struct {
	Teams   []string
	Venues  []string
	Scaler  *StandardScaler
	Columns []string // reference column order fixed at training time
}

// Assemble encodes the categorical fields, attaches the raw and derived
// numeric features, applies the fitted scaler to the numeric subset only,
// and reindexes the row against the training columns (fill-zero for
// anything missing, drop for anything extra).
func (a *Assembler) Assemble(state InningsState, battingTeam, bowlingTeam, venue string) (*mat.VecDense, error) {
	row := NewRow()
	EncodeOneHot(row, "batting_team", battingTeam, a.Teams)
	EncodeOneHot(row, "bowling_team", bowlingTeam, a.Teams)
	EncodeOneHot(row, "venue", venue, a.Venues)
	state.AppendNumeric(row)

	if err := a.Scaler.TransformRow(row); err != nil {
		return nil, fmt.Errorf("scale numeric features: %w", err)
	}
	return row.Reindex(a.Columns), nil
}
