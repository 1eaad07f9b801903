package ml

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LinearModel is a trained linear regressor with one or more outputs.
// Predict is a pure function of the loaded weights, so a single instance is
// safe for concurrent use.
type LinearModel struct {
	Columns   []string    `json:"columns"`
	Weights   [][]float64 `json:"weights"` // one row of feature weights per output
	Intercept []float64   `json:"intercept"`
}

// Validate checks weight and intercept shapes against the column list.
func (m *LinearModel) Validate() error {
	if len(m.Columns) == 0 {
		return errors.New("model has no feature columns")
	}
	if len(m.Weights) == 0 {
		return errors.New("model has no weights")
	}
	if len(m.Weights) != len(m.Intercept) {
		return fmt.Errorf("model has %d weight rows but %d intercepts",
			len(m.Weights), len(m.Intercept))
	}
	for i, row := range m.Weights {
		if len(row) != len(m.Columns) {
			return fmt.Errorf("weight row %d has %d values, expected %d",
				i, len(row), len(m.Columns))
		}
	}
	return nil
}

// Predict computes W*x + b for the assembled feature vector. The vector
// length must match the trained column count exactly: shape mismatches are
// an internal invariant violation, never silently truncated or padded
// (padding is the assembler's job, done before invocation).
func (m *LinearModel) Predict(x *mat.VecDense) ([]float64, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if x.Len() != len(m.Columns) {
		return nil, fmt.Errorf("feature vector has %d values, model expects %d",
			x.Len(), len(m.Columns))
	}

	flat := make([]float64, 0, len(m.Weights)*len(m.Columns))
	for _, row := range m.Weights {
		flat = append(flat, row...)
	}
	w := mat.NewDense(len(m.Weights), len(m.Columns), flat)

	var y mat.VecDense
	y.MulVec(w, x)

	out := make([]float64, len(m.Intercept))
	for i := range out {
		out[i] = y.AtVec(i) + m.Intercept[i]
	}
	return out, nil
}

// PredictOne runs a single-output model over plain feature values.
func (m *LinearModel) PredictOne(features ...float64) (float64, error) {
	out, err := m.Predict(mat.NewVecDense(len(features), features))
	if err != nil {
		return 0, err
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("model produced %d outputs, expected 1", len(out))
	}
	return out[0], nil
}
