package ml

import "fmt"

// StandardScaler holds the per-column mean and scale of a scaler fitted at
// training time on the numeric feature subset.
type StandardScaler struct {
	Columns []string  `json:"columns"`
	Mean    []float64 `json:"mean"`
	Scale   []float64 `json:"scale"`
}

// Validate checks that the parameter slices are aligned with the columns.
func (s *StandardScaler) Validate() error {
	if len(s.Columns) == 0 {
		return fmt.Errorf("scaler has no columns")
	}
	if len(s.Mean) != len(s.Columns) || len(s.Scale) != len(s.Columns) {
		return fmt.Errorf("scaler parameters misaligned: %d columns, %d mean, %d scale",
			len(s.Columns), len(s.Mean), len(s.Scale))
	}
	return nil
}

// TransformRow standardizes exactly the scaler's columns in place as
// (x - mean) / scale, leaving every other column untouched. Every scaler
// column must already be present on the row.
func (s *StandardScaler) TransformRow(r *Row) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for i, col := range s.Columns {
		v, ok := r.Get(col)
		if !ok {
			return fmt.Errorf("scaler column %q missing from row", col)
		}
		scale := s.Scale[i]
		if scale == 0 {
			// Zero-variance columns divide by 1.
			scale = 1
		}
		r.Set(col, (v-s.Mean[i])/scale)
	}
	return nil
}
