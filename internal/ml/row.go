// Package ml holds the feature engineering and model inference layer:
// fixed-vocabulary one-hot encoding, innings-progress derived features,
// scaler alignment and the linear models the prediction services invoke.
// Everything here is a pure function of startup-loaded artifacts, so it is
// safe for concurrent use without locking.
package ml

import "gonum.org/v1/gonum/mat"

// Row is an insertion-ordered feature row keyed by column name. A row is
// built once by the assembler and consumed once by a model.
type Row struct {
	names []string
	vals  map[string]float64
}

func NewRow() *Row {
	return &Row{vals: make(map[string]float64)}
}

// Set adds or overwrites a column value. First-set order is preserved.
func (r *Row) Set(name string, v float64) {
	if _, ok := r.vals[name]; !ok {
		r.names = append(r.names, name)
	}
	r.vals[name] = v
}

// Get returns a column value and whether the column exists.
func (r *Row) Get(name string) (float64, bool) {
	v, ok := r.vals[name]
	return v, ok
}

// Len returns the number of columns set on the row.
func (r *Row) Len() int { return len(r.names) }

// Columns returns the column names in insertion order.
func (r *Row) Columns() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Reindex orders the row against the reference column list fixed at
// training time. Columns missing from the row are filled with 0 and columns
// not in the reference list are dropped. This is the guard against
// vocabulary drift between serving and training: a category the model never
// saw degrades to no indicator set instead of a shape error.
func (r *Row) Reindex(columns []string) *mat.VecDense {
	v := mat.NewVecDense(len(columns), nil)
	for i, name := range columns {
		v.SetVec(i, r.vals[name])
	}
	return v
}
