package logic

import (
	"errors"

	"github.com/inmatchpro/analytics-api/internal/ml"
)

// ErrNotFound signals that a requested player or cluster does not exist in
// the reference tables.
var ErrNotFound = errors.New("not found")

// ErrModelUnavailable is surfaced when a prediction depends on a model
// artifact that failed to load at startup.
var ErrModelUnavailable = ml.ErrModelUnavailable
