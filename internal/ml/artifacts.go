package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ErrModelUnavailable signals that a required model or scaler failed to
// load. Predictors must surface it instead of fabricating output.
var ErrModelUnavailable = errors.New("prediction model unavailable")

// Artifact file names inside the model directory.
const (
	scoreModelFile   = "score_model.json"
	scoreScalerFile  = "score_scaler.json"
	scoreColumnsFile = "score_feature_columns.json"
	batterModelFile  = "batter_model.json"
	bowlerModelFile  = "bowler_model.json"
	fantasyModelFile = "fantasy_model.json"
)

// Artifacts bundles every trained model and fitted transformer the service
// uses. Loaded once at startup, read-only afterwards. A nil field means
// that artifact failed to load; the predictors depending on it fail each
// request with ErrModelUnavailable rather than aborting startup, so the
// endpoints backed by healthy artifacts stay available.
type Artifacts struct {
	ScoreModel     *LinearModel
	ScoreScaler    *StandardScaler
	FeatureColumns []string

	BatterModel  *LinearModel
	BowlerModel  *LinearModel
	FantasyModel *LinearModel
}

// Load reads the model artifacts from dir. Individual load failures are
// logged as warnings and leave the corresponding field nil.
func Load(dir string, logger *zap.SugaredLogger) *Artifacts {
	a := &Artifacts{}

	if m, err := loadModel(filepath.Join(dir, scoreModelFile)); err != nil {
		logger.Warnw("Could not load score model", "error", err)
	} else {
		a.ScoreModel = m
	}

	if s, err := loadScaler(filepath.Join(dir, scoreScalerFile)); err != nil {
		logger.Warnw("Could not load score scaler", "error", err)
	} else {
		a.ScoreScaler = s
	}

	var cols []string
	if err := readJSON(filepath.Join(dir, scoreColumnsFile), &cols); err != nil {
		logger.Warnw("Could not load feature columns", "error", err)
	} else {
		a.FeatureColumns = cols
	}

	if m, err := loadModel(filepath.Join(dir, batterModelFile)); err != nil {
		logger.Warnw("Could not load batter model", "error", err)
	} else {
		a.BatterModel = m
	}

	if m, err := loadModel(filepath.Join(dir, bowlerModelFile)); err != nil {
		logger.Warnw("Could not load bowler model", "error", err)
	} else {
		a.BowlerModel = m
	}

	if m, err := loadModel(filepath.Join(dir, fantasyModelFile)); err != nil {
		logger.Warnw("Could not load fantasy model", "error", err)
	} else {
		a.FantasyModel = m
	}

	logger.Infow("Model artifacts loaded",
		"score_model", a.ScoreModel != nil,
		"score_scaler", a.ScoreScaler != nil,
		"feature_columns", len(a.FeatureColumns),
		"batter_model", a.BatterModel != nil,
		"bowler_model", a.BowlerModel != nil,
		"fantasy_model", a.FantasyModel != nil,
	)
	return a
}

func loadModel(path string) (*LinearModel, error) {
	var m LinearModel
	if err := readJSON(path, &m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return &m, nil
}

func loadScaler(path string) (*StandardScaler, error) {
	var s StandardScaler
	if err := readJSON(path, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return &s, nil
}

func readJSON(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
