package model

import (
	"fmt"
	"os"
	"slices"

	jsoniter "github.com/json-iterator/go"

	"housing_price/internal/domain"
	"housing_price/internal/domain/value"
	"housing_price/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	KindRandomForest = "random_forest"
	KindLinear       = "linear"
	KindRemote       = "remote"
)

var ErrSchemaMismatch = domain.NewError(errcodes.ModelSchemaMismatch, "model schema mismatch")

// artifactFile is the on-disk export of a trained pipeline: the feature list
// it was fit on, an optional standard scaler and one estimator.
type artifactFile struct {
	Kind         string      `json:"kind"`
	Name         string      `json:"name"`
	Version      string      `json:"version"`
	Features     []string    `json:"features"`
	Scaler       *scalerFile `json:"scaler,omitempty"`
	Intercept    float64     `json:"intercept,omitempty"`
	Coefficients []float64   `json:"coefficients,omitempty"`
	Trees        []treeFile  `json:"trees,omitempty"`
}

type scalerFile struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// treeFile stores a regression tree as parallel node arrays. A node whose
// left child is -1 is a leaf.
type treeFile struct {
	Feature   []int     `json:"feature"`
	Threshold []float64 `json:"threshold"`
	Left      []int     `json:"left"`
	Right     []int     `json:"right"`
	Value     []float64 `json:"value"`
}

// LoadArtifact reads and validates a pipeline export.
func LoadArtifact(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	p, err := ParseArtifact(data)
	if err != nil {
		return nil, fmt.Errorf("ParseArtifact(%s): %w", path, err)
	}

	p.info.Source = path

	return p, nil
}

func ParseArtifact(data []byte) (*Pipeline, error) {
	var file artifactFile

	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	if !slices.Equal(file.Features, value.FeatureNames[:]) {
		return nil, domain.Errorf(errcodes.ModelSchemaMismatch,
			"artifact features %q do not match %q", file.Features, value.FeatureNames)
	}

	p := &Pipeline{}
	p.info.Kind = file.Kind
	p.info.Name = file.Name
	p.info.Version = file.Version
	p.info.Features = slices.Clone(file.Features)

	if file.Scaler != nil {
		s, err := newScaler(*file.Scaler)
		if err != nil {
			return nil, fmt.Errorf("scaler: %w", err)
		}

		p.scaler = s
	}

	switch file.Kind {
	case KindRandomForest:
		f, err := newForest(file.Trees)
		if err != nil {
			return nil, fmt.Errorf("random forest: %w", err)
		}

		p.estimator = f
		p.info.Trees = len(f)
	case KindLinear:
		if len(file.Coefficients) != value.FeatureCount {
			return nil, domain.Errorf(errcodes.ModelSchemaMismatch,
				"linear model has %d coefficients, want %d", len(file.Coefficients), value.FeatureCount)
		}

		p.estimator = linear{
			intercept:    file.Intercept,
			coefficients: slices.Clone(file.Coefficients),
		}
	default:
		return nil, domain.Errorf(errcodes.ModelSchemaMismatch, "unsupported model kind %q", file.Kind)
	}

	return p, nil
}
