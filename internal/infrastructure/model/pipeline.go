package model

import (
	"context"
	"fmt"
	"math"

	"housing_price/internal/domain"
	"housing_price/internal/domain/entity"
	"housing_price/internal/domain/value"
	"housing_price/pkg/errcodes"
)

type estimator interface {
	predict(x []float64) float64
}

// Pipeline is a loaded artifact. It is never mutated after ParseArtifact and
// may be shared by any number of goroutines.
type Pipeline struct {
	info      entity.ModelInfo
	scaler    *scaler
	estimator estimator
}

func (p *Pipeline) Info() entity.ModelInfo {
	return p.info
}

func (p *Pipeline) Predict(_ context.Context, v value.FeatureVector) (float64, error) {
	x := v.Slice()

	if p.scaler != nil {
		p.scaler.transform(x)
	}

	y := p.estimator.predict(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, domain.Errorf(errcodes.InternalServerError, "model produced non-finite output %v", y)
	}

	return y, nil
}

type scaler struct {
	mean  []float64
	scale []float64
}

func newScaler(f scalerFile) (*scaler, error) {
	if len(f.Mean) != value.FeatureCount || len(f.Scale) != value.FeatureCount {
		return nil, domain.Errorf(errcodes.ModelSchemaMismatch,
			"scaler has %d/%d entries, want %d", len(f.Mean), len(f.Scale), value.FeatureCount)
	}

	for i, s := range f.Scale {
		if s == 0 {
			return nil, domain.Errorf(errcodes.ModelSchemaMismatch, "scaler: zero scale for %s", value.FeatureNames[i])
		}
	}

	return &scaler{mean: f.Mean, scale: f.Scale}, nil
}

func (s *scaler) transform(x []float64) {
	for i := range x {
		x[i] = (x[i] - s.mean[i]) / s.scale[i]
	}
}

type linear struct {
	intercept    float64
	coefficients []float64
}

func (l linear) predict(x []float64) float64 {
	y := l.intercept
	for i, c := range l.coefficients {
		y += c * x[i]
	}

	return y
}

type tree struct {
	feature   []int
	threshold []float64
	left      []int
	right     []int
	value     []float64
}

func (t tree) predict(x []float64) float64 {
	node := 0

	for t.left[node] != leaf {
		if x[t.feature[node]] <= t.threshold[node] {
			node = t.left[node]
		} else {
			node = t.right[node]
		}
	}

	return t.value[node]
}

const leaf = -1

// forest averages its trees, as a regression random forest does.
type forest []tree

func newForest(files []treeFile) (forest, error) {
	if len(files) == 0 {
		return nil, domain.NewError(errcodes.ModelSchemaMismatch, "no trees")
	}

	f := make(forest, 0, len(files))

	for i, tf := range files {
		t, err := newTree(tf)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}

		f = append(f, t)
	}

	return f, nil
}

func (f forest) predict(x []float64) float64 {
	var sum float64
	for _, t := range f {
		sum += t.predict(x)
	}

	return sum / float64(len(f))
}

// newTree checks the node arrays so that predict can walk them without
// bounds failures or cycles: children always point forward.
func newTree(tf treeFile) (tree, error) {
	n := len(tf.Left)

	if n == 0 || len(tf.Right) != n || len(tf.Feature) != n || len(tf.Threshold) != n || len(tf.Value) != n {
		return tree{}, domain.NewError(errcodes.ModelSchemaMismatch, "node arrays are empty or of different lengths")
	}

	for i := range n {
		l, r := tf.Left[i], tf.Right[i]

		if l == leaf || r == leaf {
			if l != r {
				return tree{}, domain.Errorf(errcodes.ModelSchemaMismatch, "node %d has a single child", i)
			}

			continue
		}

		if l <= i || l >= n || r <= i || r >= n {
			return tree{}, domain.Errorf(errcodes.ModelSchemaMismatch, "node %d has children out of order", i)
		}

		if f := tf.Feature[i]; f < 0 || f >= value.FeatureCount {
			return tree{}, domain.Errorf(errcodes.ModelSchemaMismatch, "node %d splits on unknown feature %d", i, f)
		}
	}

	return tree{
		feature:   tf.Feature,
		threshold: tf.Threshold,
		left:      tf.Left,
		right:     tf.Right,
		value:     tf.Value,
	}, nil
}
