package models

import (
	"errors"
	"math"
	"testing"

	"gotest.tools/v3/assert"

	"winequality/internal/data"
	"winequality/internal/features"
)

func trainedPredictor(t *testing.T) *Predictor {
	t.Helper()
	X, y := correlatedData(300, 21)
	p := NewPredictor(NewLogisticRegression())
	assert.NilError(t, p.Fit(X, y))
	return p
}

func TestPredictorStates(t *testing.T) {
	p := NewPredictor(NewLogisticRegression())
	assert.Assert(t, !p.Trained())
	assert.Assert(t, p.Model() == nil)

	_, err := p.PredictOne(make([]float64, data.NumFeatures))
	assert.Assert(t, errors.Is(err, ErrNotReady))
	_, err = p.Probability(make([]float64, data.NumFeatures))
	assert.Assert(t, errors.Is(err, ErrNotReady))
	_, err = p.Evaluate([][]float64{make([]float64, data.NumFeatures)}, []int{1})
	assert.Assert(t, errors.Is(err, ErrNotReady))

	X, y := correlatedData(100, 1)
	assert.NilError(t, p.Fit(X, y))
	assert.Assert(t, p.Trained())
	assert.Equal(t, p.Name(), "LogisticRegression")

	err = p.Fit(X, y)
	assert.Assert(t, errors.Is(err, ErrAlreadyTrained))
}

func TestPredictorFailedFitStaysUntrained(t *testing.T) {
	p := NewPredictor(NewLogisticRegression())
	X, y := correlatedData(50, 2)
	for i := range y {
		y[i] = 1
	}
	assert.ErrorContains(t, p.Fit(X, y), "both classes")
	assert.Assert(t, !p.Trained())

	err := p.Fit([][]float64{{1, 2}}, []int{1})
	assert.Assert(t, errors.Is(err, features.ErrInvalidInput))
}

func TestPredictOne(t *testing.T) {
	p := trainedPredictor(t)

	good := make([]float64, data.NumFeatures)
	good[0] = 1
	bad := make([]float64, data.NumFeatures)

	c, err := p.PredictOne(good)
	assert.NilError(t, err)
	assert.Equal(t, c, Good)
	assert.Equal(t, c.String(), "good")

	for i := 0; i < 3; i++ {
		again, err := p.PredictOne(good)
		assert.NilError(t, err)
		assert.Equal(t, again, c)
	}

	c, err = p.PredictOne(bad)
	assert.NilError(t, err)
	assert.Equal(t, c, Bad)
	assert.Equal(t, c.String(), "bad")

	prob, err := p.Probability(good)
	assert.NilError(t, err)
	assert.Assert(t, prob > 0.5)
}

func TestPredictOneRejectsWithoutMutation(t *testing.T) {
	p := trainedPredictor(t)
	lr := p.Model().(*LogisticRegression)
	weights := append([]float64(nil), lr.Weights...)
	bias := lr.Bias

	probe := make([]float64, data.NumFeatures)
	probe[0] = 1
	before, err := p.PredictOne(probe)
	assert.NilError(t, err)

	nan := make([]float64, data.NumFeatures)
	nan[3] = math.NaN()
	inputs := [][]float64{
		nil,
		make([]float64, data.NumFeatures-1),
		make([]float64, data.NumFeatures+1),
		nan,
		{math.Inf(1), 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	for _, in := range inputs {
		_, err := p.PredictOne(in)
		assert.Assert(t, errors.Is(err, features.ErrInvalidInput), "input %v", in)
	}

	assert.DeepEqual(t, lr.Weights, weights)
	assert.Equal(t, lr.Bias, bias)
	after, err := p.PredictOne(probe)
	assert.NilError(t, err)
	assert.Equal(t, after, before)
}

func TestPredictorEvaluate(t *testing.T) {
	p := trainedPredictor(t)
	X, y := correlatedData(120, 99)
	r, err := p.Evaluate(X, y)
	assert.NilError(t, err)
	assert.Equal(t, r.Samples, 120)
	assert.Assert(t, r.Accuracy > 0.9, "accuracy %v", r.Accuracy)
	assert.Assert(t, r.ROCAUC > 0.9, "auc %v", r.ROCAUC)
}
