package models

import (
	"errors"
	"fmt"

	"winequality/internal/features"
)

var (
	ErrNotReady       = errors.New("predictor is not trained")
	ErrAlreadyTrained = errors.New("predictor is already trained")
)

// Class is the binary outcome of a prediction.
type Class int

const (
	Bad  Class = 0
	Good Class = 1
)

func (c Class) String() string {
	if c == Good {
		return "good"
	}
	return "bad"
}

// Predictor owns a Model through its two states: untrained until Fit
// succeeds once, trained and read-only afterwards. A trained Predictor is
// safe for concurrent use.
type Predictor struct {
	model   Model
	trained bool
}

func NewPredictor(m Model) *Predictor {
	return &Predictor{model: m}
}

func (p *Predictor) Trained() bool { return p.trained }

func (p *Predictor) Name() string { return p.model.Name() }

// Model returns the fitted model, or nil while untrained.
func (p *Predictor) Model() Model {
	if !p.trained {
		return nil
	}
	return p.model
}

func (p *Predictor) Fit(X [][]float64, y []int) error {
	if p.trained {
		return ErrAlreadyTrained
	}
	for i, x := range X {
		if err := features.Validate(x); err != nil {
			return fmt.Errorf("training row %d: %w", i, err)
		}
	}
	if err := p.model.Fit(X, y); err != nil {
		return err
	}
	p.trained = true
	return nil
}

// PredictOne classifies a single vector of the 11 features in
// features.Names() order.
func (p *Predictor) PredictOne(x []float64) (Class, error) {
	if !p.trained {
		return Bad, ErrNotReady
	}
	if err := features.Validate(x); err != nil {
		return Bad, err
	}
	in := append([]float64(nil), x...)
	return Class(p.model.Predict([][]float64{in})[0]), nil
}

// Probability returns the model's probability of the good class.
func (p *Predictor) Probability(x []float64) (float64, error) {
	if !p.trained {
		return 0, ErrNotReady
	}
	if err := features.Validate(x); err != nil {
		return 0, err
	}
	return p.model.PredictProba([][]float64{x})[0], nil
}

// Evaluate scores the trained model on a held-out partition.
func (p *Predictor) Evaluate(X [][]float64, y []int) (Report, error) {
	if !p.trained {
		return Report{}, ErrNotReady
	}
	return Evaluate(p.model, X, y)
}
