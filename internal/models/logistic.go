package models

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

// LogisticRegression is an L2-penalised binary logistic regression fitted
// with L-BFGS. It minimises C*sum(logloss) + ||w||^2/2; the intercept is not
// penalised.
type LogisticRegression struct {
	C       float64
	Tol     float64
	MaxIter int

	Weights    []float64
	Bias       float64
	Iterations int
	Converged  bool
}

func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{C: 1.0, Tol: 1e-4, MaxIter: 100}
}

func (lr *LogisticRegression) Name() string { return "LogisticRegression" }

func sigmoid(z float64) float64 { return 1.0 / (1.0 + math.Exp(-z)) }

// log(1 + e^z) without overflow
func softplus(z float64) float64 {
	if z > 0 {
		return z + math.Log1p(math.Exp(-z))
	}
	return math.Log1p(math.Exp(z))
}

func (lr *LogisticRegression) Fit(X [][]float64, y []int) error {
	n := len(X)
	if n == 0 {
		return errors.New("no training rows")
	}
	if len(y) != n {
		return fmt.Errorf("%d rows but %d labels", n, len(y))
	}
	d := len(X[0])
	pos := 0
	for i := range X {
		if len(X[i]) != d {
			return fmt.Errorf("row %d has %d features, want %d", i, len(X[i]), d)
		}
		switch y[i] {
		case 0:
		case 1:
			pos++
		default:
			return fmt.Errorf("label %d at row %d is not 0 or 1", y[i], i)
		}
	}
	if pos == 0 || pos == n {
		return errors.New("training data must contain both classes")
	}
	if lr.C <= 0 {
		lr.C = 1.0
	}
	if lr.Tol <= 0 {
		lr.Tol = 1e-4
	}
	if lr.MaxIter <= 0 {
		lr.MaxIter = 100
	}

	// Optimise over standardised columns z = (x-mu)/s with weights v = w*s.
	// The penalty is kept in raw units (w = v/s), so the optimum is the raw
	// problem's optimum.
	mu := make([]float64, d)
	sd := make([]float64, d)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		for i := range X {
			col[i] = X[i][j]
		}
		mu[j], sd[j] = stat.PopMeanStdDev(col, nil)
		if sd[j] == 0 || math.IsNaN(sd[j]) {
			sd[j] = 1
		}
	}
	Z := mat.NewDense(n, d, nil)
	for i := range X {
		for j := 0; j < d; j++ {
			Z.Set(i, j, (X[i][j]-mu[j])/sd[j])
		}
	}
	target := make([]float64, n)
	for i := range y {
		target[i] = float64(y[i])
	}

	logits := func(theta []float64) *mat.VecDense {
		var t mat.VecDense
		t.MulVec(Z, mat.NewVecDense(d, theta[:d]))
		t.AddVec(&t, constVec(n, theta[d]))
		return &t
	}
	problem := optimize.Problem{
		Func: func(theta []float64) float64 {
			t := logits(theta)
			loss := 0.0
			for i := 0; i < n; i++ {
				ti := t.AtVec(i)
				loss += softplus(ti) - target[i]*ti
			}
			pen := 0.0
			for j := 0; j < d; j++ {
				w := theta[j] / sd[j]
				pen += w * w
			}
			return lr.C*loss + 0.5*pen
		},
		Grad: func(grad, theta []float64) {
			t := logits(theta)
			r := mat.NewVecDense(n, nil)
			sum := 0.0
			for i := 0; i < n; i++ {
				ri := lr.C * (sigmoid(t.AtVec(i)) - target[i])
				r.SetVec(i, ri)
				sum += ri
			}
			g := mat.NewVecDense(d, grad[:d])
			g.MulVec(Z.T(), r)
			for j := 0; j < d; j++ {
				grad[j] += theta[j] / (sd[j] * sd[j])
			}
			grad[d] = sum
		},
	}

	theta0 := make([]float64, d+1)
	base := float64(pos) / float64(n)
	theta0[d] = math.Log(base / (1.0 - base))

	settings := &optimize.Settings{
		GradientThreshold: lr.Tol,
		MajorIterations:   lr.MaxIter,
	}
	res, err := optimize.Minimize(problem, theta0, settings, &optimize.LBFGS{})
	if res == nil {
		return fmt.Errorf("fit logistic regression: %w", err)
	}
	if err != nil && !errors.Is(err, optimize.ErrLinesearcherFailure) && !errors.Is(err, optimize.ErrNoProgress) {
		return fmt.Errorf("fit logistic regression: %w", err)
	}
	if !allFinite(res.X) {
		return errors.New("fit logistic regression: solution is not finite")
	}

	lr.Weights = make([]float64, d)
	lr.Bias = res.X[d]
	for j := 0; j < d; j++ {
		lr.Weights[j] = res.X[j] / sd[j]
		lr.Bias -= res.X[j] * mu[j] / sd[j]
	}
	lr.Iterations = res.Stats.MajorIterations
	lr.Converged = err == nil && res.Status != optimize.IterationLimit
	return nil
}

// DecisionFunction is the linear score w.x + b.
func (lr *LogisticRegression) DecisionFunction(x []float64) float64 {
	return floats.Dot(lr.Weights, x) + lr.Bias
}

func (lr *LogisticRegression) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i := range X {
		out[i] = sigmoid(lr.DecisionFunction(X[i]))
	}
	return out
}

// Predict returns 1 where the score is positive, i.e. probability above 0.5.
func (lr *LogisticRegression) Predict(X [][]float64) []int {
	out := make([]int, len(X))
	for i := range X {
		if lr.DecisionFunction(X[i]) > 0 {
			out[i] = 1
		}
	}
	return out
}

func allFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func constVec(n int, v float64) *mat.VecDense {
	data := make([]float64, n)
	for i := range data {
		data[i] = v
	}
	return mat.NewVecDense(n, data)
}
