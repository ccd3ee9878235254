package models

// Model is a binary classifier over fixed-width feature vectors.
type Model interface {
	Fit(X [][]float64, y []int) error
	Predict(X [][]float64) []int
	PredictProba(X [][]float64) []float64
	Name() string
}
