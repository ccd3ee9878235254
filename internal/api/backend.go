// Package api exposes the dashboard over HTTP with gin.
package api

import (
	"winequality/internal/app"
	"winequality/internal/explore"
	"winequality/internal/features"
	"winequality/internal/models"
)

//go:generate mockgen -destination=backend_mock_test.go -package=api . Backend

// Backend is what the handlers need from the application. *app.Context
// implements it.
type Backend interface {
	Predict(inputs map[string]string) (app.Prediction, error)
	Scatter(x, y string) ([]explore.Point, error)
	ScatterPNG(x, y string) ([]byte, error)
	Correlation() explore.CorrelationMatrix
	Metrics() models.Report
	Summary() app.Summary
	Fields() []features.Field
	Columns() []string
}

var _ Backend = (*app.Context)(nil)
