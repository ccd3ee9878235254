// Package app wires the dataset, the trained predictor and the exploration
// helpers into one immutable Context built at startup.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"winequality/internal/config"
	"winequality/internal/data"
	"winequality/internal/explore"
	"winequality/internal/features"
	"winequality/internal/models"
)

const (
	GoodMessage = "This wine is predicted to be good quality."
	BadMessage  = "This wine is predicted to be bad quality."
)

type Options struct {
	TestRatio    float64
	Seed         int64
	C            float64
	Tolerance    float64
	MaxIter      int
	ScatterCache int
}

func DefaultOptions() Options {
	return OptionsFrom(config.Default())
}

func OptionsFrom(cfg config.Config) Options {
	return Options{
		TestRatio:    cfg.Data.TestRatio,
		Seed:         cfg.Data.Seed,
		C:            cfg.Model.C,
		Tolerance:    cfg.Model.Tolerance,
		MaxIter:      cfg.Model.MaxIter,
		ScatterCache: cfg.Cache.ScatterImages,
	}
}

// Prediction is the answer to one prediction request.
type Prediction struct {
	Class       string  `json:"class"`
	Message     string  `json:"prediction"`
	Probability float64 `json:"probability"`
}

// Summary describes the loaded data and the fitted model.
type Summary struct {
	Dataset    data.Stats         `json:"dataset"`
	Train      int                `json:"train"`
	Test       int                `json:"test"`
	Model      string             `json:"model"`
	Weights    map[string]float64 `json:"weights"`
	Bias       float64            `json:"bias"`
	Iterations int                `json:"iterations"`
	Converged  bool               `json:"converged"`
}

// Context holds everything the dashboard needs. Nothing in it changes after
// Init returns, so it can be shared by concurrent requests.
type Context struct {
	dataset   *data.Dataset
	split     data.Split
	predictor *models.Predictor
	report    models.Report
	corr      explore.CorrelationMatrix
	renderer  *explore.Renderer
	summary   Summary
}

// Init loads the configured dataset and builds the Context. Any error is
// fatal for the process.
func Init(cfg config.Config, logger *zap.Logger) (*Context, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ds, err := data.Load(cfg.Data.Path, data.Options{Delimiter: cfg.DelimiterRune()})
	if err != nil {
		return nil, err
	}
	logger.Info("dataset loaded",
		zap.String("path", cfg.Data.Path),
		zap.Int("rows", ds.Stats.Rows),
		zap.Int("dropped_missing", ds.Stats.DroppedMissing),
		zap.Int("dropped_duplicates", ds.Stats.DroppedDuplicates),
		zap.Int("kept", ds.Stats.Kept),
	)
	return New(ds, OptionsFrom(cfg), logger)
}

// New splits ds, fits the classifier on the training partition and scores
// it on the test partition.
func New(ds *data.Dataset, opts Options, logger *zap.Logger) (*Context, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	split, err := ds.Split(opts.TestRatio, opts.Seed)
	if err != nil {
		return nil, err
	}

	lr := models.NewLogisticRegression()
	if opts.C > 0 {
		lr.C = opts.C
	}
	if opts.Tolerance > 0 {
		lr.Tol = opts.Tolerance
	}
	if opts.MaxIter > 0 {
		lr.MaxIter = opts.MaxIter
	}
	p := models.NewPredictor(lr)
	if err := p.Fit(split.XTrain, split.YTrain); err != nil {
		return nil, fmt.Errorf("train model: %w", err)
	}
	if !lr.Converged {
		logger.Warn("solver stopped before converging", zap.Int("iterations", lr.Iterations))
	}

	report, err := p.Evaluate(split.XTest, split.YTest)
	if err != nil {
		return nil, fmt.Errorf("evaluate model: %w", err)
	}
	logger.Info("model trained",
		zap.String("model", report.Model),
		zap.Int("train", len(split.XTrain)),
		zap.Int("test", len(split.XTest)),
		zap.Float64("accuracy", report.Accuracy),
		zap.Float64("precision", report.Precision),
		zap.Float64("recall", report.Recall),
		zap.Float64("f1", report.F1),
		zap.Float64("roc_auc", report.ROCAUC),
	)

	renderer, err := explore.NewRenderer(ds, opts.ScatterCache)
	if err != nil {
		return nil, err
	}

	weights := make(map[string]float64, len(lr.Weights))
	for i, name := range features.Names() {
		weights[name] = lr.Weights[i]
	}
	return &Context{
		dataset:   ds,
		split:     split,
		predictor: p,
		report:    report,
		corr:      explore.Correlation(ds),
		renderer:  renderer,
		summary: Summary{
			Dataset:    ds.Stats,
			Train:      len(split.XTrain),
			Test:       len(split.XTest),
			Model:      lr.Name(),
			Weights:    weights,
			Bias:       lr.Bias,
			Iterations: lr.Iterations,
			Converged:  lr.Converged,
		},
	}, nil
}

// PredictQuality is the inference entry point of the dashboard: it takes the
// 11 named inputs and returns one of GoodMessage or BadMessage.
func (c *Context) PredictQuality(inputs map[string]string) (string, error) {
	p, err := c.Predict(inputs)
	if err != nil {
		return "", err
	}
	return p.Message, nil
}

func (c *Context) Predict(inputs map[string]string) (Prediction, error) {
	x, err := features.ParseInputs(inputs)
	if err != nil {
		return Prediction{}, err
	}
	class, err := c.predictor.PredictOne(x)
	if err != nil {
		return Prediction{}, err
	}
	prob, err := c.predictor.Probability(x)
	if err != nil {
		return Prediction{}, err
	}
	msg := BadMessage
	if class == models.Good {
		msg = GoodMessage
	}
	return Prediction{Class: class.String(), Message: msg, Probability: prob}, nil
}

// Scatter is the exploration entry point: (x, y, label) for every row.
func (c *Context) Scatter(x, y string) ([]explore.Point, error) {
	return explore.Scatter(c.dataset, x, y)
}

func (c *Context) ScatterPNG(x, y string) ([]byte, error) {
	return c.renderer.ScatterPNG(x, y)
}

func (c *Context) Correlation() explore.CorrelationMatrix { return c.corr }

func (c *Context) Metrics() models.Report { return c.report }

func (c *Context) Summary() Summary { return c.summary }

func (c *Context) Fields() []features.Field { return features.Fields() }

func (c *Context) Columns() []string { return explore.Columns() }

func (c *Context) Dataset() *data.Dataset { return c.dataset }

func (c *Context) Split() data.Split { return c.split }

func (c *Context) Predictor() *models.Predictor { return c.predictor }
