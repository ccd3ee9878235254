package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"winequality/internal/config"
	"winequality/internal/data"
	"winequality/internal/models"
	"winequality/pkg/utils"
)

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	def := config.Default()
	path := flag.String("data", def.Data.Path, "CSV of red wine samples")
	delim := flag.String("delimiter", def.Data.Delimiter, "CSV delimiter")
	regen := flag.Bool("regen", false, "Write a synthetic dataset to -data first")
	n := flag.Int("n", 1599, "Number of synthetic rows")
	seed := flag.Int64("seed", def.Data.Seed, "Seed for the split and the synthetic data")
	testRatio := flag.Float64("test_ratio", def.Data.TestRatio, "Fraction of rows held out for testing")
	c := flag.Float64("c", def.Model.C, "Inverse regularisation strength")
	maxIter := flag.Int("max_iter", def.Model.MaxIter, "Solver iteration limit")
	rocImg := flag.String("roc_out_img", "cmd/api/static/roc_curve.png", "PNG of the ROC curve")
	curve := flag.Bool("curve", true, "Write the learning curve (PNG and CSV)")
	curvePoints := flag.Int("curve_points", 10, "Points on the learning curve")
	curveImg := flag.String("curve_out_img", "cmd/api/static/learning_curve.png", "PNG of the learning curve")
	curveCsv := flag.String("curve_out_csv", "data/learning_curve.csv", "CSV of the learning curve")
	curveMin := flag.Int("curve_min", 50, "Smallest training size on the curve")
	curveLog := flag.Bool("curve_log", true, "Space curve sizes logarithmically")
	flag.Parse()

	if *regen {
		logger.Info("generating synthetic dataset", zap.Int("n", *n), zap.String("out", *path))
		if err := data.GenerateSyntheticWines(*n, *seed, *path); err != nil {
			logger.Fatal("generate dataset", zap.Error(err))
		}
	}

	if len([]rune(*delim)) != 1 {
		logger.Fatal("delimiter must be a single character", zap.String("delimiter", *delim))
	}
	ds, err := data.Load(*path, data.Options{Delimiter: []rune(*delim)[0]})
	if err != nil {
		logger.Fatal("load dataset", zap.Error(err))
	}
	split, err := ds.Split(*testRatio, *seed)
	if err != nil {
		logger.Fatal("split dataset", zap.Error(err))
	}
	logger.Info("dataset ready",
		zap.Int("rows", ds.Stats.Rows),
		zap.Int("dropped_missing", ds.Stats.DroppedMissing),
		zap.Int("dropped_duplicates", ds.Stats.DroppedDuplicates),
		zap.Int("train", len(split.XTrain)),
		zap.Int("test", len(split.XTest)),
	)

	newModel := func() *models.LogisticRegression {
		lr := models.NewLogisticRegression()
		lr.C = *c
		lr.MaxIter = *maxIter
		return lr
	}

	lr := newModel()
	p := models.NewPredictor(lr)
	if err := p.Fit(split.XTrain, split.YTrain); err != nil {
		logger.Fatal("train model", zap.Error(err))
	}
	if !lr.Converged {
		logger.Warn("solver stopped before converging", zap.Int("iterations", lr.Iterations))
	}
	report, err := p.Evaluate(split.XTest, split.YTest)
	if err != nil {
		logger.Fatal("evaluate model", zap.Error(err))
	}
	logger.Info("holdout metrics",
		zap.String("model", report.Model),
		zap.Float64("accuracy", report.Accuracy),
		zap.Float64("f1", report.F1),
		zap.Float64("precision", report.Precision),
		zap.Float64("recall", report.Recall),
		zap.Float64("roc_auc", report.ROCAUC),
	)
	fmt.Printf("Accuracy: %.4f\n\n", report.Accuracy)
	fmt.Println("Classification Report:")
	fmt.Println(report.ClassificationReport())
	fmt.Println("Confusion Matrix:")
	fmt.Println(report.Confusion)

	if err := plotROCPNG(*rocImg, report); err != nil {
		logger.Warn("write ROC curve", zap.Error(err))
	} else {
		logger.Info("ROC curve written", zap.String("png", *rocImg))
	}

	if *curve {
		sizes := computeCurveSizes(len(split.XTrain), *curvePoints, *curveMin, *curveLog)
		points := learningCurve(split, sizes, func() models.Model { return newModel() }, logger)
		if err := writeCurveCSV(*curveCsv, points); err != nil {
			logger.Warn("write learning curve CSV", zap.Error(err))
		}
		if err := plotCurvePNG(*curveImg, points); err != nil {
			logger.Warn("write learning curve PNG", zap.Error(err))
		} else {
			logger.Info("learning curve written", zap.String("png", *curveImg), zap.String("csv", *curveCsv))
		}
	}
}
