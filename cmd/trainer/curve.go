package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"winequality/internal/data"
	"winequality/internal/models"
)

type curvePoint struct {
	Size              int
	TrainAcc, TestAcc float64
	TrainF1, TestF1   float64
	TrainROC, TestROC float64
}

// learningCurve refits a fresh model on growing prefixes of the training
// partition and scores each fit on that prefix and on the test partition.
// Prefixes holding a single class are skipped.
func learningCurve(split data.Split, sizes []int, newModel func() models.Model, logger *zap.Logger) []curvePoint {
	out := make([]curvePoint, 0, len(sizes))
	for _, s := range sizes {
		subX, subY := split.XTrain[:s], split.YTrain[:s]
		m := newModel()
		if err := m.Fit(subX, subY); err != nil {
			logger.Warn("skipping curve point", zap.Int("size", s), zap.Error(err))
			continue
		}
		tr, err := models.Evaluate(m, subX, subY)
		if err != nil {
			logger.Warn("skipping curve point", zap.Int("size", s), zap.Error(err))
			continue
		}
		te, err := models.Evaluate(m, split.XTest, split.YTest)
		if err != nil {
			logger.Warn("skipping curve point", zap.Int("size", s), zap.Error(err))
			continue
		}
		out = append(out, curvePoint{
			Size:     s,
			TrainAcc: tr.Accuracy, TestAcc: te.Accuracy,
			TrainF1: tr.F1, TestF1: te.F1,
			TrainROC: tr.ROCAUC, TestROC: te.ROCAUC,
		})
	}
	return out
}

func computeCurveSizes(totalTrain, points, min int, useLog bool) []int {
	if totalTrain <= 0 {
		return nil
	}
	if points <= 1 {
		points = 2
	}
	if min < 10 {
		min = 10
	}
	if min > totalTrain {
		min = int(math.Max(1, float64(totalTrain)/2))
	}
	sizes := make([]int, 0, points)
	if useLog {
		ratio := math.Pow(float64(totalTrain)/float64(min), 1.0/float64(points-1))
		for i := 0; i < points; i++ {
			sizes = append(sizes, int(math.Round(float64(min)*math.Pow(ratio, float64(i)))))
		}
	} else {
		step := float64(totalTrain-min) / float64(points-1)
		for i := 0; i < points; i++ {
			sizes = append(sizes, int(math.Round(float64(min)+float64(i)*step)))
		}
	}
	cleaned := make([]int, 0, len(sizes))
	last := 0
	for _, s := range sizes {
		if s <= last {
			s = last + 1
		}
		if s > totalTrain {
			s = totalTrain
		}
		if s != last {
			cleaned = append(cleaned, s)
			last = s
		}
	}
	cleaned[len(cleaned)-1] = totalTrain
	return cleaned
}

func writeCurveCSV(path string, points []curvePoint) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"size", "train_acc", "test_acc", "train_f1", "test_f1", "train_roc_auc", "test_roc_auc"}); err != nil {
		return err
	}
	for _, p := range points {
		rec := []string{strconv.Itoa(p.Size)}
		for _, v := range []float64{p.TrainAcc, p.TestAcc, p.TrainF1, p.TestF1, p.TrainROC, p.TestROC} {
			rec = append(rec, fmt.Sprintf("%.6f", v))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func plotCurvePNG(path string, points []curvePoint) error {
	if len(points) == 0 {
		return fmt.Errorf("no curve points")
	}
	p := plot.New()
	p.Title.Text = "Learning Curve"
	p.X.Label.Text = "Training samples"
	p.Y.Label.Text = "Score"
	p.Y.Min = 0
	p.Y.Max = 1

	series := func(get func(curvePoint) float64) plotter.XYs {
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i].X = float64(pt.Size)
			xys[i].Y = get(pt)
		}
		return xys
	}
	if err := plotutil.AddLinePoints(p,
		"Train (Acc)", series(func(c curvePoint) float64 { return c.TrainAcc }),
		"Test (Acc)", series(func(c curvePoint) float64 { return c.TestAcc }),
		"Train (F1)", series(func(c curvePoint) float64 { return c.TrainF1 }),
		"Test (F1)", series(func(c curvePoint) float64 { return c.TestF1 }),
	); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

func plotROCPNG(path string, r models.Report) error {
	if len(r.ROC) == 0 {
		return fmt.Errorf("test partition holds a single class")
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("ROC Curve (AUC = %.3f)", r.ROCAUC)
	p.X.Label.Text = "False positive rate"
	p.Y.Label.Text = "True positive rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	roc := make(plotter.XYs, len(r.ROC))
	for i, pt := range r.ROC {
		roc[i].X, roc[i].Y = pt.FPR, pt.TPR
	}
	chance := plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}}
	if err := plotutil.AddLines(p, r.Model, roc, "Chance", chance); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, path)
}
