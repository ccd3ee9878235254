package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

type Confusion struct {
	TP int `json:"tp"`
	FP int `json:"fp"`
	TN int `json:"tn"`
	FN int `json:"fn"`
}

type ClassMetrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

type ROCPoint struct {
	FPR float64 `json:"fpr"`
	TPR float64 `json:"tpr"`
}

// Report holds held-out metrics. Precision, Recall and F1 are for the good
// class; Classes is indexed by Class.
type Report struct {
	Model     string          `json:"model"`
	Samples   int             `json:"samples"`
	Accuracy  float64         `json:"accuracy"`
	Precision float64         `json:"precision"`
	Recall    float64         `json:"recall"`
	F1        float64         `json:"f1"`
	ROCAUC    float64         `json:"roc_auc"`
	Confusion Confusion       `json:"confusion"`
	Classes   [2]ClassMetrics `json:"classes"`
	ROC       []ROCPoint      `json:"roc,omitempty"`
}

func Evaluate(m Model, X [][]float64, y []int) (Report, error) {
	if len(X) != len(y) {
		return Report{}, fmt.Errorf("%d rows but %d labels", len(X), len(y))
	}
	if len(X) == 0 {
		return Report{}, errors.New("nothing to evaluate")
	}
	preds := m.Predict(X)
	proba := m.PredictProba(X)

	r := Report{Model: m.Name(), Samples: len(y)}
	r.Confusion = confusion(y, preds)
	r.Accuracy = accuracy(y, preds)
	c := r.Confusion
	r.Classes[Good] = classMetrics(c.TP, c.FP, c.FN)
	r.Classes[Bad] = classMetrics(c.TN, c.FN, c.FP)
	r.Precision = r.Classes[Good].Precision
	r.Recall = r.Classes[Good].Recall
	r.F1 = r.Classes[Good].F1
	r.ROC, r.ROCAUC = rocCurve(y, proba)
	return r, nil
}

func accuracy(y, p []int) float64 {
	if len(y) == 0 {
		return 0
	}
	c := 0
	for i := range y {
		if y[i] == p[i] {
			c++
		}
	}
	return float64(c) / float64(len(y))
}

func confusion(y, p []int) (c Confusion) {
	for i := range y {
		switch {
		case p[i] == 1 && y[i] == 1:
			c.TP++
		case p[i] == 1 && y[i] == 0:
			c.FP++
		case p[i] == 0 && y[i] == 0:
			c.TN++
		default:
			c.FN++
		}
	}
	return
}

// classMetrics computes precision, recall and F1 for one class given its
// true positives, false positives and false negatives.
func classMetrics(tp, fp, fn int) (m ClassMetrics) {
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	m.Support = tp + fn
	return
}

// rocCurve returns the ROC points and the area under them. With a single
// class present the curve is undefined and the area is reported as 0.
func rocCurve(y []int, proba []float64) ([]ROCPoint, float64) {
	type pair struct {
		s float64
		y int
	}
	pairs := make([]pair, len(y))
	var pos, neg int
	for i := range y {
		pairs[i] = pair{proba[i], y[i]}
		if y[i] == 1 {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return nil, 0
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].s < pairs[j].s })
	scores := make([]float64, len(pairs))
	classes := make([]bool, len(pairs))
	for i, p := range pairs {
		scores[i] = p.s
		classes[i] = p.y == 1
	}
	tpr, fpr, _ := stat.ROC(nil, scores, classes, nil)
	pts := make([]ROCPoint, len(tpr))
	for i := range tpr {
		pts[i] = ROCPoint{FPR: fpr[i], TPR: tpr[i]}
	}
	return pts, integrate.Trapezoidal(fpr, tpr)
}

// ClassificationReport renders the per-class table.
func (r Report) ClassificationReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%12s %10s %10s %10s %10s\n\n", "", "precision", "recall", "f1-score", "support")
	for _, c := range []Class{Bad, Good} {
		m := r.Classes[c]
		fmt.Fprintf(&b, "%12s %10.2f %10.2f %10.2f %10d\n", c, m.Precision, m.Recall, m.F1, m.Support)
	}
	fmt.Fprintf(&b, "\n%12s %10s %10s %10.2f %10d\n", "accuracy", "", "", r.Accuracy, r.Samples)
	return b.String()
}

func (c Confusion) String() string {
	return fmt.Sprintf("[[%d %d]\n [%d %d]]", c.TN, c.FP, c.FN, c.TP)
}
