package data

import (
	"errors"
	"math"
)

const (
	NumFeatures = 11
	NumColumns  = NumFeatures + 1

	QualityColumn = "quality"

	// GoodThreshold is the lowest quality score labelled good.
	GoodThreshold = 6
	MaxQuality    = 10
)

// FeatureNames lists the physicochemical measurements in the order every
// feature vector uses.
var FeatureNames = [NumFeatures]string{
	"fixed_acidity",
	"volatile_acidity",
	"citric_acid",
	"residual_sugar",
	"chlorides",
	"free_sulfur_dioxide",
	"total_sulfur_dioxide",
	"density",
	"pH",
	"sulphates",
	"alcohol",
}

// ErrFormat marks every schema or parse failure of the input table.
var ErrFormat = errors.New("data format error")

// Record is one cleaned row of the table.
type Record struct {
	Features [NumFeatures]float64 `json:"features"`
	Quality  int                  `json:"quality"`
}

// Label is 1 for good wines and 0 for bad ones.
func (r Record) Label() int { return Label(r.Quality) }

// Value returns the column at position i of Columns().
func (r Record) Value(i int) float64 {
	if i == NumFeatures {
		return float64(r.Quality)
	}
	return r.Features[i]
}

func Label(quality int) int {
	if quality >= GoodThreshold {
		return 1
	}
	return 0
}

// Columns returns the 11 feature names followed by quality.
func Columns() []string {
	out := make([]string, 0, NumColumns)
	out = append(out, FeatureNames[:]...)
	return append(out, QualityColumn)
}

// ColumnIndex resolves a column name using the same matching rules as the
// CSV header.
func ColumnIndex(name string) (int, bool) {
	key := NormalizeName(name)
	for i, c := range Columns() {
		if NormalizeName(c) == key {
			return i, true
		}
	}
	return -1, false
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
