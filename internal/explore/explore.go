// Package explore serves the exploration side of the dashboard: scatter
// data for a pair of columns and the correlation matrix of the table.
package explore

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"winequality/internal/data"
)

var ErrUnknownColumn = errors.New("unknown column")

// Point is one row projected onto two columns, with its good/bad label.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label int     `json:"label"`
}

func Columns() []string { return data.Columns() }

// Resolve maps a user supplied column name to its canonical spelling.
func Resolve(name string) (string, error) {
	i, ok := data.ColumnIndex(name)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownColumn, name)
	}
	return data.Columns()[i], nil
}

func Scatter(ds *data.Dataset, x, y string) ([]Point, error) {
	xi, ok := data.ColumnIndex(x)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownColumn, x)
	}
	yi, ok := data.ColumnIndex(y)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownColumn, y)
	}
	out := make([]Point, len(ds.Records))
	for i, r := range ds.Records {
		out[i] = Point{X: r.Value(xi), Y: r.Value(yi), Label: r.Label()}
	}
	return out, nil
}

// CorrelationMatrix is the Pearson correlation of every column pair.
// The last column is the binary label.
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

func Correlation(ds *data.Dataset) CorrelationMatrix {
	cols := append(data.FeatureNames[:data.NumFeatures:data.NumFeatures], "label")
	n := len(ds.Records)
	m := mat.NewDense(n, len(cols), nil)
	for i, r := range ds.Records {
		for j := 0; j < data.NumFeatures; j++ {
			m.Set(i, j, r.Features[j])
		}
		m.Set(i, data.NumFeatures, float64(r.Label()))
	}
	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, m, nil)

	out := CorrelationMatrix{Columns: cols, Values: make([][]float64, len(cols))}
	for i := range cols {
		row := make([]float64, len(cols))
		for j := range cols {
			v := corr.At(i, j)
			if math.IsNaN(v) {
				// constant column
				v = 0
			}
			row[j] = v
		}
		out.Values[i] = row
	}
	return out
}
