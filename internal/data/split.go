package data

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	DefaultSeed      = 42
	DefaultTestRatio = 0.2
)

// Split is a train/test partition of a Dataset. TrainIdx and TestIdx hold
// the row positions in Dataset.Records, aligned with the X/y slices.
type Split struct {
	XTrain   [][]float64
	YTrain   []int
	XTest    [][]float64
	YTest    []int
	TrainIdx []int
	TestIdx  []int
}

// Split shuffles the row indices with a generator seeded by seed and takes
// the first ceil(testRatio*n) of them as the test partition.
func (d *Dataset) Split(testRatio float64, seed int64) (Split, error) {
	n := len(d.Records)
	if testRatio <= 0 || testRatio >= 1 {
		return Split{}, fmt.Errorf("test ratio %v out of range (0, 1)", testRatio)
	}
	nTest := int(math.Ceil(testRatio * float64(n)))
	if nTest < 1 || nTest >= n {
		return Split{}, fmt.Errorf("%w: %d rows cannot be split with test ratio %v", ErrFormat, n, testRatio)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	s := Split{
		TestIdx:  append([]int(nil), perm[:nTest]...),
		TrainIdx: append([]int(nil), perm[nTest:]...),
	}
	s.XTest, s.YTest = d.rows(s.TestIdx)
	s.XTrain, s.YTrain = d.rows(s.TrainIdx)
	return s, nil
}

// Matrix returns every row as a feature vector in FeatureNames order plus
// the aligned labels.
func (d *Dataset) Matrix() ([][]float64, []int) {
	idx := make([]int, len(d.Records))
	for i := range idx {
		idx[i] = i
	}
	return d.rows(idx)
}

func (d *Dataset) Labels() []int {
	out := make([]int, len(d.Records))
	for i, r := range d.Records {
		out[i] = r.Label()
	}
	return out
}

// Column returns the values of one of the Columns() for every row.
func (d *Dataset) Column(name string) ([]float64, error) {
	i, ok := ColumnIndex(name)
	if !ok {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	out := make([]float64, len(d.Records))
	for j, r := range d.Records {
		out[j] = r.Value(i)
	}
	return out, nil
}

func (d *Dataset) rows(idx []int) ([][]float64, []int) {
	X := make([][]float64, len(idx))
	y := make([]int, len(idx))
	for k, i := range idx {
		r := d.Records[i]
		v := make([]float64, NumFeatures)
		copy(v, r.Features[:])
		X[k] = v
		y[k] = r.Label()
	}
	return X, y
}

// Prepare loads and cleans the file at path and splits it with the default
// seed and ratio.
func Prepare(path string, opts Options) (*Dataset, Split, error) {
	ds, err := Load(path, opts)
	if err != nil {
		return nil, Split{}, err
	}
	s, err := ds.Split(DefaultTestRatio, DefaultSeed)
	if err != nil {
		return nil, Split{}, err
	}
	return ds, s, nil
}
