package data

import (
	"encoding/csv"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

// feature distributions roughly matching the red wine table: mean, stddev,
// lower bound and printed decimals.
var featureDists = [NumFeatures]struct {
	mean, sd, min float64
	dec           int
}{
	{8.3, 1.7, 4.6, 1},
	{0.53, 0.18, 0.12, 3},
	{0.27, 0.19, 0, 2},
	{2.5, 1.4, 0.9, 1},
	{0.087, 0.047, 0.012, 3},
	{15.9, 10.5, 1, 0},
	{46, 33, 6, 0},
	{0.9967, 0.0019, 0.990, 5},
	{3.31, 0.15, 2.74, 2},
	{0.66, 0.17, 0.33, 2},
	{10.4, 1.07, 8.4, 1},
}

// GenerateSyntheticWines writes n reproducible rows in the layout of the
// real dataset. Quality mostly follows alcohol, volatile acidity and
// sulphates, like the real data.
func GenerateSyntheticWines(n int, seed int64, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, SyntheticWines(n, seed))
}

func SyntheticWines(n int, seed int64) []Record {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Record, n)
	for i := range out {
		var z [NumFeatures]float64
		for j, d := range featureDists {
			z[j] = rng.NormFloat64()
			v := d.mean + d.sd*z[j]
			if v < d.min {
				v = d.min
			}
			p := math.Pow(10, float64(d.dec))
			out[i].Features[j] = math.Round(v*p) / p
		}
		score := 5.6 + 0.45*z[10] - 0.3*z[1] + 0.2*z[9] + 0.45*rng.NormFloat64()
		q := int(math.Round(score))
		if q < 3 {
			q = 3
		}
		if q > 8 {
			q = 8
		}
		out[i].Quality = q
	}
	return out
}

// WriteCSV writes records with a header of Columns().
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns()); err != nil {
		return err
	}
	row := make([]string, NumColumns)
	for _, r := range records {
		for j := 0; j < NumFeatures; j++ {
			row[j] = strconv.FormatFloat(r.Features[j], 'f', -1, 64)
		}
		row[NumFeatures] = strconv.Itoa(r.Quality)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
