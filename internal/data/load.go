package data

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/cases"
)

// missingTokens are the cell values treated as absent.
var missingTokens = []string{"", "NA", "NaN", "nan", "N/A", "n/a", "null", "NULL", "<nil>"}

type Options struct {
	Delimiter rune
}

func DefaultOptions() Options { return Options{Delimiter: ','} }

// Stats describes what the cleaning pass did.
type Stats struct {
	Rows              int `json:"rows"`
	DroppedMissing    int `json:"dropped_missing"`
	DroppedDuplicates int `json:"dropped_duplicates"`
	Kept              int `json:"kept"`
}

// Dataset is the cleaned table. It is not modified after Load returns.
type Dataset struct {
	Records []Record
	Stats   Stats
}

// NormalizeName folds case and treats spaces, dashes and underscores alike,
// so "Fixed Acidity" and "fixed_acidity" name the same column.
func NormalizeName(s string) string {
	s = cases.Fold().String(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return '_'
		}
		return r
	}, s)
}

func Load(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()
	ds, err := ReadCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return ds, nil
}

// ReadCSV parses a table with a header row, drops rows with missing values
// and removes exact duplicates keeping the first occurrence.
func ReadCSV(r io.Reader, opts Options) (*Dataset, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter(opts.Delimiter),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(missingTokens),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, df.Err)
	}

	cols, err := resolveColumns(df.Names())
	if err != nil {
		return nil, err
	}
	colData := make([]series.Series, NumColumns)
	for i, name := range cols {
		colData[i] = df.Col(name)
	}

	n := df.Nrow()
	records := make([]Record, 0, n)
	stats := Stats{Rows: n}
	for row := 0; row < n; row++ {
		var vals [NumColumns]float64
		missing := false
		for c := 0; c < NumColumns; c++ {
			e := colData[c].Elem(row)
			raw := strings.TrimSpace(e.String())
			if e.IsNA() || isMissing(raw) {
				missing = true
				break
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || !finite(v) {
				// header is line 1
				return nil, fmt.Errorf("%w: line %d, column %q: %q is not a number", ErrFormat, row+2, cols[c], raw)
			}
			vals[c] = v
		}
		if missing {
			stats.DroppedMissing++
			continue
		}
		rec, err := toRecord(vals)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, row+2, err)
		}
		records = append(records, rec)
	}

	kept, dups := Dedupe(records)
	stats.DroppedDuplicates = dups
	stats.Kept = len(kept)
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: no usable rows", ErrFormat)
	}
	return &Dataset{Records: kept, Stats: stats}, nil
}

// Dedupe removes exact duplicate records, keeping the first occurrence and
// the original order.
func Dedupe(records []Record) ([]Record, int) {
	seen := make(map[Record]struct{}, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out, len(records) - len(out)
}

func resolveColumns(header []string) ([]string, error) {
	byKey := make(map[string]string, len(header))
	for _, h := range header {
		k := NormalizeName(h)
		if _, dup := byKey[k]; !dup {
			byKey[k] = h
		}
	}
	out := make([]string, 0, NumColumns)
	var absent []string
	for _, c := range Columns() {
		h, ok := byKey[NormalizeName(c)]
		if !ok {
			absent = append(absent, c)
			continue
		}
		out = append(out, h)
	}
	if len(absent) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", ErrFormat, strings.Join(absent, ", "))
	}
	return out, nil
}

func toRecord(vals [NumColumns]float64) (Record, error) {
	var rec Record
	copy(rec.Features[:], vals[:NumFeatures])
	q := vals[NumFeatures]
	if q != math.Trunc(q) || q < 0 || q > MaxQuality {
		return rec, fmt.Errorf("quality %v is not an integer score in 0..%d", q, MaxQuality)
	}
	rec.Quality = int(q)
	return rec, nil
}

func isMissing(s string) bool {
	for _, t := range missingTokens {
		if s == t {
			return true
		}
	}
	return false
}
