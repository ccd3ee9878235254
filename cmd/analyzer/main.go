package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"winequality/internal/config"
	"winequality/internal/data"
	"winequality/internal/explore"
)

func main() {
	def := config.Default()
	dataPath := flag.String("data", def.Data.Path, "CSV of red wine samples")
	delim := flag.String("delimiter", def.Data.Delimiter, "CSV delimiter")
	x := flag.String("x", data.FeatureNames[0], "Column on the horizontal axis")
	y := flag.String("y", data.FeatureNames[1], "Column on the vertical axis")
	outImg := flag.String("out_img", "cmd/api/static/scatter.png", "PNG of the scatter plot")
	flag.Parse()

	if len([]rune(*delim)) != 1 {
		fmt.Fprintln(os.Stderr, "delimiter must be a single character")
		os.Exit(2)
	}
	ds, err := data.Load(*dataPath, data.Options{Delimiter: []rune(*delim)[0]})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(os.Stdout, ds, *x, *y, *outImg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, ds *data.Dataset, x, y, outImg string) error {
	good := 0
	for _, r := range ds.Records {
		good += r.Label()
	}
	fmt.Fprintf(w, "Rows: %d read, %d with missing values, %d duplicates, %d kept\n",
		ds.Stats.Rows, ds.Stats.DroppedMissing, ds.Stats.DroppedDuplicates, ds.Stats.Kept)
	fmt.Fprintf(w, "Classes: %d good, %d bad\n\n", good, len(ds.Records)-good)

	r, err := explore.NewRenderer(ds, 1)
	if err != nil {
		return err
	}
	img, err := r.ScatterPNG(x, y)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outImg), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outImg, img, 0o644); err != nil {
		return err
	}
	xc, _ := explore.Resolve(x)
	yc, _ := explore.Resolve(y)
	fmt.Fprintf(w, "Correlation between %s and %s written to %s\n\n", xc, yc, outImg)

	printCorrelation(w, explore.Correlation(ds))
	return nil
}

func printCorrelation(w io.Writer, m explore.CorrelationMatrix) {
	short := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		short[i] = abbreviate(c)
	}
	fmt.Fprintf(w, "%-22s", "")
	for _, s := range short {
		fmt.Fprintf(w, "%7s", s)
	}
	fmt.Fprintln(w)
	for i, row := range m.Values {
		fmt.Fprintf(w, "%-22s", m.Columns[i])
		for _, v := range row {
			fmt.Fprintf(w, "%7.2f", v)
		}
		fmt.Fprintln(w)
	}
}

// abbreviate keeps column headers narrow: "free_sulfur_dioxide" -> "fsd".
func abbreviate(name string) string {
	parts := strings.Split(name, "_")
	if len(parts) == 1 {
		if len(name) > 6 {
			return name[:6]
		}
		return name
	}
	var b strings.Builder
	for _, p := range parts {
		b.WriteByte(p[0])
	}
	return b.String()
}
