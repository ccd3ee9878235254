package explore

import (
	"bytes"
	"fmt"
	"image/color"

	lru "github.com/hashicorp/golang-lru/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"winequality/internal/data"
)

var (
	goodColor = color.RGBA{R: 46, G: 139, B: 87, A: 255}
	badColor  = color.RGBA{R: 178, G: 34, B: 34, A: 255}
)

// RenderScatter draws the points as a PNG, one series per label.
func RenderScatter(points []Point, x, y string) ([]byte, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Correlation between %s and %s", x, y)
	p.X.Label.Text = x
	p.Y.Label.Text = y
	p.Legend.Top = true

	var good, bad plotter.XYs
	for _, pt := range points {
		xy := plotter.XY{X: pt.X, Y: pt.Y}
		if pt.Label == 1 {
			good = append(good, xy)
		} else {
			bad = append(bad, xy)
		}
	}
	for _, s := range []struct {
		name string
		pts  plotter.XYs
		c    color.Color
	}{{"bad", bad, badColor}, {"good", good, goodColor}} {
		if len(s.pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(s.pts)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = s.c
		sc.GlyphStyle.Radius = vg.Points(2)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(s.name, sc)
	}
	p.Add(plotter.NewGrid())

	wt, err := p.WriterTo(8*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Renderer renders scatter plots of one dataset and keeps the most recently
// used images. Safe for concurrent use.
type Renderer struct {
	ds    *data.Dataset
	cache *lru.Cache[string, []byte]
}

func NewRenderer(ds *data.Dataset, size int) (*Renderer, error) {
	if size <= 0 {
		size = 64
	}
	c, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &Renderer{ds: ds, cache: c}, nil
}

func (r *Renderer) ScatterPNG(x, y string) ([]byte, error) {
	xc, err := Resolve(x)
	if err != nil {
		return nil, err
	}
	yc, err := Resolve(y)
	if err != nil {
		return nil, err
	}
	key := xc + "\x00" + yc
	if img, ok := r.cache.Get(key); ok {
		return img, nil
	}
	pts, err := Scatter(r.ds, xc, yc)
	if err != nil {
		return nil, err
	}
	img, err := RenderScatter(pts, xc, yc)
	if err != nil {
		return nil, fmt.Errorf("render %s/%s: %w", xc, yc, err)
	}
	r.cache.Add(key, img)
	return img, nil
}

// Cached reports how many images are held.
func (r *Renderer) Cached() int { return r.cache.Len() }
