package presenter

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PairGrid writes an n-by-n pairwise panel figure for the n columns of X:
// scatter panels below the diagonal, the feature name on it, and correlation
// annotations above it. The figure lands in filename (.png or .pdf).
func PairGrid(X *mat.Dense, names []string, w, h vg.Length, filename string) error {
	rows, n := X.Dims()
	if len(names) != n {
		return fmt.Errorf("presenter: matrix has %d columns but %d names given", n, len(names))
	}
	if rows == 0 || n == 0 {
		return fmt.Errorf("presenter: empty feature matrix")
	}

	cols := make([][]float64, n)
	for j := 0; j < n; j++ {
		cols[j] = mat.Col(nil, j, X)
	}

	plots := make([][]*plot.Plot, n)
	for i := range plots {
		plots[i] = make([]*plot.Plot, n)
		for j := 0; j < n; j++ {
			p := plot.New()
			var err error
			switch {
			case i == j:
				err = nameTile(p, names[i])
			case j > i:
				err = AnnotateCorrelation(p, cols[j], cols[i])
			default:
				err = scatterTile(p, cols[j], cols[i])
			}
			if err != nil {
				return fmt.Errorf("presenter: pair grid panel (%d,%d): %w", i, j, err)
			}
			plots[i][j] = p
		}
	}

	img, err := newCanvas(w, h, filename)
	if err != nil {
		return err
	}
	tiles := draw.Tiles{
		Rows: n, Cols: n,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: vg.Millimeter, PadBottom: vg.Millimeter,
		PadLeft: vg.Millimeter, PadRight: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, draw.New(img))
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}
	return writeCanvas(img, filename)
}

func nameTile(p *plot.Plot, name string) error {
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: 0.5, Y: 0.5}},
		Labels: []string{name},
	})
	if err != nil {
		return err
	}
	labels.TextStyle[0].XAlign = text.XCenter
	labels.TextStyle[0].YAlign = text.YCenter
	labels.TextStyle[0].Font.Size = vg.Points(14)

	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(labels)
	p.HideAxes()
	return nil
}

func scatterTile(p *plot.Plot, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("sample lengths differ: %d vs %d", len(x), len(y))
	}
	xys := make(plotter.XYs, len(x))
	for k := range x {
		xys[k] = plotter.XY{X: x[k], Y: y[k]}
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.Radius = vg.Points(1.5)
	p.Add(s)
	return nil
}
