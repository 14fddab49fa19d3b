// Package heatmapplotter renders confusion matrices as annotated heatmaps
// with class labels on both axes.
package heatmapplotter

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

const blueShades = 9

// ConfusionPlot builds a heatmap of the square count matrix cm with axis tick
// labels taken from classes: rows (y, "Actual") and columns (x, "Predicted")
// follow the class-label order. Each cell is overlaid with its integer count.
func ConfusionPlot(cm *mat.Dense, classes []string) (*plot.Plot, error) {
	r, c := cm.Dims()
	if r != c || r != len(classes) {
		return nil, fmt.Errorf("heatmapplotter: matrix is %dx%d but class-label set has %d entries", r, c, len(classes))
	}

	pal, err := brewer.GetPalette(brewer.TypeSequential, "Blues", blueShades)
	if err != nil {
		return nil, fmt.Errorf("heatmapplotter: palette: %w", err)
	}

	heatmap := plotter.NewHeatMap(matrixToGrid(cm), pal)
	heatmap.Min = 0

	p := plot.New()
	p.X.Label.Text = "Predicted"
	p.Y.Label.Text = "Actual"
	p.NominalX(classes...)
	p.NominalY(classes...)
	p.X.Padding = 0
	p.Y.Padding = 0

	p.Add(heatmap)

	counts, err := cellCounts(cm, heatmap.Max)
	if err != nil {
		return nil, err
	}
	p.Add(counts)

	// Legend with palette thumbnails instead of a colorbar.
	thumbs := plotter.PaletteThumbnailers(pal)
	for i := len(thumbs) - 1; i >= 0; i-- {
		val := heatmap.Min + (heatmap.Max-heatmap.Min)/float64(len(thumbs)-1)*float64(i)
		p.Legend.Add(fmt.Sprintf("%.0f", val), thumbs[i])
	}
	p.Legend.Top = true

	return p, nil
}

// cellCounts overlays each cell's count at the cell center. Text flips to
// white once the cell is darker than the midpoint of the scale.
func cellCounts(cm *mat.Dense, max float64) (*plotter.Labels, error) {
	rows, cols := cm.Dims()

	xys := make(plotter.XYs, 0, rows*cols)
	names := make([]string, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			xys = append(xys, plotter.XY{X: float64(j), Y: float64(i)})
			names = append(names, fmt.Sprintf("%d", int(cm.At(i, j))))
		}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return nil, fmt.Errorf("heatmapplotter: cell labels: %w", err)
	}

	k := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			labels.TextStyle[k].XAlign = text.XCenter
			labels.TextStyle[k].YAlign = text.YCenter
			labels.TextStyle[k].Font.Size = vg.Points(12)
			if cm.At(i, j) > max/2 {
				labels.TextStyle[k].Color = color.White
			}
			k++
		}
	}

	return labels, nil
}

func matrixToGrid(matrix *mat.Dense) plotter.GridXYZ {
	r, c := matrix.Dims()
	return grid{Matrix: matrix, Rows: r, Cols: c}
}

type grid struct {
	Matrix     *mat.Dense
	Rows, Cols int
}

func (g grid) Dims() (c, r int)   { return g.Cols, g.Rows }
func (g grid) Z(c, r int) float64 { return g.Matrix.At(r, c) }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }
