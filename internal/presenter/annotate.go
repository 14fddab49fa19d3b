// Package presenter renders classification results: correlation annotations
// on plot panels, textual classification reports and confusion-matrix
// heatmap figures.
package presenter

import (
	"fmt"
	"image/color"
	"math"

	"evalplot-go/pkg/pearson"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// AnnotateCorrelation writes "r = {r:.2f}" at the center of p, where r is the
// Pearson correlation of x and y. The font size scales as 20*|r| points, so a
// zero coefficient draws an invisible annotation; the text color comes from a
// diverging blue-red scale over the coefficient's range. The axes of p are
// hidden. The p-value of the correlation is computed but not displayed.
func AnnotateCorrelation(p *plot.Plot, x, y []float64) error {
	r, _, err := pearson.Coefficient(x, y)
	if err != nil {
		return err
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: 0.5, Y: 0.5}},
		Labels: []string{annotationText(r)},
	})
	if err != nil {
		return fmt.Errorf("presenter: annotation: %w", err)
	}
	labels.TextStyle[0].XAlign = text.XCenter
	labels.TextStyle[0].YAlign = text.YCenter
	labels.TextStyle[0].Font.Size = annotationSize(r)
	labels.TextStyle[0].Color = annotationColor(r)

	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(labels)
	p.HideAxes()

	return nil
}

func annotationText(r float64) string {
	return fmt.Sprintf("r = %.2f", r)
}

func annotationSize(r float64) vg.Length {
	return vg.Points(20 * math.Abs(r))
}

// annotationColor maps r from [-1, 1] onto the [0, 1] domain of a diverging
// color scale via (r+1)/2.
func annotationColor(r float64) color.Color {
	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(0)
	cmap.SetMax(1)
	c, err := cmap.At((r + 1) / 2)
	if err != nil {
		return color.Black
	}
	return c
}
