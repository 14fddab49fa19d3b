package presenter

import (
	"io"
	"os"

	"evalplot-go/pkg/heatmapplotter"
	"evalplot-go/pkg/metrics"

	"gonum.org/v1/plot/vg"
)

// Classifier is the fitted-model surface the reporter needs: the ordered
// class-label set fixed at fit time.
type Classifier interface {
	Classes() []string
}

// Figure dimensions of the confusion heatmap.
const (
	FigureWidth  = 8 * vg.Inch
	FigureHeight = 5 * vg.Inch
)

// Reporter prints a classification report and writes the confusion-matrix
// heatmap for a prediction run.
type Reporter struct {
	Out        io.Writer // report text destination; nil means os.Stdout
	FigurePath string    // heatmap file (.png or .pdf); empty skips the figure
}

// Report prints the precision/recall/F1 report for actual vs. predicted,
// restricted to and ordered by the model's class-label set, then renders the
// confusion matrix as an annotated heatmap.
//
// Predictions may be label values or integer indices into the class-label
// set; both the report and the matrix use the same resolved labels. An
// unresolvable prediction sequence aborts the call before any output; a
// figure failure can leave the textual report already printed.
func (rp *Reporter) Report(model Classifier, actual []string, predicted any) error {
	classes := model.Classes()

	resolved, err := metrics.ResolvePredictions(classes, predicted)
	if err != nil {
		return err
	}

	rep, err := metrics.Report(classes, actual, resolved)
	if err != nil {
		return err
	}

	out := rp.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := rep.WriteTo(out); err != nil {
		return err
	}

	if rp.FigurePath == "" {
		return nil
	}

	cm, err := metrics.ConfusionMatrix(classes, actual, resolved)
	if err != nil {
		return err
	}
	p, err := heatmapplotter.ConfusionPlot(cm, classes)
	if err != nil {
		return err
	}
	return SaveFigure(p, FigureWidth, FigureHeight, rp.FigurePath)
}
