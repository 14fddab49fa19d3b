package metrics

import (
	"fmt"
	"io"
	"strings"
)

// ClassStats holds the per-class rows of a classification report.
type ClassStats struct {
	Label     string
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// ClassReport is a precision/recall/F1 summary of a labeled prediction run,
// with per-class rows ordered by the class-label set plus the usual
// aggregates.
type ClassReport struct {
	Classes  []ClassStats
	Accuracy float64
	Macro    ClassStats // unweighted mean over classes
	Weighted ClassStats // support-weighted mean over classes
	Total    int
}

// Report builds a ClassReport for actual vs. predicted, restricted to and
// ordered by classes. Predictions must already be in label form (see
// ResolvePredictions).
func Report(classes []string, actual, predicted []string) (*ClassReport, error) {
	cm, err := ConfusionMatrix(classes, actual, predicted)
	if err != nil {
		return nil, err
	}

	n := len(classes)
	rep := &ClassReport{
		Classes: make([]ClassStats, n),
		Total:   len(actual),
	}

	var correct int
	for i, label := range classes {
		var rowSum, colSum float64
		for j := 0; j < n; j++ {
			rowSum += cm.At(i, j)
			colSum += cm.At(j, i)
		}
		tp := cm.At(i, i)
		correct += int(tp)

		cs := ClassStats{Label: label, Support: int(rowSum)}
		if colSum > 0 {
			cs.Precision = tp / colSum
		}
		if rowSum > 0 {
			cs.Recall = tp / rowSum
		}
		if cs.Precision+cs.Recall > 0 {
			cs.F1 = 2 * cs.Precision * cs.Recall / (cs.Precision + cs.Recall)
		}
		rep.Classes[i] = cs
	}

	if rep.Total > 0 {
		rep.Accuracy = float64(correct) / float64(rep.Total)
	}

	rep.Macro = ClassStats{Label: "macro avg", Support: rep.Total}
	rep.Weighted = ClassStats{Label: "weighted avg", Support: rep.Total}
	for _, cs := range rep.Classes {
		rep.Macro.Precision += cs.Precision / float64(n)
		rep.Macro.Recall += cs.Recall / float64(n)
		rep.Macro.F1 += cs.F1 / float64(n)
		if rep.Total > 0 {
			w := float64(cs.Support) / float64(rep.Total)
			rep.Weighted.Precision += cs.Precision * w
			rep.Weighted.Recall += cs.Recall * w
			rep.Weighted.F1 += cs.F1 * w
		}
	}

	return rep, nil
}

// Format renders the report as a fixed-width table. The layout is stable:
// identical inputs produce byte-identical output.
func (r *ClassReport) Format() string {
	nameWidth := len("weighted avg")
	for _, cs := range r.Classes {
		if len(cs.Label) > nameWidth {
			nameWidth = len(cs.Label)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%*s %10s %10s %10s %10s\n\n", nameWidth, "", "precision", "recall", "f1-score", "support")
	for _, cs := range r.Classes {
		fmt.Fprintf(&b, "%*s %10.2f %10.2f %10.2f %10d\n", nameWidth, cs.Label, cs.Precision, cs.Recall, cs.F1, cs.Support)
	}
	fmt.Fprintf(&b, "\n%*s %10s %10s %10.2f %10d\n", nameWidth, "accuracy", "", "", r.Accuracy, r.Total)
	for _, cs := range []ClassStats{r.Macro, r.Weighted} {
		fmt.Fprintf(&b, "%*s %10.2f %10.2f %10.2f %10d\n", nameWidth, cs.Label, cs.Precision, cs.Recall, cs.F1, cs.Support)
	}
	return b.String()
}

// WriteTo writes the formatted report to w.
func (r *ClassReport) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.Format())
	return int64(n), err
}
