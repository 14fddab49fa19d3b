package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ConfusionMatrix counts actual vs. predicted labels into a square matrix
// ordered by classes: row i, column j holds the number of samples with true
// label classes[i] predicted as classes[j].
//
// Both sequences must be aligned 1:1 and contain only members of classes.
func ConfusionMatrix(classes []string, actual, predicted []string) (*mat.Dense, error) {
	if len(actual) != len(predicted) {
		return nil, fmt.Errorf("metrics: actual and predicted lengths differ: %d vs %d", len(actual), len(predicted))
	}
	if len(classes) == 0 {
		return nil, fmt.Errorf("metrics: empty class-label set")
	}

	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	cm := mat.NewDense(len(classes), len(classes), nil)
	for k := range actual {
		i, ok := index[actual[k]]
		if !ok {
			return nil, fmt.Errorf("metrics: actual label %q at position %d is not in the class-label set", actual[k], k)
		}
		j, ok := index[predicted[k]]
		if !ok {
			return nil, fmt.Errorf("metrics: predicted label %q at position %d is not in the class-label set", predicted[k], k)
		}
		cm.Set(i, j, cm.At(i, j)+1)
	}

	return cm, nil
}
