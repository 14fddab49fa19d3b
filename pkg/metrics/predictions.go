// Package metrics computes classification evaluation results: prediction
// resolution, confusion matrices and precision/recall/F1 reports, all ordered
// by a classifier's fixed class-label set.
package metrics

import (
	"fmt"
	"math"
	"strconv"
)

// ResolvePredictions normalizes model output to label form.
//
// Classifiers in the wild return predictions in one of two conventions:
// label values, or integer indices into the class-label set. The form is not
// known ahead of call time, so the resolver dispatches on what it finds:
//
//   - []string whose entries are all members of classes: returned as is.
//   - []string whose entries are not all members but all parse as in-range
//     integer indices: mapped through classes.
//   - []int, or []float64 with integral values, in range: mapped through
//     classes.
//
// Anything else yields an error naming the mismatch.
func ResolvePredictions(classes []string, predicted any) ([]string, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("metrics: empty class-label set")
	}

	switch pred := predicted.(type) {
	case []string:
		return resolveStrings(classes, pred)
	case []int:
		return mapIndices(classes, pred)
	case []float64:
		idx := make([]int, len(pred))
		for i, v := range pred {
			if v != math.Trunc(v) || math.IsNaN(v) {
				return nil, fmt.Errorf("metrics: prediction %v at position %d is not an integral class index", v, i)
			}
			idx[i] = int(v)
		}
		return mapIndices(classes, idx)
	default:
		return nil, fmt.Errorf("metrics: unsupported prediction type %T (want []string, []int or []float64)", predicted)
	}
}

func resolveStrings(classes, pred []string) ([]string, error) {
	members := make(map[string]bool, len(classes))
	for _, c := range classes {
		members[c] = true
	}

	allLabels := true
	for _, p := range pred {
		if !members[p] {
			allLabels = false
			break
		}
	}
	if allLabels {
		return pred, nil
	}

	// Not label values. Accept the index convention spelled as strings.
	idx := make([]int, len(pred))
	for i, p := range pred {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("metrics: prediction %q is neither a known class label nor an integer index", p)
		}
		idx[i] = v
	}
	return mapIndices(classes, idx)
}

func mapIndices(classes []string, idx []int) ([]string, error) {
	labels := make([]string, len(idx))
	for i, v := range idx {
		if v < 0 || v >= len(classes) {
			return nil, fmt.Errorf("metrics: class index %d at position %d out of range [0, %d)", v, i, len(classes))
		}
		labels[i] = classes[v]
	}
	return labels, nil
}
