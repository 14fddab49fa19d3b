package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

const (
	logregMaxIterations = 200
	logregTol           = 1e-6
	probFloor           = 1e-12
)

// Logistic is a two-class logistic model fit by direct minimization of the
// negative log-likelihood with Nelder-Mead.
type Logistic struct {
	classes []string
	weights []float64 // bias followed by one weight per feature
}

// NewLogistic returns an unfitted model.
func NewLogistic() *Logistic {
	return &Logistic{}
}

// Fit trains on the rows of X with aligned labels y, which must contain
// exactly two distinct values. The class-label set is fixed in order of
// first appearance; the second class is the positive one.
func (m *Logistic) Fit(X *mat.Dense, y []string) error {
	rows, cols := X.Dims()
	if len(y) != rows {
		return fmt.Errorf("model: %d rows but %d labels", rows, len(y))
	}

	var order []string
	index := make(map[string]int)
	targets := make([]float64, rows)
	for i, label := range y {
		if _, ok := index[label]; !ok {
			index[label] = len(order)
			order = append(order, label)
		}
		targets[i] = float64(index[label])
	}
	if len(order) != 2 {
		return fmt.Errorf("model: logistic fit needs exactly 2 classes, got %d", len(order))
	}

	rowBuf := make([]float64, cols)
	problem := optimize.Problem{
		Func: func(w []float64) float64 {
			var loss float64
			for i := 0; i < rows; i++ {
				mat.Row(rowBuf, i, X)
				z := w[0] + floats.Dot(w[1:], rowBuf)
				p := 1 / (1 + math.Exp(-z))
				if targets[i] == 1 {
					loss -= math.Log(math.Max(p, probFloor))
				} else {
					loss -= math.Log(math.Max(1-p, probFloor))
				}
			}
			return loss
		},
	}

	settings := &optimize.Settings{
		MajorIterations: logregMaxIterations,
		FuncEvaluations: 10000,
		Converger: &optimize.FunctionConverge{
			Relative:   logregTol,
			Absolute:   logregTol,
			Iterations: 100,
		},
	}

	result, err := optimize.Minimize(problem, make([]float64, cols+1), settings, &optimize.NelderMead{})
	if err != nil {
		return fmt.Errorf("model: logistic fit failed: %w", err)
	}

	m.classes = order
	m.weights = result.X
	return nil
}

// Classes returns the ordered class-label set.
func (m *Logistic) Classes() []string {
	return m.classes
}

// Predict returns the class label for each row of X.
func (m *Logistic) Predict(X *mat.Dense) ([]string, error) {
	idx, err := m.PredictIndices(X)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(idx))
	for i, v := range idx {
		labels[i] = m.classes[v]
	}
	return labels, nil
}

// PredictIndices returns predictions as indices into the class-label set.
func (m *Logistic) PredictIndices(X *mat.Dense) ([]int, error) {
	if len(m.classes) == 0 {
		return nil, fmt.Errorf("model: predict on unfitted model")
	}
	rows, cols := X.Dims()
	if cols != len(m.weights)-1 {
		return nil, fmt.Errorf("model: %d features, fitted on %d", cols, len(m.weights)-1)
	}

	rowBuf := make([]float64, cols)
	out := make([]int, rows)
	for i := 0; i < rows; i++ {
		mat.Row(rowBuf, i, X)
		z := m.weights[0] + floats.Dot(m.weights[1:], rowBuf)
		if z > 0 {
			out[i] = 1
		}
	}
	return out, nil
}
