// Package model provides small fittable classifiers whose evaluation output
// feeds the presenter: each exposes the ordered class-label set fixed at fit
// time and predicts either label values or class indices.
package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gauss classifies by per-class gaussian likelihoods with independent
// features, picking the class with the highest posterior.
type Gauss struct {
	classes []string
	priors  map[string]float64
	feats   map[string][]distuv.Normal
}

// NewGauss returns an unfitted model.
func NewGauss() *Gauss {
	return &Gauss{}
}

// Fit estimates per-class feature means and deviations from the rows of X
// and their aligned labels y. The class-label set is fixed in order of first
// appearance in y.
func (g *Gauss) Fit(X *mat.Dense, y []string) error {
	rows, cols := X.Dims()
	if len(y) != rows {
		return fmt.Errorf("model: %d rows but %d labels", rows, len(y))
	}
	if rows == 0 {
		return fmt.Errorf("model: empty training set")
	}

	var order []string
	groups := make(map[string][]int)
	for i, label := range y {
		if _, ok := groups[label]; !ok {
			order = append(order, label)
		}
		groups[label] = append(groups[label], i)
	}

	g.classes = order
	g.priors = make(map[string]float64, len(order))
	g.feats = make(map[string][]distuv.Normal, len(order))

	for _, label := range order {
		idx := groups[label]
		dists := make([]distuv.Normal, cols)
		for j := 0; j < cols; j++ {
			vals := make([]float64, len(idx))
			for k, i := range idx {
				vals[k] = X.At(i, j)
			}
			mu, sigma := stat.MeanStdDev(vals, nil)
			if sigma == 0 || math.IsNaN(sigma) {
				sigma = 1e-9
			}
			dists[j] = distuv.Normal{Mu: mu, Sigma: sigma}
		}
		g.feats[label] = dists
		g.priors[label] = float64(len(idx)) / float64(rows)
	}

	return nil
}

// Classes returns the ordered class-label set.
func (g *Gauss) Classes() []string {
	return g.classes
}

// Predict returns the most likely class label for each row of X.
func (g *Gauss) Predict(X *mat.Dense) ([]string, error) {
	idx, err := g.PredictIndices(X)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(idx))
	for i, v := range idx {
		labels[i] = g.classes[v]
	}
	return labels, nil
}

// PredictIndices returns predictions as indices into the class-label set.
func (g *Gauss) PredictIndices(X *mat.Dense) ([]int, error) {
	if len(g.classes) == 0 {
		return nil, fmt.Errorf("model: predict on unfitted model")
	}
	rows, cols := X.Dims()
	if want := len(g.feats[g.classes[0]]); cols != want {
		return nil, fmt.Errorf("model: %d features, fitted on %d", cols, want)
	}

	out := make([]int, rows)
	for i := 0; i < rows; i++ {
		best, bestScore := 0, math.Inf(-1)
		for ci, label := range g.classes {
			score := math.Log(g.priors[label])
			for j := 0; j < cols; j++ {
				score += g.feats[label][j].LogProb(X.At(i, j))
			}
			if score > bestScore {
				best, bestScore = ci, score
			}
		}
		out[i] = best
	}
	return out, nil
}
