// Package pearson computes the Pearson correlation coefficient between two
// samples together with its two-sided p-value.
package pearson

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Coefficient returns the Pearson correlation coefficient r of the samples
// x and y and the two-sided p-value for the hypothesis r == 0.
//
// The samples must have equal length and at least two points. Zero variance
// in either sample yields NaN for both results, as reported by the
// underlying statistics routine.
func Coefficient(x, y []float64) (r, p float64, err error) {
	if len(x) != len(y) {
		return 0, 0, fmt.Errorf("pearson: sample lengths differ: %d vs %d", len(x), len(y))
	}
	if len(x) < 2 {
		return 0, 0, fmt.Errorf("pearson: need at least 2 points, got %d", len(x))
	}

	r = stat.Correlation(x, y, nil)
	p = pValue(r, len(x))
	return r, p, nil
}

// pValue converts r to a Student's-t statistic with n-2 degrees of freedom
// and returns the two-sided tail probability.
func pValue(r float64, n int) float64 {
	if math.IsNaN(r) {
		return math.NaN()
	}
	df := float64(n - 2)
	if df <= 0 {
		return math.NaN()
	}
	if r >= 1 || r <= -1 {
		// |t| is unbounded, the tail vanishes.
		return 0
	}
	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.Survival(math.Abs(t))
}
