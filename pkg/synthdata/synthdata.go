// Package synthdata generates bounded normally distributed samples for
// demos and tests.
package synthdata

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Params describes a normal distribution truncated to [Low, High].
type Params struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Low    float64 `json:"low"`
	High   float64 `json:"high"`
}

// Validate checks if the parameters are valid.
func (p Params) Validate() error {
	if p.StdDev <= 0 {
		return fmt.Errorf("synthdata: std_dev must be positive")
	}
	if p.Low >= p.High {
		return fmt.Errorf("synthdata: low must be less than high")
	}
	if p.Mean < p.Low || p.Mean > p.High {
		return fmt.Errorf("synthdata: mean must be between low and high")
	}
	return nil
}

// Generator draws samples from a bounded normal distribution.
type Generator struct {
	dist      distuv.Normal
	low, high float64
}

// NewGenerator builds a seeded generator for the given parameters.
func NewGenerator(p Params, seed uint64) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		dist: distuv.Normal{
			Mu:    p.Mean,
			Sigma: p.StdDev,
			Src:   rand.NewSource(seed),
		},
		low:  p.Low,
		high: p.High,
	}, nil
}

// Rand draws one sample, rejecting values outside the bounds.
func (g *Generator) Rand() float64 {
	for {
		v := g.dist.Rand()
		if v >= g.low && v <= g.high {
			return v
		}
	}
}

// RandN draws n samples.
func (g *Generator) RandN(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Rand()
	}
	return out
}

// Blobs draws n samples per class from the per-class feature distributions
// and returns the stacked feature matrix with aligned labels. Rows are
// grouped by class in the order given; feats[class] must hold one Params per
// feature.
func Blobs(n int, classes []string, feats map[string][]Params, seed uint64) (*mat.Dense, []string, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("synthdata: n must be positive")
	}
	if len(classes) == 0 {
		return nil, nil, fmt.Errorf("synthdata: no classes given")
	}
	nfeat := len(feats[classes[0]])
	if nfeat == 0 {
		return nil, nil, fmt.Errorf("synthdata: no feature parameters for class %q", classes[0])
	}

	X := mat.NewDense(n*len(classes), nfeat, nil)
	y := make([]string, 0, n*len(classes))

	for ci, class := range classes {
		params := feats[class]
		if len(params) != nfeat {
			return nil, nil, fmt.Errorf("synthdata: class %q has %d feature parameters, want %d", class, len(params), nfeat)
		}
		for j, p := range params {
			gen, err := NewGenerator(p, seed+uint64(ci*nfeat+j))
			if err != nil {
				return nil, nil, fmt.Errorf("synthdata: class %q feature %d: %w", class, j, err)
			}
			for i, v := range gen.RandN(n) {
				X.Set(ci*n+i, j, v)
			}
		}
		for i := 0; i < n; i++ {
			y = append(y, class)
		}
	}

	return X, y, nil
}
