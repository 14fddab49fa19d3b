package pearson

import (
	"math"
	"testing"
)

const Tolerance = 1e-9

func Equals(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func TestCoefficientPerfectCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	r, p, err := Coefficient(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equals(r, 1) {
		t.Errorf("Expected r to be 1, got %v", r)
	}
	if !Equals(p, 0) {
		t.Errorf("Expected p to be 0, got %v", p)
	}
}

func TestCoefficientPerfectAntiCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{8, 6, 4, 2}

	r, _, err := Coefficient(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equals(r, -1) {
		t.Errorf("Expected r to be -1, got %v", r)
	}
}

func TestCoefficientKnownValue(t *testing.T) {
	// Hand-checked example: r = 0.5 exactly.
	x := []float64{1, 2, 3}
	y := []float64{1, 3, 2}

	r, p, err := Coefficient(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equals(r, 0.5) {
		t.Errorf("Expected r to be 0.5, got %v", r)
	}
	if p <= 0 || p > 1 {
		t.Errorf("Expected p in (0, 1], got %v", p)
	}
}

func TestCoefficientZeroVariancePropagatesNaN(t *testing.T) {
	x := []float64{3, 3, 3, 3}
	y := []float64{1, 2, 3, 4}

	r, p, err := Coefficient(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(r) || !math.IsNaN(p) {
		t.Errorf("Expected NaN r and p for zero variance, got r=%v p=%v", r, p)
	}
}

func TestCoefficientLengthMismatch(t *testing.T) {
	if _, _, err := Coefficient([]float64{1, 2, 3}, []float64{1, 2}); err == nil {
		t.Error("Expected error for mismatched lengths, got nil")
	}
}

func TestCoefficientTooFewPoints(t *testing.T) {
	if _, _, err := Coefficient([]float64{1}, []float64{2}); err == nil {
		t.Error("Expected error for a single point, got nil")
	}
}
