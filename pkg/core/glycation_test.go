package core

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestGlycationDistributionNormalization(t *testing.T) {
	rows := []GlycationRow{
		{Count: 0, Fields: []float64{80, 0}},
		{Count: 1, Fields: []float64{15, 0}},
		{Count: 2, Fields: []float64{5, 0}},
	}
	diag := &diagnostics{}
	dist, err := NewGlycationDistribution(rows, diag)
	if err != nil {
		t.Fatalf("NewGlycationDistribution() error: %v", err)
	}

	wantP := map[int]float64{0: 0.8, 1: 0.15, 2: 0.05}
	sum := 0.0
	for k, want := range wantP {
		got := dist.P(k).Value
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("P(%d) = %g, want %g", k, got, want)
		}
		sum += got
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("probabilities sum to %g, want 1", sum)
	}

	if got := dist.Counts(); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("Counts() = %v, want [0 1 2]", got)
	}
	if dist.MaxCount() != 2 {
		t.Errorf("MaxCount() = %d, want 2", dist.MaxCount())
	}
}

func TestGlycationDistributionErrorPropagation(t *testing.T) {
	// p_0 = 60/100; relative errors of numerator and denominator
	// combine in quadrature.
	rows := []GlycationRow{
		{Count: 0, Fields: []float64{60, 6}},
		{Count: 1, Fields: []float64{40, 8}},
	}
	diag := &diagnostics{}
	dist, err := NewGlycationDistribution(rows, diag)
	if err != nil {
		t.Fatalf("NewGlycationDistribution() error: %v", err)
	}

	p0 := dist.P(0)
	if math.Abs(p0.Value-0.6) > 1e-12 {
		t.Errorf("P(0) = %g, want 0.6", p0.Value)
	}
	totalErr := math.Hypot(6, 8) // 10
	wantErr := 0.6 * math.Hypot(6.0/60, totalErr/100)
	if math.Abs(p0.Err-wantErr) > 1e-12 {
		t.Errorf("P(0) error = %g, want %g", p0.Err, wantErr)
	}
}

func TestGlycationDistributionShape(t *testing.T) {
	t.Run("no numeric fields is fatal", func(t *testing.T) {
		rows := []GlycationRow{{Count: 0}}
		diag := &diagnostics{}
		_, err := NewGlycationDistribution(rows, diag)
		var shape *InputShapeError
		if !errors.As(err, &shape) {
			t.Fatalf("expected InputShapeError, got %v", err)
		}
	})

	t.Run("missing error column warns", func(t *testing.T) {
		rows := []GlycationRow{
			{Count: 0, Fields: []float64{90}},
			{Count: 1, Fields: []float64{10}},
		}
		diag := &diagnostics{}
		if _, err := NewGlycationDistribution(rows, diag); err != nil {
			t.Fatalf("NewGlycationDistribution() error: %v", err)
		}
		if len(diag.list) != 1 {
			t.Errorf("diagnostics = %v, want one missing-error warning", diag.list)
		}
	})
}
