package core

import (
	"math"
	"strings"
	"testing"
)

// hexLadder builds glycoforms spaced by exactly one hexose.
func hexLadder(abundances ...float64) []*Glycoform {
	forms := make([]*Glycoform, len(abundances))
	for i, a := range abundances {
		forms[i] = &Glycoform{
			Name:      string(rune('a' + i)),
			Mass:      2000 + float64(i)*MassHexose,
			Abundance: U(a, 0),
			order:     i,
		}
	}
	return forms
}

func testDistribution(t *testing.T, abundances map[int]float64) *GlycationDistribution {
	t.Helper()
	var rows []GlycationRow
	for k, a := range abundances {
		rows = append(rows, GlycationRow{Count: k, Fields: []float64{a, 0}})
	}
	diag := &diagnostics{}
	dist, err := NewGlycationDistribution(rows, diag)
	if err != nil {
		t.Fatalf("NewGlycationDistribution() error: %v", err)
	}
	return dist
}

func TestBuildAttributionGraph(t *testing.T) {
	forms := hexLadder(10, 5, 1)
	dist := testDistribution(t, map[int]float64{0: 80, 1: 15, 2: 5})
	diag := &diagnostics{}

	graph, kernel := buildAttributionGraph(forms, dist, diag)

	if len(graph.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(graph.Nodes))
	}

	// origin 0: k=1 -> bin 1, k=2 -> bin 2; origin 1: k=1 -> bin 2.
	type link struct{ origin, target, k int }
	want := map[link]float64{
		{0, 1, 1}: 0.15,
		{0, 2, 2}: 0.05,
		{1, 2, 1}: 0.15,
	}
	if len(graph.Edges) != len(want) {
		t.Fatalf("got %d edges (%v), want %d", len(graph.Edges), graph.Edges, len(want))
	}
	for _, e := range graph.Edges {
		w, ok := want[link{e.Origin, e.Target, e.Glycations}]
		if !ok {
			t.Errorf("unexpected edge %+v", e)
			continue
		}
		if math.Abs(e.Weight.Value-w) > 1e-12 {
			t.Errorf("edge %d->%d weight = %g, want %g", e.Origin, e.Target, e.Weight.Value, w)
		}
	}

	for delta, wantP := range map[int]float64{0: 0.8, 1: 0.15, 2: 0.05} {
		if got := kernel.P[delta].Value; math.Abs(got-wantP) > 1e-12 {
			t.Errorf("kernel[%d] = %g, want %g", delta, got, wantP)
		}
	}
}

func TestBuildAttributionGraphLostMass(t *testing.T) {
	forms := hexLadder(10, 5, 1)
	dist := testDistribution(t, map[int]float64{0: 80, 1: 15, 2: 5})
	diag := &diagnostics{}

	buildAttributionGraph(forms, dist, diag)

	// origin 1 loses p_2 (5%), origin 2 loses p_1+p_2 (20%); both are
	// above the reporting threshold.
	var reported []string
	for _, d := range diag.list {
		if strings.Contains(d.Message, "discarded") {
			reported = append(reported, d.Message)
		}
	}
	if len(reported) != 2 {
		t.Fatalf("got %d lost-mass warnings (%v), want 2", len(reported), reported)
	}
	if !strings.Contains(reported[0], `"b"`) || !strings.Contains(reported[0], "5.00%") {
		t.Errorf("first warning = %q, want origin b losing 5.00%%", reported[0])
	}
	if !strings.Contains(reported[1], `"c"`) || !strings.Contains(reported[1], "20.00%") {
		t.Errorf("second warning = %q, want origin c losing 20.00%%", reported[1])
	}
}

func TestBuildAttributionGraphGapDropsEdge(t *testing.T) {
	// masses: a, then a gap of two hexoses to b. A single glycation of
	// a matches nothing; two glycations of a land on b.
	forms := []*Glycoform{
		{Name: "a", Mass: 2000, Abundance: U(10, 0)},
		{Name: "b", Mass: 2000 + 2*MassHexose, Abundance: U(2, 0)},
	}
	dist := testDistribution(t, map[int]float64{0: 90, 1: 6, 2: 4})
	diag := &diagnostics{}

	graph, kernel := buildAttributionGraph(forms, dist, diag)

	if len(graph.Edges) != 1 {
		t.Fatalf("got %d edges (%v), want 1", len(graph.Edges), graph.Edges)
	}
	e := graph.Edges[0]
	if e.Origin != 0 || e.Target != 1 || e.Glycations != 2 {
		t.Errorf("edge = %+v, want 0->1 with 2 glycations", e)
	}
	if _, ok := kernel.P[1]; !ok {
		// index difference 1 corresponds to two glycations here
		t.Error("kernel lacks entry for index difference 1")
	}
}

func TestMassTolerance(t *testing.T) {
	forms := hexLadder(1, 1, 1)
	tol := massTolerance(forms)
	if want := MassHexose / 2; math.Abs(tol-want) > 1e-9 {
		t.Errorf("massTolerance = %g, want %g for hexose-spaced forms", tol, want)
	}

	tight := []*Glycoform{
		{Name: "a", Mass: 1000},
		{Name: "b", Mass: 1001},
	}
	if tol := massTolerance(tight); math.Abs(tol-0.5) > 1e-9 {
		t.Errorf("massTolerance = %g, want 0.5 for 1 Da spacing", tol)
	}
}
