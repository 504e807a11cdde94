package core

import "math"

// lostMassThreshold is the fraction of an origin's probability mass
// that may silently fall outside the observed glycoform set before a
// diagnostic is raised.
const lostMassThreshold = 1e-3

// Node is a glycoform vertex of the attribution graph. Corrected is
// filled in once the solver has run, so exporters can label nodes
// with both abundances.
type Node struct {
	Glycoform *Glycoform
	Index     int // position in the ascending-mass ordering
	Corrected Uncertain
}

// Edge is a weighted attribution link: a fraction Weight of the
// origin glycoform's true population is measured under the target
// bin, shifted by Glycations hexoses.
type Edge struct {
	Origin     int // node index
	Target     int // node index
	Glycations int
	Weight     Uncertain
}

// Graph is the directed attribution graph handed to exporters: nodes
// are glycoforms in ascending-mass order, edges link true origins to
// their apparent bins.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Kernel is the lower-triangular attribution kernel: a sparse map
// from bin-index difference to glycation probability. Delta 0 always
// holds p_0.
type Kernel struct {
	P map[int]Uncertain
}

// buildAttributionGraph constructs the attribution graph over the
// glycoforms (which must be in ascending-mass order). For every
// origin g and glycation count k > 0 with p_k > 0, the apparent bin
// is the glycoform whose mass matches M(g) + k*massHex within the
// dataset's mass resolution. Probability mass whose shifted mass
// matches no observed glycoform is dropped; origins losing more than
// lostMassThreshold are reported.
func buildAttributionGraph(forms []*Glycoform, dist *GlycationDistribution, diag *diagnostics) (*Graph, *Kernel) {
	g := &Graph{Nodes: make([]Node, len(forms))}
	for i, gf := range forms {
		g.Nodes[i] = Node{Glycoform: gf, Index: i}
	}

	kernel := &Kernel{P: map[int]Uncertain{0: dist.P(0)}}
	tolerance := massTolerance(forms)

	for i, origin := range forms {
		lost := 0.0
		for _, k := range dist.Counts() {
			if k == 0 {
				continue
			}
			p := dist.P(k)
			shifted := origin.Mass + float64(k)*MassHexose
			j, ok := findBin(forms, i, shifted, tolerance)
			if !ok {
				lost += p.Value
				continue
			}
			g.Edges = append(g.Edges, Edge{
				Origin:     i,
				Target:     j,
				Glycations: k,
				Weight:     p,
			})
			kernel.P[j-i] = p
		}
		if lost > lostMassThreshold {
			diag.warnf("glycoform %q: %.2f%% of its glycation probability mass "+
				"falls outside the observed mass range and is discarded",
				origin.Name, lost*100)
		}
	}

	return g, kernel
}

// findBin locates the glycoform whose mass matches the shifted mass
// within tolerance, searching upward from the origin since glycation
// only increases apparent mass. Among multiple matches the closest
// wins.
func findBin(forms []*Glycoform, origin int, mass, tolerance float64) (int, bool) {
	best := -1
	bestDelta := math.Inf(1)
	for j := origin + 1; j < len(forms); j++ {
		delta := math.Abs(forms[j].Mass - mass)
		if delta <= tolerance && delta < bestDelta {
			best = j
			bestDelta = delta
		}
		if forms[j].Mass > mass+tolerance {
			break
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// massTolerance derives the matching tolerance from the dataset
// itself: half the smallest gap between adjacent glycoform masses,
// capped at half a hexose so a shifted mass can never be attributed
// across a glycation step.
func massTolerance(forms []*Glycoform) float64 {
	tolerance := MassHexose / 2
	for i := 1; i < len(forms); i++ {
		if gap := (forms[i].Mass - forms[i-1].Mass) / 2; gap > 0 && gap < tolerance {
			tolerance = gap
		}
	}
	return tolerance
}
