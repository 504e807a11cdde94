package core

import "sort"

// ResultRow pairs a glycoform's observed abundance with its
// bias-corrected value. Change is corrected minus observed.
type ResultRow struct {
	Glycoform string
	Observed  Uncertain
	Corrected Uncertain
	Change    float64
}

// Result is the outcome of a correction run: the corrected rows in
// original input order, the attribution graph for export, and the
// ordered diagnostics accumulated along the way.
type Result struct {
	Rows        []ResultRow
	Graph       *Graph
	Diagnostics []Diagnostic
}

// solve inverts the attribution relation by forward substitution from
// the lowest-mass bin upward:
//
//	true_0 = observed_0 / p_0
//	true_j = (observed_j - sum_{i<j} true_i * p_{j-i}) / p_0
//
// forms must be in ascending-mass order. Requires p_0 > 0; negative
// corrected abundances are kept and reported as implausible.
func solve(forms []*Glycoform, kernel *Kernel, diag *diagnostics) ([]Uncertain, error) {
	p0 := kernel.P[0]
	if p0.Value == 0 {
		return nil, &UnderdeterminedCorrectionError{}
	}

	deltas := make([]int, 0, len(kernel.P))
	for d := range kernel.P {
		if d > 0 {
			deltas = append(deltas, d)
		}
	}
	sort.Ints(deltas)

	corrected := make([]Uncertain, len(forms))
	for j := range forms {
		incoming := Uncertain{}
		for _, d := range deltas {
			if i := j - d; i >= 0 {
				incoming = incoming.Add(corrected[i].Mul(kernel.P[d]))
			}
		}
		corrected[j] = forms[j].Abundance.Sub(incoming).Div(p0)
		if corrected[j].Value < 0 {
			diag.warnf("glycoform %q: corrected abundance is negative (%.4f), "+
				"which is physically implausible", forms[j].Name, corrected[j].Value)
		}
	}
	return corrected, nil
}
