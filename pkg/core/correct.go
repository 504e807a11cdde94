package core

import "sort"

// Correct recovers bias-corrected glycoform abundances from observed
// glycoform abundances, observed glycation abundances and an optional
// glycan library. It is a pure function of its inputs: it performs no
// I/O and reports non-fatal findings through the ordered diagnostics
// attached to the result. A fatal condition is returned as one of the
// typed errors of this package.
func Correct(glycoforms []GlycoformRow, glycation []GlycationRow, library []LibraryEntry) (*Result, error) {
	diag := &diagnostics{}

	if err := checkSiteCounts(glycoforms); err != nil {
		return nil, err
	}

	registry, err := NewRegistry(library, referencedGlycans(glycoforms), diag)
	if err != nil {
		return nil, err
	}

	forms, err := buildGlycoforms(glycoforms, registry, diag)
	if err != nil {
		return nil, err
	}

	dist, err := NewGlycationDistribution(glycation, diag)
	if err != nil {
		return nil, err
	}

	byMass := sortByMass(forms)
	graph, kernel := buildAttributionGraph(byMass, dist, diag)

	corrected, err := solve(byMass, kernel, diag)
	if err != nil {
		return nil, err
	}

	for i := range graph.Nodes {
		graph.Nodes[i].Corrected = corrected[i]
	}

	rows := make([]ResultRow, len(byMass))
	for i, gf := range byMass {
		rows[gf.order] = ResultRow{
			Glycoform: gf.Name,
			Observed:  gf.Abundance,
			Corrected: corrected[i],
			Change:    corrected[i].Value - gf.Abundance.Value,
		}
	}

	return &Result{
		Rows:        rows,
		Graph:       graph,
		Diagnostics: diag.list,
	}, nil
}

// SortedByCorrected returns the result rows ordered by descending
// corrected abundance, for report output.
func (r *Result) SortedByCorrected() []ResultRow {
	rows := make([]ResultRow, len(r.Rows))
	copy(rows, r.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Corrected.Value > rows[j].Corrected.Value
	})
	return rows
}
