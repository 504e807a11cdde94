package core

import (
	"sort"
	"strings"
)

// GlycoformRow is one pre-parsed glycoform record: slash-delimited
// glycan names plus the numeric fields of the row (abundance and,
// optionally, its error).
type GlycoformRow struct {
	Name   string
	Fields []float64
}

// Glycoform is a combination of glycans occupying the glycosylation
// sites of a protein. Records whose resolved total composition is
// equal are merged into a single glycoform; Name then joins the
// merged records with " or ".
type Glycoform struct {
	Name        string
	Sites       []*Glycan
	Composition Composition
	Mass        float64
	Abundance   Uncertain

	order int // first-occurrence index in the input
}

// siteNames splits a glycoform record name into its per-site glycan
// names.
func siteNames(name string) []string {
	return strings.Split(name, "/")
}

// cleanFields validates the numeric fields of a row, returning the
// abundance with uncertainty. tooFew reports an empty field list;
// extra counts surplus fields beyond (abundance, error).
func cleanFields(fields []float64) (value Uncertain, tooFew bool, extra int) {
	switch {
	case len(fields) == 0:
		return Uncertain{}, true, 0
	case len(fields) == 1:
		return U(fields[0], 0), false, 0
	default:
		return U(fields[0], fields[1]), false, len(fields) - 2
	}
}

// buildGlycoforms resolves the glycoform rows against the registry
// and merges records with equal total composition. The returned
// glycoforms keep the first-occurrence order of the input.
func buildGlycoforms(rows []GlycoformRow, registry *Registry, diag *diagnostics) ([]*Glycoform, error) {
	missingError := 0
	maxExtra := 0

	byKey := make(map[string]*Glycoform)
	var forms []*Glycoform

	for _, row := range rows {
		abundance, tooFew, extra := cleanFields(row.Fields)
		if tooFew {
			return nil, &InputShapeError{Dataset: "glycoforms", Key: row.Name}
		}
		if len(row.Fields) == 1 {
			missingError++
		}
		if extra > maxExtra {
			maxExtra = extra
		}

		var sites []*Glycan
		comp := Composition{}
		mass := 0.0
		for _, name := range siteNames(row.Name) {
			g, ok := registry.Lookup(name)
			if !ok {
				return nil, &UnresolvableGlycanError{Name: name}
			}
			sites = append(sites, g)
			comp = comp.Add(g.Composition)
			mass += g.Mass
		}

		key := comp.Key()
		if existing, ok := byKey[key]; ok {
			existing.Name += " or " + row.Name
			existing.Abundance = existing.Abundance.Add(abundance)
			continue
		}
		gf := &Glycoform{
			Name:        row.Name,
			Sites:       sites,
			Composition: comp,
			Mass:        mass,
			Abundance:   abundance,
			order:       len(forms),
		}
		byKey[key] = gf
		forms = append(forms, gf)
	}

	if missingError > 0 {
		diag.warnf("glycoforms: %d rows lack an error column; assuming errors of zero",
			missingError)
	}
	if maxExtra > 0 {
		diag.warnf("glycoforms: %d additional columns ignored", maxExtra)
	}

	return forms, nil
}

// checkSiteCounts verifies that every glycoform row names the same
// number of glycosylation sites.
func checkSiteCounts(rows []GlycoformRow) error {
	seen := make(map[int]bool)
	for _, row := range rows {
		seen[len(siteNames(row.Name))] = true
	}
	if len(seen) > 1 {
		counts := make([]int, 0, len(seen))
		for c := range seen {
			counts = append(counts, c)
		}
		sort.Ints(counts)
		return &SiteCountMismatchError{Counts: counts}
	}
	return nil
}

// referencedGlycans returns the distinct glycan names used by the
// glycoform rows, in first-occurrence order.
func referencedGlycans(rows []GlycoformRow) []string {
	seen := make(map[string]bool)
	var names []string
	for _, row := range rows {
		for _, name := range siteNames(row.Name) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// sortByMass returns the glycoforms ordered by ascending mass,
// without touching the input slice.
func sortByMass(forms []*Glycoform) []*Glycoform {
	sorted := make([]*Glycoform, len(forms))
	copy(sorted, forms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Mass < sorted[j].Mass
	})
	return sorted
}
