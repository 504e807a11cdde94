package core

import (
	"sort"
	"strconv"
)

// GlycationRow is one pre-parsed glycation record: the glycation
// count plus the numeric fields of the row (abundance and,
// optionally, its error).
type GlycationRow struct {
	Count  int
	Fields []float64
}

// GlycationDistribution holds the normalized glycation probabilities
// p_k indexed by glycation count k. Probabilities sum to 1; the error
// of each p_k is propagated from the observed abundances.
type GlycationDistribution struct {
	probs map[int]Uncertain
	max   int
}

// NewGlycationDistribution normalizes observed glycation abundances
// into a probability kernel. Errors propagate through the ratio with
// relative errors combined in quadrature.
func NewGlycationDistribution(rows []GlycationRow, diag *diagnostics) (*GlycationDistribution, error) {
	missingError := 0
	maxExtra := 0

	abundances := make(map[int]Uncertain, len(rows))
	total := Uncertain{}
	max := 0
	for _, row := range rows {
		value, tooFew, extra := cleanFields(row.Fields)
		if tooFew {
			return nil, &InputShapeError{Dataset: "glycation", Key: strconv.Itoa(row.Count)}
		}
		if len(row.Fields) == 1 {
			missingError++
		}
		if extra > maxExtra {
			maxExtra = extra
		}
		abundances[row.Count] = abundances[row.Count].Add(value)
		total = total.Add(value)
		if row.Count > max {
			max = row.Count
		}
	}

	if missingError > 0 {
		diag.warnf("glycation: %d rows lack an error column; assuming errors of zero",
			missingError)
	}
	if maxExtra > 0 {
		diag.warnf("glycation: %d additional columns ignored", maxExtra)
	}

	d := &GlycationDistribution{probs: make(map[int]Uncertain, len(abundances)), max: max}
	for k, a := range abundances {
		if total.Value != 0 {
			d.probs[k] = a.Div(total)
		}
	}
	return d, nil
}

// P returns the probability of observing k glycations.
func (d *GlycationDistribution) P(k int) Uncertain {
	return d.probs[k]
}

// MaxCount returns the largest glycation count in the distribution.
func (d *GlycationDistribution) MaxCount() int {
	return d.max
}

// Counts returns the glycation counts with nonzero probability,
// ascending.
func (d *GlycationDistribution) Counts() []int {
	counts := make([]int, 0, len(d.probs))
	for k, p := range d.probs {
		if p.Value > 0 {
			counts = append(counts, k)
		}
	}
	sort.Ints(counts)
	return counts
}
