package core

import (
	"fmt"
	"sort"
	"strings"
)

// InputShapeError reports a dataset row with too few columns.
type InputShapeError struct {
	Dataset string
	Key     string
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("%s: row %q contains too few columns", e.Dataset, e.Key)
}

// SiteCountMismatchError reports glycoform rows that disagree on the
// number of glycosylation sites. Counts holds every distinct site
// count observed, ascending.
type SiteCountMismatchError struct {
	Counts []int
}

func (e *SiteCountMismatchError) Error() string {
	counts := append([]int(nil), e.Counts...)
	sort.Ints(counts)
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return fmt.Sprintf("glycoforms disagree on the number of glycosylation sites: {%s}",
		strings.Join(parts, ", "))
}

// UnresolvableGlycanError reports a glycan name that neither the
// library nor the nomenclature rule could resolve.
type UnresolvableGlycanError struct {
	Name   string
	Reason error
}

func (e *UnresolvableGlycanError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("unresolvable glycan %q: %v", e.Name, e.Reason)
	}
	return fmt.Sprintf("unresolvable glycan %q", e.Name)
}

func (e *UnresolvableGlycanError) Unwrap() error { return e.Reason }

// UnderdeterminedCorrectionError reports a glycation distribution
// whose zero-count probability vanishes, leaving the forward
// substitution without an anchor.
type UnderdeterminedCorrectionError struct{}

func (e *UnderdeterminedCorrectionError) Error() string {
	return "correction is underdetermined: probability of zero glycations is 0"
}
