package core

import (
	"sort"
	"strings"
)

// Glycan is a resolved glycan: a name bound to a monosaccharide
// composition and its mass. Immutable once resolved.
type Glycan struct {
	Name        string
	Composition Composition
	Mass        float64
}

// LibraryEntry is one row of an optional glycan library. Composition
// may be empty, in which case the name is resolved via the Zhang
// nomenclature rule.
type LibraryEntry struct {
	Name        string
	Composition string
}

// Registry resolves glycan names to Glycans. It merges an optional
// library with the names referenced by the glycoform dataset.
type Registry struct {
	glycans map[string]*Glycan
}

// NewRegistry builds a registry from the library entries and the set
// of glycan names referenced by glycoform rows. An explicit library
// composition takes precedence; otherwise the composition is derived
// from the name. Name-set differences between library and glycoforms
// are reported as diagnostics: library-only names are warned about,
// glycoform-only names are registered from their derived composition.
func NewRegistry(library []LibraryEntry, referenced []string, diag *diagnostics) (*Registry, error) {
	r := &Registry{glycans: make(map[string]*Glycan)}

	libraryNames := make(map[string]bool, len(library))
	for _, entry := range library {
		libraryNames[entry.Name] = true
		g, err := resolveGlycan(entry.Name, entry.Composition)
		if err != nil {
			return nil, err
		}
		r.glycans[entry.Name] = g
	}

	referencedNames := make(map[string]bool, len(referenced))
	for _, name := range referenced {
		referencedNames[name] = true
	}

	if onlyLibrary := nameSetDifference(libraryNames, referencedNames); len(onlyLibrary) > 0 {
		diag.warnf("glycans only in the library, not among the glycoforms: %s",
			strings.Join(onlyLibrary, ", "))
	}
	if onlyGlycoforms := nameSetDifference(referencedNames, libraryNames); len(onlyGlycoforms) > 0 {
		diag.warnf("glycans only among the glycoforms, not in the library: %s; "+
			"adding them to the library", strings.Join(onlyGlycoforms, ", "))
		for _, name := range onlyGlycoforms {
			g, err := resolveGlycan(name, "")
			if err != nil {
				return nil, err
			}
			r.glycans[name] = g
		}
	}

	return r, nil
}

// Lookup returns the resolved glycan for a name.
func (r *Registry) Lookup(name string) (*Glycan, bool) {
	g, ok := r.glycans[name]
	return g, ok
}

// Names returns all registered glycan names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.glycans))
	for name := range r.glycans {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolveGlycan builds a Glycan from an explicit composition string,
// or from the name itself when the string is empty.
func resolveGlycan(name, composition string) (*Glycan, error) {
	var comp Composition
	var err error
	if composition != "" {
		comp, err = ParseComposition(composition)
	} else {
		comp, err = ResolveZhangName(name)
	}
	if err != nil {
		return nil, &UnresolvableGlycanError{Name: name, Reason: err}
	}

	mass, ok := comp.Mass()
	if !ok {
		return nil, &UnresolvableGlycanError{Name: name,
			Reason: errUnknownMonosaccharide(comp)}
	}
	return &Glycan{Name: name, Composition: comp, Mass: mass}, nil
}

func errUnknownMonosaccharide(comp Composition) error {
	var unknown []string
	for m := range comp {
		if _, known := monosaccharideFormulas[m]; !known {
			unknown = append(unknown, m)
		}
	}
	sort.Strings(unknown)
	return &unknownMonosaccharideError{names: unknown}
}

type unknownMonosaccharideError struct {
	names []string
}

func (e *unknownMonosaccharideError) Error() string {
	return "unknown monosaccharide: " + strings.Join(e.names, ", ")
}

// nameSetDifference returns the sorted names present in a but not b.
func nameSetDifference(a, b map[string]bool) []string {
	var diff []string
	for name := range a {
		if !b[name] {
			diff = append(diff, name)
		}
	}
	sort.Strings(diff)
	return diff
}
