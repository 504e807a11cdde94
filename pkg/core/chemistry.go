package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Atomic masses (monoisotopic)
const (
	MassH = 1.0078250321
	MassC = 12.0000000000
	MassN = 14.0030740052
	MassO = 15.9949146221
)

// elementalFormula stores the elemental composition of a monosaccharide
// residue (water already lost on attachment).
type elementalFormula struct {
	C, H, N, O int
}

func (f elementalFormula) mass() float64 {
	return float64(f.C)*MassC +
		float64(f.H)*MassH +
		float64(f.N)*MassN +
		float64(f.O)*MassO
}

// monosaccharideFormulas maps monosaccharide names to residue formulas.
var monosaccharideFormulas = map[string]elementalFormula{
	"Hex":    {C: 6, H: 10, O: 5},
	"HexNAc": {C: 8, H: 13, N: 1, O: 5},
	"Neu5Ac": {C: 11, H: 17, N: 1, O: 8},
	"Neu5Gc": {C: 11, H: 17, N: 1, O: 9},
	"Fuc":    {C: 6, H: 10, O: 4},
}

// monosaccharideOrder fixes the display order of compositions.
var monosaccharideOrder = []string{"Hex", "HexNAc", "Neu5Ac", "Neu5Gc", "Fuc"}

// MassHexose is the mass added per glycation event. Glycation attaches
// one hexose, so an apparent bin sits exactly k hexoses above its
// true origin.
var MassHexose = monosaccharideFormulas["Hex"].mass()

// MonosaccharideMass returns the residue mass of a monosaccharide name.
func MonosaccharideMass(name string) (float64, bool) {
	f, ok := monosaccharideFormulas[name]
	if !ok {
		return 0, false
	}
	return f.mass(), true
}

// Composition is a monosaccharide composition: name -> count.
// Zero counts are never stored.
type Composition map[string]int

// Add returns the entrywise sum of c and other.
func (c Composition) Add(other Composition) Composition {
	sum := make(Composition, len(c)+len(other))
	for m, n := range c {
		sum[m] = n
	}
	for m, n := range other {
		if v := sum[m] + n; v != 0 {
			sum[m] = v
		} else {
			delete(sum, m)
		}
	}
	return sum
}

// Mass returns the total monoisotopic mass of the composition.
// The second return value is false if a monosaccharide is unknown.
func (c Composition) Mass() (float64, bool) {
	total := 0.0
	for m, n := range c {
		f, ok := monosaccharideFormulas[m]
		if !ok {
			return 0, false
		}
		total += float64(n) * f.mass()
	}
	return total, true
}

// Key returns a canonical string used to group glycoforms with equal
// composition regardless of site ordering.
func (c Composition) Key() string {
	names := make([]string, 0, len(c))
	for m := range c {
		if c[m] != 0 {
			names = append(names, m)
		}
	}
	sort.Strings(names)
	var sb strings.Builder
	for _, m := range names {
		sb.WriteString(m)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(c[m]))
		sb.WriteByte(';')
	}
	return sb.String()
}

// String formats the composition like "4 Hex, 3 HexNAc, 1 Fuc",
// or "[no glycans]" when empty.
func (c Composition) String() string {
	if len(c) == 0 {
		return "[no glycans]"
	}
	var parts []string
	for _, m := range monosaccharideOrder {
		if n, ok := c[m]; ok && n != 0 {
			parts = append(parts, strconv.Itoa(n)+" "+m)
		}
	}
	// unknown monosaccharides last, alphabetically
	var rest []string
	for m, n := range c {
		if _, known := monosaccharideFormulas[m]; !known && n != 0 {
			rest = append(rest, strconv.Itoa(n)+" "+m)
		}
	}
	sort.Strings(rest)
	return strings.Join(append(parts, rest...), ", ")
}

// ParseComposition parses a composition string like
// "4 Hex, 3 HexNAc, Fuc" (count optional, defaulting to 1).
func ParseComposition(s string) (Composition, error) {
	comp := make(Composition)
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		count := 1
		name := field
		if i := strings.IndexByte(field, ' '); i > 0 {
			if n, err := strconv.Atoi(strings.TrimSpace(field[:i])); err == nil {
				count = n
				name = strings.TrimSpace(field[i+1:])
			}
		}
		if name == "" {
			return nil, fmt.Errorf("invalid composition %q: empty monosaccharide name", s)
		}
		if count != 0 {
			comp[name] += count
		}
	}
	return comp, nil
}
