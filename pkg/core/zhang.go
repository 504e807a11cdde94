package core

import (
	"fmt"
	"regexp"
	"strconv"
)

// reZhang matches glycan abbreviations in Zhang nomenclature, e.g.
// "A2G1F" or "A2S1G1M3F". Groups: antennas, Neu5Gc, Neu5Ac,
// alpha-Gal, Gal, Man, core Fuc, bisecting GlcNAc.
var reZhang = regexp.MustCompile(
	`^(?:A(\d))?(?:Sg(\d))?(?:S(\d))?(?:Ga(\d))?(?:G(\d))?(?:M(\d))?(F)?(B)?$`)

// aglycosylatedNames are accepted as glycans with empty composition.
var aglycosylatedNames = map[string]bool{
	"non-glycosylated": true,
	"unglycosylated":   true,
	"null":             true,
}

// ResolveZhangName converts a glycan abbreviation in Zhang
// nomenclature (e.g., "A2G1F") to its monosaccharide composition
// (e.g., "4 Hex, 3 HexNAc, 1 Fuc").
func ResolveZhangName(name string) (Composition, error) {
	if name == "" || aglycosylatedNames[name] {
		return Composition{}, nil
	}

	m := reZhang.FindStringSubmatch(name)
	if m == nil {
		return nil, fmt.Errorf("invalid glycan name: %q", name)
	}
	all := true
	for _, g := range m[1:] {
		if g != "" {
			all = false
			break
		}
	}
	if all {
		return nil, fmt.Errorf("invalid glycan name: %q", name)
	}

	antennas := groupCount(m[1])
	neu5gc := groupCount(m[2])
	neu5ac := groupCount(m[3])
	alphaGal := groupCount(m[4])
	gal := groupCount(m[5])
	man := groupCount(m[6])
	fuc := 0
	if m[7] != "" {
		fuc = 1
	}
	bisecting := 0
	if m[8] != "" {
		bisecting = 1
	}

	if m[6] == "" {
		man = 3 // there are always three Man
		if m[1] == "" {
			antennas = 2 // handles abbreviations like "Gn" and "GnF"
		}
	}

	comp := Composition{}
	if hex := neu5gc + neu5ac + 2*alphaGal + gal + man; hex > 0 {
		comp["Hex"] = hex
	}
	if hexnac := antennas + 2 + bisecting; hexnac > 0 {
		comp["HexNAc"] = hexnac
	}
	if neu5ac > 0 {
		comp["Neu5Ac"] = neu5ac
	}
	if neu5gc > 0 {
		comp["Neu5Gc"] = neu5gc
	}
	if fuc > 0 {
		comp["Fuc"] = fuc
	}
	return comp, nil
}

func groupCount(g string) int {
	if g == "" {
		return 0
	}
	n, _ := strconv.Atoi(g)
	return n
}
