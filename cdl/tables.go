package cdl

import (
	"sort"
	"strings"
)

// Static crystallographic vocabulary. Everything in this file is
// constructed once and never mutated, so the tables are safe to share
// across concurrent analyses without locking.

// AmorphousKeyword introduces non-crystalline lines in place of a
// crystal system name.
const AmorphousKeyword = "amorphous"

var CrystalSystems = map[string]bool{
	"cubic":        true,
	"tetragonal":   true,
	"orthorhombic": true,
	"hexagonal":    true,
	"trigonal":     true,
	"monoclinic":   true,
	"triclinic":    true,
}

// PointGroups lists the 32 crystallographic point groups keyed by the
// system they belong to.
var PointGroups = map[string]map[string]bool{
	"cubic":        {"m3m": true, "432": true, "-43m": true, "m-3": true, "23": true},
	"hexagonal":    {"6/mmm": true, "622": true, "6mm": true, "-6m2": true, "6/m": true, "-6": true, "6": true},
	"trigonal":     {"-3m": true, "32": true, "3m": true, "-3": true, "3": true},
	"tetragonal":   {"4/mmm": true, "422": true, "4mm": true, "-42m": true, "4/m": true, "-4": true, "4": true},
	"orthorhombic": {"mmm": true, "222": true, "mm2": true},
	"monoclinic":   {"2/m": true, "m": true, "2": true},
	"triclinic":    {"-1": true, "1": true},
}

var AllPointGroups = func() map[string]bool {
	all := make(map[string]bool)
	for _, groups := range PointGroups {
		for pg := range groups {
			all[pg] = true
		}
	}
	return all
}()

var DefaultPointGroups = map[string]string{
	"cubic":        "m3m",
	"tetragonal":   "4/mmm",
	"orthorhombic": "mmm",
	"hexagonal":    "6/mmm",
	"trigonal":     "-3m",
	"monoclinic":   "2/m",
	"triclinic":    "-1",
}

// NamedForms maps a form name to its canonical (h, k, l) indices. For
// four-index systems the Miller-Bravais i component is derived as
// -(h+k); see FormMillerText.
var NamedForms = map[string][3]int{
	// Cubic
	"cube":            {1, 0, 0},
	"octahedron":      {1, 1, 1},
	"dodecahedron":    {1, 1, 0},
	"trapezohedron":   {2, 1, 1},
	"tetrahexahedron": {2, 1, 0},
	"trisoctahedron":  {2, 2, 1},
	"hexoctahedron":   {3, 2, 1},
	// Hexagonal/Trigonal
	"prism":         {1, 0, 0},
	"prism_1":       {1, 0, 0},
	"prism_2":       {1, 1, 0},
	"pinacoid":      {0, 0, 1},
	"basal":         {0, 0, 1},
	"rhombohedron":  {1, 0, 1},
	"rhomb_pos":     {1, 0, 1},
	"rhomb_neg":     {0, 1, 1},
	"dipyramid":     {1, 0, 1},
	"dipyramid_1":   {1, 0, 1},
	"dipyramid_2":   {1, 1, 2},
	"scalenohedron": {2, 1, 1},
	// Tetragonal
	"tetragonal_prism":     {1, 0, 0},
	"tetragonal_dipyramid": {1, 0, 1},
	// Orthorhombic
	"pinacoid_a": {1, 0, 0},
	"pinacoid_b": {0, 1, 0},
	"pinacoid_c": {0, 0, 1},
	"prism_ab":   {1, 1, 0},
	"prism_ac":   {1, 0, 1},
	"prism_bc":   {0, 1, 1},
}

var TwinLaws = map[string]bool{
	"spinel":         true,
	"spinel_law":     true,
	"iron_cross":     true,
	"brazil":         true,
	"dauphine":       true,
	"japan":          true,
	"carlsbad":       true,
	"baveno":         true,
	"manebach":       true,
	"albite":         true,
	"pericline":      true,
	"trilling":       true,
	"fluorite":       true,
	"staurolite_60":  true,
	"staurolite_90":  true,
	"gypsum_swallow": true,
}

var Modifications = map[string]bool{
	"elongate": true,
	"truncate": true,
	"taper":    true,
	"bevel":    true,
	"twin":     true,
	"flatten":  true,
}

// TwinModification is the modification whose sole argument is a twin
// law name.
const TwinModification = "twin"

var AmorphousSubtypes = map[string]bool{
	"opalescent":        true,
	"glassy":            true,
	"waxy":              true,
	"resinous":          true,
	"cryptocrystalline": true,
}

var AmorphousShapes = map[string]bool{
	"massive":     true,
	"botryoidal":  true,
	"reniform":    true,
	"stalactitic": true,
	"mammillary":  true,
	"nodular":     true,
	"conchoidal":  true,
}

var AggregateArrangements = map[string]bool{
	"parallel":  true,
	"random":    true,
	"radial":    true,
	"epitaxial": true,
	"druse":     true,
	"cluster":   true,
}

var AggregateOrientations = map[string]bool{
	"aligned":   true,
	"random":    true,
	"planar":    true,
	"spherical": true,
}

// CommonMillerIndices holds the face sets most often written for each
// system, used to seed completion.
var CommonMillerIndices = map[string][]string{
	"cubic":        {"{111}", "{100}", "{110}", "{211}", "{210}", "{221}", "{321}"},
	"tetragonal":   {"{100}", "{001}", "{101}", "{110}", "{111}", "{011}"},
	"orthorhombic": {"{100}", "{010}", "{001}", "{110}", "{101}", "{011}", "{111}"},
	"hexagonal":    {"{10-10}", "{0001}", "{10-11}", "{11-20}", "{11-22}"},
	"trigonal":     {"{10-10}", "{0001}", "{10-11}", "{01-11}", "{11-20}", "{21-31}"},
	"monoclinic":   {"{100}", "{010}", "{001}", "{110}", "{011}", "{-101}"},
	"triclinic":    {"{100}", "{010}", "{001}", "{110}", "{011}", "{101}", "{-111}"},
}

var CommonScales = []string{"0.3", "0.5", "0.8", "1.0", "1.2", "1.5", "2.0"}

// FourIndexSystem reports whether a system writes Miller-Bravais
// four-index face symbols.
func FourIndexSystem(system string) bool {
	system = strings.ToLower(system)
	return system == "hexagonal" || system == "trigonal"
}

// MillerArity returns the index count the system expects.
func MillerArity(system string) int {
	if FourIndexSystem(system) {
		return 4
	}
	return 3
}

// IsSystem reports whether name is a crystal system (the amorphous
// keyword is not a system).
func IsSystem(name string) bool {
	return CrystalSystems[strings.ToLower(name)]
}

// PointGroupValid reports whether pg belongs to the given system.
func PointGroupValid(system, pg string) bool {
	groups, ok := PointGroups[strings.ToLower(system)]
	return ok && groups[pg]
}

// SystemForPointGroup returns the system a point group belongs to.
func SystemForPointGroup(pg string) (string, bool) {
	for _, system := range SystemNames() {
		if PointGroups[system][pg] {
			return system, true
		}
	}
	return "", false
}

// MillerString renders indices in the single-digit convention:
// (1, 0, -1, 0) becomes "10-10".
func MillerString(indices []int) string {
	var b strings.Builder
	for _, idx := range indices {
		if idx < 0 {
			b.WriteByte('-')
			idx = -idx
		}
		b.WriteByte(byte('0' + idx))
	}
	return b.String()
}

// FormIndices returns the Miller indices of a named form, expanded to
// four components for Miller-Bravais systems.
func FormIndices(system, name string) ([]int, bool) {
	hkl, ok := NamedForms[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	if FourIndexSystem(system) {
		return []int{hkl[0], hkl[1], -(hkl[0] + hkl[1]), hkl[2]}, true
	}
	return []int{hkl[0], hkl[1], hkl[2]}, true
}

// FormMillerText renders the canonical face symbol of a named form for
// the given system, e.g. ("hexagonal", "prism") -> "{10-10}".
func FormMillerText(system, name string) (string, bool) {
	indices, ok := FormIndices(system, name)
	if !ok {
		return "", false
	}
	return "{" + MillerString(indices) + "}", true
}

// SystemNames returns the crystal systems in alphabetical order.
func SystemNames() []string {
	return sortedKeys(CrystalSystems)
}

// PointGroupNames returns the point groups of a system in alphabetical
// order, or every point group when the system is unknown.
func PointGroupNames(system string) []string {
	if groups, ok := PointGroups[strings.ToLower(system)]; ok {
		return sortedKeys(groups)
	}
	return sortedKeys(AllPointGroups)
}

func sortedKeys(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
