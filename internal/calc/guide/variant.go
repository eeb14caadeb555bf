package guide

import "math"

// G is the gravitational acceleration used by every formula, m/s².
const G = 9.806

// Evaluation is what a variant produces for one input.
type Evaluation struct {
	Components Components
	// Load is the base per-carriage force, kept for traceability.
	Load  float64
	Notes []string
}

// Variant is one decomposition rule: a match predicate and the formula it
// guards. Evaluate may reject the input with a *ConfigError when geometry it
// needs is missing.
type Variant struct {
	Name     string
	Summary  string
	Matches  func(Input) bool
	Evaluate func(Input) (Evaluation, error)
}

// Variants returns the dispatch table in priority order. The first variant
// whose Matches returns true wins, so the order is part of the contract:
//
//  1. axial, one guide, eccentric load
//  2. axial, two guides, eccentric load
//  3. axial, no eccentricity
//  4. radial, no eccentricity (vertical2, horizontal, wall2)
//  5. two guides and two carriages, non-vertical
//  6. remaining guide/carriage pairs, non-vertical
//  7. vertical, eccentric load
//
// Rules 1-2 and 3-4 are disjoint on eccentricity. From rule 4 on the
// predicates overlap (horizontal and vertical2 planes) and the earlier rule
// takes the input. vertical1 without eccentricity matches nothing and
// comes back as unhandled.
func Variants() []Variant {
	return []Variant{
		axialEccOneGuide,
		axialEccTwoGuide,
		compactFlatAxial,
		compactRadial,
		napr2NonVertical,
		nonVerticalGeneric,
		vertical,
	}
}

// round3 keeps the base load readable in responses.
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
