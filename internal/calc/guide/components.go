package guide

import (
	"fmt"
	"math"
	"strings"
)

// Kind names one load component.
type Kind string

const (
	KindAxial   Kind = "axial"
	KindAxial2  Kind = "axial2"
	KindRadial  Kind = "radial"
	KindRadial2 Kind = "radial2"
	KindMx      Kind = "Mx"
	KindMy      Kind = "My"
	KindMzs     Kind = "Mzs"
	KindMzd     Kind = "Mzd"
)

// Kinds is the fixed summation order used by Rank.
var Kinds = []Kind{KindAxial, KindAxial2, KindRadial, KindRadial2, KindMx, KindMy, KindMzs, KindMzd}

// Components holds force (N) and moment (N·m) magnitudes per carriage.
// Unset kinds are zero and never enter the safety sum.
type Components struct {
	values [8]float64
}

func kindIndex(k Kind) int {
	for i, kk := range Kinds {
		if kk == k {
			return i
		}
	}
	return -1
}

// Set stores |v| under k.
func (c *Components) Set(k Kind, v float64) {
	if i := kindIndex(k); i >= 0 {
		c.values[i] = math.Abs(v)
	}
}

func (c Components) Get(k Kind) float64 {
	if i := kindIndex(k); i >= 0 {
		return c.values[i]
	}
	return 0
}

// Populated returns the kinds with a strictly positive magnitude, in Kinds order.
func (c Components) Populated() []Kind {
	var out []Kind
	for i, k := range Kinds {
		if c.values[i] > 0 {
			out = append(out, k)
		}
	}
	return out
}

func (c Components) Map() map[Kind]float64 {
	m := make(map[Kind]float64)
	for _, k := range c.Populated() {
		m[k] = c.Get(k)
	}
	return m
}

func (c Components) String() string {
	parts := make([]string, 0, len(Kinds))
	for i, k := range Kinds {
		parts = append(parts, fmt.Sprintf("%s=%.3f", k, c.values[i]))
	}
	return strings.Join(parts, ", ")
}
