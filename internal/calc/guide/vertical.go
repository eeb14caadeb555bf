package guide

import (
	"fmt"
	"math"
)

var vertical = Variant{
	Name:    "variant-vertical",
	Summary: "vertical1 or vertical2, eccentric: radial plus My/Mz (1 carriage) or axial2 over l4 and l5 (2 carriages)",
	Matches: func(in Input) bool {
		return in.Plane.in(PlaneVertical1, PlaneVertical2) && in.hasEccentricity()
	},
	Evaluate: func(in Input) (Evaluation, error) {
		w := in.weight()
		n := float64(in.CarriageCount)

		var c Components
		f := w / float64(in.GuideCount*in.CarriageCount)
		c.Set(KindRadial, f)

		notes := []string{fmt.Sprintf("guides=%d, carriages=%d", in.GuideCount, in.CarriageCount)}
		switch in.CarriageCount {
		case 1:
			// moments only when both offsets are given
			if in.L1 != 0 && in.L2 != 0 {
				c.Set(KindMy, w*in.L1/n)
				mz := w * in.L2 / n
				if in.L2 > 0 {
					c.Set(KindMzs, mz)
				} else {
					c.Set(KindMzd, mz)
				}
			} else {
				notes = append(notes, "l1 and l2 not both set, moments skipped")
			}
		case 2:
			if in.L1 != 0 && in.L2 != 0 && in.L4 != 0 && in.L5 != 0 {
				c.Set(KindAxial2, math.Abs(w*in.L2/(n*in.L4))+math.Abs(w*in.L2/(n*in.L5)))
			} else {
				notes = append(notes, "l1, l2, l4, l5 not all set, axial2 skipped")
			}
		}

		notes = append(notes, fmt.Sprintf("My=%.3f N·m, Mz=%.3f N·m, axial2=%.3f N",
			c.Get(KindMy), c.Get(KindMzs)+c.Get(KindMzd), c.Get(KindAxial2)))
		return Evaluation{Components: c, Load: round3(f), Notes: notes}, nil
	},
}
