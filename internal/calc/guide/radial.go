package guide

import (
	"fmt"
	"math"
)

var nonVerticalPlanes = []Plane{PlaneWall, PlaneVertical2, PlaneHorizontal}

var compactRadial = Variant{
	Name:    "variant-compact-radial",
	Summary: "vertical2, horizontal or wall2, no eccentricity: radial = m·g / (guides·carriages)",
	// vertical1 is left out: a centred load on a single vertical guide has
	// no supported decomposition and is reported as unhandled.
	Matches: func(in Input) bool {
		return in.Plane.in(PlaneVertical2, PlaneHorizontal, PlaneWall2) && !in.hasEccentricity()
	},
	Evaluate: func(in Input) (Evaluation, error) {
		var c Components
		f := in.weight() / float64(in.GuideCount*in.CarriageCount)
		c.Set(KindRadial, f)
		return Evaluation{
			Components: c,
			Load:       round3(f),
			Notes:      []string{fmt.Sprintf("guides=%d, carriages=%d", in.GuideCount, in.CarriageCount)},
		}, nil
	},
}

var napr2NonVertical = Variant{
	Name:    "variant-napr2-non-vertical",
	Summary: "two guides, two carriages, wall, vertical2 or horizontal: radial plus l1/l5 and l2/l4 couples",
	Matches: func(in Input) bool {
		return in.GuideCount == 2 && in.CarriageCount == 2 && in.Plane.in(nonVerticalPlanes...)
	},
	Evaluate: func(in Input) (Evaluation, error) {
		const name = "variant-napr2-non-vertical"
		if in.L2 != 0 {
			if err := requirePositive(name, "l4", in.L4, "when l2 != 0"); err != nil {
				return Evaluation{}, err
			}
		}
		if in.L1 != 0 {
			if err := requirePositive(name, "l5", in.L5, "when l1 != 0"); err != nil {
				return Evaluation{}, err
			}
		}

		w := in.weight()
		n := float64(in.CarriageCount)

		var c Components
		f := w / float64(in.GuideCount*in.CarriageCount)
		c.Set(KindRadial, f)

		var nagL1, nagL2 float64
		if in.L1 != 0 {
			nagL1 = math.Abs(w * in.L1 / (n * in.L5))
		}
		if in.L2 != 0 {
			nagL2 = math.Abs(w * in.L2 / (n * in.L4))
		}

		if in.Plane == PlaneHorizontal {
			c.Set(KindRadial2, nagL1+nagL2)
		} else {
			c.Set(KindAxial2, nagL1)
			c.Set(KindRadial2, nagL2)
		}

		return Evaluation{
			Components: c,
			Load:       round3(f),
			Notes: []string{
				fmt.Sprintf("guides=2, carriages=2, plane=%s", in.Plane),
				fmt.Sprintf("nagL1=%.3f N, nagL2=%.3f N", nagL1, nagL2),
				fmt.Sprintf("radial2=%.3f N, axial2=%.3f N", c.Get(KindRadial2), c.Get(KindAxial2)),
			},
		}, nil
	},
}

var nonVerticalGeneric = Variant{
	Name:    "variant-non-vertical",
	Summary: "1x1, 1x2 or 2x1 guides×carriages, wall, vertical2 or horizontal: radial, Mzs/Mzd by sign of l2, Mx or l1/l5 couple",
	Matches: func(in Input) bool {
		pair := (in.GuideCount == 1 && in.CarriageCount == 1) ||
			(in.GuideCount == 1 && in.CarriageCount == 2) ||
			(in.GuideCount == 2 && in.CarriageCount == 1)
		return pair && in.Plane.in(nonVerticalPlanes...)
	},
	Evaluate: func(in Input) (Evaluation, error) {
		const name = "variant-non-vertical"
		if in.GuideCount == 2 {
			if err := requirePositive(name, "l5", in.L5, "for 2 guides"); err != nil {
				return Evaluation{}, err
			}
		}

		w := in.weight()
		n := float64(in.CarriageCount)

		var c Components
		f := w / float64(in.GuideCount*in.CarriageCount)
		c.Set(KindRadial, f)

		switch {
		case in.L2 > 0:
			c.Set(KindMzs, w*in.L2/n)
		case in.L2 < 0:
			c.Set(KindMzd, w*in.L2/n)
		}

		var nagL1 float64
		switch in.GuideCount {
		case 1:
			c.Set(KindMx, w*in.L1/n)
		case 2:
			nagL1 = math.Abs(w * in.L1 / (n * in.L5))
			if in.Plane == PlaneWall {
				c.Set(KindAxial2, nagL1)
			} else {
				c.Set(KindRadial2, nagL1)
			}
		}

		return Evaluation{
			Components: c,
			Load:       round3(f),
			Notes: []string{
				fmt.Sprintf("guides=%d, carriages=%d, plane=%s", in.GuideCount, in.CarriageCount, in.Plane),
				fmt.Sprintf("nagL1=%.3f N", nagL1),
				fmt.Sprintf("radial2=%.3f N, axial2=%.3f N, Mx=%.3f N·m, Mzs=%.3f N·m, Mzd=%.3f N·m",
					c.Get(KindRadial2), c.Get(KindAxial2), c.Get(KindMx), c.Get(KindMzs), c.Get(KindMzd)),
			},
		}, nil
	},
}
