package guide

import (
	"fmt"
	"math"
)

// Planes where the weight presses along the carriage's axial direction.
var axialPlanes = []Plane{PlaneFlat, PlaneWall2}

var compactFlatAxial = Variant{
	Name:    "variant-compact-flat",
	Summary: "flat or wall2, no eccentricity: axial = m·g / (guides·carriages)",
	Matches: func(in Input) bool {
		return in.Plane.in(axialPlanes...) && !in.hasEccentricity()
	},
	Evaluate: func(in Input) (Evaluation, error) {
		var c Components
		f := in.weight() / float64(in.GuideCount*in.CarriageCount)
		c.Set(KindAxial, f)
		return Evaluation{
			Components: c,
			Load:       round3(f),
			Notes: []string{
				fmt.Sprintf("F(per carriage)=%.3f N", f),
				fmt.Sprintf("guides=%d, carriages=%d", in.GuideCount, in.CarriageCount),
			},
		}, nil
	},
}

var axialEccOneGuide = Variant{
	Name:    "variant-axial-ecc-napr1",
	Summary: "one guide, flat or wall2, eccentric: axial + Mx, then My (1 carriage) or axial2 over l4 (2 carriages)",
	Matches: func(in Input) bool {
		return in.GuideCount == 1 && in.Plane.in(axialPlanes...) && in.hasEccentricity()
	},
	Evaluate: func(in Input) (Evaluation, error) {
		const name = "variant-axial-ecc-napr1"
		if in.CarriageCount == 2 {
			if err := requirePositive(name, "l4", in.L4, "for 2 carriages"); err != nil {
				return Evaluation{}, err
			}
		}

		w := in.weight()
		n := float64(in.CarriageCount)

		var c Components
		f := w / n
		c.Set(KindAxial, f)
		c.Set(KindMx, w*in.L1/n)

		switch in.CarriageCount {
		case 1:
			c.Set(KindMy, w*in.L2)
		case 2:
			// the pair of carriages takes the l2 offset as a force couple
			c.Set(KindAxial2, w*in.L2/(n*in.L4))
		}

		return Evaluation{
			Components: c,
			Load:       round3(f),
			Notes: []string{
				fmt.Sprintf("guides=1, carriages=%d", in.CarriageCount),
				fmt.Sprintf("Mx=%.3f N·m, My=%.3f N·m, axial2=%.3f N",
					c.Get(KindMx), c.Get(KindMy), c.Get(KindAxial2)),
			},
		}, nil
	},
}

var axialEccTwoGuide = Variant{
	Name:    "variant-napr2",
	Summary: "two guides, flat, wall or wall2, eccentric: axial plus offset couples over l4/l5 or My",
	Matches: func(in Input) bool {
		return in.GuideCount == 2 && in.Plane.in(PlaneFlat, PlaneWall, PlaneWall2) && in.hasEccentricity()
	},
	Evaluate: func(in Input) (Evaluation, error) {
		const name = "variant-napr2"
		if in.CarriageCount == 2 {
			if err := requirePositive(name, "l4", in.L4, "for 2 carriages"); err != nil {
				return Evaluation{}, err
			}
		}
		if err := requirePositive(name, "l5", in.L5, "for 2 guides"); err != nil {
			return Evaluation{}, err
		}

		w := in.weight()
		guides := float64(in.GuideCount)
		n := float64(in.CarriageCount)

		var c Components
		f := w / (guides * n)
		c.Set(KindAxial, f)

		notes := []string{fmt.Sprintf("guides=2, carriages=%d", in.CarriageCount)}
		switch in.CarriageCount {
		case 2:
			c.Set(KindRadial2, w*in.L1/(n*in.L4))
			c.Set(KindAxial2, w*in.L2/(n*in.L5))
		case 1:
			c.Set(KindMy, w*in.L2/guides)
			nagL1 := w * in.L1 / (n * in.L5)
			switch in.Plane {
			case PlaneFlat:
				c.Set(KindAxial2, nagL1)
			case PlaneWall2:
				c.Set(KindRadial2, nagL1)
			default:
				if nagL1 != 0 {
					notes = append(notes, fmt.Sprintf("l1 couple %.3f N not applied for plane=%s", math.Abs(nagL1), in.Plane))
				}
			}
		}

		notes = append(notes, fmt.Sprintf("My=%.3f N·m, axial=%.3f N, axial2=%.3f N, radial2=%.3f N",
			c.Get(KindMy), f, c.Get(KindAxial2), c.Get(KindRadial2)))
		return Evaluation{Components: c, Load: round3(f), Notes: notes}, nil
	},
}

