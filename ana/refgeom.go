// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana provides the closed-form reference transport geometry and the
// analytical frequency helpers used by tests and by the demo front-end
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/ionwave/ion"
	"github.com/cpmech/ionwave/pot"
	"github.com/cpmech/ionwave/trap"
)

// geometry constants of the reference trap
const (
	SegmentDz = 63e-6  // electrode pitch and transport segment length [m]
	LobeSigma = 40e-6  // width of every Gaussian lobe [m]
	RailX     = 50e-6  // |x| of the rail lobes [m]
	RfKr      = 1.0e10 // radial curvature of the RF bowl [V/m²]
)

// RefTrap returns the reference trap model: an RF bowl whose axial
// curvature matches the target frequency for ¹⁷¹Yb⁺, and Gaussian lobes on
// nine z-slices: one left and one right rail lobe per slice, plus a centre
// lobe (at 0.8× scale, offset by half a pitch) on every even slice. The
// first two electrodes are the C2LR rails
func RefTrap(omegaAxial, dcScale float64) *trap.Model {

	targetCurv := ion.MYb171 * omegaAxial * omegaAxial / ion.Qe
	rf, err := pot.New("bowl", []*utl.P{
		&utl.P{N: "kr", V: RfKr},
		&utl.P{N: "kz", V: targetCurv},
	})
	if err != nil {
		chk.Panic("cannot allocate rf bowl:\n%v", err)
	}

	gauss := func(x0, z0, sca float64) pot.Basis {
		b, err := pot.New("gauss", []*utl.P{
			&utl.P{N: "x0", V: x0},
			&utl.P{N: "y0", V: 0},
			&utl.P{N: "z0", V: z0},
			&utl.P{N: "sig", V: LobeSigma},
			&utl.P{N: "sca", V: sca},
		})
		if err != nil {
			chk.Panic("cannot allocate gauss lobe:\n%v", err)
		}
		return b
	}

	var dc []pot.Basis
	for idx := -4; idx <= 4; idx++ {
		zc := float64(idx) * SegmentDz
		dc = append(dc, gauss(-RailX, zc, dcScale))
		dc = append(dc, gauss(+RailX, zc, dcScale))
		if (idx+4)%2 == 0 {
			dc = append(dc, gauss(0, zc+0.5*SegmentDz, 0.8*dcScale))
		}
	}

	model, err := trap.NewModel(rf, dc, []int{0, 1})
	if err != nil {
		chk.Panic("cannot build reference model:\n%v", err)
	}
	return model
}

// TransportLine returns nwp waypoints on a straight line along ẑ from z=0
// to z=SegmentDz, all with the same target axial frequency
func TransportLine(nwp int, omegaAxial float64) []ion.Waypoint {
	axialDir := ion.Vec3{Z: 1}
	wps := make([]ion.Waypoint, nwp)
	for i, z := range utl.LinSpace(0, SegmentDz, nwp) {
		wps[i] = ion.Waypoint{
			R:          ion.Vec3{Z: z},
			OmegaAxial: omegaAxial,
			AxialDir:   axialDir,
		}
	}
	return wps
}

// FreqAlongAxis returns the secular angular frequency along the axis u for
// the total Hessian h: √(max(0, q uᵀHu / m)). A zero result means no
// confinement along u
func FreqAlongAxis(h ion.Hess, u ion.Vec3, q, m float64) float64 {
	return math.Sqrt(math.Max(0, q*h.Quad(u)/m))
}
