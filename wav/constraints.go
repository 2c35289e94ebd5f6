// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wav computes transport waveforms: per-waypoint electrode voltages
// obtained from a constrained least-squares solve, with the C2LR mirror
// variant produced by swapping the rail columns of the constraint matrix
package wav

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/ionwave/ion"
	"github.com/cpmech/ionwave/trap"
)

// row weights. gradient rows are naturally O(|∇φ|) and carry no weight; the
// curvature row encodes a different physical dimension and is lifted so the
// solver honours it tightly in the normal equations; the radial rows are
// soft biases
const (
	wAx  = 1e3  // axial-curvature row weight
	wRad = 50.0 // radial-floor row weight

	// radialFloorFrac scales the RF radial curvature down to the floor the
	// radial rows bias towards
	radialFloorFrac = 0.2
)

// BuildConstraints assembles the dense 6×N system (A, b) for one waypoint:
//
//	rows 0..2  net force = 0 at wp.R
//	row  3     axial curvature along wp.AxialDir equals m ω²/q (weight wAx)
//	rows 4..5  radial x/y curvature biased to a fraction of the RF curvature
//	           (weight wRad)
//
// N is the number of DC electrodes; column j carries the contribution of
// electrode j at unit voltage
func BuildConstraints(m *trap.Model, wp ion.Waypoint, chargeQ, massM float64) (a *la.Matrix, b la.Vector) {

	n := m.Nelectrodes()
	a = la.NewMatrix(6, n)
	b = la.NewVector(6)

	// zero net force
	grf := m.Rf.Grad(wp.R)
	for j := 0; j < n; j++ {
		gj := m.Dc[j].Grad(wp.R)
		a.Set(0, j, gj.X)
		a.Set(1, j, gj.Y)
		a.Set(2, j, gj.Z)
	}
	b[0] = -grf.X
	b[1] = -grf.Y
	b[2] = -grf.Z

	// axial curvature target
	u := wp.AxialDir
	hrf := m.Rf.Hess(wp.R)
	targetAx := massM * wp.OmegaAxial * wp.OmegaAxial / chargeQ
	for j := 0; j < n; j++ {
		hj := m.Dc[j].Hess(wp.R)
		a.Set(3, j, wAx*hj.Quad(u))
	}
	b[3] = wAx * (targetAx - hrf.Quad(u))

	// radial floors: bias H_xx and H_yy towards radialFloorFrac of the RF
	// radial curvature
	ex := ion.Vec3{X: 1}
	ey := ion.Vec3{Y: 1}
	floorX := radialFloorFrac * hrf.Quad(ex)
	for j := 0; j < n; j++ {
		hj := m.Dc[j].Hess(wp.R)
		a.Set(4, j, wRad*hj.Quad(ex))
	}
	b[4] = wRad * (floorX - hrf.Quad(ex))

	floorY := radialFloorFrac * hrf.Quad(ey)
	for j := 0; j < n; j++ {
		hj := m.Dc[j].Hess(wp.R)
		a.Set(5, j, wRad*hj.Quad(ey))
	}
	b[5] = wRad * (floorY - hrf.Quad(ey))
	return
}

// swapCols exchanges columns i and j of a in place
func swapCols(a *la.Matrix, i, j int) {
	if i == j {
		return
	}
	for row := 0; row < a.M; row++ {
		tmp := a.Get(row, i)
		a.Set(row, i, a.Get(row, j))
		a.Set(row, j, tmp)
	}
}
