// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pot

import (
	"math"

	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/ionwave/ion"
)

// Bowl implements the quadratic-bowl surrogate of the RF pseudopotential:
//  φ = ½ [kr (x² + y²) + kz z²]
// with strong radial confinement kr and fixed axial curvature kz. The
// Hessian is constant and diagonal
type Bowl struct {
	kr float64 // radial curvature [V/m²]
	kz float64 // axial curvature [V/m²]
}

// add basis to factory
func init() {
	allocators["bowl"] = func() Basis { return new(Bowl) }
}

// Init initialises basis with parameters kr and kz
func (o *Bowl) Init(prms utl.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "kr":
			o.kr = p.V
		case "kz":
			o.kz = p.V
		}
	}
	if math.IsNaN(o.kr) || math.IsInf(o.kr, 0) || math.IsNaN(o.kz) || math.IsInf(o.kz, 0) {
		return ion.ErrInvalidInput("bowl: kr=%v and kz=%v must be finite", o.kr, o.kz)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o *Bowl) GetPrms() utl.Params {
	return []*utl.P{
		&utl.P{N: "kr", V: o.kr},
		&utl.P{N: "kz", V: o.kz},
	}
}

// Phi returns the potential at r
func (o *Bowl) Phi(r ion.Vec3) float64 {
	return 0.5 * (o.kr*(r.X*r.X+r.Y*r.Y) + o.kz*r.Z*r.Z)
}

// Grad returns the gradient ∇φ at r
func (o *Bowl) Grad(r ion.Vec3) ion.Vec3 {
	return ion.Vec3{X: o.kr * r.X, Y: o.kr * r.Y, Z: o.kz * r.Z}
}

// Hess returns the (constant, diagonal) Hessian ∇²φ
func (o *Bowl) Hess(r ion.Vec3) ion.Hess {
	return ion.Hess{XX: o.kr, YY: o.kr, ZZ: o.kz}
}
