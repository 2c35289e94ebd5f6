// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pot

import (
	"math"

	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/ionwave/ion"
)

// Gauss implements an isotropic Gaussian lobe centred at c with width sig
// and scale sca:
//  φ = sca exp(−½ |r−c|² / sig²)
// It behaves like the localised control field of one DC electrode
type Gauss struct {
	c   ion.Vec3 // centre [m]
	sig float64  // width [m]
	sca float64  // scale [V]
}

// add basis to factory
func init() {
	allocators["gauss"] = func() Basis { return new(Gauss) }
}

// Init initialises basis with parameters x0, y0, z0, sig and sca
func (o *Gauss) Init(prms utl.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "x0":
			o.c.X = p.V
		case "y0":
			o.c.Y = p.V
		case "z0":
			o.c.Z = p.V
		case "sig":
			o.sig = p.V
		case "sca":
			o.sca = p.V
		}
	}
	for _, v := range []float64{o.c.X, o.c.Y, o.c.Z, o.sig, o.sca} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ion.ErrInvalidInput("gauss: parameters must be finite")
		}
	}
	if o.sig <= 0 {
		return ion.ErrInvalidInput("gauss: width sig=%v must be positive", o.sig)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o *Gauss) GetPrms() utl.Params {
	return []*utl.P{
		&utl.P{N: "x0", V: o.c.X},
		&utl.P{N: "y0", V: o.c.Y},
		&utl.P{N: "z0", V: o.c.Z},
		&utl.P{N: "sig", V: o.sig},
		&utl.P{N: "sca", V: o.sca},
	}
}

// Phi returns the potential at r
func (o *Gauss) Phi(r ion.Vec3) float64 {
	d := r.Sub(o.c)
	s2 := o.sig * o.sig
	return o.sca * math.Exp(-0.5*d.Dot(d)/s2)
}

// Grad returns the gradient ∇φ at r
//  ∇φ = −φ d / sig²   with d = r − c
func (o *Gauss) Grad(r ion.Vec3) ion.Vec3 {
	d := r.Sub(o.c)
	s2 := o.sig * o.sig
	p := o.Phi(r)
	return d.Mul(-p / s2)
}

// Hess returns the Hessian ∇²φ at r
//  ∂²φ/∂i∂j = φ (dᵢ dⱼ − δᵢⱼ sig²) / sig⁴
func (o *Gauss) Hess(r ion.Vec3) ion.Hess {
	d := r.Sub(o.c)
	s2 := o.sig * o.sig
	s4 := s2 * s2
	p := o.Phi(r)
	return ion.Hess{
		XX: p * (d.X*d.X - s2) / s4,
		YY: p * (d.Y*d.Y - s2) / s4,
		ZZ: p * (d.Z*d.Z - s2) / s4,
		XY: p * d.X * d.Y / s4,
		XZ: p * d.X * d.Z / s4,
		YZ: p * d.Y * d.Z / s4,
	}
}
