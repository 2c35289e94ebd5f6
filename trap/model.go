// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package trap implements the surface-trap potential model: one RF
// pseudopotential surrogate plus an ordered bank of DC electrode bases
package trap

import (
	"github.com/cpmech/ionwave/ion"
	"github.com/cpmech/ionwave/pot"
)

// Model holds the trap potential model. The model owns its bases, carries
// no mutable state after construction, and is therefore shared read-only
// across solver goroutines
type Model struct {

	// bases
	Rf pot.Basis   // RF pseudopotential surrogate
	Dc []pot.Basis // ordered DC electrode bases

	// rails for the mirror (C2LR) operation
	RailI    int  // first rail electrode index
	RailJ    int  // second rail electrode index
	HasRails bool // whether a rail pair has been recorded
}

// NewModel returns a new trap model. railPair designates the two DC indices
// swapped by the mirror operation; pass nil for none. An error (InvalidInput)
// is returned when a rail index falls outside [0, len(dc))
func NewModel(rf pot.Basis, dc []pot.Basis, railPair []int) (o *Model, err error) {
	o = &Model{Rf: rf, Dc: dc}
	if railPair != nil {
		if len(railPair) != 2 {
			return nil, ion.ErrInvalidInput("rail pair must have exactly 2 indices. %d given", len(railPair))
		}
		i, j := railPair[0], railPair[1]
		if i < 0 || i >= len(dc) || j < 0 || j >= len(dc) {
			return nil, ion.ErrInvalidInput("rail pair (%d,%d) out of range [0,%d)", i, j, len(dc))
		}
		o.RailI, o.RailJ, o.HasRails = i, j, true
	}
	return
}

// Nelectrodes returns the number of DC electrodes
func (o *Model) Nelectrodes() int {
	return len(o.Dc)
}

// RailPair returns the recorded rail indices, defaulting to (0,0) when no
// pair has been recorded; the (0,0) swap is a no-op
func (o *Model) RailPair() (i, j int) {
	if o.HasRails {
		return o.RailI, o.RailJ
	}
	return 0, 0
}

// GradTotal computes the combined gradient ∇φ_rf(r) + Σⱼ vⱼ ∇φⱼ(r) for the
// voltage vector v
func (o *Model) GradTotal(r ion.Vec3, v []float64) (g ion.Vec3, err error) {
	if len(v) != len(o.Dc) {
		err = ion.ErrInvalidInput("voltage vector length %d must equal nelectrodes %d", len(v), len(o.Dc))
		return
	}
	g = o.Rf.Grad(r)
	for j, b := range o.Dc {
		g = g.Add(b.Grad(r).Mul(v[j]))
	}
	return
}

// HessTotal computes the combined symmetric Hessian ∇²φ_rf(r) + Σⱼ vⱼ ∇²φⱼ(r)
// for the voltage vector v
func (o *Model) HessTotal(r ion.Vec3, v []float64) (h ion.Hess, err error) {
	if len(v) != len(o.Dc) {
		err = ion.ErrInvalidInput("voltage vector length %d must equal nelectrodes %d", len(v), len(o.Dc))
		return
	}
	h = o.Rf.Hess(r)
	for j, b := range o.Dc {
		h = h.Add(b.Hess(r).Scale(v[j]))
	}
	return
}
