// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pot implements potential bases returning value, gradient and
// Hessian at a point. A basis is a pure function of its inputs after Init
// and is therefore safe for concurrent evaluation
package pot

import (
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/ionwave/ion"
)

// Basis defines the interface for potential bases. Phi is the potential [V]
// evaluated at unit electrode voltage; Grad and Hess are its analytical
// first and second derivatives
type Basis interface {
	Init(prms utl.Params) error // initialises basis with parameters
	GetPrms() utl.Params        // gets (an example of) parameters
	Phi(r ion.Vec3) float64     // potential at r
	Grad(r ion.Vec3) ion.Vec3   // gradient ∇φ at r
	Hess(r ion.Vec3) ion.Hess   // symmetric Hessian ∇²φ at r
}

// New returns a new basis of the given model name, initialised with prms.
// It fails with InvalidInput when the model name is unknown
func New(model string, prms utl.Params) (b Basis, err error) {
	allocator, ok := allocators[model]
	if !ok {
		return nil, ion.ErrInvalidInput("cannot find basis model named %q", model)
	}
	b = allocator()
	err = b.Init(prms)
	if err != nil {
		return nil, err
	}
	return
}

// allocators holds all available bases; model name => allocator
var allocators = map[string]func() Basis{}
