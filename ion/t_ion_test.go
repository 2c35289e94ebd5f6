// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ion

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_vec01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vec01. Vec3 algebra")

	a := Vec3{1, 2, 3}
	b := Vec3{-2, 0.5, 4}

	c := a.Add(b)
	chk.Float64(tst, "c.X", 1e-17, c.X, -1.0)
	chk.Float64(tst, "c.Y", 1e-17, c.Y, 2.5)
	chk.Float64(tst, "c.Z", 1e-17, c.Z, 7.0)

	d := a.Sub(b)
	chk.Float64(tst, "d.X", 1e-17, d.X, 3.0)
	chk.Float64(tst, "d.Y", 1e-17, d.Y, 1.5)
	chk.Float64(tst, "d.Z", 1e-17, d.Z, -1.0)

	e := a.Mul(2).Div(4)
	chk.Float64(tst, "e.X", 1e-17, e.X, 0.5)
	chk.Float64(tst, "e.Y", 1e-17, e.Y, 1.0)
	chk.Float64(tst, "e.Z", 1e-17, e.Z, 1.5)

	chk.Float64(tst, "a.b", 1e-15, a.Dot(b), -2+1+12)
}

func Test_vec02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vec02. unit vectors")

	a := Vec3{3, 0, 4}
	u := a.Unit()
	chk.Float64(tst, "|u|", 1e-15, u.Norm(), 1.0)
	chk.Float64(tst, "u.X", 1e-15, u.X, 0.6)
	chk.Float64(tst, "u.Z", 1e-15, u.Z, 0.8)

	// the zero vector has no direction and must come back unchanged
	z := Vec3{}
	chk.Float64(tst, "zero unit", 1e-17, z.Unit().Norm(), 0)
}

func Test_hess01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hess01. quadratic form and algebra")

	h := Hess{XX: 2, YY: 3, ZZ: 5, XY: -1, XZ: 0.5, YZ: 0.25}
	u := Vec3{1, -2, 3}

	// compare against the explicit full-matrix contraction
	m := [3][3]float64{
		{h.XX, h.XY, h.XZ},
		{h.XY, h.YY, h.YZ},
		{h.XZ, h.YZ, h.ZZ},
	}
	uu := []float64{u.X, u.Y, u.Z}
	var q float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			q += uu[i] * m[i][j] * uu[j]
		}
	}
	chk.Float64(tst, "uᵀHu", 1e-14, h.Quad(u), q)

	// Add and Scale act entrywise on the six stored components
	g := h.Add(h.Scale(-1))
	chk.Float64(tst, "zero XX", 1e-17, g.XX, 0)
	chk.Float64(tst, "zero XY", 1e-17, g.XY, 0)
	chk.Float64(tst, "zero YZ", 1e-17, g.YZ, 0)

	s := h.Scale(3)
	chk.Float64(tst, "s.XX", 1e-15, s.XX, 6)
	chk.Float64(tst, "s.YZ", 1e-15, s.YZ, 0.75)
}

func Test_err01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("err01. error kinds")

	e1 := ErrInvalidInput("nelectrodes = %d", 0)
	if _, ok := e1.(*InvalidInputError); !ok {
		tst.Errorf("e1 must be an InvalidInputError")
		return
	}
	chk.String(tst, e1.Error(), "invalid input: nelectrodes = 0")

	e2 := ErrSolver("non-finite entry at iteration %d", 3)
	if _, ok := e2.(*SolverError); !ok {
		tst.Errorf("e2 must be a SolverError")
		return
	}
	chk.String(tst, e2.Error(), "solver failure: non-finite entry at iteration 3")
}
