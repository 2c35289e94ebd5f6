// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trap

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/ionwave/ion"
	"github.com/cpmech/ionwave/pot"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func buildSmallModel(tst *testing.T) *Model {
	rf, err := pot.New("bowl", []*utl.P{
		&utl.P{N: "kr", V: 1e10},
		&utl.P{N: "kz", V: 3e8},
	})
	if err != nil {
		tst.Fatalf("cannot allocate rf basis:\n%v", err)
	}
	var dc []pot.Basis
	for i, x0 := range []float64{-50e-6, 50e-6, 0} {
		b, err := pot.New("gauss", []*utl.P{
			&utl.P{N: "x0", V: x0},
			&utl.P{N: "z0", V: float64(i) * 30e-6},
			&utl.P{N: "sig", V: 40e-6},
			&utl.P{N: "sca", V: 2e-3},
		})
		if err != nil {
			tst.Fatalf("cannot allocate dc basis:\n%v", err)
		}
		dc = append(dc, b)
	}
	m, err := NewModel(rf, dc, []int{0, 1})
	if err != nil {
		tst.Fatalf("NewModel failed:\n%v", err)
	}
	return m
}

func Test_model01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model01. total field sums")

	m := buildSmallModel(tst)
	chk.Int(tst, "nelectrodes", m.Nelectrodes(), 3)

	r := ion.Vec3{X: 5e-6, Y: -3e-6, Z: 20e-6}
	v := []float64{0.7, -1.2, 0.35}

	// gradient: compare against the explicit sum
	g, err := m.GradTotal(r, v)
	if err != nil {
		tst.Errorf("GradTotal failed:\n%v", err)
		return
	}
	gref := m.Rf.Grad(r)
	for j, b := range m.Dc {
		gref = gref.Add(b.Grad(r).Mul(v[j]))
	}
	chk.Float64(tst, "gx", 1e-15, g.X, gref.X)
	chk.Float64(tst, "gy", 1e-15, g.Y, gref.Y)
	chk.Float64(tst, "gz", 1e-15, g.Z, gref.Z)

	// Hessian: componentwise symmetric sum
	h, err := m.HessTotal(r, v)
	if err != nil {
		tst.Errorf("HessTotal failed:\n%v", err)
		return
	}
	href := m.Rf.Hess(r)
	for j, b := range m.Dc {
		href = href.Add(b.Hess(r).Scale(v[j]))
	}
	chk.Float64(tst, "hxx", 1e-15, h.XX, href.XX)
	chk.Float64(tst, "hyy", 1e-15, h.YY, href.YY)
	chk.Float64(tst, "hzz", 1e-15, h.ZZ, href.ZZ)
	chk.Float64(tst, "hxy", 1e-15, h.XY, href.XY)
	chk.Float64(tst, "hxz", 1e-15, h.XZ, href.XZ)
	chk.Float64(tst, "hyz", 1e-15, h.YZ, href.YZ)
}

func Test_model02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model02. input validation")

	m := buildSmallModel(tst)
	r := ion.Vec3{}

	// wrong voltage-vector length
	_, err := m.GradTotal(r, []float64{1, 2})
	if err == nil {
		tst.Errorf("GradTotal must fail with |v| != nelectrodes")
		return
	}
	if _, ok := err.(*ion.InvalidInputError); !ok {
		tst.Errorf("error must be an InvalidInputError. got: %v", err)
		return
	}
	_, err = m.HessTotal(r, []float64{1, 2, 3, 4})
	if err == nil {
		tst.Errorf("HessTotal must fail with |v| != nelectrodes")
		return
	}

	// rail pair out of range
	_, err = NewModel(m.Rf, m.Dc, []int{0, 3})
	if err == nil {
		tst.Errorf("NewModel must fail with rail index 3 and 3 electrodes")
	}
}

func Test_model03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model03. rail pair defaults")

	m := buildSmallModel(tst)
	i, j := m.RailPair()
	chk.Int(tst, "rail i", i, 0)
	chk.Int(tst, "rail j", j, 1)

	// without a recorded pair the swap degenerates to (0,0)
	m2, err := NewModel(m.Rf, m.Dc, nil)
	if err != nil {
		tst.Errorf("NewModel failed:\n%v", err)
		return
	}
	i, j = m2.RailPair()
	chk.Int(tst, "default rail i", i, 0)
	chk.Int(tst, "default rail j", j, 0)
}
