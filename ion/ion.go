// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ion holds the basic value types shared by all ionwave packages:
// 3-vectors, symmetric 3x3 Hessians, transport waypoints, physical
// constants and error kinds
package ion

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// physical constants [SI]
const (
	Qe     = 1.602e-19 // elementary charge [C]
	MYb171 = 2.84e-25  // mass of ¹⁷¹Yb⁺ [kg]
)

// Vec3 is a 3-vector (x,y,z). All methods are on value receivers; a Vec3 is
// never mutated in place
type Vec3 struct {
	X, Y, Z float64
}

// Add returns a + b
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns a scaled by s
func (a Vec3) Mul(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Div returns a divided by s
func (a Vec3) Div(s float64) Vec3 {
	return Vec3{a.X / s, a.Y / s, a.Z / s}
}

// Dot returns the inner product a ⋅ b
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Norm returns the Euclidean norm of a
func (a Vec3) Norm() float64 {
	return math.Sqrt(a.Dot(a))
}

// Unit returns a normalised to unit length. The zero vector is returned
// unchanged
func (a Vec3) Unit() Vec3 {
	n := a.Norm()
	if n == 0 {
		return a
	}
	return a.Div(n)
}

// Hess holds the six distinct entries of a symmetric 3x3 matrix. Only these
// six entries are ever stored; an asymmetric counterpart is never
// materialised
type Hess struct {
	XX, YY, ZZ float64
	XY, XZ, YZ float64
}

// Add returns h + o
func (h Hess) Add(o Hess) Hess {
	return Hess{
		XX: h.XX + o.XX, YY: h.YY + o.YY, ZZ: h.ZZ + o.ZZ,
		XY: h.XY + o.XY, XZ: h.XZ + o.XZ, YZ: h.YZ + o.YZ,
	}
}

// Scale returns h scaled by s
func (h Hess) Scale(s float64) Hess {
	return Hess{
		XX: h.XX * s, YY: h.YY * s, ZZ: h.ZZ * s,
		XY: h.XY * s, XZ: h.XZ * s, YZ: h.YZ * s,
	}
}

// Quad returns the quadratic form uᵀ H u
func (h Hess) Quad(u Vec3) float64 {
	x, y, z := u.X, u.Y, u.Z
	return h.XX*x*x + h.YY*y*y + h.ZZ*z*z + 2.0*(h.XY*x*y+h.XZ*x*z+h.YZ*y*z)
}

// Waypoint represents one spatial target of a transport segment: the point
// itself, the required axial secular angular frequency there, and the axis
// along which that frequency is enforced
type Waypoint struct {
	R          Vec3    // position [m]
	OmegaAxial float64 // target axial secular angular frequency [rad/s]
	AxialDir   Vec3    // unit vector along the axial direction
}

// errors //////////////////////////////////////////////////////////////////////////////////////////

// InvalidInputError indicates a violated precondition detected at the entry
// of a callable; e.g. no electrodes, voltage-vector length mismatch, or a
// non-unit axial direction
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string {
	return io.Sf("invalid input: %s", e.Msg)
}

// SolverError indicates a numerical failure during iteration
type SolverError struct {
	Msg string
}

func (e *SolverError) Error() string {
	return io.Sf("solver failure: %s", e.Msg)
}

// ErrInvalidInput returns a new InvalidInputError with a formatted message
func ErrInvalidInput(msg string, prm ...interface{}) error {
	return &InvalidInputError{Msg: io.Sf(msg, prm...)}
}

// ErrSolver returns a new SolverError with a formatted message
func ErrSolver(msg string, prm ...interface{}) error {
	return &SolverError{Msg: io.Sf(msg, prm...)}
}
