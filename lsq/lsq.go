// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lsq implements the regularised least-squares core:
//
//	min_x ‖A x − b‖² + λ ‖x‖²
//
// solved by LSQR (Golub–Kahan bidiagonalisation with QR rotation) on the
// virtual augmented matrix Â = [A; √λ I] with right-hand side b̂ = [b; 0].
// Neither AᵀA nor the augmented matrix is ever formed: the iteration only
// needs the products A·v and Aᵀ·u plus trivial operations on the √λ I
// block, so the conditioning of A is preserved
package lsq

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/ionwave/ion"
)

// Options holds parameters for one solve invocation
type Options struct {
	Lambda    float64 // Tikhonov regularisation factor (λ ≥ 0)
	Vlimit    float64 // symmetric voltage clamp [V]
	UseVlimit bool    // apply the clamp after iteration
	Itmax     int     // maximum number of LSQR iterations
	Tol       float64 // early-exit tolerance on |φ̄|
}

// DefaultOptions returns options suitable for the transport problems in
// this package
func DefaultOptions() *Options {
	return &Options{
		Lambda:    1e-2,
		Vlimit:    5.0,
		UseVlimit: true,
		Itmax:     400,
		Tol:       1e-10,
	}
}

// Validate returns an InvalidInput error when the options are unusable
func (o *Options) Validate() error {
	if o.Lambda < 0 || math.IsNaN(o.Lambda) || math.IsInf(o.Lambda, 0) {
		return ion.ErrInvalidInput("lambda = %v must be nonnegative and finite", o.Lambda)
	}
	if o.Itmax < 1 {
		return ion.ErrInvalidInput("itmax = %d must be positive", o.Itmax)
	}
	if !(o.Tol > 0) {
		return ion.ErrInvalidInput("tol = %v must be positive", o.Tol)
	}
	if o.UseVlimit && !(o.Vlimit > 0) {
		return ion.ErrInvalidInput("vlimit = %v must be positive when the clamp is on", o.Vlimit)
	}
	return nil
}

// Report holds diagnostic data of one solve
type Report struct {
	Iterations int     // number of iterations performed
	PhiBar     float64 // final |φ̄| (residual estimate of the augmented system)
	Clamped    int     // number of entries clamped by the voltage limit
}

// Tikhonov solves min ‖Ax−b‖² + λ‖x‖² and returns the length-N solution.
// With λ>0 the augmented system has full column rank and the call never
// fails, even for rank-deficient A; with λ=0 the iterate converges towards
// the pseudoinverse solution
func Tikhonov(a *la.Matrix, b la.Vector, opts *Options) la.Vector {
	x, _ := TikhonovReport(a, b, opts)
	return x
}

// TikhonovReport is Tikhonov also returning the solve report
func TikhonovReport(a *la.Matrix, b la.Vector, opts *Options) (x la.Vector, rep Report) {

	m0 := a.M // rows of A; the augmented system has m0+n rows
	n := a.N
	sqrtLam := math.Sqrt(math.Max(opts.Lambda, 0))

	// u = b̂ = [b; 0], β = ‖u‖, u ← u/β
	u := la.NewVector(m0 + n)
	copy(u[:m0], b)
	beta := nrm2(u)
	if beta > 0 {
		scal(u, 1.0/beta)
	}

	// v = Âᵀu = Aᵀu_top + √λ u_bot, α = ‖v‖, v ← v/α
	v := la.NewVector(n)
	la.MatTrVecMul(v, 1, a, u[:m0])
	for j := 0; j < n; j++ {
		v[j] += sqrtLam * u[m0+j]
	}
	alpha := nrm2(v)
	if alpha > 0 {
		scal(v, 1.0/alpha)
	}

	// w ← v, x ← 0, φ̄ ← β, ρ̄ ← α
	w := v.GetCopy()
	x = la.NewVector(n)
	phiBar := beta
	rhoBar := alpha

	// auxiliary vectors for the half-products
	av := la.NewVector(m0)
	atu := la.NewVector(n)

	for k := 0; k < opts.Itmax; k++ {
		rep.Iterations = k + 1

		// u ← Âv − α u;  (Âv)_top = A v, (Âv)_bottom = √λ v
		la.MatVecMul(av, 1, a, v)
		for i := 0; i < m0; i++ {
			u[i] = av[i] - alpha*u[i]
		}
		for j := 0; j < n; j++ {
			u[m0+j] = sqrtLam*v[j] - alpha*u[m0+j]
		}
		beta = nrm2(u)
		if beta > 0 {
			scal(u, 1.0/beta)
		}

		// v ← Âᵀu − β v
		la.MatTrVecMul(atu, 1, a, u[:m0])
		for j := 0; j < n; j++ {
			v[j] = atu[j] + sqrtLam*u[m0+j] - beta*v[j]
		}
		alpha = nrm2(v)
		if alpha > 0 {
			scal(v, 1.0/alpha)
		}

		// plane rotation
		rho := math.Sqrt(rhoBar*rhoBar + beta*beta)
		c := rhoBar / rho
		s := beta / rho
		theta := s * alpha
		rhoBar = -c * alpha
		phi := c * phiBar
		phiBar = s * phiBar

		// update x and the search direction w
		for j := 0; j < n; j++ {
			x[j] += (phi / rho) * w[j]
			w[j] = v[j] - (theta/rho)*w[j]
		}

		if math.Abs(phiBar) < opts.Tol {
			break
		}
	}
	rep.PhiBar = math.Abs(phiBar)

	if opts.UseVlimit {
		rep.Clamped = Clamp(x, opts.Vlimit)
	}
	return
}

// Clamp limits each entry of x symmetrically to [−vlim, +vlim], returning
// the number of entries changed. This is a post-projection, not part of the
// optimisation: callers relying on tight constraints should re-solve with a
// larger λ or accept the suboptimality. Clamping already-clamped output is
// a no-op
func Clamp(x []float64, vlim float64) (nclamped int) {
	for i := range x {
		if x[i] > vlim {
			x[i] = vlim
			nclamped++
		}
		if x[i] < -vlim {
			x[i] = -vlim
			nclamped++
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// nrm2 returns the Euclidean norm of x
func nrm2(x la.Vector) float64 {
	return math.Sqrt(la.VecDot(x, x))
}

// scal scales x by s in place
func scal(x la.Vector, s float64) {
	for i := range x {
		x[i] *= s
	}
}
