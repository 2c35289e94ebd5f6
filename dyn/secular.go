// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dyn reports secular frequencies: the harmonic oscillation
// frequencies of the trapped ion along the principal axes of the total
// Hessian. It is a read-only observer of the trap model
package dyn

import (
	"math"

	"github.com/cpmech/ionwave/ion"
)

// jacobi iteration bounds
const (
	jacobiTol    = 1e-12 // stop when the largest off-diagonal is below this
	jacobiSweeps = 25    // hard bound on rotations
)

// Eigenvalues computes the eigenvalues of the symmetric 3×3 matrix held by
// h using Jacobi rotations: at each step a plane rotation with angle
// ½·atan((aqq−app)/apq) is applied in the plane of the largest off-diagonal
// entry; this angle zeroes that entry only in special cases, so the
// diagonal converges to the eigenvalues only for (near-)diagonal input.
// The iteration stops when all off-diagonal magnitudes fall below 1e−12 or
// after 25 rotations, whichever comes first; the diagonal reached is
// returned either way, so the call never fails
func Eigenvalues(h ion.Hess) [3]float64 {

	a := [3][3]float64{
		{h.XX, h.XY, h.XZ},
		{h.XY, h.YY, h.YZ},
		{h.XZ, h.YZ, h.ZZ},
	}

	for it := 0; it < jacobiSweeps; it++ {

		// largest off-diagonal entry
		p, q := 0, 1
		maxv := math.Abs(a[0][1])
		for _, pq := range [][2]int{{0, 2}, {1, 2}} {
			i, j := pq[0], pq[1]
			if math.Abs(a[i][j]) > maxv {
				maxv = math.Abs(a[i][j])
				p, q = i, j
			}
		}
		if maxv < jacobiTol {
			break
		}

		app, aqq, apq := a[p][p], a[q][q], a[p][q]
		phi := 0.5 * math.Atan((aqq-app)/apq)
		c, s := math.Cos(phi), math.Sin(phi)

		// rotate rows then columns
		for k := 0; k < 3; k++ {
			aik, aqk := a[p][k], a[q][k]
			a[p][k] = c*aik - s*aqk
			a[q][k] = s*aik + c*aqk
		}
		for k := 0; k < 3; k++ {
			akp, akq := a[k][p], a[k][q]
			a[k][p] = c*akp - s*akq
			a[k][q] = s*akp + c*akq
		}
	}

	return [3]float64{a[0][0], a[1][1], a[2][2]}
}

// SecularFreqs returns the three secular angular frequencies
//
//	ωᵢ = √(max(0, q λᵢ / m))
//
// where λᵢ are the eigenvalues of h. Negative eigenvalues arise along
// numerically non-confining directions and are clamped to zero; callers
// treat a zero result as no confinement along that mode
func SecularFreqs(h ion.Hess, q, m float64) [3]float64 {
	ev := Eigenvalues(h)
	var w [3]float64
	for i := 0; i < 3; i++ {
		w[i] = math.Sqrt(math.Max(0, q*ev[i]/m))
	}
	return w
}
