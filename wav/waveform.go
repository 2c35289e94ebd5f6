// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wav

import (
	"math"

	"github.com/cpmech/ionwave/ion"
	"github.com/cpmech/ionwave/lsq"
	"github.com/cpmech/ionwave/trap"
)

// unitTol bounds the acceptable deviation of |AxialDir| from one
const unitTol = 1e-9

// SolveWaveform computes the electrode voltages for every waypoint of a
// transport segment. The result is indexed by [waypoint][electrode] and its
// row order always matches the input waypoint order.
//
// With mirror=true the rail columns of each constraint matrix are swapped
// before solving, which produces the mirror-image (C2LR) waveform: swapping
// columns i,j of A and solving equals solving the unswapped system and then
// swapping entries i,j of x. Without a recorded rail pair the swap is a
// no-op.
//
// Waypoints are independent and are solved concurrently; each goroutine
// reads only the shared immutable model and its own waypoint
func SolveWaveform(m *trap.Model, waypoints []ion.Waypoint, chargeQ, massM float64, mirror bool, opts *lsq.Options) ([][]float64, error) {

	// preconditions
	if m.Nelectrodes() == 0 {
		return nil, ion.ErrInvalidInput("no electrodes")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(chargeQ) || math.IsInf(chargeQ, 0) || chargeQ == 0 || math.IsNaN(massM) || math.IsInf(massM, 0) || massM <= 0 {
		return nil, ion.ErrInvalidInput("charge q=%v must be finite and nonzero and mass m=%v finite and positive", chargeQ, massM)
	}
	for k, wp := range waypoints {
		if !(wp.OmegaAxial > 0) {
			return nil, ion.ErrInvalidInput("waypoint %d: omega = %v must be positive", k, wp.OmegaAxial)
		}
		if math.Abs(wp.AxialDir.Norm()-1) > unitTol {
			return nil, ion.ErrInvalidInput("waypoint %d: axial direction %v must be a unit vector", k, wp.AxialDir)
		}
		for _, c := range []float64{wp.R.X, wp.R.Y, wp.R.Z} {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, ion.ErrInvalidInput("waypoint %d: position %v must be finite", k, wp.R)
			}
		}
	}

	railI, railJ := m.RailPair()

	// solve all waypoints; rows are filled by index so the output order is
	// the input order regardless of goroutine scheduling
	res := make([][]float64, len(waypoints))
	done := make(chan int, len(waypoints))
	for k := range waypoints {
		go func(k int) {
			a, b := BuildConstraints(m, waypoints[k], chargeQ, massM)
			if mirror {
				swapCols(a, railI, railJ)
			}
			res[k] = lsq.Tikhonov(a, b, opts)
			done <- 1
		}(k)
	}
	for range waypoints {
		<-done
	}

	// reserved numerical failure path: LSQR on the augmented system with
	// λ>0 does not normally produce non-finite entries
	for k, row := range res {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ion.ErrSolver("waypoint %d: electrode %d voltage is not finite", k, j)
			}
		}
	}
	return res, nil
}
