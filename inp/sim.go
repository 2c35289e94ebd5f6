// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/ionwave/ion"
	"github.com/cpmech/ionwave/lsq"
	"github.com/cpmech/ionwave/pot"
	"github.com/cpmech/ionwave/trap"
)

// Data holds global data for simulations
type Data struct {
	Desc   string  `json:"desc"`   // description of simulation
	Key    string  `json:"key"`    // simulation key; used to name output files
	DirOut string  `json:"dirout"` // directory for output; e.g. /tmp/ionwave
	Charge float64 `json:"charge"` // ion charge [C]
	Mass   float64 `json:"mass"`   // ion mass [kg]
}

// BasisData holds one potential basis definition
type BasisData struct {
	Model string     `json:"model"` // basis model name; e.g. "bowl", "gauss"
	Prms  utl.Params `json:"prms"`  // basis parameters
}

// TrapData holds the trap description
type TrapData struct {
	Rf         *BasisData   `json:"rf"`         // RF pseudopotential surrogate
	Electrodes []*BasisData `json:"electrodes"` // ordered DC electrode bases
	RailPair   []int        `json:"railpair"`   // C2LR rail indices; may be omitted
}

// TransportData holds the transport segment definition
type TransportData struct {
	Nwp      int       `json:"nwp"`      // number of waypoints
	Z0       float64   `json:"z0"`       // segment start [m]
	Dz       float64   `json:"dz"`       // segment length [m]
	Omega    float64   `json:"omega"`    // target axial angular frequency [rad/s]
	AxialDir []float64 `json:"axialdir"` // axial direction (normalised on read)
}

// SolverData holds solver options
type SolverData struct {
	Lambda float64 `json:"lambda"` // Tikhonov regularisation factor
	Vlimit float64 `json:"vlimit"` // symmetric voltage clamp; ≤ 0 disables
	Itmax  int     `json:"itmax"`  // maximum LSQR iterations
	Tol    float64 `json:"tol"`    // early-exit tolerance
}

// Simulation holds all simulation data read from a .sim file
type Simulation struct {

	// input
	Data      Data          `json:"data"`      // global data
	Trap      TrapData      `json:"trap"`      // trap description
	Transport TransportData `json:"transport"` // transport segment
	Solver    SolverData    `json:"solver"`    // solver options

	// derived
	Model     *trap.Model    // allocated trap model
	Waypoints []ion.Waypoint // transport waypoints
	Opts      *lsq.Options   // solver options
}

// ReadSim reads a simulation file, allocates the bases through the pot
// registry and builds the trap model, the waypoint list and the solver
// options
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read and decode
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, err
	}
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, err
	}

	// global data
	if o.Data.Key == "" {
		o.Data.Key = io.FnKey(simfilepath)
	}
	if o.Data.Charge == 0 || o.Data.Mass <= 0 {
		return nil, ion.ErrInvalidInput("charge=%v must be nonzero and mass=%v must be positive", o.Data.Charge, o.Data.Mass)
	}

	// bases
	if o.Trap.Rf == nil {
		return nil, ion.ErrInvalidInput("simulation file must define an rf basis")
	}
	rf, err := pot.New(o.Trap.Rf.Model, o.Trap.Rf.Prms)
	if err != nil {
		return nil, err
	}
	dc := make([]pot.Basis, len(o.Trap.Electrodes))
	for i, bd := range o.Trap.Electrodes {
		dc[i], err = pot.New(bd.Model, bd.Prms)
		if err != nil {
			return nil, err
		}
	}
	o.Model, err = trap.NewModel(rf, dc, o.Trap.RailPair)
	if err != nil {
		return nil, err
	}

	// waypoints
	t := o.Transport
	if t.Nwp < 1 {
		return nil, ion.ErrInvalidInput("transport nwp=%d must be positive", t.Nwp)
	}
	if !(t.Omega > 0) {
		return nil, ion.ErrInvalidInput("transport omega=%v must be positive", t.Omega)
	}
	if len(t.AxialDir) != 3 {
		return nil, ion.ErrInvalidInput("axialdir must have 3 components. %d given", len(t.AxialDir))
	}
	u := ion.Vec3{X: t.AxialDir[0], Y: t.AxialDir[1], Z: t.AxialDir[2]}.Unit()
	if u.Norm() == 0 {
		return nil, ion.ErrInvalidInput("axialdir must be nonzero")
	}
	o.Waypoints = make([]ion.Waypoint, t.Nwp)
	for i := range o.Waypoints {
		z := t.Z0
		if t.Nwp > 1 {
			z += t.Dz * float64(i) / float64(t.Nwp-1)
		}
		o.Waypoints[i] = ion.Waypoint{
			R:          ion.Vec3{Z: z},
			OmegaAxial: t.Omega,
			AxialDir:   u,
		}
	}

	// solver options. lambda is taken as given (zero disables the
	// regularisation); itmax and tol fall back to the defaults when absent;
	// a nonpositive vlimit disables the clamp
	o.Opts = lsq.DefaultOptions()
	o.Opts.Lambda = math.Max(o.Solver.Lambda, 0)
	if o.Solver.Itmax > 0 {
		o.Opts.Itmax = o.Solver.Itmax
	}
	if o.Solver.Tol > 0 {
		o.Opts.Tol = o.Solver.Tol
	}
	o.Opts.UseVlimit = o.Solver.Vlimit > 0
	o.Opts.Vlimit = math.Max(o.Solver.Vlimit, 0)
	err = o.Opts.Validate()
	if err != nil {
		return nil, err
	}
	return
}
