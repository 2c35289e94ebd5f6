// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/ionwave/ana"
	"github.com/cpmech/ionwave/inp"
	"github.com/cpmech/ionwave/out"
	"github.com/cpmech/ionwave/wav"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\nIonwave -- transport waveform design\n\n")

	// simulation filenamepath
	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a filename. Ex.: c2lr.sim")
	}

	// check extension
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".sim"
	}

	// read simulation input
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation input:\n%v", err)
	}
	io.Pf("> Simulation (.sim) file read\n")
	io.Pf("> electrodes   = %d\n", sim.Model.Nelectrodes())
	io.Pf("> waypoints    = %d\n", len(sim.Waypoints))
	io.Pf("> target axial = %.3f MHz\n", sim.Transport.Omega/(2*math.Pi)/1e6)

	// solve right and left segments
	io.Pf("> Solving right segment\n")
	voltsRight, err := wav.SolveWaveform(sim.Model, sim.Waypoints, sim.Data.Charge, sim.Data.Mass, false, sim.Opts)
	if err != nil {
		chk.Panic("right solve failed:\n%v", err)
	}
	io.Pf("> Solving left segment\n")
	voltsLeft, err := wav.SolveWaveform(sim.Model, sim.Waypoints, sim.Data.Charge, sim.Data.Mass, true, sim.Opts)
	if err != nil {
		chk.Panic("left solve failed:\n%v", err)
	}

	// report the axial frequency along the transport axis
	nwp := len(sim.Waypoints)
	u := sim.Waypoints[0].AxialDir
	q, m := sim.Data.Charge, sim.Data.Mass
	freqAt := func(k int) float64 {
		h, err := sim.Model.HessTotal(sim.Waypoints[k].R, voltsRight[k])
		if err != nil {
			chk.Panic("cannot evaluate total Hessian:\n%v", err)
		}
		return ana.FreqAlongAxis(h, u, q, m)
	}
	maxDevHz := 0.0
	for k := range sim.Waypoints {
		devHz := math.Abs(freqAt(k)-sim.Waypoints[k].OmegaAxial) / (2 * math.Pi)
		if devHz > maxDevHz {
			maxDevHz = devHz
		}
	}
	io.Pf("> axial at start = %.3f MHz, at end = %.3f MHz\n",
		freqAt(0)/(2*math.Pi)/1e6, freqAt(nwp-1)/(2*math.Pi)/1e6)
	io.Pf("> max axial deviation = %.3f kHz\n", maxDevHz/1e3)

	// write csv files
	dirout := sim.Data.DirOut
	if dirout == "" {
		dirout = "/tmp/ionwave"
	}
	fnRight := io.Sf("%s/%s.csv", dirout, sim.Data.Key)
	fnLeft := io.Sf("%s/%s_left.csv", dirout, sim.Data.Key)
	if err = out.WriteCSV(fnRight, voltsRight); err != nil {
		chk.Panic("cannot write right waveform:\n%v", err)
	}
	if err = out.WriteCSV(fnLeft, voltsLeft); err != nil {
		chk.Panic("cannot write left waveform:\n%v", err)
	}
	io.PfGreen("> Success\n")
	io.Pf("> wrote %s (%d rows)\n", fnRight, len(voltsRight))
	io.Pf("> wrote %s (%d rows)\n", fnLeft, len(voltsLeft))
}
