// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// PlotWave renders a waveform CSV file (one row per waypoint, one column
// per electrode) as an interactive HTML line chart
package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/ionwave/out"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	fnIn := flag.String("in", "/tmp/ionwave/c2lr.csv", "input waveform CSV file")
	fnOut := flag.String("out", "/tmp/ionwave/c2lr.html", "output HTML file")
	flag.Parse()

	// read waveform table
	data, err := out.ReadCSV(*fnIn)
	if err != nil {
		chk.Panic("cannot read waveform table:\n%v", err)
	}
	if len(data) == 0 {
		chk.Panic("waveform table %q is empty", *fnIn)
	}
	nwp := len(data)
	nEl := len(data[0])

	// waypoint indices along x
	xs := make([]int, nwp)
	for k := range xs {
		xs[k] = k
	}

	// one series per electrode
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Electrode voltages along the transport segment",
			Subtitle: io.Sf("%d waypoints, %d electrodes", nwp, nEl),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "waypoint"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "voltage [V]"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
	)
	line.SetXAxis(xs)
	for j := 0; j < nEl; j++ {
		items := make([]opts.LineData, nwp)
		for k := 0; k < nwp; k++ {
			items[k] = opts.LineData{Value: data[k][j]}
		}
		line.AddSeries(io.Sf("e%d", j), items)
	}

	// render page
	page := components.NewPage().SetPageTitle("Ionwave waveforms")
	page.AddCharts(line)
	f, err := os.Create(*fnOut)
	if err != nil {
		chk.Panic("cannot create output file:\n%v", err)
	}
	defer f.Close()
	err = page.Render(f)
	if err != nil {
		chk.Panic("cannot render chart:\n%v", err)
	}
	io.Pf("wrote %s\n", *fnOut)
}
