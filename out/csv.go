// Copyright 2016 The Ionwave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out writes waveform tables to CSV files and reads them back
package out

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/ionwave/ion"
)

// WriteCSV writes a waveform table to a CSV file: header row e0,…,e{N−1},
// one data row per waypoint, comma separated, trailing newline on every
// row. Parent directories are created. An empty table produces an empty
// file
func WriteCSV(path string, data [][]float64) (err error) {
	var buf bytes.Buffer
	if len(data) > 0 {
		nEl := len(data[0])
		for j := 0; j < nEl; j++ {
			if j > 0 {
				io.Ff(&buf, ",")
			}
			io.Ff(&buf, "e%d", j)
		}
		io.Ff(&buf, "\n")
		for k, row := range data {
			if len(row) != nEl {
				return ion.ErrInvalidInput("row %d has %d fields; expected %d", k, len(row), nEl)
			}
			for j, v := range row {
				if j > 0 {
					io.Ff(&buf, ",")
				}
				io.Ff(&buf, "%v", v)
			}
			io.Ff(&buf, "\n")
		}
	}
	io.WriteFileD(filepath.Dir(path), filepath.Base(path), &buf)
	return
}

// ReadCSV reads a waveform table written by WriteCSV, skipping the header
// row. An empty file yields an empty table
func ReadCSV(path string) (data [][]float64, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return
	}
	nEl := len(strings.Split(lines[0], ","))
	for k, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) != nEl {
			return nil, ion.ErrInvalidInput("line %d has %d fields; expected %d", k+2, len(fields), nEl)
		}
		row := make([]float64, nEl)
		for j, f := range fields {
			row[j] = io.Atof(f)
		}
		data = append(data, row)
	}
	return
}
