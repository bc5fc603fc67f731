// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// plot delegates to the plotting utility collaborator; it is not part of
// the ply evaluator core.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/bladedrape/drape/mesh"
	"github.com/bladedrape/drape/plot"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.Pf("error: %v\n", err)
			os.Exit(1)
		}
	}()

	var grid, output, scalar, xlabel, ylabel string
	var verbose bool
	flag.StringVar(&grid, "grid", "", "grid file (.json), already annotated by drape")
	flag.StringVar(&output, "output", "", "output directory/filename-key for the saved figure")
	flag.StringVar(&scalar, "scalar", "", "cell field to plot; defaults to total_thickness")
	flag.StringVar(&xlabel, "x-axis", "", "x-axis label")
	flag.StringVar(&ylabel, "y-axis", "", "y-axis label")
	flag.BoolVar(&verbose, "verbose", false, "print gosl/plt diagnostics")
	flag.Parse()

	if grid == "" || output == "" {
		io.Pf("error: --grid and --output are required\n")
		os.Exit(1)
	}
	chk.Verbose = verbose

	if err := run(grid, output, scalar, xlabel, ylabel); err != nil {
		io.Pf("error: %v\n", err)
		os.Exit(1)
	}
}

func run(grid, output, scalar, xlabel, ylabel string) error {
	g, err := mesh.LoadGrid(filepath.Dir(grid), filepath.Base(grid))
	if err != nil {
		return err
	}
	dirout, fnkey := filepath.Split(output)
	return plot.Summary(g, dirout, fnkey, plot.Options{Scalar: scalar, XLabel: xlabel, YLabel: ylabel})
}
