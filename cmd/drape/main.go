// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// drape runs the ply evaluator over a grid file and a laminate plan,
// writing the annotated mesh back out.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/bladedrape/drape/diag"
	"github.com/bladedrape/drape/mesh"
	"github.com/bladedrape/drape/plan"
	"github.com/bladedrape/drape/ply"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// print a single diagnostic line and exit non-zero rather than
	// dumping a Go stack trace.
	defer func() {
		if err := recover(); err != nil {
			io.Pf("error: %v\n", err)
			os.Exit(1)
		}
	}()

	var lamplan, grid, matdb, output string
	var verbose bool
	flag.StringVar(&lamplan, "lamplan", "", "laminate plan file (.yaml/.json)")
	flag.StringVar(&grid, "grid", "", "grid file (.json)")
	flag.StringVar(&matdb, "matdb", "", "material database file (.yaml/.json)")
	flag.StringVar(&output, "output", "", "output VTU file")
	flag.BoolVar(&verbose, "verbose", false, "print a structured trace")
	flag.Parse()

	if lamplan == "" || grid == "" || matdb == "" || output == "" {
		io.Pf("error: --lamplan, --grid, --matdb and --output are all required\n")
		os.Exit(1)
	}

	if err := run(lamplan, grid, matdb, output, verbose); err != nil {
		io.Pf("error: %v\n", err)
		os.Exit(1)
	}
}

func run(lamplan, grid, matdb, output string, verbose bool) error {
	log := diag.NewSilent()
	if verbose {
		log = diag.NewVerbose()
		chk.Verbose = true
	}

	g, err := mesh.LoadGrid(filepath.Dir(grid), filepath.Base(grid))
	if err != nil {
		return err
	}

	lp, err := plan.Load(filepath.Dir(lamplan), filepath.Base(lamplan), log)
	if err != nil {
		return err
	}

	mdb, err := plan.LoadMaterials(filepath.Dir(matdb), filepath.Base(matdb))
	if err != nil {
		return err
	}

	if err := ply.Drape(lp, g, mdb, ply.Options{Verbose: verbose, Log: log}); err != nil {
		return err
	}

	return mesh.WriteVTU(g, output)
}
