// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot is the plotting utility collaborator wired to the `plot`
// CLI subcommand. It is a thin wrapper around gosl/plt: reset the canvas,
// plot, save. It is never called from ply.Drape itself.
package plot

import (
	"github.com/bladedrape/drape/mesh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

// Options controls what Summary renders, mirroring the `plot` subcommand's
// flags.
type Options struct {
	Scalar string // cell field to plot against cell index; defaults to total_thickness
	XLabel string
	YLabel string
}

// Summary plots the named cell field (one point per cell, against cell
// index) and saves it to dirout/fnkey, in the same reset-plot-save
// sequence as inp.FuncsData.PlotAll.
func Summary(m *mesh.CellMesh, dirout, fnkey string, opts Options) error {
	scalar := opts.Scalar
	if scalar == "" {
		scalar = "total_thickness"
	}
	vals, ok := m.CellFields[scalar]
	if !ok {
		return chk.Err("cannot plot %q: not a cell field on this mesh", scalar)
	}

	x := make([]float64, len(vals))
	for i := range x {
		x[i] = float64(i)
	}

	xlabel := opts.XLabel
	if xlabel == "" {
		xlabel = "cell index"
	}
	ylabel := opts.YLabel
	if ylabel == "" {
		ylabel = scalar
	}

	plt.Reset(false, nil)
	plt.Plot(x, vals, nil)
	plt.Gll(xlabel, ylabel, nil)
	plt.Save(dirout, fnkey)
	return nil
}
