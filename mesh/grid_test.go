// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const gridJSON = `{
  "verts": [[0,0],[1,0],[2,0],[3,0]],
  "cells": [[0,1],[1,2],[2,3]],
  "point_fields": {"p": [0, 10, 20, 30]},
  "cell_fields": {"r": [0, 1, 2]}
}`

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. load a grid document and promote a point field")

	dir := tst.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "grid.json"), []byte(gridJSON), 0644); err != nil {
		tst.Errorf("WriteFile failed: %v", err)
		return
	}

	m, err := LoadGrid(dir, "grid.json")
	if err != nil {
		tst.Errorf("LoadGrid failed: %v", err)
		return
	}

	r, err := m.CellField("r")
	if err != nil {
		tst.Errorf("CellField failed: %v", err)
		return
	}
	chk.Array(tst, "r", 1e-17, r, []float64{0, 1, 2})

	if err := m.EnsureCellField("p"); err != nil {
		tst.Errorf("EnsureCellField failed: %v", err)
		return
	}
	p, _ := m.CellField("p")
	chk.Array(tst, "p", 1e-17, p, []float64{5, 15, 25})
}
