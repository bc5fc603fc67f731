// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

// Mesh is the contract this package consumes from the mesh I/O layer
// (out of scope here, see the mesh package for a concrete implementation).
// Implementations are free to back CellField with a point-to-cell
// translation the first time EnsureCellField is called for a given name.
type Mesh interface {
	NumCells() int
	CellField(name string) ([]float64, error)
	EnsureCellField(name string) error
	SetCellField(name string, values []float64)
}
