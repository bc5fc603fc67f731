// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides a concrete, in-memory implementation of the
// ply.Mesh contract: an external collaborator that reads a grid file and
// translates point fields to cell fields.
package mesh

import (
	"github.com/bladedrape/drape/ply"
	"github.com/cpmech/gosl/chk"
)

// CellMesh is a slice-backed mesh with separate cell- and point-field
// stores and a vertex incidence table used to promote point fields to
// cell fields on demand.
type CellMesh struct {
	N int // number of cells

	CellFields  map[string][]float64
	PointFields map[string][]float64

	// CellVerts[c] lists the point indices incident to cell c; required
	// only for fields that are only ever supplied as point data.
	CellVerts [][]int
}

// New builds an empty CellMesh for n cells with the given vertex
// incidence table (may be nil if no point-field promotion is needed).
func New(n int, cellVerts [][]int) *CellMesh {
	return &CellMesh{
		N:           n,
		CellFields:  map[string][]float64{},
		PointFields: map[string][]float64{},
		CellVerts:   cellVerts,
	}
}

var _ ply.Mesh = (*CellMesh)(nil)

func (m *CellMesh) NumCells() int { return m.N }

func (m *CellMesh) CellField(name string) ([]float64, error) {
	v, ok := m.CellFields[name]
	if !ok {
		return nil, chk.Err("cell field %q does not exist; call EnsureCellField first", name)
	}
	return v, nil
}

// EnsureCellField is idempotent: calling it twice for the same name is a
// no-op the second time, and it never overwrites an existing cell field
// with a freshly-promoted one.
func (m *CellMesh) EnsureCellField(name string) error {
	if _, ok := m.CellFields[name]; ok {
		return nil
	}
	pf, ok := m.PointFields[name]
	if !ok {
		return chk.Err("field %q is neither a cell field nor a point field", name)
	}
	m.CellFields[name] = PointToCell(pf, m.CellVerts)
	return nil
}

func (m *CellMesh) SetCellField(name string, values []float64) {
	m.CellFields[name] = values
}

// PointToCell translates a point field to a cell field by averaging the
// values at each cell's incident vertices.
func PointToCell(point []float64, cellVerts [][]int) []float64 {
	out := make([]float64, len(cellVerts))
	for c, verts := range cellVerts {
		if len(verts) == 0 {
			continue
		}
		var sum float64
		for _, v := range verts {
			sum += point[v]
		}
		out[c] = sum / float64(len(verts))
	}
	return out
}
