// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// gridDocument is the on-disk shape of a minimal grid file: vertex
// coordinates, cell connectivity, and any point/cell scalar fields already
// known at load time.
type gridDocument struct {
	Verts       [][]float64          `json:"verts"` // [nverts][ndim] coordinates, decoded but not stored on the CellMesh
	Cells       [][]int              `json:"cells"` // [ncells] vertex index lists
	PointFields map[string][]float64 `json:"point_fields"`
	CellFields  map[string][]float64 `json:"cell_fields"`
}

// LoadGrid reads a grid document and builds a CellMesh from it.
func LoadGrid(dir, fn string) (*CellMesh, error) {
	path := filepath.Join(dir, fn)
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc gridDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, chk.Err("cannot parse grid file %q: %v", path, err)
	}

	m := New(len(doc.Cells), doc.Cells)
	for name, vals := range doc.PointFields {
		m.PointFields[name] = vals
	}
	for name, vals := range doc.CellFields {
		m.CellFields[name] = vals
	}
	return m, nil
}
