// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import "fmt"

// fakeMesh is a minimal in-memory Mesh used by this package's own tests.
// The mesh package provides the real adapter; this stays package-local so
// ply has no import-cycle-inducing dependency on it.
type fakeMesh struct {
	n      int
	fields map[string][]float64
}

func newFakeMesh(n int) *fakeMesh {
	return &fakeMesh{n: n, fields: map[string][]float64{}}
}

func (m *fakeMesh) NumCells() int { return m.n }

func (m *fakeMesh) CellField(name string) ([]float64, error) {
	v, ok := m.fields[name]
	if !ok {
		return nil, fmt.Errorf("no such field %q", name)
	}
	return v, nil
}

func (m *fakeMesh) EnsureCellField(name string) error {
	if _, ok := m.fields[name]; ok {
		return nil
	}
	return fmt.Errorf("field %q unavailable", name)
}

func (m *fakeMesh) SetCellField(name string, values []float64) {
	m.fields[name] = values
}
