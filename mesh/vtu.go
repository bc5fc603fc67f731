// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bytes"
	"sort"

	"github.com/cpmech/gosl/io"
)

// WriteVTU serializes every cell field on m as an unstructured-grid VTU
// file with one point per cell (cell centroids are not tracked by
// CellMesh, so the point of cell i is emitted at (i, 0, 0); downstream
// tools that need true geometry should use the full mesh writer instead). The XML
// shape and io.Ff/io.WriteFile idiom are carried over directly from the
// teacher's VTU generator (tools/GenVtu.go); what differs is the payload,
// which here is the ply evaluator's cell arrays rather than FEM solution
// fields.
func WriteVTU(m *CellMesh, path string) error {
	var hdr, body, foo bytes.Buffer

	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", m.N, m.N)

	io.Ff(&hdr, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for i := 0; i < m.N; i++ {
		io.Ff(&hdr, "%d 0 0 ", i)
	}
	io.Ff(&hdr, "\n</DataArray>\n</Points>\n")

	io.Ff(&hdr, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for i := 0; i < m.N; i++ {
		io.Ff(&hdr, "%d ", i)
	}
	io.Ff(&hdr, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	for i := 1; i <= m.N; i++ {
		io.Ff(&hdr, "%d ", i)
	}
	io.Ff(&hdr, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	const vtkVertex = 1
	for i := 0; i < m.N; i++ {
		io.Ff(&hdr, "%d ", vtkVertex)
	}
	io.Ff(&hdr, "\n</DataArray>\n</Cells>\n")

	names := make([]string, 0, len(m.CellFields))
	for name := range m.CellFields {
		names = append(names, name)
	}
	sort.Strings(names)

	io.Ff(&body, "<CellData Scalars=\"TheScalars\">\n")
	for _, name := range names {
		io.Ff(&body, "<DataArray type=\"Float64\" Name=\"%s\" NumberOfComponents=\"1\" format=\"ascii\">\n", name)
		for _, v := range m.CellFields[name] {
			io.Ff(&body, "%23.15e ", v)
		}
		io.Ff(&body, "\n</DataArray>\n")
	}
	io.Ff(&body, "</CellData>\n")

	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")

	return io.WriteFile(path, &hdr, &body, &foo)
}
