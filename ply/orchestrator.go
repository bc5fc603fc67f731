// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

// Logger receives the structured trace of validation decisions and
// per-ply mask cardinalities. A nil Logger is a silent no-op.
// diag.Logger implements this interface; it is accepted here as a minimal
// interface rather than the concrete type so this package stays free of a
// dependency on the ambient logging package.
type Logger interface {
	Tracef(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// Options carries pipeline-wide flags, passed explicitly rather than
// through a package-level global: a library entry point called
// concurrently from multiple goroutines can't share mutable global state
// safely (see DESIGN.md).
type Options struct {
	Verbose bool
	Log     Logger
}

func (o Options) log() Logger {
	if o.Log != nil {
		return o.Log
	}
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Tracef(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}

const TotalThicknessField = "total_thickness"

// Drape runs the full pipeline: validate, ensure cell-field availability,
// sort plies, evaluate plies (possibly in parallel), write per-ply arrays
// back to mesh in sorted order, then write total_thickness to mesh. Only an
// error is returned; the results live on mesh itself.
func Drape(plan *LaminatePlan, mesh Mesh, matdb MaterialDB, opts Options) error {
	log := opts.log()

	if mesh.NumCells() == 0 {
		return errf(EmptyMesh, "mesh has zero cells")
	}

	requiredFields, err := Validate(plan, matdb)
	if err != nil {
		log.Warnf("validation failed: %v", err)
		return err
	}
	log.Tracef("validation ok: %d required field(s)", len(requiredFields))

	for _, f := range requiredFields {
		if err := mesh.EnsureCellField(f); err != nil {
			return errf(UnknownField, "field %q is neither a cell nor point field: %v", f, err)
		}
	}

	ordered, err := Order(plan.Plies)
	if err != nil {
		return err
	}

	results, errs := EvaluateAll(mesh, plan.Datums, matdb, plan.Plies)
	for _, e := range errs {
		if e != nil {
			return e
		}
	}

	// resultByDefIndex lets us look up a ply's Result (indexed by its
	// position in plan.Plies, the evaluation order) from its sorted rank.
	resultByDefIndex := make(map[int]Result, len(plan.Plies))
	for i, p := range plan.Plies {
		resultByDefIndex[p.DefIndex] = results[i]
	}

	n := mesh.NumCells()
	total := make([]float64, n)
	for _, op := range ordered {
		res := resultByDefIndex[op.DefIndex]
		mesh.SetCellField(op.MaterialField, res.Material)
		mesh.SetCellField(op.AngleField, res.Angle)
		mesh.SetCellField(op.ThicknessField, res.Thickness)
		covered := 0
		for i := 0; i < n; i++ {
			total[i] += res.Thickness[i]
			if res.Mask[i] {
				covered++
			}
		}
		log.Tracef("ply %d (%s/%d): %d/%d cells covered", op.Index, op.Parent, op.Key, covered, n)
	}
	mesh.SetCellField(TotalThicknessField, total)

	return nil
}
