// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

// ThicknessKind tags the three legal shapes a ply's thickness may take.
type ThicknessKind int

const (
	ThicknessConstant ThicknessKind = iota
	ThicknessDatum
	ThicknessExpression
)

// ThicknessSpec is a tagged variant: exactly one of Value, DatumName, or
// Expr is meaningful, selected by Kind. The plan package resolves the
// polymorphic document field (number | datum-name | formula string) into
// this type once, at load time; a datum name wins over a same-named
// formula.
type ThicknessSpec struct {
	Kind      ThicknessKind
	Value     float64
	DatumName string
	Expr      *Expr
}

// Fields returns the cell fields this spec needs resolved before it can be
// evaluated.
func (t ThicknessSpec) Fields() []string {
	if t.Kind == ThicknessExpression {
		return t.Expr.Fields()
	}
	return nil
}

// ResolveThickness computes the per-cell thickness array for a spec.
func ResolveThickness(mesh Mesh, datums map[string]*Datum, spec ThicknessSpec) ([]float64, error) {
	n := mesh.NumCells()
	switch spec.Kind {
	case ThicknessConstant:
		out := make([]float64, n)
		for i := range out {
			out[i] = spec.Value
		}
		return out, nil

	case ThicknessDatum:
		d, ok := datums[spec.DatumName]
		if !ok {
			return nil, errf(UnknownDatum, "thickness references unknown datum %q", spec.DatumName)
		}
		base, err := mesh.CellField(d.Base)
		if err != nil {
			return nil, errf(UnknownField, "datum %q base field %q unavailable: %v", d.Name, d.Base, err)
		}
		return d.Interpolate(base), nil

	case ThicknessExpression:
		fields := make(map[string][]float64, len(spec.Expr.Fields()))
		for _, name := range spec.Expr.Fields() {
			vals, err := mesh.CellField(name)
			if err != nil {
				return nil, errf(UnknownField, "thickness expression references unknown field %q: %v", name, err)
			}
			fields[name] = vals
		}
		return spec.Expr.Eval(fields, n), nil
	}
	return nil, errf(ParseError, "unrecognized thickness kind")
}
