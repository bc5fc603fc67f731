// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

// Validate checks, before any evaluation begins, that every material and
// datum referenced by the plan exists and that every datum names a base
// field. It does not consult the mesh: on success it returns the
// deduplicated set of cell field names (condition fields, datum bases and
// thickness expression fields) the orchestrator must materialize, and the
// orchestrator reports any of them that cannot be resolved.
func Validate(plan *LaminatePlan, matdb MaterialDB) (requiredFields []string, err error) {
	seen := map[string]struct{}{}
	add := func(name string) { seen[name] = struct{}{} }

	// every datum's base field must be resolvable, and the datum itself
	// must be self-consistent (already enforced at construction time).
	for name, d := range plan.Datums {
		if d.Base == "" {
			return nil, errf(InvalidDatum, "datum %q has no base field", name)
		}
		add(d.Base)
	}

	for _, p := range plan.Plies {
		if _, ok := matdb[p.Mat]; !ok {
			return nil, errf(UnknownMaterial, "ply %d (parent=%q, key=%d) references unknown material %q", p.DefIndex, p.Parent, p.Key, p.Mat)
		}

		for _, c := range p.Conditions {
			add(c.Field)
			if c.Operand.Kind == OperandDatum {
				if _, ok := plan.Datums[c.Operand.DatumName]; !ok {
					return nil, errf(UnknownDatum, "ply %d (parent=%q, key=%d) condition references unknown datum %q", p.DefIndex, p.Parent, p.Key, c.Operand.DatumName)
				}
			}
		}

		switch p.Thickness.Kind {
		case ThicknessDatum:
			if _, ok := plan.Datums[p.Thickness.DatumName]; !ok {
				return nil, errf(UnknownDatum, "ply %d (parent=%q, key=%d) thickness references unknown datum %q", p.DefIndex, p.Parent, p.Key, p.Thickness.DatumName)
			}
		case ThicknessExpression:
			for _, f := range p.Thickness.Fields() {
				add(f)
			}
		}
	}

	requiredFields = make([]string, 0, len(seen))
	for name := range seen {
		requiredFields = append(requiredFields, name)
	}
	return requiredFields, nil
}
