// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_validate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("validate01. required fields are deduplicated")

	d, err := NewDatum("te", "r", []Sample{{0, 0.1}, {2, 0.2}})
	if err != nil {
		tst.Errorf("NewDatum failed: %v", err)
		return
	}
	plan := &LaminatePlan{
		Datums: map[string]*Datum{"te": d},
		Plies: []*Ply{
			{Mat: "carbon", Thickness: ThicknessSpec{Kind: ThicknessConstant, Value: 1},
				Conditions: []Condition{
					{Field: "r", Operator: Gt, Operand: Operand{Kind: OperandScalar, Scalar: 0}},
					{Field: "r", Operator: Lt, Operand: Operand{Kind: OperandScalar, Scalar: 10}},
				}},
		},
	}
	matdb := MaterialDB{"carbon": {ID: 1}}

	fields, err := Validate(plan, matdb)
	if err != nil {
		tst.Errorf("Validate failed: %v", err)
		return
	}
	sort.Strings(fields)
	chk.Strings(tst, "required fields", fields, []string{"r"})
}

func Test_validate02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("validate02. unknown datum on a condition is rejected")

	plan := &LaminatePlan{
		Plies: []*Ply{
			{Mat: "carbon", Thickness: ThicknessSpec{Kind: ThicknessConstant, Value: 1},
				Conditions: []Condition{{Field: "r", Operator: Gt, Operand: Operand{Kind: OperandDatum, DatumName: "missing"}}}},
		},
	}
	matdb := MaterialDB{"carbon": {ID: 1}}

	_, err := Validate(plan, matdb)
	if err == nil {
		tst.Errorf("expected UnknownDatum")
		return
	}
	if perr, ok := err.(*Error); !ok || perr.Kind != UnknownDatum {
		tst.Errorf("expected UnknownDatum, got %v", err)
	}
}
