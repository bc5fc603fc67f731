// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_condition01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("condition01. in_range selects a band")

	mesh := newFakeMesh(3)
	mesh.SetCellField("r", []float64{0, 1, 2})

	cond := Condition{
		Field:    "r",
		Operator: InRange,
		Operand:  Operand{Kind: OperandRange, Lo: 0.5, Hi: 1.5},
	}
	mask, err := EvalCondition(mesh, nil, cond)
	if err != nil {
		tst.Errorf("EvalCondition failed: %v", err)
		return
	}
	if mask[0] || !mask[1] || mask[2] {
		tst.Errorf("mask = %v, want [F T F]", mask)
	}
}

func Test_condition02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("condition02. boundary [a,a] selects exact equality")

	mesh := newFakeMesh(3)
	mesh.SetCellField("r", []float64{0, 1, 2})

	cond := Condition{
		Field:    "r",
		Operator: InRange,
		Operand:  Operand{Kind: OperandRange, Lo: 1, Hi: 1},
	}
	mask, err := EvalCondition(mesh, nil, cond)
	if err != nil {
		tst.Errorf("EvalCondition failed: %v", err)
		return
	}
	if mask[0] || !mask[1] || mask[2] {
		tst.Errorf("mask = %v, want [F T F]", mask)
	}
}

func Test_condition03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("condition03. datum operand (S5)")

	mesh := newFakeMesh(3)
	mesh.SetCellField("r", []float64{0, 1, 2})
	mesh.SetCellField("distance_from_te", []float64{0.05, 0.25, 0.15})

	te, err := NewDatum("te", "r", []Sample{{0, 0.1}, {2, 0.2}})
	if err != nil {
		tst.Errorf("NewDatum failed: %v", err)
		return
	}
	datums := map[string]*Datum{"te": te}

	cond := Condition{
		Field:    "distance_from_te",
		Operator: Gt,
		Operand:  Operand{Kind: OperandDatum, DatumName: "te"},
	}
	mask, err := EvalCondition(mesh, datums, cond)
	if err != nil {
		tst.Errorf("EvalCondition failed: %v", err)
		return
	}
	if mask[0] || !mask[1] || mask[2] {
		tst.Errorf("mask = %v, want [F T F]", mask)
	}
}

func Test_condition04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("condition04. arity mismatches are rejected")

	mesh := newFakeMesh(2)
	mesh.SetCellField("r", []float64{0, 1})

	_, err := EvalCondition(mesh, nil, Condition{
		Field:    "r",
		Operator: InRange,
		Operand:  Operand{Kind: OperandScalar, Scalar: 1},
	})
	if err == nil {
		tst.Errorf("expected OperandArityMismatch")
	}

	_, err = EvalCondition(mesh, nil, Condition{
		Field:    "r",
		Operator: Gt,
		Operand:  Operand{Kind: OperandRange, Lo: 0, Hi: 1},
	})
	if err == nil {
		tst.Errorf("expected OperandArityMismatch")
	}
}

func Test_condition05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("condition05. unknown field and unknown datum")

	mesh := newFakeMesh(2)
	_, err := EvalCondition(mesh, nil, Condition{Field: "missing", Operator: Lt, Operand: Operand{Kind: OperandScalar, Scalar: 1}})
	if err == nil {
		tst.Errorf("expected UnknownField")
	}

	mesh.SetCellField("r", []float64{0, 1})
	_, err = EvalCondition(mesh, map[string]*Datum{}, Condition{
		Field:    "r",
		Operator: Gt,
		Operand:  Operand{Kind: OperandDatum, DatumName: "nope"},
	})
	if err == nil {
		tst.Errorf("expected UnknownDatum")
	}
}
