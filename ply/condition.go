// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

// Op is a condition operator. Modeled as a small tagged enum mapped once,
// at plan-load time, from the runtime-typed operator token found in the
// laminate plan document (see the plan package).
type Op int

const (
	Lt Op = iota
	Le
	Gt
	Ge
	Eq // exact float64 equality, no tolerance: fragile on computed fields
	Ne // exact float64 inequality, no tolerance
	InRange
	NotInRange
)

// opNames maps the plan document's operator tokens to Op values.
var opNames = map[string]Op{
	"<":            Lt,
	"lt":           Lt,
	"<=":           Le,
	"le":           Le,
	">":            Gt,
	"gt":           Gt,
	">=":           Ge,
	"ge":           Ge,
	"==":           Eq,
	"eq":           Eq,
	"!=":           Ne,
	"ne":           Ne,
	"in_range":     InRange,
	"not_in_range": NotInRange,
}

// ParseOp resolves an operator token to an Op, or UnknownOperator.
func ParseOp(token string) (Op, error) {
	op, ok := opNames[token]
	if !ok {
		return 0, errf(UnknownOperator, "unrecognized operator %q", token)
	}
	return op, nil
}

func (op Op) isRange() bool {
	return op == InRange || op == NotInRange
}

// OperandKind distinguishes the three legal shapes of a Condition's operand.
type OperandKind int

const (
	OperandScalar OperandKind = iota
	OperandRange
	OperandDatum
)

// Operand is a tagged variant: exactly one of Scalar, [Lo,Hi], or Datum
// is meaningful, selected by Kind.
type Operand struct {
	Kind      OperandKind
	Scalar    float64
	Lo, Hi    float64
	DatumName string
}

// Condition is a single predicate over a named cell field.
type Condition struct {
	Field    string
	Operator Op
	Operand  Operand
}

// EvalCondition resolves the condition's field and operand against mesh and
// datums, and returns the elementwise boolean mask.
func EvalCondition(mesh Mesh, datums map[string]*Datum, cond Condition) ([]bool, error) {
	lhs, err := mesh.CellField(cond.Field)
	if err != nil {
		return nil, errf(UnknownField, "condition references unknown field %q: %v", cond.Field, err)
	}

	if cond.Operator.isRange() && cond.Operand.Kind != OperandRange {
		return nil, errf(OperandArityMismatch, "operator requires a [lo,hi] operand but got a scalar or datum")
	}
	if !cond.Operator.isRange() && cond.Operand.Kind == OperandRange {
		return nil, errf(OperandArityMismatch, "operator does not accept a [lo,hi] operand")
	}

	switch cond.Operand.Kind {
	case OperandScalar:
		return applyScalarOp(cond.Operator, lhs, cond.Operand.Scalar)
	case OperandRange:
		return applyRangeOp(cond.Operator, lhs, cond.Operand.Lo, cond.Operand.Hi)
	case OperandDatum:
		d, ok := datums[cond.Operand.DatumName]
		if !ok {
			return nil, errf(UnknownDatum, "condition references unknown datum %q", cond.Operand.DatumName)
		}
		base, err := mesh.CellField(d.Base)
		if err != nil {
			return nil, errf(UnknownField, "datum %q base field %q unavailable: %v", d.Name, d.Base, err)
		}
		rhs := d.Interpolate(base)
		return applyVectorOp(cond.Operator, lhs, rhs)
	}
	return nil, errf(OperandArityMismatch, "unrecognized operand kind")
}

func applyScalarOp(op Op, lhs []float64, v float64) ([]bool, error) {
	mask := make([]bool, len(lhs))
	var f func(a float64) bool
	switch op {
	case Lt:
		f = func(a float64) bool { return a < v }
	case Le:
		f = func(a float64) bool { return a <= v }
	case Gt:
		f = func(a float64) bool { return a > v }
	case Ge:
		f = func(a float64) bool { return a >= v }
	case Eq:
		f = func(a float64) bool { return a == v }
	case Ne:
		f = func(a float64) bool { return a != v }
	default:
		return nil, errf(UnknownOperator, "operator %v cannot be applied to a scalar operand", op)
	}
	for i, a := range lhs {
		mask[i] = f(a)
	}
	return mask, nil
}

func applyRangeOp(op Op, lhs []float64, lo, hi float64) ([]bool, error) {
	mask := make([]bool, len(lhs))
	switch op {
	case InRange:
		for i, a := range lhs {
			mask[i] = a >= lo && a <= hi
		}
	case NotInRange:
		for i, a := range lhs {
			mask[i] = !(a >= lo && a <= hi)
		}
	default:
		return nil, errf(OperandArityMismatch, "operator %v cannot be applied to a range operand", op)
	}
	return mask, nil
}

func applyVectorOp(op Op, lhs, rhs []float64) ([]bool, error) {
	mask := make([]bool, len(lhs))
	var f func(a, b float64) bool
	switch op {
	case Lt:
		f = func(a, b float64) bool { return a < b }
	case Le:
		f = func(a, b float64) bool { return a <= b }
	case Gt:
		f = func(a, b float64) bool { return a > b }
	case Ge:
		f = func(a, b float64) bool { return a >= b }
	case Eq:
		f = func(a, b float64) bool { return a == b }
	case Ne:
		f = func(a, b float64) bool { return a != b }
	default:
		return nil, errf(UnknownOperator, "operator %v cannot be applied to a datum operand", op)
	}
	for i := range lhs {
		mask[i] = f(lhs[i], rhs[i])
	}
	return mask, nil
}
