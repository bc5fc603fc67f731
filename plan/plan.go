// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan decodes the on-disk laminate plan and material database
// documents into the core ply package's data model: read the whole file,
// decode once, build the derived lookup structures.
package plan

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/bladedrape/drape/diag"
	"github.com/bladedrape/drape/ply"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// conditionDoc mirrors the laminate plan schema's condition entry.
type conditionDoc struct {
	Field    string      `yaml:"field" json:"field"`
	Operator string      `yaml:"operator" json:"operator"`
	Operand  interface{} `yaml:"operand" json:"operand"`
}

// plyDoc mirrors one entry of the laminate plan's plies sequence.
type plyDoc struct {
	Mat        string         `yaml:"mat" json:"mat"`
	Angle      float64        `yaml:"angle" json:"angle"`
	Thickness  interface{}    `yaml:"thickness" json:"thickness"`
	Parent     string         `yaml:"parent" json:"parent"`
	Conditions []conditionDoc `yaml:"conditions" json:"conditions"`
	Key        int            `yaml:"key" json:"key"`
}

// datumDoc mirrors one entry of the laminate plan's datums mapping.
type datumDoc struct {
	Base   string      `yaml:"base" json:"base"`
	Values [][]float64 `yaml:"values" json:"values"`
}

// document is the full on-disk laminate plan.
type document struct {
	Datums map[string]datumDoc `yaml:"datums" json:"datums"`
	Plies  []plyDoc            `yaml:"plies" json:"plies"`
}

// materialDoc mirrors one material database entry; only ID is used by the
// core, and unrecognized extra fields are simply ignored by the decoder.
type materialDoc struct {
	ID int `yaml:"id" json:"id"`
}

// Load reads a laminate plan document (YAML or JSON, chosen by extension)
// and resolves it into a *ply.LaminatePlan, disambiguating each ply's
// polymorphic thickness field: numeric literal -> Constant; string
// matching a declared datum name -> DatumRef (datum wins, logged in
// verbose mode if it would also have parsed as a formula); otherwise ->
// Expression.
func Load(dir, fn string, log diag.Logger) (*ply.LaminatePlan, error) {
	doc, err := decode[document](dir, fn)
	if err != nil {
		return nil, err
	}

	datums := make(map[string]*ply.Datum, len(doc.Datums))
	for name, d := range doc.Datums {
		samples := make([]ply.Sample, len(d.Values))
		for i, pair := range d.Values {
			if len(pair) != 2 {
				return nil, chk.Err("datum %q sample %d must be a [x,y] pair, got %v", name, i, pair)
			}
			samples[i] = ply.Sample{X: pair[0], Y: pair[1]}
		}
		datum, err := ply.NewDatum(name, d.Base, samples)
		if err != nil {
			return nil, err
		}
		datums[name] = datum
	}

	plies := make([]*ply.Ply, len(doc.Plies))
	for i, pd := range doc.Plies {
		conditions := make([]ply.Condition, len(pd.Conditions))
		for j, cd := range pd.Conditions {
			cond, err := resolveCondition(cd)
			if err != nil {
				return nil, err
			}
			conditions[j] = cond
		}

		thickness, err := resolveThickness(pd.Thickness, datums, log)
		if err != nil {
			return nil, err
		}

		plies[i] = &ply.Ply{
			Mat:        pd.Mat,
			Angle:      pd.Angle,
			Thickness:  thickness,
			Parent:     pd.Parent,
			Conditions: conditions,
			Key:        pd.Key,
			DefIndex:   i,
		}
	}

	return &ply.LaminatePlan{Datums: datums, Plies: plies}, nil
}

// LoadMaterials reads a material database document into a ply.MaterialDB.
func LoadMaterials(dir, fn string) (ply.MaterialDB, error) {
	raw, err := decode[map[string]materialDoc](dir, fn)
	if err != nil {
		return nil, err
	}
	matdb := make(ply.MaterialDB, len(raw))
	for name, m := range raw {
		matdb[name] = ply.MaterialRecord{ID: m.ID}
	}
	return matdb, nil
}

// decode reads fn (relative to dir) and unmarshals it as YAML or JSON
// depending on its extension (gosl/io.ReadFile followed by a single
// decode call).
func decode[T any](dir, fn string) (T, error) {
	var out T
	path := filepath.Join(dir, fn)
	b, err := io.ReadFile(path)
	if err != nil {
		return out, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(b, &out); err != nil {
			return out, chk.Err("cannot parse %q as JSON: %v", path, err)
		}
	default:
		if err := yaml.Unmarshal(b, &out); err != nil {
			return out, chk.Err("cannot parse %q as YAML: %v", path, err)
		}
	}
	return out, nil
}

func resolveCondition(cd conditionDoc) (ply.Condition, error) {
	op, err := ply.ParseOp(cd.Operator)
	if err != nil {
		return ply.Condition{}, err
	}
	operand, err := resolveOperand(cd.Operand)
	if err != nil {
		return ply.Condition{}, err
	}
	return ply.Condition{Field: cd.Field, Operator: op, Operand: operand}, nil
}

func resolveOperand(raw interface{}) (ply.Operand, error) {
	switch v := raw.(type) {
	case float64:
		return ply.Operand{Kind: ply.OperandScalar, Scalar: v}, nil
	case int:
		return ply.Operand{Kind: ply.OperandScalar, Scalar: float64(v)}, nil
	case string:
		return ply.Operand{Kind: ply.OperandDatum, DatumName: v}, nil
	case []interface{}:
		if len(v) != 2 {
			return ply.Operand{}, chk.Err("range operand must have exactly two elements, got %d", len(v))
		}
		lo, loOk := toFloat(v[0])
		hi, hiOk := toFloat(v[1])
		if !loOk || !hiOk {
			return ply.Operand{}, chk.Err("range operand elements must be numbers")
		}
		return ply.Operand{Kind: ply.OperandRange, Lo: lo, Hi: hi}, nil
	}
	return ply.Operand{}, chk.Err("unrecognized operand shape %T", raw)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// resolveThickness disambiguates the thickness document field.
func resolveThickness(raw interface{}, datums map[string]*ply.Datum, log diag.Logger) (ply.ThicknessSpec, error) {
	switch v := raw.(type) {
	case float64:
		return ply.ThicknessSpec{Kind: ply.ThicknessConstant, Value: v}, nil
	case int:
		return ply.ThicknessSpec{Kind: ply.ThicknessConstant, Value: float64(v)}, nil
	case string:
		if _, ok := datums[v]; ok {
			if expr, err := ply.ParseExpr(v); err == nil && len(expr.Fields()) > 0 {
				log.Warnf("thickness %q matches both a datum name and a parseable expression; the datum wins", v)
			}
			return ply.ThicknessSpec{Kind: ply.ThicknessDatum, DatumName: v}, nil
		}
		expr, err := ply.ParseExpr(v)
		if err != nil {
			return ply.ThicknessSpec{}, err
		}
		return ply.ThicknessSpec{Kind: ply.ThicknessExpression, Expr: expr}, nil
	}
	return ply.ThicknessSpec{}, chk.Err("unrecognized thickness shape %T", raw)
}
