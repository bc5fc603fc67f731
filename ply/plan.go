// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

// Ply is a single oriented layer of composite material, covering the
// subset of cells selected by the conjunction of its Conditions.
type Ply struct {
	Mat        string
	Angle      float64
	Thickness  ThicknessSpec
	Parent     string
	Conditions []Condition
	Key        int

	// DefIndex is this ply's position in the plan's original Plies slice,
	// the tie-breaker for the (Key, DefIndex) ordering.
	DefIndex int
}

// LaminatePlan is the declarative description of all plies and the datums
// they may reference.
type LaminatePlan struct {
	Datums map[string]*Datum
	Plies  []*Ply
}

// MaterialRecord is the part of a material database entry the core cares
// about: its identity.
type MaterialRecord struct {
	ID int
}

// MaterialDB is a finite mapping from material name to record.
type MaterialDB map[string]MaterialRecord
