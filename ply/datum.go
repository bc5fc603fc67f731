// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import "sort"

// Sample is one (x, y) point of a Datum's piecewise-linear curve.
type Sample struct {
	X, Y float64
}

// Datum is a named 1-D function of a base field, given as ordered sample
// points and evaluated by linear interpolation with clamp-to-endpoint
// extrapolation.
type Datum struct {
	Name    string
	Base    string // field name the datum is queried against
	Samples []Sample
}

// NewDatum validates and builds a Datum. Samples must be strictly
// increasing in X and there must be at least two of them.
func NewDatum(name, base string, samples []Sample) (*Datum, error) {
	if len(samples) < 2 {
		return nil, errf(InvalidDatum, "datum %q needs at least two samples; got %d", name, len(samples))
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].X <= samples[i-1].X {
			return nil, errf(InvalidDatum, "datum %q samples must be strictly increasing in x; sample %d (x=%g) does not exceed sample %d (x=%g)",
				name, i, samples[i].X, i-1, samples[i-1].X)
		}
	}
	return &Datum{Name: name, Base: base, Samples: samples}, nil
}

// Interpolate evaluates the datum at every element of q, clamping queries
// outside [x0, xm-1] to the corresponding endpoint value.
func (d *Datum) Interpolate(q []float64) []float64 {
	out := make([]float64, len(q))
	for i, x := range q {
		out[i] = d.at(x)
	}
	return out
}

func (d *Datum) at(x float64) float64 {
	n := len(d.Samples)
	if x <= d.Samples[0].X {
		return d.Samples[0].Y
	}
	if x >= d.Samples[n-1].X {
		return d.Samples[n-1].Y
	}
	// binary search for the bracketing interval: first index whose X exceeds x
	j := sort.Search(n, func(i int) bool { return d.Samples[i].X > x })
	lo, hi := d.Samples[j-1], d.Samples[j]
	t := (x - lo.X) / (hi.X - lo.X)
	return lo.Y + t*(hi.Y-lo.Y)
}
