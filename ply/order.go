// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"fmt"
	"sort"
)

// plyOrder sorts plies by the composite key (Key ascending, DefIndex
// ascending), grounded on the same sort.Interface-over-a-slice idiom the
// teacher uses to order essential boundary conditions deterministically
// across processors.
type plyOrder []*Ply

func (o plyOrder) Len() int      { return len(o) }
func (o plyOrder) Swap(i, j int) { o[i], o[j] = o[j], o[i] }
func (o plyOrder) Less(i, j int) bool {
	if o[i].Key != o[j].Key {
		return o[i].Key < o[j].Key
	}
	return o[i].DefIndex < o[j].DefIndex
}

// OrderedPly is a Ply placed at its final, 1-based sequence index together
// with the output field names it will occupy.
type OrderedPly struct {
	*Ply
	Index          int // 1-based rank under (Key, DefIndex)
	MaterialField  string
	AngleField     string
	ThicknessField string
}

// Order sorts plies (stable) and assigns sequential field names. It fails
// with DuplicatePlyName if two plies would produce identical output names.
func Order(plies []*Ply) ([]OrderedPly, error) {
	sorted := make(plyOrder, len(plies))
	copy(sorted, plies)
	sort.Stable(sorted)

	out := make([]OrderedPly, len(sorted))
	seen := make(map[string]int, len(sorted))
	for i, p := range sorted {
		idx := i + 1
		base := fmt.Sprintf("ply_%06d_%s_%d", idx, p.Parent, p.Key)
		matField := base + "_material"
		if prev, ok := seen[matField]; ok {
			return nil, errf(DuplicatePlyName, "plies %d and %d both produce field name %q", prev, idx, matField)
		}
		seen[matField] = idx
		out[i] = OrderedPly{
			Ply:            p,
			Index:          idx,
			MaterialField:  matField,
			AngleField:     base + "_angle",
			ThicknessField: base + "_thickness",
		}
	}
	return out, nil
}
