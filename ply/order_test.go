// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_order01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("order01. stable ordering with equal keys (S4)")

	a := &Ply{Parent: "p", Key: 5, DefIndex: 0}
	b := &Ply{Parent: "p", Key: 5, DefIndex: 1}

	ordered, err := Order([]*Ply{a, b})
	if err != nil {
		tst.Errorf("Order failed: %v", err)
		return
	}
	if ordered[0].Ply != a || ordered[1].Ply != b {
		tst.Errorf("expected A,B order; got defindex %d,%d", ordered[0].DefIndex, ordered[1].DefIndex)
	}

	// swap definition order
	a.DefIndex, b.DefIndex = 1, 0
	ordered, err = Order([]*Ply{b, a})
	if err != nil {
		tst.Errorf("Order failed: %v", err)
		return
	}
	if ordered[0].Ply != b || ordered[1].Ply != a {
		tst.Errorf("expected B,A order; got defindex %d,%d", ordered[0].DefIndex, ordered[1].DefIndex)
	}
}

func Test_order02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("order02. key ascending takes priority over definition index")

	a := &Ply{Parent: "p", Key: 2, DefIndex: 0}
	b := &Ply{Parent: "p", Key: 1, DefIndex: 1}

	ordered, err := Order([]*Ply{a, b})
	if err != nil {
		tst.Errorf("Order failed: %v", err)
		return
	}
	if ordered[0].Ply != b || ordered[1].Ply != a {
		tst.Errorf("expected key=1 ply first")
	}
	if ordered[0].Index != 1 || ordered[1].Index != 2 {
		tst.Errorf("expected sequential 1-based indices")
	}
}

func Test_order04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("order04. reordering plies without changing relative (key, defindex) is a no-op (invariant 7)")

	a := &Ply{Parent: "p", Key: 1, DefIndex: 0}
	b := &Ply{Parent: "p", Key: 2, DefIndex: 1}
	c := &Ply{Parent: "p", Key: 3, DefIndex: 2}

	o1, err := Order([]*Ply{a, b, c})
	if err != nil {
		tst.Errorf("Order failed: %v", err)
		return
	}
	// present them to Order in a different slice order; DefIndex (their
	// fixed position in the plan) is what the tie-break and name generation
	// actually key off, so the result must be identical.
	o2, err := Order([]*Ply{c, a, b})
	if err != nil {
		tst.Errorf("Order failed: %v", err)
		return
	}
	for i := range o1 {
		if o1[i].Ply != o2[i].Ply || o1[i].MaterialField != o2[i].MaterialField {
			tst.Errorf("reordering the input slice changed the outcome at rank %d", i)
		}
	}
}
