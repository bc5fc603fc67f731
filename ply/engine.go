// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"runtime"
	"sync"
)

// Result is one ply's evaluated output: three per-cell arrays plus the
// combined mask used to aggregate total thickness.
type Result struct {
	Material  []float64 // material id where covered, 0 elsewhere
	Angle     []float64 // ply angle where covered, 0 elsewhere
	Thickness []float64 // thickness where covered, 0 elsewhere
	Mask      []bool
}

// EvaluatePly combines a ply's conditions into a single mask and produces
// its three output arrays. A ply with no conditions covers every cell.
func EvaluatePly(mesh Mesh, datums map[string]*Datum, matdb MaterialDB, p *Ply) (Result, error) {
	n := mesh.NumCells()
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = true
	}
	for _, cond := range p.Conditions {
		m, err := EvalCondition(mesh, datums, cond)
		if err != nil {
			return Result{}, err
		}
		for i := range mask {
			mask[i] = mask[i] && m[i]
		}
	}

	thickness, err := ResolveThickness(mesh, datums, p.Thickness)
	if err != nil {
		return Result{}, err
	}

	mat, ok := matdb[p.Mat]
	if !ok {
		return Result{}, errf(UnknownMaterial, "ply (parent=%q, key=%d) references unknown material %q", p.Parent, p.Key, p.Mat)
	}

	res := Result{
		Material:  make([]float64, n),
		Angle:     make([]float64, n),
		Thickness: make([]float64, n),
		Mask:      mask,
	}
	for i := 0; i < n; i++ {
		if mask[i] {
			res.Material[i] = float64(mat.ID)
			res.Angle[i] = p.Angle
			res.Thickness[i] = thickness[i]
		}
	}
	return res, nil
}

// EvaluateAll evaluates every ply, fanning out across a bounded worker pool
// sized to the host's CPU count (never more workers than plies). Each
// worker reads only from the shared, read-only mesh view and writes to its
// own slot in results; the mesh itself is never touched here. Order of
// results matches the order of plies, independent of scheduling order.
func EvaluateAll(mesh Mesh, datums map[string]*Datum, matdb MaterialDB, plies []*Ply) ([]Result, []error) {
	n := len(plies)
	results := make([]Result, n)
	errs := make([]error, n)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := EvaluatePly(mesh, datums, matdb, plies[i])
				results[i] = res
				errs[i] = err
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results, errs
}
