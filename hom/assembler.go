// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// ComputeSymSym assembles a sym×sym homogenized tensor. Only index pairs with
// irs ≤ ics are integrated; each value is mirrored into the transposed entry
// (major symmetry). The first error aborts the whole computation; no partial
// tensor is ever returned.
func ComputeSymSym(dom *Domain, ev Evaluator, dep *Deps) (c [][]float64, err error) {
	if dom.Integ == nil {
		return nil, chk.Err("coefficient %q needs an integration engine", ev.Name())
	}
	c = la.MatAlloc(dom.Sym, dom.Sym)
	for irs := 0; irs < dom.Sym; irs++ {
		pr := dom.Pairs[irs]
		for ics := irs; ics < dom.Sym; ics++ {
			pc := dom.Pairs[ics]
			row, e := ev.GetVariables(dom, pr[0], pr[1], dep, "row")
			if e != nil {
				return nil, e
			}
			col, e := ev.GetVariables(dom, pc[0], pc[1], dep, "col")
			if e != nil {
				return nil, e
			}
			val, e := dom.Integ.Integral(append(row, col...))
			if e != nil {
				return nil, e
			}
			c[irs][ics] = val
			c[ics][irs] = val
		}
	}
	return
}

// ComputeSym assembles a symmetric rank-2 tensor coefficient as a sym vector
func ComputeSym(dom *Domain, ev Evaluator, dep *Deps) (c []float64, err error) {
	if dom.Integ == nil {
		return nil, chk.Err("coefficient %q needs an integration engine", ev.Name())
	}
	c = make([]float64, dom.Sym)
	for is := 0; is < dom.Sym; is++ {
		p := dom.Pairs[is]
		row, e := ev.GetVariables(dom, p[0], p[1], dep, "row")
		if e != nil {
			return nil, e
		}
		col, e := ev.GetVariables(dom, p[0], p[1], dep, "col")
		if e != nil {
			return nil, e
		}
		c[is], e = dom.Integ.Integral(append(row, col...))
		if e != nil {
			return nil, e
		}
	}
	return
}
