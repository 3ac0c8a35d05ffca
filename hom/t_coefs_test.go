// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"testing"

	"github.com/cpmech/gohom/inp"

	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_symsym01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("symsym01. rank-4 substitution = pi + omega")

	// 2x2 index range, one primary variable "u" with 3 dofs
	dom := &Domain{
		Ndim:  2,
		Sym:   3,
		Pairs: SymPairs(2),
		Vars: map[string]*Variable{
			"u": {"u", "u", 3, 1},
			"v": {"v", "u", 3, 1},
		},
	}
	cor := NewCorrector("corrs_rs", 2, []*Variable{{"u", "u", 3, 1}})
	copy(cor.States[0][1], []float64{1, 2, 3})
	pis := NewPis("pis", 2, 3)
	copy(pis.Vals[0][1], []float64{0.1, 0.1, 0.1})
	dep := NewDeps()
	dep.SetField("pis", pis)
	dep.SetCorrector("corrs_rs", cor)

	ev := &CoefSymSym{"E", []string{"pis", "corrs_rs"}, []string{"u", "v"}}
	subs, err := ev.GetVariables(dom, 0, 1, dep, "row")
	if err != nil {
		tst.Errorf("GetVariables failed: %v\n", err)
		return
	}
	io.Pforan("subs = %v\n", subs)
	chk.IntAssert(len(subs), 1)
	chk.StrAssert(subs[0].Var, "u")
	chk.Vector(tst, "pi+omega", 1e-15, subs[0].Field, []float64{1.1, 2.1, 3.1})

	// mode "col" selects the second declared variable (same primary)
	subs, err = ev.GetVariables(dom, 0, 1, dep, "col")
	if err != nil {
		tst.Errorf("GetVariables failed: %v\n", err)
		return
	}
	chk.StrAssert(subs[0].Var, "v")
	chk.Vector(tst, "pi+omega col", 1e-15, subs[0].Field, []float64{1.1, 2.1, 3.1})
}

func Test_symsym02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("symsym02. algebraic invariant for every index pair")

	dom := &Domain{
		Ndim:  2,
		Sym:   3,
		Pairs: SymPairs(2),
		Vars: map[string]*Variable{
			"u": {"u", "u", 2, 1},
			"v": {"v", "u", 2, 1},
		},
	}
	cor := NewCorrector("corrs_rs", 2, []*Variable{{"u", "u", 2, 1}})
	pis := NewPis("pis", 2, 2)
	for ir := 0; ir < 2; ir++ {
		for ic := 0; ic < 2; ic++ {
			for i := 0; i < 2; i++ {
				cor.States[ir][ic][i] = float64(10*ir + ic + i)
				pis.Vals[ir][ic][i] = 0.5 * float64(ir-ic+i)
			}
		}
	}
	dep := NewDeps()
	dep.SetField("pis", pis)
	dep.SetCorrector("corrs_rs", cor)

	ev := &CoefSymSym{"E", []string{"pis", "corrs_rs"}, []string{"u", "v"}}
	for ir := 0; ir < 2; ir++ {
		for ic := 0; ic < 2; ic++ {
			for _, mode := range []string{"row", "col"} {
				subs, err := ev.GetVariables(dom, ir, ic, dep, mode)
				if err != nil {
					tst.Errorf("GetVariables failed: %v\n", err)
					return
				}
				expected := []float64{
					pis.Vals[ir][ic][0] + cor.States[ir][ic][0],
					pis.Vals[ir][ic][1] + cor.States[ir][ic][1],
				}
				chk.Vector(tst, io.Sf("field(%d,%d,%s)", ir, ic, mode), 1e-15, subs[0].Field, expected)
			}
		}
	}
}

func Test_symsym03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("symsym03. failures: missing dependency and bad mode")

	dom := &Domain{
		Ndim:  2,
		Sym:   3,
		Pairs: SymPairs(2),
		Vars: map[string]*Variable{
			"u": {"u", "u", 2, 1},
			"v": {"v", "u", 2, 1},
		},
	}
	ev := &CoefSymSym{"E", []string{"pis", "corrs_rs"}, []string{"u", "v"}}

	// missing perturbation field
	dep := NewDeps()
	dep.SetCorrector("corrs_rs", NewCorrector("corrs_rs", 2, []*Variable{{"u", "u", 2, 1}}))
	_, err := ev.GetVariables(dom, 0, 0, dep, "row")
	if err == nil {
		tst.Errorf("GetVariables must fail when a promised dependency is missing\n")
		return
	}
	if _, ok := err.(*MissingDependencyError); !ok {
		tst.Errorf("error must be MissingDependencyError. got: %v\n", err)
		return
	}
	io.Pforan("ok: %v\n", err)

	// missing corrector
	dep = NewDeps()
	dep.SetField("pis", NewPis("pis", 2, 2))
	_, err = ev.GetVariables(dom, 0, 0, dep, "row")
	if _, ok := err.(*MissingDependencyError); !ok {
		tst.Errorf("error must be MissingDependencyError. got: %v\n", err)
		return
	}

	// bad mode is a configuration error
	dep.SetCorrector("corrs_rs", NewCorrector("corrs_rs", 2, []*Variable{{"u", "u", 2, 1}}))
	_, err = ev.GetVariables(dom, 0, 0, dep, "diag")
	if _, ok := err.(*VariableLookupError); !ok {
		tst.Errorf("error must be VariableLookupError. got: %v\n", err)
		return
	}
	io.Pforan("ok: %v\n", err)

	// unknown macroscopic variable
	ev = &CoefSymSym{"E", []string{"pis", "corrs_rs"}, []string{"w", "v"}}
	_, err = ev.GetVariables(dom, 0, 0, dep, "row")
	if _, ok := err.(*VariableLookupError); !ok {
		tst.Errorf("error must be VariableLookupError. got: %v\n", err)
	}
}

func Test_biot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("biot01. constant probe and corrector response")

	dom := &Domain{
		Ndim:  2,
		Sym:   3,
		Pairs: SymPairs(2),
		Vars: map[string]*Variable{
			"One": {"One", "p", 4, 1},
			"Wp":  {"Wp", "u", 2, 1},
		},
	}
	cor := NewCorrector("corrs_rs", 2, []*Variable{{"u", "u", 2, 1}})
	cor.States[0][1][0] = 7
	cor.States[0][1][1] = 8
	dep := NewDeps()
	dep.SetCorrector("corrs_rs", cor)

	ev := &CoefSym{"B", []string{"corrs_rs"}, []string{"One", "Wp"}}

	// mode "col": all ones over the probe variable's node set, for any (ir,ic)
	for _, pair := range [][2]int{{0, 0}, {0, 1}, {1, 1}} {
		subs, err := ev.GetVariables(dom, pair[0], pair[1], dep, "col")
		if err != nil {
			tst.Errorf("GetVariables failed: %v\n", err)
			return
		}
		chk.IntAssert(len(subs), 1)
		chk.StrAssert(subs[0].Var, "One")
		chk.Vector(tst, io.Sf("one(%d,%d)", pair[0], pair[1]), 1e-17, subs[0].Field, []float64{1, 1, 1, 1})
	}

	// mode "row": bare corrector response (no perturbation superposed)
	subs, err := ev.GetVariables(dom, 0, 1, dep, "row")
	if err != nil {
		tst.Errorf("GetVariables failed: %v\n", err)
		return
	}
	chk.StrAssert(subs[0].Var, "Wp")
	chk.Vector(tst, "omega", 1e-17, subs[0].Field, []float64{7, 8})

	// the row field changes only when the underlying state changes
	cor.States[0][1][1] = 9
	subs, err = ev.GetVariables(dom, 0, 1, dep, "row")
	if err != nil {
		tst.Errorf("GetVariables failed: %v\n", err)
		return
	}
	chk.Vector(tst, "omega changed", 1e-17, subs[0].Field, []float64{7, 9})

	// bad mode is a configuration error
	_, err = ev.GetVariables(dom, 0, 0, dep, "middle")
	if _, ok := err.(*VariableLookupError); !ok {
		tst.Errorf("error must be VariableLookupError. got: %v\n", err)
		return
	}

	// missing corrector
	_, err = ev.GetVariables(dom, 0, 0, NewDeps(), "row")
	if _, ok := err.(*MissingDependencyError); !ok {
		tst.Errorf("error must be MissingDependencyError. got: %v\n", err)
	}
}

func Test_corrdd01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("corrdd01. corrector feed yields the perturbation mode")

	dom := testDomain()
	pis := NewPis("pis", 2, 3)
	copy(pis.Vals[1][1], []float64{1, 0, 1})
	dep := NewDeps()
	dep.SetField("pis", pis)

	ev := &CorrDimDim{"corrs_rs", []string{"pis"}, []string{"Pi1"}}
	subs, err := ev.GetVariables(dom, 1, 1, dep, "")
	if err != nil {
		tst.Errorf("GetVariables failed: %v\n", err)
		return
	}
	chk.IntAssert(len(subs), 1)
	chk.StrAssert(subs[0].Var, "Pi1")
	chk.Vector(tst, "pi", 1e-17, subs[0].Field, []float64{1, 0, 1})

	// missing perturbation field
	_, err = ev.GetVariables(dom, 1, 1, NewDeps(), "")
	if _, ok := err.(*MissingDependencyError); !ok {
		tst.Errorf("error must be MissingDependencyError. got: %v\n", err)
	}
}

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01. unit strain modes from cell coordinates")

	dom := testDomain()
	ev := &ShapeDimDim{"pis", []string{"Pi1"}}
	pis, err := ev.BuildPis(dom)
	if err != nil {
		tst.Errorf("BuildPis failed: %v\n", err)
		return
	}
	chk.IntAssert(pis.N, 2)

	// pair (0,1): component 1 of node n equals x-coordinate of node n
	// cell: (0,0) (1,0) (1,1) (0,1)
	chk.Vector(tst, "pi(0,1)", 1e-17, pis.Vals[0][1], []float64{0, 0, 0, 1, 0, 1, 0, 0})

	// pair (1,0): component 0 of node n equals y-coordinate of node n
	chk.Vector(tst, "pi(1,0)", 1e-17, pis.Vals[1][0], []float64{0, 0, 0, 0, 1, 0, 1, 0})

	// pair (0,0): component 0 of node n equals x-coordinate of node n
	chk.Vector(tst, "pi(0,0)", 1e-17, pis.Vals[0][0], []float64{0, 0, 1, 0, 1, 0, 0, 0})

	// GetVariables agrees with the assembled field
	subs, err := ev.GetVariables(dom, 0, 1, nil, "")
	if err != nil {
		tst.Errorf("GetVariables failed: %v\n", err)
		return
	}
	chk.StrAssert(subs[0].Var, "Pi1")
	chk.Vector(tst, "pi(0,1) again", 1e-17, subs[0].Field, pis.Vals[0][1])

	// a scalar variable cannot hold unit strain modes
	ev = &ShapeDimDim{"pis", []string{"One"}}
	_, err = ev.BuildPis(dom)
	if _, ok := err.(*VariableLookupError); !ok {
		tst.Errorf("error must be VariableLookupError. got: %v\n", err)
	}
}

func Test_times01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("times01. time stations from the time control")

	dom := testDomain()
	dom.Sim = &inp.Simulation{
		Control: inp.TimeControl{Tf: 1, Dt: 0.5, DtFunc: &fun.Cte{C: 0.5}},
	}
	ev := &TSTimes{"times", nil}
	subs, err := ev.GetVariables(dom, 0, 0, nil, "")
	if err != nil {
		tst.Errorf("GetVariables failed: %v\n", err)
		return
	}
	chk.StrAssert(subs[0].Var, "t")
	chk.Vector(tst, "times", 1e-15, subs[0].Field, []float64{0, 0.5, 1})
}
