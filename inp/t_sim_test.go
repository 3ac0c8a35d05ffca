// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01")

	msh := ReadMsh("data", "cell2d.msh")
	if msh == nil {
		tst.Errorf("cannot read mesh file\n")
		return
	}
	io.Pforan("msh = %v\n", msh)
	chk.IntAssert(msh.Ndim, 2)
	chk.IntAssert(len(msh.Verts), 4)
	chk.Scalar(tst, "xmin", 1e-17, msh.Xmin, 0)
	chk.Scalar(tst, "xmax", 1e-17, msh.Xmax, 1)
	chk.Scalar(tst, "ymax", 1e-17, msh.Ymax, 1)

	coors := msh.Coords()
	chk.IntAssert(len(coors), 4)
	chk.Vector(tst, "coors2", 1e-17, coors[2], []float64{1, 1})
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01")

	sim := ReadSim("data/elast2d.hom", "", false)
	io.Pforan("key = %v\n", sim.Key)
	chk.StrAssert(sim.Key, "elast2d")
	chk.StrAssert(sim.EncType, "gob")
	chk.IntAssert(sim.Ndim, 2)
	chk.IntAssert(len(sim.Coefficients), 5)

	// variable defaults
	pi1 := sim.GetVarData("Pi1")
	chk.StrAssert(pi1.Primary, "u")
	chk.IntAssert(pi1.Nnod, 4)
	chk.IntAssert(pi1.Ncomp, 2)
	one := sim.GetVarData("One")
	chk.StrAssert(one.Primary, "p")
	chk.IntAssert(one.Nnod, 8)
	chk.IntAssert(one.Ncomp, 1)
	if sim.GetVarData("nonexistent") != nil {
		tst.Errorf("lookup of nonexistent variable must return nil\n")
	}

	// coefficient definitions
	cf := sim.Coefficients[2]
	chk.StrAssert(cf.Name, "E")
	chk.StrAssert(cf.Kind, "sym-sym")
	chk.IntAssert(len(cf.Requires), 2)

	// time control
	times := sim.Control.OutTimes()
	io.Pforan("times = %v\n", times)
	chk.Vector(tst, "times", 1e-15, times, []float64{0, 0.25, 0.5, 0.75, 1})
}

func Test_func01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("func01")

	sim := ReadSim("data/elast2d.hom", "", false)
	f := sim.Functions.Get("dtcte")
	if f == nil {
		tst.Errorf("cannot get function dtcte\n")
		return
	}
	chk.Scalar(tst, "dt", 1e-17, f.F(0, nil), 0.25)
	chk.Scalar(tst, "dt@t=1", 1e-17, f.F(1, nil), 0.25)
	if sim.Functions.Get("nonexistent") != nil {
		tst.Errorf("lookup of nonexistent function must return nil\n")
	}
}
