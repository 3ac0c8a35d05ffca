// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_fileio01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fileio01. save and read coefficient tensors")

	dirout := "/tmp/gohom/test"
	err := os.MkdirAll(dirout, 0777)
	if err != nil {
		tst.Errorf("cannot create %s: %v\n", dirout, err)
		return
	}

	c := [][]float64{{5, 8, 7}, {8, 13, 11}, {7, 11, 10}}
	for _, enctype := range []string{"gob", "json"} {
		err = SaveCoefMat(dirout, "fio01", enctype, "E", c, chk.Verbose)
		if err != nil {
			tst.Errorf("SaveCoefMat failed: %v\n", err)
			return
		}
		r, err := ReadCoefMat(dirout, "fio01", enctype, "E")
		if err != nil {
			tst.Errorf("ReadCoefMat failed: %v\n", err)
			return
		}
		for i := 0; i < 3; i++ {
			chk.Vector(tst, io.Sf("E[%d] (%s)", i, enctype), 1e-17, r[i], c[i])
		}
	}

	b := []float64{2, 4, 3}
	err = SaveCoefVec(dirout, "fio01", "gob", "B", b, chk.Verbose)
	if err != nil {
		tst.Errorf("SaveCoefVec failed: %v\n", err)
		return
	}
	r, err := ReadCoefVec(dirout, "fio01", "gob", "B")
	if err != nil {
		tst.Errorf("ReadCoefVec failed: %v\n", err)
		return
	}
	chk.Vector(tst, "B", 1e-17, r, b)
}

func Test_fileio02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fileio02. corrector files and the file engine")

	dirout := "/tmp/gohom/test"
	err := os.MkdirAll(dirout, 0777)
	if err != nil {
		tst.Errorf("cannot create %s: %v\n", dirout, err)
		return
	}

	c := NewCorrector("corrs_rs", 2, []*Variable{{"u", "u", 2, 1}})
	c.States[0][1][0] = 1
	c.States[0][1][1] = 2
	err = SaveCorrector(dirout, "fio02", "gob", c, chk.Verbose)
	if err != nil {
		tst.Errorf("SaveCorrector failed: %v\n", err)
		return
	}

	engine := &FileEngine{Dir: dirout, Fnkey: "fio02", EncType: "gob"}
	dom := testDomain()
	r, err := engine.Solve(dom, &CorrDimDim{"corrs_rs", []string{"pis"}, []string{"Pi1"}}, NewDeps())
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	chk.IntAssert(r.N, 2)
	chk.IntAssert(r.Ny, 2)
	chk.IntAssert(r.Indx["u"].A, 0)
	chk.IntAssert(r.Indx["u"].B, 2)
	chk.Vector(tst, "states(0,1)", 1e-17, r.States[0][1], []float64{1, 2})

	// missing file
	_, err = engine.Solve(dom, &CorrDimDim{"nonexistent", []string{"pis"}, []string{"Pi1"}}, NewDeps())
	if err == nil {
		tst.Errorf("Solve must fail for a missing corrector file\n")
	}
}
