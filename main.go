// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gohom/hom"
	"github.com/cpmech/gohom/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".hom", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	saveResults := io.ArgToBool(3, true)
	alias := io.ArgToString(4, "")

	// message
	if verbose {
		io.PfWhite("\nGohom v1 -- Homogenized Coefficients from Periodic Unit Cells\n\n")
		io.Pf("\n%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"save results to files", "saveResults", saveResults,
			"word to add to results", "alias", alias,
		))
	}

	// input data
	sim := inp.ReadSim(fnamepath, alias, erasePrev)
	if verbose {
		io.Pf("%v\n", sim.Msh)
	}

	// problem context with the reference integration engine
	dom := hom.NewDomain(sim, &hom.Lumped{})

	// corrector files are produced by the external unit-cell solver and live
	// next to the input file
	engine := &hom.FileEngine{
		Dir:     filepath.Dir(fnamepath),
		Fnkey:   sim.Key,
		EncType: sim.EncType,
	}

	// evaluators
	var evs []hom.Evaluator
	var names []string
	for _, cf := range sim.Coefficients {
		ev, err := hom.NewEvaluator(cf)
		if err != nil {
			chk.Panic("cannot allocate coefficient evaluator:\n%v", err)
		}
		evs = append(evs, ev)
		names = append(names, cf.Name)
	}

	// resolve dependencies and compute all declared coefficients
	res := hom.NewResolver(dom, engine, evs)
	deps, err := res.Resolve(names)
	if err != nil {
		chk.Panic("computation of homogenized coefficients failed:\n%v", err)
	}

	// report and save
	for _, cf := range sim.Coefficients {
		switch cf.Kind {
		case "sym-sym":
			c, err := deps.Tensor(cf.Name)
			if err != nil {
				chk.Panic("cannot get computed tensor:\n%v", err)
			}
			if verbose {
				io.Pf("\n")
				la.PrintMat(cf.Name, c, "%13.8f", false)
			}
			if saveResults && cf.Save {
				err = hom.SaveCoefMat(sim.DirOut, sim.Key, sim.EncType, cf.Name, c, verbose)
				if err != nil {
					chk.Panic("cannot save coefficient %q:\n%v", cf.Name, err)
				}
			}
		case "sym", "ts-times":
			c, err := deps.Array(cf.Name)
			if err != nil {
				chk.Panic("cannot get computed array:\n%v", err)
			}
			if verbose {
				io.Pf("\n")
				la.PrintVec(cf.Name, c, "%13.8f", false)
			}
			if saveResults && cf.Save {
				err = hom.SaveCoefVec(sim.DirOut, sim.Key, sim.EncType, cf.Name, c, verbose)
				if err != nil {
					chk.Panic("cannot save coefficient %q:\n%v", cf.Name, err)
				}
			}
		}
	}
	if verbose {
		io.Pfgreen("\ndone\n")
	}
}
