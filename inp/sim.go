// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.hom) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for homogenization runs
type Data struct {

	// global information
	Desc    string `json:"desc"`    // description of homogenization run
	Mshfile string `json:"mshfile"` // file path of file with unit-cell mesh data
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gohom
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"
}

// FuncData holds function definition
type FuncData struct {
	Name string   `json:"name"` // name of function. ex: dtgrowth
	Type string   `json:"type"` // type of function. ex: cte
	Prms fun.Params `json:"prms"` // parameters
}

// FuncsData holds all function definitions
type FuncsData []*FuncData

// Get returns the function named name
//
//	Note: returns nil if not found
func (o FuncsData) Get(name string) fun.T {
	for _, d := range o {
		if d.Name == name {
			switch d.Type {
			case "cte":
				c := 0.0
				for _, p := range d.Prms {
					if p.N == "c" {
						c = p.V
					}
				}
				return &fun.Cte{C: c}
			default:
				chk.Panic("cannot handle function type %q of function %q", d.Type, d.Name)
			}
		}
	}
	return nil
}

// VarData holds the definition of one variable of the microscale problem
type VarData struct {
	Name    string `json:"name"`    // variable name; e.g. "Pi1"
	Primary string `json:"primary"` // primary variable name; e.g. "u"; empty => variable is itself primary
	Nnod    int    `json:"nnod"`    // number of nodes of the variable's field; 0 => use number of mesh vertices
	Ncomp   int    `json:"ncomp"`   // number of components per node; 0 => 1
}

// CoefData holds the definition of one homogenized coefficient or corrector
type CoefData struct {
	Name      string   `json:"name"`      // name; e.g. "E", "corrs_rs"
	Kind      string   `json:"kind"`      // evaluator kind; e.g. "sym-sym", "sym", "corr-dim-dim", "shape-dim-dim", "ts-times"
	Requires  []string `json:"requires"`  // dependency names, ordered and unique
	Variables []string `json:"variables"` // declared variable names, ordered
	Save      bool     `json:"save"`      // save result to file after computing
}

// TimeControl holds data for defining the corrector time stepping
type TimeControl struct {
	Tf    float64 `json:"tf"`    // final time; 0 => steady problem
	Dt    float64 `json:"dt"`    // time step size (if constant)
	DtFcn string  `json:"dtfcn"` // time step size (function name)

	// derived
	DtFunc fun.T // time step function
}

// OutTimes returns the sequence of output times t0=0, t1, ..., tn=Tf
func (o *TimeControl) OutTimes() (times []float64) {
	if o.Tf <= 0 {
		return
	}
	t := 0.0
	times = append(times, t)
	for t < o.Tf {
		Δt := o.DtFunc.F(t, nil)
		if Δt <= 0 {
			chk.Panic("time step function returned Δt=%g ≤ 0 at t=%g", Δt, t)
		}
		t += Δt
		if t > o.Tf {
			t = o.Tf
		}
		times = append(times, t)
	}
	return
}

// Simulation holds all homogenization run data
type Simulation struct {

	// input
	Data         Data        `json:"data"`         // stores global data
	Functions    FuncsData   `json:"functions"`    // stores all function definitions
	Variables    []*VarData  `json:"variables"`    // stores all variable definitions
	Coefficients []*CoefData `json:"coefficients"` // stores all coefficient definitions
	Control      TimeControl `json:"control"`      // time control for time-dependent correctors

	// derived
	DirOut  string // directory to save results
	Key     string // simulation key; e.g. mysim01.hom => mysim01 or mysim01-alias
	EncType string // encoder type
	Msh     *Mesh  // the unit-cell mesh
	Ndim    int    // space dimension
}

// ReadSim reads all data from a .hom JSON file
func ReadSim(simfilepath, alias string, erasefiles bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read homogenization file %q", simfilepath)
	}

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal homogenization file %q", simfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gohom/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory and erase previous results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// read mesh
	o.Msh = ReadMsh(dir, o.Data.Mshfile)
	if o.Msh == nil {
		chk.Panic("ReadSim: cannot read unit-cell mesh file %q", o.Data.Mshfile)
	}
	o.Ndim = o.Msh.Ndim

	// variables: set defaults and check uniqueness
	varnames := make(map[string]bool)
	for _, v := range o.Variables {
		if varnames[v.Name] {
			chk.Panic("ReadSim: duplicate variable name %q", v.Name)
		}
		varnames[v.Name] = true
		if v.Primary == "" {
			v.Primary = v.Name
		}
		if v.Nnod == 0 {
			v.Nnod = len(o.Msh.Verts)
		}
		if v.Ncomp == 0 {
			v.Ncomp = 1
		}
	}

	// coefficients: check uniqueness of names and requires
	cfnames := make(map[string]bool)
	for _, cf := range o.Coefficients {
		if cfnames[cf.Name] {
			chk.Panic("ReadSim: duplicate coefficient name %q", cf.Name)
		}
		cfnames[cf.Name] = true
		reqs := make(map[string]bool)
		for _, r := range cf.Requires {
			if reqs[r] {
				chk.Panic("ReadSim: coefficient %q has duplicate dependency %q", cf.Name, r)
			}
			reqs[r] = true
		}
	}

	// time control
	if o.Control.DtFcn != "" {
		o.Control.DtFunc = o.Functions.Get(o.Control.DtFcn)
		if o.Control.DtFunc == nil {
			chk.Panic("ReadSim: cannot find time step function named %q", o.Control.DtFcn)
		}
	} else {
		if o.Control.Tf > 0 && o.Control.Dt <= 0 {
			chk.Panic("ReadSim: time step Dt must be positive when Tf=%g is given", o.Control.Tf)
		}
		o.Control.DtFunc = &fun.Cte{C: o.Control.Dt}
	}
	return &o
}

// GetVarData returns the data of the variable named name
//
//	Note: returns nil if not found
func (o *Simulation) GetVarData(name string) *VarData {
	for _, v := range o.Variables {
		if v.Name == name {
			return v
		}
	}
	return nil
}
