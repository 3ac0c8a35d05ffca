// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hom computes homogenized (macroscopic) material coefficients from
// precomputed periodic unit-cell corrector solutions
package hom

import (
	"github.com/cpmech/gohom/inp"
)

// Span denotes a contiguous sub-range [A,B) of a packed state vector
type Span struct {
	A, B int
}

// Len returns the number of degrees of freedom in this span
func (o Span) Len() int { return o.B - o.A }

// Variable holds metadata of one variable of the microscale problem
type Variable struct {
	Name    string // variable name; e.g. "Pi1"
	Primary string // primary variable name used to index packed state vectors; e.g. "u"
	Nnod    int    // number of nodes of the variable's field
	Ncomp   int    // number of components per node
}

// Ndof returns the total number of degrees of freedom of this variable's field
func (o *Variable) Ndof() int { return o.Nnod * o.Ncomp }

// Domain holds the problem context for coefficient evaluation: the variable
// registry, the symmetric index-pair ordering and the integration engine
type Domain struct {

	// essential
	Ndim  int                  // space dimension
	Sym   int                  // number of independent components of a symmetric ndim×ndim tensor
	Pairs [][2]int             // [Sym] symmetric index pairs
	Vars  map[string]*Variable // variable name => variable metadata
	Coors [][]float64          // [nnod][ndim] unit-cell vertex coordinates

	// collaborators
	Integ Integrator // weak-form integration engine

	// input
	Sim *inp.Simulation // input data (may be nil when the domain is built directly)
}

// NewDomain creates a problem context from input data
func NewDomain(sim *inp.Simulation, integ Integrator) *Domain {
	var o Domain
	o.Sim = sim
	o.Ndim = sim.Ndim
	o.Sym = o.Ndim * (o.Ndim + 1) / 2
	o.Pairs = SymPairs(o.Ndim)
	o.Vars = make(map[string]*Variable)
	for _, v := range sim.Variables {
		o.Vars[v.Name] = &Variable{Name: v.Name, Primary: v.Primary, Nnod: v.Nnod, Ncomp: v.Ncomp}
	}
	o.Coors = sim.Msh.Coords()
	o.Integ = integ
	return &o
}

// GetVar returns the variable named name
func (o *Domain) GetVar(name string) (v *Variable, err error) {
	v, ok := o.Vars[name]
	if !ok {
		err = &VariableLookupError{name, "variable is not defined in the problem context"}
	}
	return
}

// PrimaryVar returns the primary-variable name of the variable named name
func (o *Domain) PrimaryVar(name string) (pname string, err error) {
	v, err := o.GetVar(name)
	if err != nil {
		return
	}
	return v.Primary, nil
}

// OutTimes returns the time stations of time-dependent correctors
func (o *Domain) OutTimes() []float64 {
	if o.Sim == nil {
		return nil
	}
	return o.Sim.Control.OutTimes()
}

// SymPairs returns the index pairs of the independent components of a
// symmetric ndim×ndim tensor: diagonal entries first, then off-diagonal
// entries with ir < ic in row-major order
func SymPairs(ndim int) (pairs [][2]int) {
	for i := 0; i < ndim; i++ {
		pairs = append(pairs, [2]int{i, i})
	}
	for i := 0; i < ndim; i++ {
		for j := i + 1; j < ndim; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return
}
