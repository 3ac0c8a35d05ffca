// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Corrector holds precomputed microscale unit-cell solution fields: one packed
// state vector per macroscopic index pair (ir,ic), with all primary variables
// stacked together. Read-only after the solving engine fills it.
type Corrector struct {

	// essential
	Name   string          // corrector name; e.g. "corrs_rs"
	N      int             // declared index range: ir,ic ∈ [0,N)
	Ny     int             // length of each packed state vector
	Indx   map[string]Span // primary variable name => sub-span of packed vector
	States [][][]float64   // [N][N][Ny] packed state vectors

	// time-dependent correctors (optional)
	Times []float64       // [nt] time stations
	Hist  [][][][]float64 // [N][N][nt][Ny] packed state vectors per time station
}

// NewCorrector allocates a corrector for an N×N index range. The layout of the
// packed state vectors follows the given ordered variables, keyed by their
// primary names; the layout is identical across all index pairs.
func NewCorrector(name string, n int, vars []*Variable) *Corrector {
	var o Corrector
	o.Name = name
	o.N = n
	o.Indx = make(map[string]Span)
	for _, v := range vars {
		o.Indx[v.Primary] = Span{o.Ny, o.Ny + v.Ndof()}
		o.Ny += v.Ndof()
	}
	o.States = utl.Deep3alloc(n, n, o.Ny)
	return &o
}

// State returns the packed state vector at index pair (ir,ic)
func (o *Corrector) State(ir, ic int) ([]float64, error) {
	if ir < 0 || ir >= o.N || ic < 0 || ic >= o.N {
		return nil, &UnknownIndexPairError{o.Name, ir, ic, o.N}
	}
	return o.States[ir][ic], nil
}

// SubVec returns the sub-vector of the packed state y holding the degrees of
// freedom of the primary variable named pname
func (o *Corrector) SubVec(y []float64, pname string) ([]float64, error) {
	s, ok := o.Indx[pname]
	if !ok {
		return nil, &VariableLookupError{pname, io.Sf("corrector %q has no sub-span for this primary variable", o.Name)}
	}
	return y[s.A:s.B], nil
}

// SetTimes allocates the per-time-station history
func (o *Corrector) SetTimes(times []float64) {
	o.Times = times
	o.Hist = make([][][][]float64, o.N)
	for i := 0; i < o.N; i++ {
		o.Hist[i] = utl.Deep3alloc(o.N, len(times), o.Ny)
	}
}

// StateAt returns the packed state vector at index pair (ir,ic) and time
// station it. Correctors without history only hold the final states.
func (o *Corrector) StateAt(ir, ic, it int) ([]float64, error) {
	if ir < 0 || ir >= o.N || ic < 0 || ic >= o.N {
		return nil, &UnknownIndexPairError{o.Name, ir, ic, o.N}
	}
	if o.Hist == nil {
		return nil, &VariableLookupError{o.Name, "corrector has no time history"}
	}
	if it < 0 || it >= len(o.Times) {
		return nil, &VariableLookupError{o.Name, io.Sf("time station %d is outside [0,%d)", it, len(o.Times))}
	}
	return o.Hist[ir][ic][it], nil
}

// Pis holds a perturbation field: one base field vector (e.g. a unit
// macroscopic strain mode) per index pair, independent of the corrector's
// microscale response. Immutable once built.
type Pis struct {
	Name string        // field name; e.g. "pis"
	N    int           // declared index range: ir,ic ∈ [0,N)
	Vals [][][]float64 // [N][N][ndof] base field vectors
}

// NewPis allocates a perturbation field for an N×N index range with ndof
// degrees of freedom per field vector
func NewPis(name string, n, ndof int) *Pis {
	return &Pis{name, n, utl.Deep3alloc(n, n, ndof)}
}

// At returns the base field vector at index pair (ir,ic)
func (o *Pis) At(ir, ic int) ([]float64, error) {
	if ir < 0 || ir >= o.N || ic < 0 || ic >= o.N {
		return nil, &UnknownIndexPairError{o.Name, ir, ic, o.N}
	}
	return o.Vals[ir][ic], nil
}
