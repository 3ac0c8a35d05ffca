// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"github.com/cpmech/gohom/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register evaluator variants
func init() {

	// rank-4 symmetric tensor coefficient; e.g. homogenized elastic tensor
	evallocators["sym-sym"] = func(def *inp.CoefData) Evaluator {
		if len(def.Requires) != 2 || len(def.Variables) != 2 {
			return nil
		}
		return &CoefSymSym{def.Name, def.Requires, def.Variables}
	}

	// symmetric rank-2 tensor coefficient; e.g. homogenized elastic Biot coefficient
	evallocators["sym"] = func(def *inp.CoefData) Evaluator {
		if len(def.Requires) != 1 || len(def.Variables) != 2 {
			return nil
		}
		return &CoefSym{def.Name, def.Requires, def.Variables}
	}

	// corrector feed; e.g. elastic RS correctors
	evallocators["corr-dim-dim"] = func(def *inp.CoefData) Evaluator {
		if len(def.Requires) != 1 || len(def.Variables) < 1 {
			return nil
		}
		return &CorrDimDim{def.Name, def.Requires, def.Variables}
	}

	// perturbation field builder
	evallocators["shape-dim-dim"] = func(def *inp.CoefData) Evaluator {
		if len(def.Requires) != 0 || len(def.Variables) != 1 {
			return nil
		}
		return &ShapeDimDim{def.Name, def.Variables}
	}

	// time-station array
	evallocators["ts-times"] = func(def *inp.CoefData) Evaluator {
		if len(def.Requires) != 0 {
			return nil
		}
		return &TSTimes{def.Name, def.Variables}
	}
}

// mode2var resolves the evaluation mode of a symmetric bilinear coefficient to
// the index of the declared variable to substitute
var mode2var = map[string]int{"row": 0, "col": 1}

// CoefSymSym /////////////////////////////////////////////////////////////////////////////////////

// CoefSymSym evaluates entries of a rank-4 symmetric tensor coefficient; e.g.
// the homogenized elastic tensor E_ijkl. The substituted field superposes the
// base perturbation mode with the corrector response: π = pi[ir,ic] + ω[ir,ic]
type CoefSymSym struct {
	CName string   // coefficient name
	Reqs  []string // {perturbation field, corrector}
	Vars  []string // {row variable, col variable}
}

func (o *CoefSymSym) Name() string        { return o.CName }
func (o *CoefSymSym) Class() Class        { return SymSym }
func (o *CoefSymSym) Requires() []string  { return o.Reqs }
func (o *CoefSymSym) Variables() []string { return o.Vars }

// GetVariables yields one substitution: the π = pi + ω field of the variable
// selected by mode
func (o *CoefSymSym) GetVariables(dom *Domain, ir, ic int, dep *Deps, mode string) ([]Sub, error) {
	iv, ok := mode2var[mode]
	if !ok {
		return nil, &VariableLookupError{mode, io.Sf("coefficient %q cannot handle this evaluation mode", o.CName)}
	}
	pis, err := dep.Field(o.Reqs[0])
	if err != nil {
		return nil, err
	}
	corrs, err := dep.Corrector(o.Reqs[1])
	if err != nil {
		return nil, err
	}
	vname := o.Vars[iv]
	cname, err := dom.PrimaryVar(vname)
	if err != nil {
		return nil, err
	}
	y, err := corrs.State(ir, ic)
	if err != nil {
		return nil, err
	}
	ω, err := corrs.SubVec(y, cname)
	if err != nil {
		return nil, err
	}
	pi, err := pis.At(ir, ic)
	if err != nil {
		return nil, err
	}
	if len(pi) != len(ω) {
		return nil, chk.Err("coefficient %q: size of perturbation field (%d) differs from corrector sub-vector (%d) of variable %q", o.CName, len(pi), len(ω), vname)
	}
	π := make([]float64, len(ω))
	for i := 0; i < len(ω); i++ {
		π[i] = pi[i] + ω[i]
	}
	return []Sub{{vname, π}}, nil
}

// CoefSym ////////////////////////////////////////////////////////////////////////////////////////

// CoefSym evaluates entries of a symmetric rank-2 tensor coefficient with an
// asymmetric pairing; e.g. the homogenized elastic Biot coefficient. The col
// side probes with a constant unit field over the variable's node set; the row
// side substitutes the bare corrector response (no perturbation superposed).
type CoefSym struct {
	CName string   // coefficient name
	Reqs  []string // {corrector}
	Vars  []string // {col probe variable, row response variable}
}

func (o *CoefSym) Name() string        { return o.CName }
func (o *CoefSym) Class() Class        { return Sym }
func (o *CoefSym) Requires() []string  { return o.Reqs }
func (o *CoefSym) Variables() []string { return o.Vars }

// GetVariables yields one substitution according to mode
func (o *CoefSym) GetVariables(dom *Domain, ir, ic int, dep *Deps, mode string) ([]Sub, error) {
	switch mode {

	// constant unit probe field; independent of (ir,ic)
	case "col":
		vname := o.Vars[0]
		v, err := dom.GetVar(vname)
		if err != nil {
			return nil, err
		}
		one := make([]float64, v.Nnod)
		la.VecFill(one, 1)
		return []Sub{{vname, one}}, nil

	// corrector response
	case "row":
		vname := o.Vars[1]
		cname, err := dom.PrimaryVar(vname)
		if err != nil {
			return nil, err
		}
		corrs, err := dep.Corrector(o.Reqs[0])
		if err != nil {
			return nil, err
		}
		y, err := corrs.State(ir, ic)
		if err != nil {
			return nil, err
		}
		ω, err := corrs.SubVec(y, cname)
		if err != nil {
			return nil, err
		}
		return []Sub{{vname, ω}}, nil
	}
	return nil, &VariableLookupError{mode, io.Sf("coefficient %q cannot handle this evaluation mode", o.CName)}
}

// CorrDimDim /////////////////////////////////////////////////////////////////////////////////////

// CorrDimDim supplies the base perturbation field driving one unit-cell
// corrector solve; e.g. the elastic RS correctors. The solving engine consumes
// the yielded substitution as the right-hand side mode of the microscale
// problem at (ir,ic).
type CorrDimDim struct {
	CName string   // corrector name
	Reqs  []string // {perturbation field}
	Vars  []string // the last entry names the driven variable
}

func (o *CorrDimDim) Name() string        { return o.CName }
func (o *CorrDimDim) Class() Class        { return DimDim }
func (o *CorrDimDim) Requires() []string  { return o.Reqs }
func (o *CorrDimDim) Variables() []string { return o.Vars }

// GetVariables yields the perturbation mode at (ir,ic) for the driven variable
func (o *CorrDimDim) GetVariables(dom *Domain, ir, ic int, dep *Deps, mode string) ([]Sub, error) {
	pis, err := dep.Field(o.Reqs[0])
	if err != nil {
		return nil, err
	}
	pi, err := pis.At(ir, ic)
	if err != nil {
		return nil, err
	}
	return []Sub{{o.Vars[len(o.Vars)-1], pi}}, nil
}

// ShapeDimDim ////////////////////////////////////////////////////////////////////////////////////

// ShapeDimDim builds the perturbation fields (unit macroscopic strain modes)
// from the unit-cell vertex coordinates: for pair (ir,ic), the dof of node n
// and component j equals coors[n][ir] when j == ic, zero otherwise
type ShapeDimDim struct {
	CName string   // field name; e.g. "pis"
	Vars  []string // {target variable}
}

func (o *ShapeDimDim) Name() string        { return o.CName }
func (o *ShapeDimDim) Class() Class        { return Shape }
func (o *ShapeDimDim) Requires() []string  { return nil }
func (o *ShapeDimDim) Variables() []string { return o.Vars }

// GetVariables yields the unit strain mode at (ir,ic)
func (o *ShapeDimDim) GetVariables(dom *Domain, ir, ic int, dep *Deps, mode string) ([]Sub, error) {
	vname := o.Vars[0]
	v, err := dom.GetVar(vname)
	if err != nil {
		return nil, err
	}
	pi, err := o.shapePi(dom, v, ir, ic)
	if err != nil {
		return nil, err
	}
	return []Sub{{vname, pi}}, nil
}

// BuildPis assembles the full perturbation field over the ndim×ndim range
func (o *ShapeDimDim) BuildPis(dom *Domain) (*Pis, error) {
	v, err := dom.GetVar(o.Vars[0])
	if err != nil {
		return nil, err
	}
	pis := NewPis(o.CName, dom.Ndim, v.Ndof())
	for ir := 0; ir < dom.Ndim; ir++ {
		for ic := 0; ic < dom.Ndim; ic++ {
			pi, err := o.shapePi(dom, v, ir, ic)
			if err != nil {
				return nil, err
			}
			copy(pis.Vals[ir][ic], pi)
		}
	}
	return pis, nil
}

// shapePi computes one unit strain mode
func (o *ShapeDimDim) shapePi(dom *Domain, v *Variable, ir, ic int) ([]float64, error) {
	if ir < 0 || ir >= dom.Ndim || ic < 0 || ic >= dom.Ndim {
		return nil, &UnknownIndexPairError{o.CName, ir, ic, dom.Ndim}
	}
	if v.Ncomp != dom.Ndim {
		return nil, &VariableLookupError{v.Name, io.Sf("unit strain modes need ncomp=%d but variable has ncomp=%d", dom.Ndim, v.Ncomp)}
	}
	if v.Nnod != len(dom.Coors) {
		return nil, &VariableLookupError{v.Name, io.Sf("variable has %d nodes but the unit cell has %d vertices", v.Nnod, len(dom.Coors))}
	}
	pi := make([]float64, v.Ndof())
	for n := 0; n < v.Nnod; n++ {
		pi[n*v.Ncomp+ic] = dom.Coors[n][ir]
	}
	return pi, nil
}

// TSTimes ////////////////////////////////////////////////////////////////////////////////////////

// TSTimes reports the time stations at which time-dependent correctors are
// sampled, taken from the problem's time control
type TSTimes struct {
	CName string   // name; e.g. "times"
	Vars  []string // optional; the first entry names the substituted variable ("t" if empty)
}

func (o *TSTimes) Name() string        { return o.CName }
func (o *TSTimes) Class() Class        { return Times }
func (o *TSTimes) Requires() []string  { return nil }
func (o *TSTimes) Variables() []string { return o.Vars }

// GetVariables yields the whole time-station array, regardless of (ir,ic)
func (o *TSTimes) GetVariables(dom *Domain, ir, ic int, dep *Deps, mode string) ([]Sub, error) {
	vname := "t"
	if len(o.Vars) > 0 {
		vname = o.Vars[0]
	}
	return []Sub{{vname, dom.OutTimes()}}, nil
}
