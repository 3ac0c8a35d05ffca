// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"github.com/cpmech/gohom/inp"

	"github.com/cpmech/gosl/chk"
)

// Class distinguishes evaluator variants by the index symmetry of the quantity
// they produce
type Class int

const (
	SymSym Class = iota + 1 // rank-4 tensor with minor and major symmetries => sym×sym matrix
	Sym                     // symmetric rank-2 tensor => sym vector
	DimDim                  // corrector feed over the full ndim×ndim index range
	Shape                   // perturbation field built from unit-cell coordinates
	Times                   // time-station array
)

// Sub holds one substitution record: a variable name and the field value to
// substitute for it in the weak-form integral. Records are consumed
// immediately by the integration engine and not retained.
type Sub struct {
	Var   string    // variable name
	Field []float64 // field value
}

// Evaluator produces, per macroscopic index pair and evaluation mode, the
// variable substitutions needed to integrate one entry of a homogenized
// tensor. Evaluators are stateless across invocations; the returned slice is
// finite and drained exactly once per call.
type Evaluator interface {

	// information
	Name() string        // coefficient name
	Class() Class        // symmetry class
	Requires() []string  // dependency names, ordered and unique
	Variables() []string // declared variable names, ordered

	// GetVariables yields the substitution records for index pair (ir,ic).
	// mode ∈ {"row","col"} selects the evaluation side of symmetric bilinear
	// variants; other variants ignore it
	GetVariables(dom *Domain, ir, ic int, dep *Deps, mode string) ([]Sub, error)
}

// PisBuilder is implemented by variants whose resolved product is a whole
// perturbation field rather than an integrated tensor entry
type PisBuilder interface {
	BuildPis(dom *Domain) (*Pis, error)
}

// NewEvaluator returns a new coefficient evaluator from its input definition
func NewEvaluator(def *inp.CoefData) (ev Evaluator, err error) {
	allocator, ok := evallocators[def.Kind]
	if !ok {
		err = chk.Err("cannot get allocator for coefficient {kind=%q, name=%q}", def.Kind, def.Name)
		return
	}
	ev = allocator(def)
	if ev == nil {
		err = chk.Err("coefficient {kind=%q, name=%q} is not available", def.Kind, def.Name)
	}
	return
}

// evallocators holds all available evaluator variants; kind => allocator
var evallocators = make(map[string]func(def *inp.CoefData) Evaluator)
