// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"github.com/cpmech/gosl/chk"
)

// Integrator evaluates one weak-form integral over the unit cell given the
// variable substitutions produced by a coefficient evaluator. Real weak-form
// engines plug in through this interface; Lumped is a simple reference.
type Integrator interface {
	Integral(subs []Sub) (val float64, err error)
}

// Lumped is a node-lumped reference quadrature: one weight per degree of
// freedom. A single substitution integrates to the weighted sum of the field;
// a pair of substitutions integrates to the weighted bilinear product.
type Lumped struct {
	W []float64 // weights; nil => unit weights
}

// Integral computes the lumped integral of one or two substituted fields
func (o *Lumped) Integral(subs []Sub) (val float64, err error) {
	switch len(subs) {
	case 1:
		a := subs[0].Field
		for i := 0; i < len(a); i++ {
			val += o.weight(i) * a[i]
		}
	case 2:
		a, b := subs[0].Field, subs[1].Field
		if len(a) != len(b) {
			return 0, chk.Err("lumped integrator needs fields with equal sizes: %q has %d and %q has %d", subs[0].Var, len(a), subs[1].Var, len(b))
		}
		for i := 0; i < len(a); i++ {
			val += o.weight(i) * a[i] * b[i]
		}
	default:
		err = chk.Err("lumped integrator cannot handle %d substitutions", len(subs))
	}
	return
}

func (o *Lumped) weight(i int) float64 {
	if o.W == nil {
		return 1
	}
	return o.W[i]
}
