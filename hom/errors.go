// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import "github.com/cpmech/gosl/io"

// MissingDependencyError indicates that a name promised by an evaluator's
// Requires list is absent from the resolved dependency data. This is a
// dependency-declaration/resolution mismatch and is always fatal.
type MissingDependencyError struct {
	Name string // missing dependency name
	Kind string // expected kind; e.g. "corrector"
}

func (e *MissingDependencyError) Error() string {
	return io.Sf("dependency %q (%s) is missing from the resolved data", e.Name, e.Kind)
}

// UnknownIndexPairError indicates that a corrector or perturbation field was
// queried for an index pair outside its declared range. Always fatal: the
// index range is fixed at construction.
type UnknownIndexPairError struct {
	Name   string // name of the queried corrector/field
	Ir, Ic int    // offending index pair
	N      int    // declared range: ir,ic ∈ [0,N)
}

func (e *UnknownIndexPairError) Error() string {
	return io.Sf("index pair (%d,%d) is outside the declared %d×%d range of %q", e.Ir, e.Ic, e.N, e.N, e.Name)
}

// VariableLookupError indicates that a variable name, primary-variable name or
// evaluation mode cannot be resolved. Always fatal: a model configuration defect.
type VariableLookupError struct {
	Name string // offending name
	Msg  string // details
}

func (e *VariableLookupError) Error() string {
	return io.Sf("cannot resolve %q: %s", e.Name, e.Msg)
}
