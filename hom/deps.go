// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

// Deps holds resolved dependency data handed to coefficient evaluators. The
// kind set is closed: correctors, perturbation fields, coefficient tensors and
// scalar arrays. Read-only from the evaluators' point of view; lookups for
// absent names fail with MissingDependencyError.
type Deps struct {
	correctors map[string]*Corrector
	fields     map[string]*Pis
	tensors    map[string][][]float64
	arrays     map[string][]float64
}

// NewDeps returns an empty dependency map
func NewDeps() *Deps {
	return &Deps{
		correctors: make(map[string]*Corrector),
		fields:     make(map[string]*Pis),
		tensors:    make(map[string][][]float64),
		arrays:     make(map[string][]float64),
	}
}

// Has tells whether name is resolved, whatever its kind
func (o *Deps) Has(name string) bool {
	if _, ok := o.correctors[name]; ok {
		return true
	}
	if _, ok := o.fields[name]; ok {
		return true
	}
	if _, ok := o.tensors[name]; ok {
		return true
	}
	_, ok := o.arrays[name]
	return ok
}

// SetCorrector stores a resolved corrector
func (o *Deps) SetCorrector(name string, c *Corrector) { o.correctors[name] = c }

// SetField stores a resolved perturbation field
func (o *Deps) SetField(name string, p *Pis) { o.fields[name] = p }

// SetTensor stores a computed coefficient tensor
func (o *Deps) SetTensor(name string, t [][]float64) { o.tensors[name] = t }

// SetArray stores a computed coefficient vector or time array
func (o *Deps) SetArray(name string, a []float64) { o.arrays[name] = a }

// Corrector returns the corrector named name
func (o *Deps) Corrector(name string) (*Corrector, error) {
	c, ok := o.correctors[name]
	if !ok {
		return nil, &MissingDependencyError{name, "corrector"}
	}
	return c, nil
}

// Field returns the perturbation field named name
func (o *Deps) Field(name string) (*Pis, error) {
	p, ok := o.fields[name]
	if !ok {
		return nil, &MissingDependencyError{name, "perturbation field"}
	}
	return p, nil
}

// Tensor returns the coefficient tensor named name
func (o *Deps) Tensor(name string) ([][]float64, error) {
	t, ok := o.tensors[name]
	if !ok {
		return nil, &MissingDependencyError{name, "coefficient tensor"}
	}
	return t, nil
}

// Array returns the coefficient vector or time array named name
func (o *Deps) Array(name string) ([]float64, error) {
	a, ok := o.arrays[name]
	if !ok {
		return nil, &MissingDependencyError{name, "coefficient array"}
	}
	return a, nil
}
