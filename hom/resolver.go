// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"github.com/cpmech/gosl/chk"
)

// CorrectorEngine solves the microscale unit-cell problems producing
// correctors. This is the (external) weak-form assembly/linear-solve layer:
// it receives the corrector's evaluator (a DimDim variant yielding the driving
// perturbation modes) and the already-resolved dependency data.
type CorrectorEngine interface {
	Solve(dom *Domain, ev Evaluator, dep *Deps) (*Corrector, error)
}

// Resolver walks the declared requirements of coefficient evaluators and
// materializes each named dependency exactly once, caching results for reuse
// across all index pairs of the requesting coefficients. Resolution is fully
// eager: every name is materialized before any GetVariables call consumes it.
type Resolver struct {

	// collaborators
	Dom    *Domain              // problem context
	Engine CorrectorEngine      // unit-cell solving engine; may be nil if no corrector is declared
	Evs    map[string]Evaluator // name => declared evaluator

	// cache
	deps    *Deps           // resolved results
	pending map[string]bool // names currently being resolved (cycle detection)
}

// NewResolver returns a resolver over the declared evaluators
func NewResolver(dom *Domain, engine CorrectorEngine, evs []Evaluator) *Resolver {
	o := Resolver{Dom: dom, Engine: engine, Evs: make(map[string]Evaluator)}
	for _, ev := range evs {
		o.Evs[ev.Name()] = ev
	}
	o.deps = NewDeps()
	o.pending = make(map[string]bool)
	return &o
}

// Resolve materializes every name in reqs and returns the shared dependency map
func (o *Resolver) Resolve(reqs []string) (*Deps, error) {
	for _, name := range reqs {
		if err := o.resolve(name); err != nil {
			return nil, err
		}
	}
	return o.deps, nil
}

// Deps returns the shared dependency map with everything resolved so far
func (o *Resolver) Deps() *Deps { return o.deps }

func (o *Resolver) resolve(name string) (err error) {

	// cached
	if o.deps.Has(name) {
		return
	}

	// find the evaluator that provides name
	ev, ok := o.Evs[name]
	if !ok {
		return &MissingDependencyError{name, "declared coefficient"}
	}
	if o.pending[name] {
		return chk.Err("dependency cycle detected at %q", name)
	}
	o.pending[name] = true
	defer delete(o.pending, name)

	// resolve sub-requirements first
	for _, r := range ev.Requires() {
		if err = o.resolve(r); err != nil {
			return
		}
	}

	// materialize
	switch ev.Class() {
	case Shape:
		b, ok := ev.(PisBuilder)
		if !ok {
			return chk.Err("evaluator %q has class Shape but cannot build a perturbation field", name)
		}
		pis, err := b.BuildPis(o.Dom)
		if err != nil {
			return err
		}
		o.deps.SetField(name, pis)
	case DimDim:
		if o.Engine == nil {
			return chk.Err("corrector %q needs a corrector-solving engine", name)
		}
		c, err := o.Engine.Solve(o.Dom, ev, o.deps)
		if err != nil {
			return err
		}
		o.deps.SetCorrector(name, c)
	case SymSym:
		c, err := ComputeSymSym(o.Dom, ev, o.deps)
		if err != nil {
			return err
		}
		o.deps.SetTensor(name, c)
	case Sym:
		c, err := ComputeSym(o.Dom, ev, o.deps)
		if err != nil {
			return err
		}
		o.deps.SetArray(name, c)
	case Times:
		o.deps.SetArray(name, o.Dom.OutTimes())
	default:
		return chk.Err("evaluator %q has unknown class %d", name, ev.Class())
	}
	return
}
