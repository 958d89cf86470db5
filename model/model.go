// Copyright 2026 The Gobatt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package model implements the assembly of submodels into one equation system
package model

import (
	"github.com/cellmech/gobatt/inp"
	"github.com/cellmech/gobatt/sub"
	"github.com/cellmech/gobatt/sym"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Model aggregates the equation contributions of an ordered list of
// submodels over a shared variables registry. Submodels read snapshots of the
// registry and never write it directly; the model owns the merge step.
// Because registry lookups tolerate absent fields, the order need not be
// topologically perfect, but every cross-submodel dependency must be resolved
// by the time Assemble finishes.
type Model struct {

	// configuration
	Prm  *inp.CellParams // shared parameters (read-only for all submodels)
	Subs []sub.Submodel  // ordered contributors

	// aggregated state
	Vars      sub.Variables                  // merged registry
	Reactions sub.Reactions                  // merged reaction terms
	Rhs       map[sym.Expr]sym.Expr          // evolution equations
	Algebraic map[sym.Expr]sym.Expr          // constraints
	Bcs       map[sym.Expr]map[string]sub.Bc // boundary conditions
	Ics       map[sym.Expr]sym.Expr          // initial conditions

	// flag
	assembled bool
}

// New returns a model seeded with the standard variables
func New(prm *inp.CellParams) *Model {
	return &Model{
		Prm:       prm,
		Vars:      sub.StandardVariables(),
		Reactions: make(sub.Reactions),
		Rhs:       make(map[sym.Expr]sym.Expr),
		Algebraic: make(map[sym.Expr]sym.Expr),
		Bcs:       make(map[sym.Expr]map[string]sub.Bc),
		Ics:       make(map[sym.Expr]sym.Expr),
	}
}

// Add appends a submodel instance to the pipeline
func (o *Model) Add(s sub.Submodel) {
	o.Subs = append(o.Subs, s)
}

// AddByName allocates a submodel from the database and appends it
func (o *Model) AddByName(name string) (err error) {
	s, err := sub.New(name, o.Prm)
	if err != nil {
		return
	}
	o.Add(s)
	return
}

// Assemble runs all contributors in order, merges their contributions and
// checks the invariants of the aggregated system. Models are build-once.
func (o *Model) Assemble() (err error) {
	if o.assembled {
		return chk.Err("model has already been assembled")
	}
	for _, s := range o.Subs {
		sys, err := s.Assemble(o.Vars.Snapshot(), o.Reactions)
		if err != nil {
			return chk.Err("cannot assemble submodel %q:\n%v", s.Name(), err)
		}
		if err = o.merge(s.Name(), sys); err != nil {
			return err
		}
	}
	o.assembled = true
	return o.Check()
}

// merge copies one submodel's contributions into the aggregated system.
// Published variables may refine earlier entries; equations must not collide.
func (o *Model) merge(name string, sys *sub.System) (err error) {
	for unknown, e := range sys.Rhs {
		if _, ok := o.Rhs[unknown]; ok {
			return chk.Err("submodel %q redefines the evolution equation of %v", name, unknown)
		}
		o.Rhs[unknown] = e
	}
	for unknown, e := range sys.Algebraic {
		if _, ok := o.Algebraic[unknown]; ok {
			return chk.Err("submodel %q redefines the constraint on %v", name, unknown)
		}
		o.Algebraic[unknown] = e
	}
	for unknown, conds := range sys.Bcs {
		if _, ok := o.Bcs[unknown]; ok {
			return chk.Err("submodel %q redefines the boundary conditions of %v", name, unknown)
		}
		o.Bcs[unknown] = conds
	}
	for unknown, e := range sys.Ics {
		if _, ok := o.Ics[unknown]; ok {
			return chk.Err("submodel %q redefines the initial condition of %v", name, unknown)
		}
		o.Ics[unknown] = e
	}
	for vname, e := range sys.Vars {
		o.Vars[vname] = e
	}
	for id, sides := range sys.Reactions {
		if _, ok := o.Reactions[id]; ok {
			return chk.Err("submodel %q redefines reaction %q", name, id)
		}
		o.Reactions[id] = sides
	}
	return
}

// Check enforces the invariants of the aggregated system:
//  1. an unknown is either evolved in time or algebraically constrained,
//     never both
//  2. every unknown in an equation has exactly one initial condition
//  3. an unknown differentiated spatially by its evolution equation has
//     boundary conditions on both domain ends
func (o *Model) Check() (err error) {
	for unknown := range o.Rhs {
		if _, ok := o.Algebraic[unknown]; ok {
			return chk.Err("unknown %v has both an evolution equation and a constraint", unknown)
		}
	}
	for unknown := range o.Rhs {
		if _, ok := o.Ics[unknown]; !ok {
			return chk.Err("unknown %v has no initial condition", unknown)
		}
	}
	for unknown := range o.Algebraic {
		if _, ok := o.Ics[unknown]; !ok {
			return chk.Err("unknown %v has no initial condition", unknown)
		}
	}
	for unknown, rhs := range o.Rhs {
		if sym.UsesGrad(rhs, unknown) {
			conds, ok := o.Bcs[unknown]
			if !ok {
				return chk.Err("unknown %v is differentiated spatially but has no boundary conditions", unknown)
			}
			for _, side := range []string{"left", "right"} {
				if _, ok := conds[side]; !ok {
					return chk.Err("unknown %v is differentiated spatially but has no %q boundary condition", unknown, side)
				}
			}
		}
	}
	return
}

// Summary prints the assembled equation system
func (o *Model) Summary() {
	io.Pf("equation system:\n")
	for unknown, e := range o.Rhs {
		io.Pf("  d/dt {%v} = %v\n", unknown, e)
		if conds, ok := o.Bcs[unknown]; ok {
			for _, side := range []string{"left", "right"} {
				if bc, ok := conds[side]; ok {
					io.Pf("    %s (%s): %v\n", side, bc.Kind, bc.Val)
				}
			}
		}
	}
	for unknown, e := range o.Algebraic {
		io.Pf("  0 = %v  (constrains %v)\n", e, unknown)
	}
	io.Pf("variables (%d):\n", len(o.Vars))
	for _, name := range o.Vars.Names() {
		io.Pf("  %s\n", name)
	}
}
