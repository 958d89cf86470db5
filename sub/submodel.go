// Copyright 2026 The Gobatt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sub defines the contract between submodels and the model assembler
package sub

import (
	"github.com/cellmech/gobatt/sym"
)

// boundary condition kinds
const (
	Dirichlet = "Dirichlet" // value specified
	Neumann   = "Neumann"   // flux specified
)

// Bc holds one boundary condition: an expression and its kind
type Bc struct {
	Val  sym.Expr // boundary expression
	Kind string   // Dirichlet or Neumann
}

// System holds the equation contributions of one submodel after assembly.
// Equations are keyed by the unknown field they govern. A submodel populates
// its System exactly once; the assembler copies the maps out afterwards.
type System struct {
	Rhs       map[sym.Expr]sym.Expr          // unknown => time derivative (evolution equation)
	Algebraic map[sym.Expr]sym.Expr          // unknown => residual that must vanish (constraint)
	Bcs       map[sym.Expr]map[string]Bc     // unknown => side ("left"/"right") => condition
	Ics       map[sym.Expr]sym.Expr          // unknown => value at the start of simulation
	Vars      Variables                      // published variables for other submodels and reporting
	Reactions Reactions                      // reaction terms produced by electrochemical submodels
}

// NewSystem returns an empty system
func NewSystem() *System {
	return &System{
		Rhs:       make(map[sym.Expr]sym.Expr),
		Algebraic: make(map[sym.Expr]sym.Expr),
		Bcs:       make(map[sym.Expr]map[string]Bc),
		Ics:       make(map[sym.Expr]sym.Expr),
		Vars:      make(Variables),
		Reactions: make(Reactions),
	}
}

// Submodel defines what every equation-contributing unit must implement.
// Assemble reads a snapshot of the shared variables registry together with
// the reaction terms merged so far and returns this submodel's contributions.
// Instances are write-once: a second Assemble call on the same instance is an
// error.
type Submodel interface {
	Name() string                                           // name in the submodels database
	Assemble(vars Variables, reactions Reactions) (*System, error) // build equation contributions
}
