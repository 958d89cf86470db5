// Copyright 2026 The Gobatt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package current implements interfacial current distribution submodels
package current

import (
	"github.com/cellmech/gobatt/inp"
	"github.com/cellmech/gobatt/sub"
	"github.com/cellmech/gobatt/sym"
	"github.com/cpmech/gosl/chk"
)

// Uniform implements the leading-order closure in which the interfacial
// current density is uniform across each electrode:
//
//	j_n =  i_cell / l_n        j_p = -i_cell / l_p
//
// Potentials, overpotentials and surface concentrations are spatially uniform
// at this order and are published as broadcasts of aggregated unknowns. The
// submodel registers no equations of its own; it exists to populate the
// registry fields and the reaction structure that the transport and energy
// balances consume.
type Uniform struct {
	prm *inp.CellParams // shared cell parameters (read-only)
	sys *sub.System     // contributions; set exactly once by Assemble
}

// register submodel
func init() {
	sub.SetAllocator("uniform-current", func(prm *inp.CellParams) sub.Submodel {
		return &Uniform{prm: prm}
	})
}

// New returns a uniform interfacial current submodel
func New(prm *inp.CellParams) *Uniform { return &Uniform{prm: prm} }

// Name returns the name in the submodels database
func (o *Uniform) Name() string { return "uniform-current" }

// System returns the contributions assembled so far (nil before Assemble)
func (o *Uniform) System() *sub.System { return o.sys }

// Assemble publishes the uniform current distribution and the
// electrochemical field closures
func (o *Uniform) Assemble(vars sub.Variables, reactions sub.Reactions) (*sub.System, error) {
	if o.sys != nil {
		return nil, chk.Err("uniform-current submodel has already been assembled; instances are write-once")
	}
	prm := o.prm
	if prm.Ln <= 0 || prm.Lp <= 0 {
		return nil, chk.Err("uniform-current submodel: electrode thicknesses l_n=%g and l_p=%g must be positive", prm.Ln, prm.Lp)
	}
	sys := sub.NewSystem()

	// dimensionless applied current
	icell := sym.Num(1)
	sys.Vars["Current collector current density"] = icell

	// uniform volumetric reaction current densities
	jn := sym.Broadcast(sym.Divide(icell, sym.Num(prm.Ln)), sym.Negative)
	jp := sym.Broadcast(sym.Divide(sym.Neg(icell), sym.Num(prm.Lp)), sym.Positive)
	sys.Reactions["main"] = map[string]sym.Expr{"neg": jn, "pos": jp}

	// at leading order the solid phase carries the cell current in the
	// electrodes and the electrolyte carries it across the separator
	sys.Vars["Negative electrode current density"] = sym.Broadcast(icell, sym.Negative)
	sys.Vars["Positive electrode current density"] = sym.Broadcast(icell, sym.Positive)
	sys.Vars["Negative electrolyte current density"] = sym.Broadcast(sym.Num(0), sym.Negative)
	sys.Vars["Separator electrolyte current density"] = sym.Broadcast(icell, sym.Separator)
	sys.Vars["Positive electrolyte current density"] = sym.Broadcast(sym.Num(0), sym.Positive)

	// uniform potentials: negative electrode grounded, positive electrode at
	// the terminal voltage, one bulk electrolyte potential
	V := sym.NewVar("Terminal voltage", nil)
	phie := sym.NewVar("Bulk electrolyte potential", nil)
	phien := sym.Broadcast(phie, sym.Negative)
	phies := sym.Broadcast(phie, sym.Separator)
	phiep := sym.Broadcast(phie, sym.Positive)
	sys.Vars["Terminal voltage"] = V
	sys.Vars["Negative electrode potential"] = sym.Broadcast(sym.Num(0), sym.Negative)
	sys.Vars["Positive electrode potential"] = sym.Broadcast(V, sym.Positive)
	sys.Vars["Negative electrolyte potential"] = phien
	sys.Vars["Separator electrolyte potential"] = phies
	sys.Vars["Positive electrolyte potential"] = phiep
	sys.Vars["Electrolyte potential"] = sym.Concatenation(phien, phies, phiep)

	// aggregated electrochemical unknowns, uniform over their electrode
	sys.Vars["Negative reaction overpotential"] =
		sym.Broadcast(sym.NewVar("Average negative reaction overpotential", nil), sym.Negative)
	sys.Vars["Positive reaction overpotential"] =
		sym.Broadcast(sym.NewVar("Average positive reaction overpotential", nil), sym.Positive)
	sys.Vars["Negative particle surface concentration"] =
		sym.Broadcast(sym.NewVar("Average negative particle surface concentration", nil), sym.Negative)
	sys.Vars["Positive particle surface concentration"] =
		sym.Broadcast(sym.NewVar("Average positive particle surface concentration", nil), sym.Positive)
	sys.Vars["Positive electrode open circuit potential"] =
		sym.Broadcast(sym.NewVar("Average positive electrode open circuit potential", nil), sym.Positive)

	o.sys = sys
	return sys, nil
}
