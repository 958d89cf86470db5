// Copyright 2026 The Gobatt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package current

import (
	"testing"

	"github.com/cellmech/gobatt/inp"
	"github.com/cellmech/gobatt/sub"
	"github.com/cellmech/gobatt/sym"
	"github.com/cpmech/gosl/chk"
)

func Test_uniform01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uniform01. uniform current distribution")

	prm := inp.Default()
	o := New(prm)
	vars := sub.StandardVariables()
	sys, err := o.Assemble(vars.Snapshot(), sub.Reactions{})
	if err != nil {
		tst.Errorf("Assemble failed: %v\n", err)
		return
	}

	// publication-only contributor
	chk.IntAssert(len(sys.Rhs), 0)
	chk.IntAssert(len(sys.Algebraic), 0)
	chk.IntAssert(len(sys.Bcs), 0)
	chk.IntAssert(len(sys.Ics), 0)

	// charge balance of the uniform closure: l_n j_n + l_p j_p = 0 and each
	// electrode transfers the full cell current
	jn, ok := sys.Reactions.Get("main", "neg")
	if !ok {
		tst.Errorf("no negative reaction current density\n")
		return
	}
	jp, ok := sys.Reactions.Get("main", "pos")
	if !ok {
		tst.Errorf("no positive reaction current density\n")
		return
	}
	vn, err := sym.EvalUniform(jn, nil)
	if err != nil {
		tst.Errorf("j_n eval failed: %v\n", err)
		return
	}
	vp, err := sym.EvalUniform(jp, nil)
	if err != nil {
		tst.Errorf("j_p eval failed: %v\n", err)
		return
	}
	chk.Float64(tst, "j_n", 1e-14, vn, 1.0/prm.Ln)
	chk.Float64(tst, "j_p", 1e-14, vp, -1.0/prm.Lp)
	chk.Float64(tst, "charge balance", 1e-14, prm.Ln*vn+prm.Lp*vp, 0)

	// every field the energy balance consumes is published
	needed := []string{
		"Current collector current density",
		"Negative electrode current density",
		"Positive electrode current density",
		"Negative electrolyte current density",
		"Separator electrolyte current density",
		"Positive electrolyte current density",
		"Negative electrode potential",
		"Positive electrode potential",
		"Negative electrolyte potential",
		"Separator electrolyte potential",
		"Positive electrolyte potential",
		"Electrolyte potential",
		"Negative reaction overpotential",
		"Positive reaction overpotential",
		"Negative particle surface concentration",
		"Positive particle surface concentration",
		"Positive electrode open circuit potential",
	}
	for _, name := range needed {
		if _, ok := sys.Vars.Get(name); !ok {
			tst.Errorf("field %q is not published\n", name)
			return
		}
	}

	// the concatenated electrolyte potential decomposes per sub-domain
	phiE, _ := sys.Vars.Get("Electrolyte potential")
	parts := phiE.(*sym.Concat).Orphans()
	chk.IntAssert(len(parts), 3)
	if !parts[2].Dom().Equal(sym.Positive) {
		tst.Errorf("third electrolyte potential component must live on the positive electrode\n")
		return
	}

	// write-once
	if _, err := o.Assemble(vars.Snapshot(), sub.Reactions{}); err == nil {
		tst.Errorf("second Assemble did not fail\n")
		return
	}

	// invalid thicknesses
	bad := inp.Default()
	bad.Ln = 0
	if _, err := New(bad).Assemble(vars.Snapshot(), sub.Reactions{}); err == nil {
		tst.Errorf("non-positive l_n did not cause an error\n")
		return
	}
}
