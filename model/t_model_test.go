// Copyright 2026 The Gobatt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/cellmech/gobatt/inp"
	"github.com/cellmech/gobatt/sub"
	"github.com/cellmech/gobatt/sub/current"
	"github.com/cellmech/gobatt/sub/thermal"
	"github.com/cellmech/gobatt/sym"
	"github.com/cpmech/gosl/chk"
)

func Test_model01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model01. uniform current + resolved thermal pipeline")

	prm := inp.Default()
	m := New(prm)
	if err := m.AddByName("uniform-current"); err != nil {
		tst.Errorf("cannot add submodel: %v\n", err)
		return
	}
	if err := m.AddByName(thermal.Full); err != nil {
		tst.Errorf("cannot add submodel: %v\n", err)
		return
	}
	if err := m.Assemble(); err != nil {
		tst.Errorf("Assemble failed: %v\n", err)
		return
	}

	// one evolved unknown, no constraints, disjoint key sets with initial
	// conditions everywhere
	chk.IntAssert(len(m.Rhs), 1)
	chk.IntAssert(len(m.Algebraic), 0)
	for unknown := range m.Rhs {
		if _, ok := m.Algebraic[unknown]; ok {
			tst.Errorf("unknown %v is both evolved and constrained\n", unknown)
			return
		}
		if _, ok := m.Ics[unknown]; !ok {
			tst.Errorf("unknown %v has no initial condition\n", unknown)
			return
		}
	}

	// the energy balance governs the registry's cell temperature and carries
	// cooling conditions on both ends
	T, _ := m.Vars.Get("Cell temperature")
	if _, ok := m.Rhs[T]; !ok {
		tst.Errorf("no evolution equation for the cell temperature\n")
		return
	}
	conds, ok := m.Bcs[T]
	if !ok {
		tst.Errorf("no boundary conditions for the cell temperature\n")
		return
	}
	for _, side := range []string{"left", "right"} {
		bc, ok := conds[side]
		if !ok {
			tst.Errorf("no %q boundary condition\n", side)
			return
		}
		if bc.Kind != sub.Neumann {
			tst.Errorf("%q condition kind: got %q\n", side, bc.Kind)
			return
		}
	}

	// the merged registry feeds the post-processing step
	iBcc, ocpAv, etaAv, phiAv := thermal.UnpackPost(m.Vars)
	for label, e := range map[string]sym.Expr{"i": iBcc, "ocp": ocpAv, "eta": etaAv, "phi": phiAv} {
		if e == nil {
			tst.Errorf("post-processing returned no %q expression\n", label)
			return
		}
		if !e.Dom().Empty() {
			tst.Errorf("post-processed %q must be a plain scalar\n", label)
			return
		}
	}

	// models are build-once
	if err := m.Assemble(); err == nil {
		tst.Errorf("second Assemble did not fail\n")
		return
	}
}

func Test_model02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model02. lumped thermal pipeline")

	prm := inp.Default()
	m := New(prm)
	m.Add(current.New(prm))
	th, err := thermal.New(prm, thermal.XLumped)
	if err != nil {
		tst.Errorf("cannot create thermal submodel: %v\n", err)
		return
	}
	m.Add(th)
	if err := m.Assemble(); err != nil {
		tst.Errorf("Assemble failed: %v\n", err)
		return
	}

	// no boundary conditions exist in the lumped variant
	chk.IntAssert(len(m.Bcs), 0)
	chk.IntAssert(len(m.Rhs), 1)
	T, _ := m.Vars.Get("Cell temperature")
	if _, ok := m.Ics[T]; !ok {
		tst.Errorf("no initial condition for the cell temperature\n")
		return
	}
}

func Test_model03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model03. merge conflicts and ordering")

	// a submodel that needs fields produced later fails the build
	prm := inp.Default()
	m := New(prm)
	if err := m.AddByName(thermal.Full); err != nil {
		tst.Errorf("cannot add submodel: %v\n", err)
		return
	}
	if err := m.AddByName("uniform-current"); err != nil {
		tst.Errorf("cannot add submodel: %v\n", err)
		return
	}
	if err := m.Assemble(); err == nil {
		tst.Errorf("thermal submodel assembled before its dependencies\n")
		return
	}

	// two contributors must not define the same evolution equation
	m = New(prm)
	m.Add(current.New(prm))
	if err := m.AddByName(thermal.Full); err != nil {
		tst.Errorf("cannot add submodel: %v\n", err)
		return
	}
	if err := m.AddByName(thermal.Full); err != nil {
		tst.Errorf("cannot add submodel: %v\n", err)
		return
	}
	if err := m.Assemble(); err == nil {
		tst.Errorf("conflicting evolution equations were not detected\n")
		return
	}
}

func Test_check01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("check01. system invariants")

	prm := inp.Default()
	T := sym.NewVar("Cell temperature", sym.WholeCell)

	// evolved unknown without an initial condition
	m := New(prm)
	m.Rhs[T] = sym.Num(0)
	if err := m.Check(); err == nil {
		tst.Errorf("missing initial condition was not detected\n")
		return
	}

	// unknown that is both evolved and constrained
	m = New(prm)
	m.Rhs[T] = sym.Num(0)
	m.Algebraic[T] = sym.Num(0)
	m.Ics[T] = sym.Num(0)
	if err := m.Check(); err == nil {
		tst.Errorf("evolved and constrained unknown was not detected\n")
		return
	}

	// constrained unknown with an initial condition passes
	m = New(prm)
	m.Algebraic[T] = sym.Sub(T, sym.Broadcast(sym.Num(1), sym.WholeCell))
	m.Ics[T] = sym.Num(1)
	if err := m.Check(); err != nil {
		tst.Errorf("valid constraint was rejected: %v\n", err)
		return
	}

	// spatial differentiation without boundary conditions
	m = New(prm)
	m.Rhs[T] = sym.Div(sym.Grad(T))
	m.Ics[T] = sym.Num(0)
	if err := m.Check(); err == nil {
		tst.Errorf("missing boundary conditions were not detected\n")
		return
	}

	// one-sided boundary conditions are not enough
	m = New(prm)
	m.Rhs[T] = sym.Div(sym.Grad(T))
	m.Ics[T] = sym.Num(0)
	m.Bcs[T] = map[string]sub.Bc{"left": {Val: sym.Num(0), Kind: sub.Neumann}}
	if err := m.Check(); err == nil {
		tst.Errorf("one-sided boundary conditions were not detected\n")
		return
	}

	// lumped-style equation without spatial differentiation needs no
	// boundary conditions
	m = New(prm)
	m.Rhs[T] = sym.Mul(sym.Num(-1), T)
	m.Ics[T] = sym.Num(0)
	if err := m.Check(); err != nil {
		tst.Errorf("gradient-free equation was rejected: %v\n", err)
		return
	}
}
