// Copyright 2026 The Gobatt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sub

import (
	"sort"

	"github.com/cellmech/gobatt/sym"
)

// Variables maps field names to symbolic expressions. It is populated
// incrementally by all submodels during a build pass; absence of a name means
// the field has not been produced yet, not a failure, since build order
// across submodels is not guaranteed.
type Variables map[string]sym.Expr

// Get returns the expression registered under name. ok is false when the
// field has not been produced yet.
func (o Variables) Get(name string) (e sym.Expr, ok bool) {
	e, ok = o[name]
	return
}

// Snapshot returns a copy; contributors read snapshots so that no submodel
// observes another's writes mid-build
func (o Variables) Snapshot() Variables {
	res := make(Variables, len(o))
	for name, e := range o {
		res[name] = e
	}
	return res
}

// Names returns the sorted field names
func (o Variables) Names() (res []string) {
	for name := range o {
		res = append(res, name)
	}
	sort.Strings(res)
	return
}

// Reactions maps a reaction identifier (e.g. "main") to per-side ("neg"/"pos")
// volumetric current-density expressions. Owned and produced by
// electrochemical submodels; consumed read-only elsewhere.
type Reactions map[string]map[string]sym.Expr

// Get returns the current density of one side of one reaction. ok is false
// when the reaction or the side has not been produced yet.
func (o Reactions) Get(id, side string) (e sym.Expr, ok bool) {
	sides, ok := o[id]
	if !ok {
		return
	}
	e, ok = sides[side]
	return
}

// StandardVariables returns the registry seed holding the unknown fields
// shared across submodels: the per-domain temperatures and their whole-cell
// concatenation. The concatenated node is the unknown keying the energy
// balance.
func StandardVariables() Variables {
	Tn := sym.NewVar("Negative electrode temperature", sym.Negative)
	Ts := sym.NewVar("Separator temperature", sym.Separator)
	Tp := sym.NewVar("Positive electrode temperature", sym.Positive)
	return Variables{
		"Negative electrode temperature": Tn,
		"Separator temperature":          Ts,
		"Positive electrode temperature": Tp,
		"Cell temperature":               sym.Concatenation(Tn, Ts, Tp),
	}
}
