// Copyright 2026 The Gobatt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"github.com/cpmech/gosl/chk"
)

// Concat composes per-sub-domain expressions into one field spanning their
// union. Parts must be given in cell order (negative, separator, positive)
type Concat struct {
	Parts []Expr // ordered sub-domain components
	D     Domain // union of part domains
}

// Concatenation returns the ordered spatial composition of parts
func Concatenation(parts ...Expr) *Concat {
	return &Concat{parts, checkConcat(parts)}
}

// Orphans decomposes the concatenation back into its ordered sub-domain
// components
func (o *Concat) Orphans() []Expr {
	res := make([]Expr, len(o.Parts))
	copy(res, o.Parts)
	return res
}

// Dom returns the spatial domain
func (o *Concat) Dom() Domain { return o.D }

// String returns a textual representation
func (o *Concat) String() string {
	s := "concat("
	for i, p := range o.Parts {
		if i > 0 {
			s += "; "
		}
		s += p.String()
	}
	return s + ")"
}

// Bcast turns a plain scalar into a constant field over a sub-domain
type Bcast struct {
	A Expr   // scalar operand
	D Domain // target sub-domain
}

// Broadcast returns a constant field equal to a over domain d
func Broadcast(a Expr, d Domain) *Bcast {
	if !a.Dom().Empty() {
		chk.Panic("sym: can only broadcast a plain scalar; operand is already defined on %q", a.Dom())
	}
	if d.Empty() {
		chk.Panic("sym: broadcast target domain must not be empty")
	}
	return &Bcast{a, d}
}

// Dom returns the spatial domain
func (o *Bcast) Dom() Domain { return o.D }

// String returns a textual representation
func (o *Bcast) String() string { return "bcast(" + o.A.String() + " @ " + o.D.String() + ")" }

// BoundVal extracts the value of a field at one end of its domain.
// The result is a plain scalar
type BoundVal struct {
	A    Expr   // field operand
	Side string // "left" or "right"
}

// BoundaryValue returns the value of a at the given domain end
func BoundaryValue(a Expr, side string) *BoundVal {
	if side != "left" && side != "right" {
		chk.Panic("sym: boundary side must be %q or %q. %q is invalid", "left", "right", side)
	}
	if a.Dom().Empty() {
		panicScalarOperand("boundary_value")
	}
	return &BoundVal{a, side}
}

// Dom returns the scalar (everywhere) domain
func (o *BoundVal) Dom() Domain { return nil }

// String returns a textual representation
func (o *BoundVal) String() string { return o.A.String() + "|" + o.Side }

// Avg reduces a field to its domain average. The result is a plain scalar
type Avg struct {
	A Expr // field operand
}

// Average returns the domain average of a
func Average(a Expr) *Avg {
	if a.Dom().Empty() {
		panicScalarOperand("average")
	}
	return &Avg{a}
}

// Dom returns the scalar (everywhere) domain
func (o *Avg) Dom() Domain { return nil }

// String returns a textual representation
func (o *Avg) String() string { return "avg(" + o.A.String() + ")" }

// panicScalarOperand reports a spatial operator applied to a plain scalar
func panicScalarOperand(op string) {
	chk.Panic("sym: operand of %q must be a spatial field, not a plain scalar", op)
}
