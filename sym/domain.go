// Copyright 2026 The Gobatt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sym implements the symbolic expression graph used to assemble
// governing equations before discretisation
package sym

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Domain identifies the spatial sub-domain(s) an expression is defined on.
// An empty domain means the expression is a plain scalar (defined everywhere).
// The order of sub-domains along the cell is fixed: negative electrode,
// separator, positive electrode.
type Domain []string

// cell sub-domains
var (
	Negative  = Domain{"negative electrode"}
	Separator = Domain{"separator"}
	Positive  = Domain{"positive electrode"}
	WholeCell = Domain{"negative electrode", "separator", "positive electrode"}
)

// order gives the position of each sub-domain along the cell
var order = map[string]int{
	"negative electrode": 0,
	"separator":          1,
	"positive electrode": 2,
}

// Empty tells whether this domain is the scalar (everywhere) domain
func (o Domain) Empty() bool { return len(o) == 0 }

// Equal compares two domains
func (o Domain) Equal(d Domain) bool {
	if len(o) != len(d) {
		return false
	}
	for i, name := range o {
		if d[i] != name {
			return false
		}
	}
	return true
}

// String returns a textual representation
func (o Domain) String() string {
	if o.Empty() {
		return "scalar"
	}
	return strings.Join(o, "+")
}

// merge computes the domain of a binary operation. Scalars combine with any
// field; two fields must live on the same domain.
func merge(op string, a, b Domain) Domain {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	if !a.Equal(b) {
		chk.Panic("sym: operands of %q have inconsistent domains: %q and %q", op, a, b)
	}
	return a
}

// checkConcat validates that parts are contiguous sub-domains in cell order
// and returns the concatenated domain
func checkConcat(parts []Expr) (dom Domain) {
	if len(parts) < 2 {
		chk.Panic("sym: concatenation needs at least two parts")
	}
	last := -1
	for i, p := range parts {
		d := p.Dom()
		if d.Empty() {
			chk.Panic("sym: concatenation part %d is a plain scalar; broadcast it over a sub-domain first", i)
		}
		for _, name := range d {
			idx, ok := order[name]
			if !ok {
				chk.Panic("sym: unknown sub-domain %q in concatenation", name)
			}
			if idx <= last {
				chk.Panic("sym: concatenation parts out of cell order at %q (order is negative, separator, positive)", name)
			}
			last = idx
			dom = append(dom, name)
		}
	}
	return
}
