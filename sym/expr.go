// Copyright 2026 The Gobatt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"github.com/cpmech/gosl/io"
)

// Expr defines one immutable node of the expression graph. Expressions are
// built by submodels and handed to the discretiser; they are never evaluated
// during assembly. Nodes are allocated once and compared by identity, so an
// unknown field can key the equation maps of a model.
type Expr interface {
	Dom() Domain    // spatial domain this expression is defined on
	String() string // textual representation (debugging and summaries)
}

// Scalar is a constant node
type Scalar struct {
	V float64 // value
}

// Num returns a new constant node
func Num(v float64) *Scalar { return &Scalar{v} }

// Dom returns the scalar (everywhere) domain
func (o *Scalar) Dom() Domain { return nil }

// String returns a textual representation
func (o *Scalar) String() string { return io.Sf("%g", o.V) }

// Var is a named field over a spatial domain; the unknowns of a model are
// Var nodes (or concatenations of Var nodes)
type Var struct {
	Name string // human-readable field name
	D    Domain // spatial domain
}

// NewVar returns a new named field node
func NewVar(name string, d Domain) *Var { return &Var{name, d} }

// Dom returns the spatial domain
func (o *Var) Dom() Domain { return o.D }

// String returns the field name
func (o *Var) String() string { return o.Name }

// BinOp is a binary arithmetic node
type BinOp struct {
	Op   string // one of "+", "-", "*", "/", "^"
	A, B Expr   // operands
	D    Domain // resulting domain
}

// Dom returns the spatial domain
func (o *BinOp) Dom() Domain { return o.D }

// String returns a textual representation
func (o *BinOp) String() string {
	return "(" + o.A.String() + " " + o.Op + " " + o.B.String() + ")"
}

// Add returns a + b
func Add(a, b Expr) *BinOp { return &BinOp{"+", a, b, merge("+", a.Dom(), b.Dom())} }

// Sub returns a - b
func Sub(a, b Expr) *BinOp { return &BinOp{"-", a, b, merge("-", a.Dom(), b.Dom())} }

// Mul returns a * b
func Mul(a, b Expr) *BinOp { return &BinOp{"*", a, b, merge("*", a.Dom(), b.Dom())} }

// Divide returns a / b (pointwise quotient; not the divergence operator)
func Divide(a, b Expr) *BinOp { return &BinOp{"/", a, b, merge("/", a.Dom(), b.Dom())} }

// Pow returns a raised to the constant power n
func Pow(a Expr, n float64) *BinOp { return &BinOp{"^", a, Num(n), a.Dom()} }

// Neg returns -a
func Neg(a Expr) *BinOp { return Mul(Num(-1), a) }

// GradOp is the spatial gradient of a field
type GradOp struct {
	A Expr // operand
}

// Grad returns grad(a)
func Grad(a Expr) *GradOp {
	if a.Dom().Empty() {
		panicScalarOperand("grad")
	}
	return &GradOp{a}
}

// Dom returns the spatial domain
func (o *GradOp) Dom() Domain { return o.A.Dom() }

// String returns a textual representation
func (o *GradOp) String() string { return "grad(" + o.A.String() + ")" }

// DivOp is the spatial divergence of a flux field
type DivOp struct {
	A Expr // operand
}

// Div returns div(a)
func Div(a Expr) *DivOp {
	if a.Dom().Empty() {
		panicScalarOperand("div")
	}
	return &DivOp{a}
}

// Dom returns the spatial domain
func (o *DivOp) Dom() Domain { return o.A.Dom() }

// String returns a textual representation
func (o *DivOp) String() string { return "div(" + o.A.String() + ")" }
