// Copyright 2026 The Gobatt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// EvalUniform folds an expression under the assumption that every named field
// in env is spatially uniform. Under that assumption gradients vanish,
// averages and boundary extractions are identities, and a concatenation
// reduces to its (common) part value. This is not a discretiser; it exists so
// algebraic identities of assembled equations can be verified numerically.
func EvalUniform(e Expr, env map[string]float64) (res float64, err error) {
	switch o := e.(type) {

	case *Scalar:
		return o.V, nil

	case *Var:
		v, ok := env[o.Name]
		if !ok {
			return 0, chk.Err("sym: no value for field %q in uniform evaluation", o.Name)
		}
		return v, nil

	case *BinOp:
		var a, b float64
		a, err = EvalUniform(o.A, env)
		if err != nil {
			return
		}
		b, err = EvalUniform(o.B, env)
		if err != nil {
			return
		}
		switch o.Op {
		case "+":
			return a + b, nil
		case "-":
			return a - b, nil
		case "*":
			return a * b, nil
		case "/":
			if b == 0 {
				return 0, chk.Err("sym: division by zero in uniform evaluation of %v", e)
			}
			return a / b, nil
		case "^":
			return math.Pow(a, b), nil
		}
		return 0, chk.Err("sym: unknown binary operator %q", o.Op)

	case *GradOp:
		// uniform fields have no spatial variation
		return 0, nil

	case *DivOp:
		return 0, nil

	case *Concat:
		res, err = EvalUniform(o.Parts[0], env)
		if err != nil {
			return
		}
		for _, p := range o.Parts[1:] {
			var v float64
			v, err = EvalUniform(p, env)
			if err != nil {
				return
			}
			if v != res {
				return 0, chk.Err("sym: concatenation parts of %v are not uniform: %g != %g", e, res, v)
			}
		}
		return

	case *Bcast:
		return EvalUniform(o.A, env)

	case *BoundVal:
		return EvalUniform(o.A, env)

	case *Avg:
		return EvalUniform(o.A, env)
	}
	return 0, chk.Err("sym: cannot evaluate expression node %v", e)
}

// DependsOn tells whether target appears as a node (by identity) anywhere in e
func DependsOn(e, target Expr) bool {
	if e == target {
		return true
	}
	switch o := e.(type) {
	case *BinOp:
		return DependsOn(o.A, target) || DependsOn(o.B, target)
	case *GradOp:
		return DependsOn(o.A, target)
	case *DivOp:
		return DependsOn(o.A, target)
	case *Concat:
		for _, p := range o.Parts {
			if DependsOn(p, target) {
				return true
			}
		}
	case *Bcast:
		return DependsOn(o.A, target)
	case *BoundVal:
		return DependsOn(o.A, target)
	case *Avg:
		return DependsOn(o.A, target)
	}
	return false
}

// UsesGrad tells whether e contains a gradient whose operand depends on
// target. The assembler uses this to decide which unknowns need boundary
// conditions on both domain ends.
func UsesGrad(e, target Expr) bool {
	switch o := e.(type) {
	case *GradOp:
		if DependsOn(o.A, target) {
			return true
		}
		return UsesGrad(o.A, target)
	case *BinOp:
		return UsesGrad(o.A, target) || UsesGrad(o.B, target)
	case *DivOp:
		return UsesGrad(o.A, target)
	case *Concat:
		for _, p := range o.Parts {
			if UsesGrad(p, target) {
				return true
			}
		}
	case *Bcast:
		return UsesGrad(o.A, target)
	case *BoundVal:
		return UsesGrad(o.A, target)
	case *Avg:
		return UsesGrad(o.A, target)
	}
	return false
}
