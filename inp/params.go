// Copyright 2026 The Gobatt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input (parameter) database for cell models
package inp

import (
	"encoding/json"

	"github.com/cellmech/gobatt/sym"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// CellParams holds the dimensionless constants and closures shared (read-only)
// by all submodels of one cell model. Scale factors carry the dimensional
// information needed to republish quantities in physical units.
type CellParams struct {

	// geometry and scales
	Delta          float64 // aspect ratio of the cell
	Ln             float64 // negative electrode thickness (fraction of Lx)
	Lp             float64 // positive electrode thickness (fraction of Lx)
	Lx             float64 // cell thickness [m]
	Ityp           float64 // typical current density [A.m-2]
	PotentialScale float64 // potential scale [V]

	// thermal constants
	B       float64 // ratio of volumetric heating to conduction
	Cth     float64 // thermal capacity scale
	RhoK    float64 // effective density (spatially resolved balance)
	Rho     float64 // effective density (lumped balance)
	LambdaK float64 // effective thermal conductivity
	H       float64 // surface cooling coefficient
	Theta   float64 // thermal voltage ratio
	DeltaT  float64 // temperature scale [K]
	Tref    float64 // reference temperature [K]
	Tinit   float64 // uniform initial temperature (dimensionless)

	// entropic-coefficient polynomials; dUdT(c) = a0 + a1 c + a2 c² + a3 c³
	dUdTn [4]float64 // negative electrode coefficients
	dUdTp [4]float64 // positive electrode coefficients
}

// Init initialises the parameter set from a database of named parameters
func (o *CellParams) Init(prms dbf.Params) (err error) {

	// scalar constants
	prms.Connect(&o.Delta, "delta", "delta CellParams")
	prms.Connect(&o.Ln, "l_n", "l_n CellParams")
	prms.Connect(&o.Lp, "l_p", "l_p CellParams")
	prms.Connect(&o.Lx, "Lx", "Lx CellParams")
	prms.Connect(&o.Ityp, "i_typ", "i_typ CellParams")
	prms.Connect(&o.PotentialScale, "potential_scale", "potential_scale CellParams")
	prms.Connect(&o.B, "B", "B CellParams")
	prms.Connect(&o.Cth, "C_th", "C_th CellParams")
	prms.Connect(&o.RhoK, "rho_k", "rho_k CellParams")
	prms.Connect(&o.Rho, "rho", "rho CellParams")
	prms.Connect(&o.LambdaK, "lambda_k", "lambda_k CellParams")
	prms.Connect(&o.H, "h", "h CellParams")
	prms.Connect(&o.Theta, "Theta", "Theta CellParams")
	prms.Connect(&o.DeltaT, "Delta_T", "Delta_T CellParams")
	prms.Connect(&o.Tref, "T_ref", "T_ref CellParams")
	prms.Connect(&o.Tinit, "T_init", "T_init CellParams")

	// entropic-coefficient polynomials; either the full cubic coefficients or
	// a single constant per electrode side must be given
	for i, side := range []string{"n", "p"} {
		keys := []string{"dUdT" + side + "_a0", "dUdT" + side + "_a1", "dUdT" + side + "_a2", "dUdT" + side + "_a3"}
		values, found := prms.GetValues(keys)
		var coef [4]float64
		if !utl.AllTrue(found) {
			p := prms.Find("dUdT" + side)
			if p == nil {
				return chk.Err("CellParams: either %q (constant) or %v (cubic) must be given in parameters database", "dUdT"+side, keys)
			}
			coef[0] = p.V
		} else {
			copy(coef[:], values)
		}
		if i == 0 {
			o.dUdTn = coef
		} else {
			o.dUdTp = coef
		}
	}

	// basic validity
	if o.Theta <= 0 {
		return chk.Err("CellParams: Theta must be positive. Theta=%g is invalid", o.Theta)
	}
	if o.LambdaK <= 0 || o.Cth <= 0 || o.RhoK <= 0 || o.Rho <= 0 {
		return chk.Err("CellParams: thermal constants lambda_k, C_th, rho_k and rho must be positive")
	}
	if o.Delta <= 0 || o.Lx <= 0 {
		return chk.Err("CellParams: geometric constants delta and Lx must be positive")
	}
	return
}

// DUdTn returns the entropic coefficient of the negative electrode as a
// symbolic expression in the surface concentration
func (o *CellParams) DUdTn(csurf sym.Expr) sym.Expr {
	return polynomial(o.dUdTn, csurf)
}

// DUdTp returns the entropic coefficient of the positive electrode as a
// symbolic expression in the surface concentration
func (o *CellParams) DUdTp(csurf sym.Expr) sym.Expr {
	return polynomial(o.dUdTp, csurf)
}

// polynomial builds a0 + a1 c + a2 c² + a3 c³ symbolically
func polynomial(a [4]float64, c sym.Expr) sym.Expr {
	res := sym.Expr(sym.Num(a[0]))
	for i, ai := range a[1:] {
		res = sym.Add(res, sym.Mul(sym.Num(ai), sym.Pow(c, float64(i+1))))
	}
	return res
}

// ReadParams reads a parameters database from a JSON file. Example:
//
//	{ "prms" : [ {"n":"delta", "v":0.058}, {"n":"B", "v":36.0} ] }
func ReadParams(fn string) (o *CellParams, err error) {
	b := io.ReadFile(fn)
	var data struct {
		Prms dbf.Params `json:"prms"`
	}
	if err = json.Unmarshal(b, &data); err != nil {
		return nil, chk.Err("cannot parse parameters file %q:\n%v", fn, err)
	}
	o = new(CellParams)
	if err = o.Init(data.Prms); err != nil {
		return nil, chk.Err("cannot initialise parameters from %q:\n%v", fn, err)
	}
	return
}

// Default returns a parameter set with representative values; handy for tests
// and quick runs
func Default() (o *CellParams) {
	o = new(CellParams)
	o.Delta = 0.058
	o.Ln = 0.3
	o.Lp = 0.3
	o.Lx = 1e-4
	o.Ityp = 24.0
	o.PotentialScale = 0.025
	o.B = 36.0
	o.Cth = 0.52
	o.RhoK = 1.0
	o.Rho = 1.0
	o.LambdaK = 1.0
	o.H = 0.01
	o.Theta = 0.008
	o.DeltaT = 5.0
	o.Tref = 298.15
	o.Tinit = 0.0
	o.dUdTn = [4]float64{-5e-4, 1e-3, 0, 0}
	o.dUdTp = [4]float64{-1e-3, 2e-3, -1e-3, 0}
	return
}
