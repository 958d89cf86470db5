// Copyright 2026 The Gobatt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermal implements the energy balance submodel of the cell
package thermal

import (
	"github.com/cellmech/gobatt/inp"
	"github.com/cellmech/gobatt/sub"
	"github.com/cellmech/gobatt/sym"
	"github.com/cpmech/gosl/chk"
)

// discretisation variants
const (
	Full    = "thermal"          // spatially resolved temperature field
	XLumped = "thermal-x-lumped" // temperature collapsed to its cell average
)

// Thermal assembles the conservation-of-energy equations across the whole
// cell. The dimensionless energy balance is
//
//     C_th ρ_k dT/dt = -div(q)/δ² + B (Q_ohm + Q_rxn + Q_rev)
//
// with heat flux q = -λ_k grad(T) and volumetric heat sources from ohmic,
// irreversible (reaction) and reversible (entropic) effects. Two
// discretisation variants share the source-term construction: the full
// variant keeps the spatial temperature field with convective cooling at each
// end; the x-lumped variant evolves the cell-averaged temperature only.
type Thermal struct {
	prm     *inp.CellParams // shared cell parameters (read-only)
	variant string          // Full or XLumped
	sys     *sub.System     // contributions; set exactly once by Assemble
}

// register submodels
func init() {
	sub.SetAllocator(Full, func(prm *inp.CellParams) sub.Submodel {
		return &Thermal{prm: prm, variant: Full}
	})
	sub.SetAllocator(XLumped, func(prm *inp.CellParams) sub.Submodel {
		return &Thermal{prm: prm, variant: XLumped}
	})
}

// New returns a thermal submodel with the given discretisation variant
func New(prm *inp.CellParams, variant string) (*Thermal, error) {
	if variant != Full && variant != XLumped {
		return nil, chk.Err("unknown thermal discretisation variant %q", variant)
	}
	return &Thermal{prm: prm, variant: variant}, nil
}

// Name returns the name in the submodels database
func (o *Thermal) Name() string { return o.variant }

// System returns the contributions assembled so far (nil before Assemble)
func (o *Thermal) System() *sub.System { return o.sys }

// Assemble builds the equation contributions of this submodel. Instances are
// write-once: a second call is an error.
func (o *Thermal) Assemble(vars sub.Variables, reactions sub.Reactions) (*sub.System, error) {
	if o.sys != nil {
		return nil, chk.Err("thermal submodel %q has already been assembled; instances are write-once", o.variant)
	}
	T, Qohm, Qrxn, Qrev, err := o.Unpack(vars, reactions)
	if err != nil {
		return nil, err
	}
	switch o.variant {
	case Full:
		o.sys = o.assembleFull(T, Qohm, Qrxn, Qrev)
	case XLumped:
		o.sys = o.assembleLumped(T, Qohm, Qrxn, Qrev)
	default:
		return nil, chk.Err("unknown thermal discretisation variant %q", o.variant)
	}
	return o.sys, nil
}

// fetcher collects registry lookups and remembers which names were absent
type fetcher struct {
	vars    sub.Variables
	missing []string
}

func (o *fetcher) get(name string) sym.Expr {
	e, ok := o.vars.Get(name)
	if !ok {
		o.missing = append(o.missing, name)
	}
	return e
}

// Unpack retrieves the fields the energy balance needs and builds the three
// volumetric heat sources, each a concatenation over the negative electrode,
// separator and positive electrode. The separator carries no solid phase and
// no Faradaic reaction, so its ohmic term uses the electrolyte phase only and
// its reaction and reversible terms are zero. Every listed field must be
// present; absence is a model-wiring error reported before any equation is
// registered.
func (o *Thermal) Unpack(vars sub.Variables, reactions sub.Reactions) (T *sym.Concat, Qohm, Qrxn, Qrev sym.Expr, err error) {

	prm := o.prm
	f := fetcher{vars: vars}

	Tn := f.get("Negative electrode temperature")
	f.get("Separator temperature")
	Tp := f.get("Positive electrode temperature")
	Tk := f.get("Cell temperature")

	isn := f.get("Negative electrode current density")
	isp := f.get("Positive electrode current density")

	ien := f.get("Negative electrolyte current density")
	ies := f.get("Separator electrolyte current density")
	iep := f.get("Positive electrolyte current density")

	phisn := f.get("Negative electrode potential")
	phisp := f.get("Positive electrode potential")

	phien := f.get("Negative electrolyte potential")
	phies := f.get("Separator electrolyte potential")
	phiep := f.get("Positive electrolyte potential")

	etan := f.get("Negative reaction overpotential")
	etap := f.get("Positive reaction overpotential")

	csn := f.get("Negative particle surface concentration")
	csp := f.get("Positive particle surface concentration")

	jn, ok := reactions.Get("main", "neg")
	if !ok {
		f.missing = append(f.missing, "main reaction: negative current density")
	}
	jp, ok := reactions.Get("main", "pos")
	if !ok {
		f.missing = append(f.missing, "main reaction: positive current density")
	}

	if len(f.missing) > 0 {
		err = chk.Err("thermal submodel: missing variables: %q", f.missing)
		return
	}

	T, ok = Tk.(*sym.Concat)
	if !ok {
		err = chk.Err("thermal submodel: %q must be a whole-cell concatenation", "Cell temperature")
		return
	}

	// ohmic heating: both conducting phases per electrode, electrolyte only
	// in the separator
	QohmN := sym.Sub(sym.Neg(sym.Mul(isn, sym.Grad(phisn))), sym.Mul(ien, sym.Grad(phien)))
	QohmS := sym.Neg(sym.Mul(ies, sym.Grad(phies)))
	QohmP := sym.Sub(sym.Neg(sym.Mul(isp, sym.Grad(phisp))), sym.Mul(iep, sym.Grad(phiep)))
	Qohm = sym.Concatenation(QohmN, QohmS, QohmP)

	// irreversible reaction heating
	QrxnN := sym.Mul(jn, etan)
	QrxnP := sym.Mul(jp, etap)
	Qrxn = sym.Concatenation(QrxnN, sym.Broadcast(sym.Num(0), sym.Separator), QrxnP)

	// reversible (entropic) heating
	QrevN := sym.Mul(sym.Mul(jn, sym.Add(sym.Pow(sym.Num(prm.Theta), -1), Tn)), prm.DUdTn(csn))
	QrevP := sym.Mul(sym.Mul(jp, sym.Add(sym.Pow(sym.Num(prm.Theta), -1), Tp)), prm.DUdTp(csp))
	Qrev = sym.Concatenation(QrevN, sym.Broadcast(sym.Num(0), sym.Separator), QrevP)
	return
}

// assembleFull registers the spatially resolved energy balance: a
// diffusion-reaction equation in T with convective cooling at either end
// expressed as prescribed gradients
func (o *Thermal) assembleFull(T *sym.Concat, Qohm, Qrxn, Qrev sym.Expr) *sub.System {

	prm := o.prm
	sys := sub.NewSystem()
	q := sym.Mul(sym.Num(-prm.LambdaK), sym.Grad(T))
	Q := sym.Add(sym.Add(Qohm, Qrxn), Qrev)

	sys.Rhs[T] = sym.Divide(
		sym.Add(sym.Neg(sym.Div(q)), sym.Mul(sym.Num(prm.Delta*prm.Delta*prm.B), Q)),
		sym.Num(prm.Delta*prm.Delta*prm.Cth*prm.RhoK),
	)

	// Newton cooling at either end, written as an equivalent prescribed
	// gradient using the boundary value of T on the respective side
	Tleft := sym.BoundaryValue(T, "left")
	Tright := sym.BoundaryValue(T, "right")
	sys.Bcs[T] = map[string]sub.Bc{
		"left":  {Val: sym.Mul(sym.Num(prm.H/prm.LambdaK), Tleft), Kind: sub.Neumann},
		"right": {Val: sym.Mul(sym.Num(prm.H/prm.LambdaK), Tright), Kind: sub.Neumann},
	}
	sys.Ics[T] = sym.Num(prm.Tinit)
	o.publish(sys, T, q, Qohm, Qrxn, Qrev)
	return sys
}

// assembleLumped registers the lumped-capacitance energy balance: the cell
// temperature relaxes towards the averaged heat input. No spatial gradient of
// T is taken, so no boundary conditions apply.
func (o *Thermal) assembleLumped(T *sym.Concat, Qohm, Qrxn, Qrev sym.Expr) *sub.System {

	prm := o.prm
	sys := sub.NewSystem()
	Q := sym.Add(sym.Add(Qohm, Qrxn), Qrev)
	Qav := sym.Average(Q)

	sys.Rhs[T] = sym.Divide(
		sym.Sub(sym.Mul(sym.Num(prm.B), Qav), sym.Mul(sym.Num(2*prm.H/(prm.Delta*prm.Delta)), T)),
		sym.Num(prm.Cth*prm.Rho),
	)
	sys.Ics[T] = sym.Num(prm.Tinit)
	o.publish(sys, T, nil, Qohm, Qrxn, Qrev)
	return sys
}

// publish fills the published-variables map: temperatures, flux and heat
// sources in dimensionless and physically scaled forms. Temperatures scale
// affinely by Delta_T and T_ref; heat sources rescale to volumetric power
// density by i_typ potential_scale / L_x. The published names are a stable
// contract with other submodels and the reporting layer. q is nil in the
// lumped variant, which has no heat flux.
func (o *Thermal) publish(sys *sub.System, T *sym.Concat, q, Qohm, Qrxn, Qrev sym.Expr) {

	prm := o.prm
	inK := func(e sym.Expr) sym.Expr {
		return sym.Add(sym.Mul(sym.Num(prm.DeltaT), e), sym.Num(prm.Tref))
	}
	inWm3 := func(e sym.Expr) sym.Expr {
		return sym.Mul(sym.Num(prm.Ityp*prm.PotentialScale/prm.Lx), e)
	}

	parts := T.Orphans()
	Tn, Ts, Tp := parts[0], parts[1], parts[2]
	Tav := sym.Average(T)

	sys.Vars["Negative electrode temperature"] = Tn
	sys.Vars["Negative electrode temperature [K]"] = inK(Tn)
	sys.Vars["Separator temperature"] = Ts
	sys.Vars["Separator temperature [K]"] = inK(Ts)
	sys.Vars["Positive electrode temperature"] = Tp
	sys.Vars["Positive electrode temperature [K]"] = inK(Tp)
	sys.Vars["Cell temperature"] = T
	sys.Vars["Cell temperature [K]"] = inK(T)
	sys.Vars["Average cell temperature"] = Tav
	sys.Vars["Average cell temperature [K]"] = inK(Tav)
	if q != nil {
		sys.Vars["Heat flux"] = q
		sys.Vars["Heat flux [W.m-2]"] = q
	}
	sys.Vars["Ohmic heating"] = Qohm
	sys.Vars["Ohmic heating [A.V.m-3]"] = inWm3(Qohm)
	sys.Vars["Irreversible electrochemical heating"] = Qrxn
	sys.Vars["Irreversible electrochemical heating [A.V.m-3]"] = inWm3(Qrxn)
	sys.Vars["Reversible heating"] = Qrev
	sys.Vars["Reversible heating [A.V.m-3]"] = inWm3(Qrev)
}

// UnpackPost extracts quantities for voltage and diagnostic reporting from a
// fully assembled registry: the boundary current density, the averaged
// positive open-circuit potential, the averaged positive reaction
// overpotential and the averaged electrolyte potential over the positive
// sub-domain. Unlike Unpack, absence of a field here is a programming error
// in the model wiring, not a transient state.
func UnpackPost(vars sub.Variables) (iBcc, ocpPAv, etaRPAv, phiEPAv sym.Expr) {
	get := func(name string) sym.Expr {
		e, ok := vars.Get(name)
		if !ok {
			chk.Panic("thermal post-processing: variable %q is not in the registry", name)
		}
		return e
	}
	iBcc = get("Current collector current density")
	ocpP := get("Positive electrode open circuit potential")
	etaRP := get("Positive reaction overpotential")
	phiE := get("Electrolyte potential")

	conc, ok := phiE.(*sym.Concat)
	if !ok {
		chk.Panic("thermal post-processing: %q must be a whole-cell concatenation", "Electrolyte potential")
	}
	parts := conc.Orphans()
	if len(parts) != 3 {
		chk.Panic("thermal post-processing: %q must have three sub-domains. len(parts)=%d is invalid", "Electrolyte potential", len(parts))
	}
	ocpPAv = sym.Average(ocpP)
	etaRPAv = sym.Average(etaRP)
	phiEPAv = sym.Average(parts[2])
	return
}
