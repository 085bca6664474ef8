// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func testBase(dim int) Base {
	return Base{
		Horiz: 1.0,
		Rho:   1.0,
		Infl:  ConstantInfluence{},
		Dim:   dim,
		Params: ParamSet{
			HasK: true, HasG: true,
			K: 10.0, G: 5.0,
			Gc: 1.0,
		},
	}
}

// Test_single_bond_elastic_rnp is scenario #1: a single RNP bond under small
// stretch returns the closed-form force
// f = 4·J(r)·s·C·β·exp(-β·r·s²)/(ε·|B_ε|), stays unbroken, and is odd in s.
func Test_single_bond_elastic_rnp(tst *testing.T) {
	chk.PrintTitle("single-bond elastic RNP")
	base := testBase(3)
	m := NewRNP(base, nil)
	r := 0.5
	s := 0.01
	broken := false
	_, fPos := m.EnergyAndForce(r, s, &broken, true)
	if broken {
		tst.Fatalf("small stretch must not break the bond")
	}
	norm := m.Horiz * horizonVolume(m.Dim, m.Horiz)
	want := 4.0 * m.InfluenceFn(r) * s * m.C * m.Beta * math.Exp(-m.Beta*r*s*s) / norm
	if math.Abs(fPos-want) > 1e-12*math.Max(1, math.Abs(want)) {
		tst.Errorf("RNP force should match the closed-form kernel: got %v want %v", fPos, want)
	}
	broken2 := false
	_, fNeg := m.EnergyAndForce(r, -s, &broken2, true)
	if math.Abs(fPos+fNeg) > 1e-12 {
		tst.Errorf("RNP force should be odd in s: f(+s)=%v f(-s)=%v", fPos, fNeg)
	}
	if fPos <= 0 {
		tst.Errorf("expected positive (tensile) force for positive stretch, got %v", fPos)
	}
}

// Test_pmb_bond_breaking_irreversible is scenario #2: once a PMB bond's
// stretch exceeds its critical value it breaks, returns zero force, and
// cannot heal even if the stretch later falls back under the threshold.
func Test_pmb_bond_breaking_irreversible(tst *testing.T) {
	chk.PrintTitle("PMB bond breaking is irreversible")
	base := testBase(3)
	m := NewPMB(base, Prms{{N: "s0", V: 0.01}})
	r := 0.5
	broken := false

	_, f1 := m.EnergyAndForce(r, 0.001, &broken, true)
	if broken || f1 == 0 {
		tst.Fatalf("bond should remain intact and carry force below critical stretch")
	}

	_, f2 := m.EnergyAndForce(r, 0.02, &broken, true)
	if !broken {
		tst.Fatalf("bond should have broken above critical stretch")
	}
	if f2 != 0 {
		tst.Errorf("broken bond must carry zero force, got %v", f2)
	}

	_, f3 := m.EnergyAndForce(r, 0.001, &broken, true)
	if !broken || f3 != 0 {
		tst.Errorf("broken bond must stay broken (irreversible) even when stretch subsides")
	}
}

func Test_elastic_never_breaks(tst *testing.T) {
	chk.PrintTitle("PD-Elastic never breaks regardless of stretch")
	base := testBase(3)
	m := NewElastic(base, nil)
	broken := false
	_, f := m.EnergyAndForce(0.5, 5.0, &broken, true)
	if broken {
		tst.Errorf("elastic bond model must never break")
	}
	if f == 0 {
		tst.Errorf("expected nonzero force at large stretch")
	}
}

func Test_state_based_force(tst *testing.T) {
	chk.PrintTitle("PD-State scalar force follows dilation and extension")
	base := testBase(3)
	m := NewState(base, nil)
	broken := false
	r, s := 0.5, 0.02
	theta := 0.1
	mWeighted := 2.0
	_, f := m.EnergyAndForceState(r, s, &broken, mWeighted, theta)
	if broken {
		tst.Fatalf("bond should not break at small stretch")
	}
	if f == 0 {
		tst.Errorf("expected nonzero state-based force")
	}
	_, fZeroM := m.EnergyAndForceState(r, s, &broken, 0, theta)
	if fZeroM != 0 {
		tst.Errorf("degenerate zero weighted-volume must fall back to zero force, got %v", fZeroM)
	}
}

func Test_influence_fn_dispatch(tst *testing.T) {
	chk.PrintTitle("influence function factory dispatch")
	if v := NewInfluence("linear", 0).Value(0.5); math.Abs(v-0.5) > 1e-12 {
		tst.Errorf("linear influence at r=0.5 should be 0.5, got %v", v)
	}
	if v := NewInfluence("constant", 0).Value(0.9); v != 1 {
		tst.Errorf("constant influence should always be 1, got %v", v)
	}
}

func Test_compute_material_properties_missing(tst *testing.T) {
	chk.PrintTitle("material data missing panics")
	defer func() {
		if r := recover(); r == nil {
			tst.Error("expected panic for incomplete elastic-constant set")
		}
	}()
	ComputeMaterialProperties(3, ParamSet{})
}
