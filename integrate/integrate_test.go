// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/peridem/model"
)

func Test_central_difference_free_particle(tst *testing.T) {
	chk.PrintTitle("central-difference advances an unforced, unfixed node at constant velocity")
	m := model.New(2, 1)
	m.Vol[0] = 1
	m.Vel[0][0] = 2.0
	New("central-difference").Step(m, 0.1)
	if math.Abs(m.Pos[0][0]-0.2) > 1e-12 {
		tst.Errorf("expected x advanced by v*dt=0.2, got %v", m.Pos[0][0])
	}
	if m.Acc[0][0] != 0 {
		tst.Errorf("expected zero acceleration with no force, got %v", m.Acc[0][0])
	}
}

func Test_central_difference_skips_fixed_nodes(tst *testing.T) {
	chk.PrintTitle("central-difference never advances a fixed node")
	m := model.New(2, 1)
	m.Vol[0] = 1
	m.FixDof(0, 0)
	m.Vel[0][0] = 10
	m.Force[0][0] = 100
	New("central-difference").Step(m, 0.1)
	if m.Pos[0][0] != 0 || m.Vel[0][0] != 10 {
		tst.Errorf("expected fixed node untouched by Step, got pos=%v vel=%v", m.Pos[0][0], m.Vel[0][0])
	}
}

func Test_central_difference_constant_force_matches_kinematics(tst *testing.T) {
	chk.PrintTitle("central-difference under constant force matches v=at")
	m := model.New(1, 1)
	// no owning particle => nodeDensity falls back to ρ=1, so acc = Force/ρ = Force
	m.Force[0][0] = 4.0
	dt := 0.01
	integ := New("central-difference")
	for i := 0; i < 100; i++ {
		m.Force[0][0] = 4.0
		integ.Step(m, dt)
	}
	wantVel := 4.0 * (dt * 100)
	if math.Abs(m.Vel[0][0]-wantVel) > 1e-9 {
		tst.Errorf("expected v=%v after 1s at a=4, got %v", wantVel, m.Vel[0][0])
	}
}

func Test_velocity_verlet_matches_projectile(tst *testing.T) {
	chk.PrintTitle("velocity-Verlet position update matches x=x0+v0*dt+0.5*a*dt^2 for one step")
	m := model.New(1, 1)
	m.Vol[0] = 1
	m.Vel[0][0] = 3.0
	m.Force[0][0] = -2.0
	vv := &VelocityVerlet{}
	vv.Step(m, 0.5)
	want := 3.0*0.5 + 0.5*(-2.0)*0.25
	if math.Abs(m.Disp[0][0]-want) > 1e-12 {
		tst.Errorf("expected disp=%v, got %v", want, m.Disp[0][0])
	}
	// half-kick only so far: v = 3 + 0.5*dt*a
	wantHalfVel := 3.0 + 0.5*0.5*(-2.0)
	if math.Abs(m.Vel[0][0]-wantHalfVel) > 1e-12 {
		tst.Errorf("expected half-kick vel=%v, got %v", wantHalfVel, m.Vel[0][0])
	}
	// now caller recomputes force at the new position (reuse -2.0 here) and finishes
	m.Force[0][0] = -2.0
	vv.FinishKick(m, 0.5)
	wantFullVel := wantHalfVel + 0.5*0.5*(-2.0)
	if math.Abs(m.Vel[0][0]-wantFullVel) > 1e-12 {
		tst.Errorf("expected full-kick vel=%v, got %v", wantFullVel, m.Vel[0][0])
	}
}

func Test_new_unknown_scheme_falls_back_to_central_difference(tst *testing.T) {
	chk.PrintTitle("New falls back to central-difference for an unknown scheme name")
	integ := New("does-not-exist")
	if _, ok := integ.(*CentralDifference); !ok {
		tst.Errorf("expected fallback to *CentralDifference, got %T", integ)
	}
}
