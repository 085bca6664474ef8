// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loading

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/peridem/model"
)

// Test_fixity_bc is concrete scenario #5: a displacement BC fixes the
// selected node so the integrator must skip it, and the prescribed
// displacement and its finite-difference velocity follow the function value.
func Test_fixity_bc(tst *testing.T) {
	chk.PrintTitle("displacement BC fixes dof and tracks prescribed value")
	m := model.New(2, 1)
	bc := &DisplacementBC{
		Sel:       Selector{Nodes: []int{0}},
		Component: 0,
		Fcn:       &fun.Cte{C: 0},
	}
	bc.Setup(m)
	if !m.IsFixed(0, 0) {
		tst.Fatalf("expected node 0 dof 0 to be marked fixed after Setup")
	}
	bc.Fcn = &fun.Cte{C: 0.5}
	bc.Apply(m, 1.0, 0.1)
	if math.Abs(m.Disp[0][0]-0.5) > 1e-12 {
		tst.Errorf("expected prescribed displacement 0.5, got %v", m.Disp[0][0])
	}
	if math.Abs(m.Vel[0][0]-5.0) > 1e-9 {
		tst.Errorf("expected finite-difference velocity (0.5-0)/0.1=5, got %v", m.Vel[0][0])
	}
}

func Test_rotation_bc_preserves_radius(tst *testing.T) {
	chk.PrintTitle("rotation BC rotates nodes rigidly about their center")
	m := model.New(2, 1)
	m.Pos[0][0], m.Pos[0][1] = 1, 0
	bc := &RotationBC{
		Sel:    Selector{Nodes: []int{0}},
		Center: []float64{0, 0},
		Fcn:    &fun.Cte{C: math.Pi / 2},
	}
	bc.Setup(m)
	bc.Apply(m, 0, 0)
	if math.Abs(m.Pos[0][0]) > 1e-9 || math.Abs(m.Pos[0][1]-1) > 1e-9 {
		tst.Errorf("expected node rotated to (0,1), got %v", m.Pos[0])
	}
}

func Test_force_bc_adds_to_force(tst *testing.T) {
	chk.PrintTitle("force BC adds a time-modulated force component")
	m := model.New(2, 1)
	bc := &ForceBC{Sel: Selector{Nodes: []int{0}}, Component: 1, Fcn: &fun.Cte{C: -3.0}}
	bc.Apply(m, 0)
	if m.Force[0][1] != -3.0 {
		tst.Errorf("expected force -3.0, got %v", m.Force[0][1])
	}
}
