// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/peridem/geom"
)

func Test_generate_circle(tst *testing.T) {
	chk.PrintTitle("uniform-lattice discretization of a circle")
	c := geom.NewShape("circle", []float64{0, 0, 0, 1})
	m := Generate(c, 2, 0.1)
	if m.NumNodes() == 0 {
		tst.Fatalf("expected nonzero node count")
	}
	gotVol := m.TotalVolume()
	wantVol := c.Volume()
	if gotVol > wantVol*1.2 || gotVol < wantVol*0.8 {
		tst.Errorf("lattice volume %v should approximate shape volume %v", gotVol, wantVol)
	}
	if m.CenterNodeID() < 0 {
		tst.Errorf("expected a valid center node id")
	}
	if m.BoundingRadius() <= 0 || m.BoundingRadius() > 1.5 {
		tst.Errorf("bounding radius %v out of expected range", m.BoundingRadius())
	}
}

func Test_mismatched_lengths_panics(tst *testing.T) {
	chk.PrintTitle("mesh.New panics on node/volume length mismatch")
	defer func() {
		if r := recover(); r == nil {
			tst.Error("expected panic for mismatched lengths")
		}
	}()
	New(2, [][]float64{{0, 0, 0}}, []float64{1, 2}, 0.1, ElemNone, nil)
}
