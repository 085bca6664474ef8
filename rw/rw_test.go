// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rw

import (
	"math"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_checkpoint_roundtrip(tst *testing.T) {
	chk.PrintTitle("checkpoint write/read roundtrips step, time, positions and velocities")
	path := tst.TempDir() + "/restart.gob"
	c := &Checkpoint{
		Step: 42, Time: 1.5,
		Pos: [][]float64{{1, 2}, {3, 4}},
		Vel: [][]float64{{0.1, 0.2}, {0.3, 0.4}},
	}
	if err := WriteCheckpoint(path, c); err != nil {
		tst.Fatalf("write failed: %v", err)
	}
	got, err := ReadCheckpoint(path)
	if err != nil {
		tst.Fatalf("read failed: %v", err)
	}
	if got.Step != c.Step || math.Abs(got.Time-c.Time) > 1e-12 {
		tst.Errorf("expected step/time %d/%v, got %d/%v", c.Step, c.Time, got.Step, got.Time)
	}
	if got.Pos[1][1] != 4 || got.Vel[0][0] != 0.1 {
		tst.Errorf("expected array contents to roundtrip, got %v / %v", got.Pos, got.Vel)
	}
}

func Test_vtu_write_then_read_back_points_and_cells(tst *testing.T) {
	chk.PrintTitle("VTU writer output can be re-parsed to recover points and connectivity")
	path := tst.TempDir() + "/out.vtu"
	g := &Grid{
		Dim:      2,
		Points:   [][]float64{{0, 0}, {1, 0}, {0, 1}},
		CellType: VtkTriangle,
		Cells:    [][]int{{0, 1, 2}},
		Point: []Field{
			{Name: "Displacement", Components: 2, Data: []float64{0, 0, 0.1, 0, 0, 0.1}},
		},
	}
	if err := WriteVTU(path, g); err != nil {
		tst.Fatalf("write failed: %v", err)
	}
	d, err := ReadMeshVTU(path, 2)
	if err != nil {
		tst.Fatalf("read failed: %v", err)
	}
	if len(d.Nodes) != 3 {
		tst.Fatalf("expected 3 nodes, got %d", len(d.Nodes))
	}
	if math.Abs(d.Nodes[1][0]-1) > 1e-9 {
		tst.Errorf("expected node 1 x=1, got %v", d.Nodes[1][0])
	}
	if len(d.Elems) != 1 || len(d.Elems[0]) != 3 {
		tst.Errorf("expected one triangle with 3 vertices, got %v", d.Elems)
	}
}

func Test_read_mesh_csv(tst *testing.T) {
	chk.PrintTitle("mesh CSV reader parses node coordinates and per-node volume")
	path := tst.TempDir() + "/mesh.csv"
	content := "# x, y, vol\n0,0,0.01\n1,0,0.01\n0,1,0.01\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tst.Fatalf("setup failed: %v", err)
	}
	d, err := ReadMeshCSV(path, 2)
	if err != nil {
		tst.Fatalf("read failed: %v", err)
	}
	if len(d.Nodes) != 3 || d.Vols[2] != 0.01 {
		tst.Errorf("expected 3 nodes with vol 0.01, got %v / %v", d.Nodes, d.Vols)
	}
}

func Test_read_mesh_msh_gmsh2(tst *testing.T) {
	chk.PrintTitle("Gmsh 2.0 MSH reader parses nodes and triangle elements")
	path := tst.TempDir() + "/mesh.msh"
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
3
1 0 0 0
2 1 0 0
3 0 1 0
$EndNodes
$Elements
1
1 2 2 0 0 1 2 3
$EndElements
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tst.Fatalf("setup failed: %v", err)
	}
	d, err := ReadMeshMSH(path, 2)
	if err != nil {
		tst.Fatalf("read failed: %v", err)
	}
	if len(d.Nodes) != 3 {
		tst.Fatalf("expected 3 nodes, got %d", len(d.Nodes))
	}
	if len(d.Elems) != 1 || len(d.Elems[0]) != 3 {
		tst.Errorf("expected one triangle, got %v", d.Elems)
	}
}

func Test_read_particle_cluster_csv_with_and_without_orientation(tst *testing.T) {
	chk.PrintTitle("particle cluster CSV reader fills in a seeded random orientation when absent")
	path := tst.TempDir() + "/cluster.csv"
	content := "0,0,0,1.0,0.5,1\n2,0,0,1.0,2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tst.Fatalf("setup failed: %v", err)
	}
	entries, err := ReadParticleClusterCSV(path, 7)
	if err != nil {
		tst.Fatalf("read failed: %v", err)
	}
	if len(entries) != 2 {
		tst.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Orientation != 0.5 || entries[0].ZoneID != 1 {
		tst.Errorf("expected explicit orientation 0.5 and zone 1, got %+v", entries[0])
	}
	if entries[1].ZoneID != 2 {
		tst.Errorf("expected zone 2 for second entry, got %+v", entries[1])
	}
	if entries[1].Orientation < 0 || entries[1].Orientation >= 2*math.Pi {
		tst.Errorf("expected random orientation in [0,2pi), got %v", entries[1].Orientation)
	}
}
