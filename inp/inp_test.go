// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const twoParticleYAML = `
model:
  dim: 2
  nt: 5
  dt: 0.0001
  scheme: central_difference
  horizon: 0.3
  gravity: [0, 0]
  n_threads: 1
zones:
  - shape: circle
    shape_params: [0, 0, 0, 1]
    mesh_source: generate
    mesh_spacing: 0.25
    material:
      kind: elastic
      density: 1.0
      K: 10
      G: 5
  - shape: circle
    shape_params: [0, 0, 0, 1]
    mesh_source: generate
    mesh_spacing: 0.25
    translation: [2.5, 0, 0]
    material:
      kind: elastic
      density: 1.0
      K: 10
      G: 5
contacts:
  - zones: [0, 1]
    Kn: 100
    restitution: 0.8
    friction: 0.3
    beta_n_factor: 1.0
    radius: 0.3
neighbor:
  s_factor: 0.5
  update_interval: 5
output:
  path: /tmp/out
  dt_out: 1
`

func Test_read_deck_keeps_explicit_values(tst *testing.T) {
	chk.PrintTitle("ReadDeck parses YAML zones and keeps explicit model values")
	path := tst.TempDir() + "/input.yaml"
	if err := os.WriteFile(path, []byte(twoParticleYAML), 0644); err != nil {
		tst.Fatalf("setup failed: %v", err)
	}
	d, err := ReadDeck(path)
	if err != nil {
		tst.Fatalf("ReadDeck failed: %v", err)
	}
	if len(d.Zones) != 2 {
		tst.Fatalf("expected 2 zones, got %d", len(d.Zones))
	}
	if d.Model.NThreads != 1 {
		tst.Errorf("expected explicit n_threads=1 preserved, got %d", d.Model.NThreads)
	}
}

func Test_build_two_particle_sim(tst *testing.T) {
	chk.PrintTitle("Build wires a full two-particle Sim from a parsed deck")
	path := tst.TempDir() + "/input.yaml"
	if err := os.WriteFile(path, []byte(twoParticleYAML), 0644); err != nil {
		tst.Fatalf("setup failed: %v", err)
	}
	d, err := ReadDeck(path)
	if err != nil {
		tst.Fatalf("ReadDeck failed: %v", err)
	}
	s, err := Build(d)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	if len(s.Model.Particles) != 2 {
		tst.Fatalf("expected 2 particles, got %d", len(s.Model.Particles))
	}
	if err := s.Init(); err != nil {
		tst.Fatalf("Init failed: %v", err)
	}
	if _, err := s.Integrate(); err != nil {
		tst.Fatalf("Integrate failed: %v", err)
	}
	if s.Model.Clock.Step != 5 {
		tst.Errorf("expected 5 steps run, got %d", s.Model.Clock.Step)
	}
}

func Test_beta_n_conversion(tst *testing.T) {
	chk.PrintTitle("betaN converts restitution to a positive damping ratio")
	b := betaN(0.8, 1.0)
	if b <= 0 {
		tst.Errorf("expected positive beta_n for restitution in (0,1), got %v", b)
	}
	// symmetric: a restitution closer to 1 (more elastic) gives smaller beta_n
	b2 := betaN(0.99, 1.0)
	if b2 >= b {
		tst.Errorf("expected beta_n to shrink as restitution approaches 1, got b(0.8)=%v b(0.99)=%v", b, b2)
	}
	if math.IsNaN(b) || math.IsInf(b, 0) {
		tst.Errorf("expected finite beta_n, got %v", b)
	}
}
