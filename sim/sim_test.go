// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/peridem/force"
	"github.com/cpmech/peridem/geom"
	"github.com/cpmech/peridem/mdl"
	"github.com/cpmech/peridem/mesh"
	"github.com/cpmech/peridem/model"
	"github.com/cpmech/peridem/neighbor"
	"github.com/cpmech/peridem/particle"
)

func buildTwoParticleSim(tst *testing.T) *Sim {
	shape := geom.NewShape("circle", []float64{0, 0, 0, 1})
	ref := mesh.Generate(shape, 2, 0.25)
	base := mdl.Base{
		Horiz: 0.3, Rho: 1.0, Infl: mdl.ConstantInfluence{}, Dim: 2,
		Params: mdl.ParamSet{HasK: true, HasG: true, K: 10, G: 5},
	}
	mat := mdl.NewElastic(base, nil)

	t1 := particle.Identity()
	p1 := particle.New(0, particle.KindDeformable, ref, mat, t1, 0)
	t2 := particle.Identity()
	t2.Translation = [3]float64{2.5, 0, 0}
	p2 := particle.New(1, particle.KindDeformable, ref, mat, t2, p1.GlobEnd)

	m := model.New(2, p2.GlobEnd)
	m.AddParticle(p1, 0)
	m.AddParticle(p2, 1)

	tags := make([]int, m.NumNodes())
	for gi := 0; gi < m.NumNodes(); gi++ {
		if gi < p1.GlobEnd {
			tags[gi] = 0
		} else {
			tags[gi] = 1
		}
	}

	s := &Sim{
		Model:  m,
		Scheme: "central-difference",
		Sched:  neighbor.NewSchedule(5, 0.1, 1.0, 0.5),
		Tags:   tags,
		Dt:     1e-4,
		NSteps: 5,
		DtOut:  1,
		StepParm: force.StepParams{
			Contact: force.ContactParams{
				Default: force.ContactLaw{Kn: 100, Mu: 0.3},
				Radius:  func(int) float64 { return 0.3 },
			},
			Gravity: []float64{0, 0},
		},
	}
	if err := s.Init(); err != nil {
		tst.Fatalf("Init failed: %v", err)
	}
	return s
}

func Test_sim_init_and_integrate_two_particles(tst *testing.T) {
	chk.PrintTitle("sim orchestrates init and a short explicit time loop for two contacting particles")
	s := buildTwoParticleSim(tst)
	stoppedBy, err := s.Integrate()
	if err != nil {
		tst.Fatalf("Integrate failed: %v", err)
	}
	if stoppedBy != -1 {
		tst.Errorf("expected no stop criterion to fire, got %d", stoppedBy)
	}
	if s.Model.Clock.Step != 5 {
		tst.Errorf("expected 5 steps taken, got %d", s.Model.Clock.Step)
	}
}

func Test_sim_max_particle_dist_stop_criterion(tst *testing.T) {
	chk.PrintTitle("max_particle_dist stop criterion fires once centers separate beyond threshold")
	s := buildTwoParticleSim(tst)
	s.Stops = []StopCriterion{MaxParticleDist{P1: 0, P2: 1, Threshold: 1.0}}
	s.NSteps = 1000
	stoppedBy, err := s.Integrate()
	if err != nil {
		tst.Fatalf("Integrate failed: %v", err)
	}
	if stoppedBy != 0 {
		tst.Errorf("expected stop criterion 0 to fire (centers already %v apart > 1.0), got %d", 2.5, stoppedBy)
	}
}

func Test_sim_max_node_dist_stop_criterion_threshold(tst *testing.T) {
	chk.PrintTitle("max_node_dist stop criterion fires beyond its threshold and not within it")
	m := model.New(2, 1)
	m.Pos[0][0] = 5.0
	c := MaxNodeDist{Threshold: 1.0}
	if !c.ShouldStop(m) {
		tst.Errorf("expected stop criterion to report true for a node already beyond threshold")
	}
	c2 := MaxNodeDist{Threshold: 10.0}
	if c2.ShouldStop(m) {
		tst.Errorf("expected stop criterion to report false when within threshold")
	}
}

func Test_two_particle_postprocessor_writes_csv(tst *testing.T) {
	chk.PrintTitle("two-particle post-processor appends a CSV row per call")
	s := buildTwoParticleSim(tst)
	path := tst.TempDir() + "/pp.csv"
	pp := NewTwoParticlePostProcessor(0, 1, path, 2.0)
	pp.Process(s.Model, 0.0, 0)
	pp.Close()
	data, err := os.ReadFile(path)
	if err != nil {
		tst.Fatalf("cannot read postproc output: %v", err)
	}
	if len(data) == 0 {
		tst.Errorf("expected non-empty postproc CSV output")
	}
}
