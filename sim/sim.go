// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim orchestrates one run: construct the model from an input
// deck, optionally resume from a restart checkpoint, drive the explicit
// time loop, and dispatch periodic output. Grounded on fem/fem.go's FEM
// struct (init/Run lifecycle, stage loop, cpu-time banner) scaled down
// from FE's multi-stage/multi-domain bookkeeping to this engine's single
// always-active model.
package sim

import (
	"math"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/peridem/force"
	"github.com/cpmech/peridem/integrate"
	"github.com/cpmech/peridem/model"
	"github.com/cpmech/peridem/neighbor"
)

// maxNodalSpeed returns the largest nodal velocity magnitude in the model,
// the v_max the contact-neighbor resize schedule (spec §4.H) needs sampled
// every step so it can tell whether the current search skin could be
// outrun before the next rebuild.
func maxNodalSpeed(m *model.Model) float64 {
	max := 0.0
	for gi := 0; gi < m.NumNodes(); gi++ {
		v2 := 0.0
		for d := 0; d < m.Dim; d++ {
			v2 += m.Vel[gi][d] * m.Vel[gi][d]
		}
		if v2 > max {
			max = v2
		}
	}
	return math.Sqrt(max)
}

// BC is the minimal interface every loading/ boundary condition satisfies
// that the orchestrator needs to drive (Setup once, Apply every step).
type BC interface {
	Setup(m *model.Model)
	Apply(m *model.Model, t, dt float64)
}

// StopCriterion reports whether the run should end early. Grounded on the
// two named stop conditions this engine recognizes (distance between two
// particle centers, global maximum node position magnitude).
type StopCriterion interface {
	ShouldStop(m *model.Model) bool
}

// MaxParticleDist stops the run once the distance between two particle
// centers exceeds Threshold — the two-particle test's termination rule.
type MaxParticleDist struct {
	P1, P2    int // particle indices into model.Model.Particles
	Threshold float64
}

func (c MaxParticleDist) ShouldStop(m *model.Model) bool {
	p1 := m.Particles[c.P1]
	p2 := m.Particles[c.P2]
	x1 := m.Pos[p1.CenterGlobalID()]
	x2 := m.Pos[p2.CenterGlobalID()]
	var d2 float64
	for k := range x1 {
		diff := x1[k] - x2[k]
		d2 += diff * diff
	}
	return d2 > c.Threshold*c.Threshold
}

// MaxNodeDist stops the run once any node's position magnitude exceeds
// Threshold.
type MaxNodeDist struct {
	Threshold float64
}

func (c MaxNodeDist) ShouldStop(m *model.Model) bool {
	thresh2 := c.Threshold * c.Threshold
	for _, x := range m.Pos {
		var d2 float64
		for _, v := range x {
			d2 += v * v
		}
		if d2 > thresh2 {
			return true
		}
	}
	return false
}

// PostProcessor runs every output interval and may append to its own
// output stream (e.g. the two-particle CSV in postproc_twoparticle.go).
type PostProcessor interface {
	Process(m *model.Model, t float64, step int)
	Close()
}

// Sim holds everything one run needs: the model, the force pipeline, the
// chosen explicit integrator, attached boundary conditions, the adaptive
// contact schedule, stop criteria and post-processors, and the writer
// callback invoked every dtOut steps.
type Sim struct {
	Model    *model.Model
	Pipeline force.Pipeline
	StepParm force.StepParams
	Integ    integrate.Integrator
	Scheme   string // "central-difference" or "velocity-verlet"
	Sched    *neighbor.Schedule
	Tags     []int // contact exclusion tag per node, passed to neighbor.BuildContact

	BCs   []BC
	Stops []StopCriterion
	Posts []PostProcessor

	Dt      float64
	NSteps  int
	DtOut   int
	Verbose bool

	OnOutput func(m *model.Model, t float64, step int) error
}

// Init performs component L's init(): attaches loading, builds the
// peridynamic neighbor structure and bond store, and primes the first
// contact-neighbor build. It assumes the caller has already populated
// Sim.Model with particles (component G/F) and Sim.Tags.
func (s *Sim) Init() error {
	if s.Model == nil {
		chk.Panic("sim: Model must be set before Init")
	}
	for _, p := range s.Model.Particles {
		neighbor.BuildPeridynamic(s.Model, p)
	}
	neighbor.FinalizeBondStore(s.Model)
	if s.Sched == nil {
		chk.Panic("sim: Sched must be set before Init (neighbor update interval/safety factor come from the input deck)")
	}
	neighbor.BuildContact(s.Model, s.Sched, s.Tags)
	for _, bc := range s.BCs {
		bc.Setup(s.Model)
	}
	if s.Integ == nil {
		s.Integ = integrate.New(s.Scheme)
	}
	if s.Verbose {
		io.Pfyel("\nsim: init done, %d nodes, %d particles\n", s.Model.NumNodes(), len(s.Model.Particles))
	}
	return nil
}

// Restart rehydrates position/velocity state from a checkpoint reader;
// the caller supplies the already-open reader (component M) so sim/ never
// imports rw/ directly (keeping the checkpoint wire format a concern of
// the I/O package alone).
func (s *Sim) Restart(pos, vel [][]float64, step int, t float64) {
	for i := range pos {
		copy(s.Model.Pos[i], pos[i])
		copy(s.Model.Vel[i], vel[i])
	}
	s.Model.Clock.Step = step
	s.Model.Clock.Time = t
}

// Integrate drives the explicit time loop for NSteps, mirroring
// fem/fem.go's Run stage loop collapsed to this engine's single always-
// active stage. Returns the stop criterion index that fired, or -1 if the
// loop ran to completion.
func (s *Sim) Integrate() (stoppedBy int, err error) {
	stoppedBy = -1
	cputime := time.Now()
	for s.Model.Clock.Step < s.NSteps {
		t := s.Model.Clock.Time
		s.StepParm.Time = t
		for _, bc := range s.BCs {
			bc.Apply(s.Model, t, s.Dt)
		}
		s.Sched.Observe(maxNodalSpeed(s.Model))
		if s.Sched.ShouldRebuild(s.Dt) {
			neighbor.BuildContact(s.Model, s.Sched, s.Tags)
		}
		if err = s.Pipeline.Step(s.Model, s.StepParm); err != nil {
			return stoppedBy, err
		}
		s.Integ.Step(s.Model, s.Dt)
		if vv, ok := s.Integ.(*integrate.VelocityVerlet); ok {
			s.StepParm.Time = t + s.Dt
			if err = s.Pipeline.Step(s.Model, s.StepParm); err != nil {
				return stoppedBy, err
			}
			vv.FinishKick(s.Model, s.Dt)
		}
		s.Model.Clock.Step++
		s.Model.Clock.Time += s.Dt

		if s.Model.Clock.Step%s.DtOut == 0 {
			for _, p := range s.Posts {
				p.Process(s.Model, s.Model.Clock.Time, s.Model.Clock.Step)
			}
			if s.OnOutput != nil {
				if err = s.OnOutput(s.Model, s.Model.Clock.Time, s.Model.Clock.Step); err != nil {
					return stoppedBy, err
				}
			}
		}
		for i, c := range s.Stops {
			if c.ShouldStop(s.Model) {
				stoppedBy = i
				if s.Verbose {
					io.Pforan("sim: stop criterion %d fired at step %d, t=%v\n", i, s.Model.Clock.Step, s.Model.Clock.Time)
				}
				s.closePosts()
				return stoppedBy, nil
			}
		}
	}
	if s.Verbose {
		io.Pf("sim: ran %d steps, cpu time = %v\n", s.NSteps, time.Now().Sub(cputime))
	}
	s.closePosts()
	return stoppedBy, nil
}

func (s *Sim) closePosts() {
	for _, p := range s.Posts {
		p.Close()
	}
}

// Close releases resources; currently a no-op placeholder for symmetry
// with component L's run() → init() → restart() → integrate() → close()
// lifecycle, kept as its own step since output writers (component M) may
// eventually need an explicit flush/close call wired in here.
func (s *Sim) Close() {}
