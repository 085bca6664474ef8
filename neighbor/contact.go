package neighbor

import (
	"math"

	"github.com/cpmech/peridem/model"
	"github.com/cpmech/peridem/nsearch"
)

// minSFactor is the floor applied to SFactor when it feeds the velocity-based
// sizing formulas (spec §4.H: "s_factor ... clamped to ≥ a minimum when used
// for velocity-based sizing"). A zero or negative safety factor would let
// r_from_v/r_from_R collapse to zero and defeat the adaptive-sizing compare.
const minSFactor = 1e-3

// Schedule decides when the dynamic contact neighbor list must be rebuilt
// and how large its search skin must be, per spec §4.H. interval/counter/
// r_s/R_c_max/s_factor/v_max mirror
// original_source/src/nsearch/nsearch.h's adaptive-resize state machine: a
// hard-capped rebuild cadence that additionally shrinks itself whenever the
// fastest tracked particle could otherwise outrun its own search skin.
type Schedule struct {
	Interval int     // steps between rebuilds; shrinks when velocity demands it
	Rs       float64 // current search radius (r_s)
	RcMax    float64 // largest contact radius across all particle-pair types (R_c_max)
	SFactor  float64 // user safety factor (s_factor)

	counter    int     // steps since the interval/r_s were last (re)computed
	secCounter int     // steps since the last secondary-cadence v_max refresh
	vMax       float64 // largest nodal speed observed since the last refresh
}

// NewSchedule builds a Schedule with the given interval/skin/safety-factor.
// Rs starts at the given rs and keeps that value until the first
// secondary-cadence adaptive-sizing pass recomputes it.
func NewSchedule(interval int, rs, rcMax, sFactor float64) *Schedule {
	if interval < 1 {
		interval = 1
	}
	return &Schedule{Interval: interval, Rs: rs, RcMax: rcMax, SFactor: sFactor}
}

// Observe folds a newly-sampled relative velocity magnitude into the
// schedule's running v_max, accumulated until the next secondary-cadence
// refresh consumes it.
func (s *Schedule) Observe(relVel float64) {
	if relVel > s.vMax {
		s.vMax = relVel
	}
}

// ShouldRebuild advances the schedule by one step of size dt and reports
// whether the contact neighbor list must be rebuilt this step.
//
// Two cadences run side by side every step (spec §4.H):
//   - the secondary cadence, every max(1, ⌊0.2·interval⌋) steps, re-derives
//     interval and r_s from the v_max observed since its last firing
//     (resize, below);
//   - the primary cadence, which fires the rebuild itself once counter
//     steps have elapsed since interval was last (re)established.
func (s *Schedule) ShouldRebuild(dt float64) bool {
	s.counter++
	s.secCounter++

	secondaryCadence := int(math.Floor(0.2 * float64(s.Interval)))
	if secondaryCadence < 1 {
		secondaryCadence = 1
	}
	if s.secCounter >= secondaryCadence {
		s.secCounter = 0
		s.resize(dt)
	}

	if s.counter >= s.Interval {
		s.counter = 0
		return true
	}
	return false
}

// resize implements spec §4.H's adaptive-sizing steps 1-4, run only when the
// secondary cadence fires.
func (s *Schedule) resize(dt float64) {
	sFactor := s.SFactor
	if sFactor < minSFactor {
		sFactor = minSFactor
	}
	rFromV := s.vMax * dt * float64(s.Interval) * sFactor
	rFromR := sFactor * s.RcMax
	if rFromV > rFromR {
		newInterval := 0
		if s.vMax > 0 {
			newInterval = int(math.Floor(s.RcMax / (s.vMax * dt)))
		}
		clampedToOne := newInterval < 1
		if clampedToOne {
			newInterval = 1
		}
		s.Interval = newInterval
		if clampedToOne {
			s.Rs = s.RcMax
		} else {
			s.Rs = rFromR
		}
		s.counter = 0
	} else if s.Interval < 2 {
		s.Rs = s.RcMax
	} else {
		s.Rs = rFromR
	}
	s.vMax = 0
}

// BuildContact rebuilds m.ContactNeigh and m.ContactIndex from the current
// world positions, searching each particle's bounding radius Rp + the
// schedule's skin Rs and excluding same-particle hits via the tag-exclude
// traversal (tags = particle id per global node).
func BuildContact(m *model.Model, sched *Schedule, tags []int) {
	tree := nsearch.Build(m.Pos)
	m.ContactIndex = tree
	for _, p := range m.Particles {
		searchR := p.Rp + sched.Rs
		for k := 0; k < p.NumNodes(); k++ {
			gi := p.GlobStart + k
			ids, _ := tree.RadiusSearchExcludeTag(m.Pos[gi], searchR, tags[gi], tags)
			m.ContactNeigh[gi] = ids
		}
	}
}
