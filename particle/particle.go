// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package particle defines a particle instance: a reference mesh placed
// into world space by a Transform, carrying a material handle and the
// [GlobStart,GlobEnd) range it owns in model/'s global node-indexed
// arrays. This mirrors gofem/fem/domain.go's single global Node table
// (rather than fem/node.go's per-node back-pointer to its vertex): nodes
// are never owned by pointer, only by contiguous index range, so a
// particle can be relocated, cloned, or discarded without walking any
// node's back-reference.
package particle

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/peridem/mdl"
	"github.com/cpmech/peridem/mesh"
)

// Kind distinguishes a deformable particle from a rigid wall, since walls
// carry no material and never fracture, but still occupy a node range and
// participate in contact.
type Kind int

const (
	KindDeformable Kind = iota
	KindWall
)

// Particle is one placed instance of a reference mesh.
type Particle struct {
	ID   int
	Kind Kind

	Ref       *mesh.Mesh
	Material  mdl.Material // nil for walls
	Transform Transform

	GlobStart, GlobEnd int // [start,end) range this particle owns in model's arrays

	Horizon float64 // ε, peridynamic horizon in world units (Ref horizon * Transform.Scale)
	Kn      float64 // internal-contact normal stiffness, K_n = 18K/(π·ε⁵)
	Rc      float64 // internal-contact radius, R_c = 0.95·h (h = mesh spacing)
	Rp      float64 // particle bounding radius + horizon, used for neighbor search

	Fixed bool // zero-velocity, zero-force rigid body (e.g. an anchored wall)
}

// New places ref into world space via t, deriving the world-space horizon,
// contact stiffness, and contact radius from the reference material/mesh.
// globStart is the first index this particle will own in the model's
// global arrays; globEnd = globStart + ref.NumNodes().
func New(id int, kind Kind, ref *mesh.Mesh, mat mdl.Material, t Transform, globStart int) *Particle {
	if kind == KindDeformable && mat == nil {
		chk.Panic("particle: ConfigurationError: deformable particle %d has no material", id)
	}
	p := &Particle{
		ID: id, Kind: kind, Ref: ref, Material: mat, Transform: t,
		GlobStart: globStart, GlobEnd: globStart + ref.NumNodes(),
	}
	if mat != nil {
		p.Horizon = mat.Horizon() * t.Scale
	} else {
		p.Horizon = ref.Spacing * t.Scale
	}
	p.Rp = ref.BoundingRadius()*t.Scale + p.Horizon
	p.Rc = 0.95 * ref.Spacing * t.Scale
	if mat != nil {
		ec := mat.ComputeMaterialProperties(ref.Dim)
		p.Kn = 18.0 * ec.K / (math.Pi * math.Pow(p.Horizon, 5))
	}
	return p
}

// NumNodes returns how many global nodes this particle owns.
func (p *Particle) NumNodes() int { return p.GlobEnd - p.GlobStart }

// Contains reports whether global node index gi belongs to this particle.
func (p *Particle) Contains(gi int) bool { return gi >= p.GlobStart && gi < p.GlobEnd }

// LocalNode maps a global node index owned by this particle back to its
// index within Ref.Nodes.
func (p *Particle) LocalNode(gi int) int {
	if !p.Contains(gi) {
		chk.Panic("particle: out-of-range global index %d for particle %d [%d,%d)", gi, p.ID, p.GlobStart, p.GlobEnd)
	}
	return gi - p.GlobStart
}

// WorldNode returns the world-space reference position of the k-th local
// node (before any current displacement is added).
func (p *Particle) WorldNode(k int) []float64 {
	return p.Transform.Apply(p.Ref.Nodes[k])
}

// CenterGlobalID returns the global index of this particle's geometric
// center node.
func (p *Particle) CenterGlobalID() int {
	return p.GlobStart + p.Ref.CenterNodeID()
}
