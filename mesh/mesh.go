// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh holds the reference discretization of a single particle
// shape: node coordinates, per-node volumes, and (optionally) an element
// connectivity table for quadrature-point strain/stress post-processing.
// The struct layout is grounded on gofem/inp/msh.go's Vert/Cell/Mesh
// trio, collapsed from a general multi-material FE mesh down to the
// single-shape, single-material reference mesh a particle instance scales
// and translates into world space (see particle/ and model/'s
// [start,end) arena convention, which replaces Mesh.Verts/Cells'
// pointer-based ownership with flat array ranges).
package mesh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// ElemType names the reference element used for quadrature-point field
// recovery (spec's Strain_Stress output), independent of particle
// discretization into peridynamic nodes. Populated even when no
// Strain_Stress output was requested for this run, since mesh/ must not
// depend on output configuration.
type ElemType string

const (
	ElemNone  ElemType = ""
	ElemTri3  ElemType = "tri3"
	ElemQuad4 ElemType = "quad4"
	ElemTet4  ElemType = "tet4"
	ElemHex8  ElemType = "hex8"
)

// Mesh is the reference (undeformed, unscaled) discretization of one
// particle shape, centered however the shape generator placed it.
type Mesh struct {
	Dim     int         // 2 or 3
	Nodes   [][]float64 // reference coordinates, one per node
	Vols    []float64   // per-node volume (area in 2D, volume in 3D)
	Spacing float64     // characteristic mesh spacing h

	// quadrature connectivity, for Strain_Stress recovery; may be nil if the
	// reference particle was discretized by node placement alone (no
	// supporting elements), but its presence never depends on whether this
	// run's output config asked for strain/stress fields.
	ElemT ElemType
	Elems [][]int // element -> node indices

	centerID       int
	boundingRadius float64
}

// New builds a Mesh from node coordinates and per-node volumes, deriving
// the bounding radius and center node (the node closest to the centroid,
// matching gofem's convention of picking a representative vertex rather
// than synthesizing a new coordinate).
func New(dim int, nodes [][]float64, vols []float64, spacing float64, elemT ElemType, elems [][]int) *Mesh {
	if len(nodes) != len(vols) {
		chk.Panic("mesh: ConfigurationError: len(nodes)=%d != len(vols)=%d", len(nodes), len(vols))
	}
	m := &Mesh{
		Dim: dim, Nodes: nodes, Vols: vols, Spacing: spacing,
		ElemT: elemT, Elems: elems,
	}
	m.deriveCenterAndRadius()
	return m
}

func (m *Mesh) deriveCenterAndRadius() {
	centroid := make([]float64, m.Dim)
	for _, p := range m.Nodes {
		for d := 0; d < m.Dim; d++ {
			centroid[d] += p[d]
		}
	}
	n := float64(len(m.Nodes))
	if n > 0 {
		for d := range centroid {
			centroid[d] /= n
		}
	}
	bestID, bestD2 := -1, 0.0
	maxR := 0.0
	for i, p := range m.Nodes {
		diff := make([]float64, m.Dim)
		for d := 0; d < m.Dim; d++ {
			diff[d] = p[d] - centroid[d]
		}
		d2 := 0.0
		for _, v := range diff {
			d2 += v * v
		}
		if bestID < 0 || d2 < bestD2 {
			bestID, bestD2 = i, d2
		}
		if r := la.VecNorm(diff); r > maxR {
			maxR = r
		}
	}
	m.centerID = bestID
	m.boundingRadius = maxR
}

// CenterNodeID returns the index of the node nearest the mesh centroid.
func (m *Mesh) CenterNodeID() int { return m.centerID }

// BoundingRadius returns the max distance from the centroid to any node,
// the radius a particle instance uses to size its contact search box.
func (m *Mesh) BoundingRadius() float64 { return m.boundingRadius }

// NumNodes returns the node count.
func (m *Mesh) NumNodes() int { return len(m.Nodes) }

// TotalVolume sums every node's volume share, the reference particle's
// total material volume before any scaling transform is applied.
func (m *Mesh) TotalVolume() float64 {
	sum := 0.0
	for _, v := range m.Vols {
		sum += v
	}
	return sum
}
