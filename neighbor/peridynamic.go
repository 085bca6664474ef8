// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package neighbor builds the two neighbor lists the force pipeline
// consumes: the static peridynamic family (built once per particle, never
// rebuilt) and the dynamic contact list (rebuilt on an adaptive schedule).
// Grounded on original_source/src/nsearch/nsearch.h, which carries exactly
// this split between a one-time bond-family search and a recurring
// contact-neighbor search.
package neighbor

import (
	"github.com/cpmech/peridem/frac"
	"github.com/cpmech/peridem/model"
	"github.com/cpmech/peridem/nsearch"
	"github.com/cpmech/peridem/particle"
)

// BuildPeridynamic computes the peridynamic family of every node owned by
// p and stores it in m.PdNeighOwner. nsearch.RadiusSearch itself is
// inclusive at r (see nsearch's boundary test), so the strict "<ε, not ≤ε"
// requirement is enforced here, at the one call site that builds
// peridynamic families — nsearch stays a general-purpose index with no
// notion of strict vs. non-strict callers.
//
// Call BuildPeridynamic for every particle first, then FinalizeBondStore
// once to allocate the model's broken-bond store from the final counts:
// frac.Store is sized up front from a fixed per-owner neighbor count, so it
// cannot be grown particle-by-particle.
func BuildPeridynamic(m *model.Model, p *particle.Particle) {
	n := p.NumNodes()
	localPts := make([][]float64, n)
	for k := 0; k < n; k++ {
		localPts[k] = p.Ref.Nodes[k]
	}
	tree := nsearch.Build(localPts)
	refHorizon := p.Horizon / p.Transform.Scale
	for k := 0; k < n; k++ {
		ids, sqDists := tree.RadiusSearch(localPts[k], refHorizon)
		fam := make([]int, 0, len(ids))
		for i, id := range ids {
			if id == k {
				continue
			}
			if sqDists[i] >= refHorizon*refHorizon {
				continue // strict "<", boundary point excluded
			}
			fam = append(fam, p.GlobStart+id)
		}
		m.PdNeighOwner[p.GlobStart+k] = fam
	}
}

// FinalizeBondStore allocates m.PdBonds from the peridynamic families
// already built for every particle. Must run after every particle has
// called BuildPeridynamic and before the first force pass.
func FinalizeBondStore(m *model.Model) {
	counts := make([]int, m.NumNodes())
	for gi, fam := range m.PdNeighOwner {
		counts[gi] = len(fam)
	}
	m.PdBonds = frac.NewStore(counts)
}
