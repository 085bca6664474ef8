// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frac stores, per peridynamic bond, whether it has broken. Bond
// identity is (owner node, position of the neighbor within that node's
// fixed-order peridynamic neighbor list) — the same [start,end) arena
// convention the rest of this module uses instead of per-bond objects or
// back-pointers (see particle/ and model/). Breakage is irreversible: once
// a bit is set it is never cleared, mirroring the bond-based peridynamic
// damage model's one-way fracture assumption.
//
// No sparse-matrix or bitset type in the example pool models a single
// irreversible bit per (owner,neighbor) pair (gosl/la's Triplet/CCMatrix
// carry numeric coefficients, not flags), so this store is hand-rolled,
// packed 8 bonds to a byte the way a bitset normally would be.
package frac

// Store holds one broken/intact bit per bond, grouped by owner node. Row i
// holds ceil(counts[i]/8) bytes, bit b of byte k covering neighbor index
// 8*k+b.
type Store struct {
	rows   [][]byte
	counts []int
}

// NewStore allocates a broken-bond store for n owner nodes, where counts[i]
// is the number of peridynamic neighbors node i owns.
func NewStore(counts []int) *Store {
	s := &Store{
		rows:   make([][]byte, len(counts)),
		counts: append([]int(nil), counts...),
	}
	for i, c := range counts {
		s.rows[i] = make([]byte, (c+7)/8)
	}
	return s
}

// IsBroken reports whether the bond from owner to its j-th peridynamic
// neighbor has been broken.
func (s *Store) IsBroken(owner, j int) bool {
	byteIdx, bit := j/8, uint(j%8)
	return s.rows[owner][byteIdx]&(1<<bit) != 0
}

// Break marks the bond from owner to its j-th peridynamic neighbor as
// broken. Setting an already-broken bond is a no-op: there is no way back.
func (s *Store) Break(owner, j int) {
	byteIdx, bit := j/8, uint(j%8)
	s.rows[owner][byteIdx] |= 1 << bit
}

// BrokenCount returns how many of owner's bonds are currently broken.
func (s *Store) BrokenCount(owner int) int {
	n := 0
	for j := 0; j < s.counts[owner]; j++ {
		if s.IsBroken(owner, j) {
			n++
		}
	}
	return n
}

// IntactCount returns how many of owner's bonds are still intact, i.e.
// the size of its surviving peridynamic neighborhood |N_pd(i)|.
func (s *Store) IntactCount(owner int) int {
	return s.counts[owner] - s.BrokenCount(owner)
}

// Reset clears every bond of owner back to intact. Used only when a
// particle's peridynamic neighbor list is rebuilt from scratch (e.g. at
// initialization), never mid-simulation — fracture itself is never undone.
func (s *Store) Reset(owner int) {
	for i := range s.rows[owner] {
		s.rows[owner][i] = 0
	}
}
