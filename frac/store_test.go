// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_bond_count_invariant checks that |N_pd(i)| (IntactCount) always
// equals the owner's neighbor count minus however many bonds are stored
// broken, across byte-boundary-spanning neighbor counts.
func Test_bond_count_invariant(tst *testing.T) {
	chk.PrintTitle("broken-bond store: intact-count invariant")
	counts := []int{0, 1, 7, 8, 9, 17}
	s := NewStore(counts)
	breakSet := map[[2]int]bool{
		{2, 3}:  true,
		{3, 0}:  true,
		{3, 7}:  true,
		{5, 16}: true,
		{5, 0}:  true,
	}
	for k := range breakSet {
		s.Break(k[0], k[1])
	}
	for owner, n := range counts {
		wantBroken := 0
		for j := 0; j < n; j++ {
			if breakSet[[2]int{owner, j}] {
				wantBroken++
			}
		}
		if got := s.BrokenCount(owner); got != wantBroken {
			tst.Errorf("owner %d: BrokenCount=%d, want %d", owner, got, wantBroken)
		}
		if got := s.IntactCount(owner); got != n-wantBroken {
			tst.Errorf("owner %d: IntactCount=%d, want %d", owner, got, n-wantBroken)
		}
	}
}

func Test_break_is_irreversible(tst *testing.T) {
	chk.PrintTitle("broken-bond store: breaking is irreversible")
	s := NewStore([]int{4})
	if s.IsBroken(0, 2) {
		tst.Fatalf("bond should start intact")
	}
	s.Break(0, 2)
	if !s.IsBroken(0, 2) {
		tst.Fatalf("bond should be broken after Break")
	}
	s.Break(0, 2) // breaking twice must stay a no-op, not toggle
	if !s.IsBroken(0, 2) {
		tst.Fatalf("re-breaking must not un-break the bond")
	}
}

func Test_reset_clears_owner_only(tst *testing.T) {
	chk.PrintTitle("broken-bond store: Reset is scoped to one owner")
	s := NewStore([]int{3, 3})
	s.Break(0, 1)
	s.Break(1, 1)
	s.Reset(0)
	if s.IsBroken(0, 1) {
		tst.Errorf("owner 0 should be fully reset")
	}
	if !s.IsBroken(1, 1) {
		tst.Errorf("owner 1 must be unaffected by owner 0's reset")
	}
}
