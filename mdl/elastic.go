// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ElasticConstants holds a complete set of isotropic elastic constants,
// derived from whichever pair is supplied via ComputeMaterialProperties.
// The conversion formulas are the same ones gofem/msolid/elasticity.go uses
// for its SmallElasticity.Init dispatch (Calc_*_from_Enu/lG/KG/Knu).
type ElasticConstants struct {
	E, Nu, K, G, L, Mu float64 // L==λ, Mu==μ==G (kept both names for clarity)
	Gc, KIc            float64 // fracture energy release rate, fracture toughness
}

// deriveFromEnu completes the set given Young's modulus and Poisson's ratio.
func deriveFromEnu(E, nu float64) ElasticConstants {
	return ElasticConstants{
		E: E, Nu: nu,
		L:  E * nu / ((1.0 + nu) * (1.0 - 2.0*nu)),
		G:  E / (2.0 * (1.0 + nu)),
		K:  E / (3.0 * (1.0 - 2.0*nu)),
		Mu: E / (2.0 * (1.0 + nu)),
	}
}

// deriveFromLG completes the set given Lamé's λ and shear modulus G.
func deriveFromLG(l, G float64) ElasticConstants {
	E := G * (3.0*l + 2.0*G) / (l + G)
	nu := 0.5 * l / (l + G)
	K := l + 2.0*G/3.0
	return ElasticConstants{E: E, Nu: nu, L: l, G: G, K: K, Mu: G}
}

// deriveFromKG completes the set given bulk modulus K and shear modulus G.
func deriveFromKG(K, G float64) ElasticConstants {
	E := 9.0 * K * G / (3.0*K + G)
	nu := (3.0*K - 2.0*G) / (6.0*K + 2.0*G)
	l := K - 2.0*G/3.0
	return ElasticConstants{E: E, Nu: nu, L: l, G: G, K: K, Mu: G}
}

// deriveFromKnu completes the set given bulk modulus K and Poisson's ratio.
func deriveFromKnu(K, nu float64) ElasticConstants {
	E := 3.0 * K * (1.0 - 2.0*nu)
	G := 3.0 * (1.0 - 2.0*nu) * K / (2.0 * (1.0 + nu))
	l := 3.0 * K * nu / (1.0 + nu)
	return ElasticConstants{E: E, Nu: nu, L: l, G: G, K: K, Mu: G}
}

// ParamSet is the raw subset of elastic constants supplied in a material
// deck; zero fields mean "not given" (use NaN for any value genuinely 0).
type ParamSet struct {
	HasE, HasNu, HasK, HasG, HasL bool
	E, Nu, K, G, L                float64
	Gc, KIc                       float64
	PlaneStrain                   bool // false => plane-stress (2D only)
}

// ComputeMaterialProperties derives a complete ElasticConstants set from
// whichever subset ParamSet supplies, following the same {E,nu}/{l,G}/{K,G}/
// {K,nu} combinations gofem's SmallElasticity.Init recognizes. It panics
// with MaterialDataMissing (spec §7) when the given subset does not
// uniquely determine the model.
func ComputeMaterialProperties(dim int, p ParamSet) ElasticConstants {
	var ec ElasticConstants
	switch {
	case p.HasE && p.HasNu:
		ec = deriveFromEnu(p.E, p.Nu)
	case p.HasL && p.HasG:
		ec = deriveFromLG(p.L, p.G)
	case p.HasK && p.HasG:
		ec = deriveFromKG(p.K, p.G)
	case p.HasK && p.HasNu:
		ec = deriveFromKnu(p.K, p.Nu)
	default:
		chk.Panic("mdl: MaterialDataMissing: combination of elastic constants is incorrect; need one of {E,nu} {l,G} {K,G} {K,nu}, dim=%d", dim)
		return ElasticConstants{}
	}
	if dim == 2 && !p.PlaneStrain {
		// no plane-stress conversion is applied: plane stress keeps the same
		// E and nu as plane strain
		ec.E = ec.E
		ec.Nu = ec.Nu
	}
	ec.Gc = p.Gc
	ec.KIc = p.KIc
	if ec.KIc == 0 && ec.Gc > 0 {
		ec.KIc = math.Sqrt(ec.Gc * ec.E)
	}
	return ec
}
