// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdl implements the bond-based and state-based peridynamic
// material models (spec §4.C): per-bond energy/force, critical stretch,
// influence function, and state quantities. The dispatch follows
// gofem/msolid/elasticity.go's KGcalculator registry idiom, generalized
// from FEM constitutive updates to peridynamic bond kernels.
package mdl

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Material is the shared contract every bond model (RNP, PMB, Elastic,
// State) implements.
type Material interface {
	// EnergyAndForce evaluates a bond-based model at stretch s for a bond of
	// reference length r. broken is read and, if break is allowed and the
	// critical stretch is exceeded, set (irreversibly, if the model says so).
	EnergyAndForce(r, s float64, broken *bool, breakAllowed bool) (e, f float64)

	// EnergyAndForceState evaluates the state-based contribution of a bond
	// given the endpoint weighted volumes/dilations.
	EnergyAndForceState(r, s float64, broken *bool, m, theta float64) (e, f float64)

	BondForceDirection(dxRef, du []float64) []float64
	Strain(dxRef, du []float64) float64
	CriticalStretch(r float64) float64

	Density() float64
	Horizon() float64
	InfluenceFn(r float64) float64
	InfluenceFnMoment(i int) float64

	ComputeMaterialProperties(dim int) ElasticConstants
	IsStateActive() bool
}

// Base holds the fields common to every material variant and the shared
// helpers (influence function, moments, bond direction, strain).
type Base struct {
	Horiz         float64
	Rho           float64
	Infl          Influence
	InflBeta      float64
	Dim           int
	Params        ParamSet
	BreakIrrevers bool
}

func (b *Base) Density() float64 { return b.Rho }
func (b *Base) Horizon() float64 { return b.Horiz }
func (b *Base) InfluenceFn(r float64) float64 {
	return b.Infl.Value(r / b.Horiz)
}

// InfluenceFnMoment returns the i-th radial moment of J over the horizon,
// ∫_0^ε J(r/ε) r^(i+dim-1) dr, evaluated by composite Simpson's rule. Used
// to normalize weighted-volume-like quantities for state-based materials.
func (b *Base) InfluenceFnMoment(i int) float64 {
	const n = 64
	h := b.Horiz / n
	sum := 0.0
	for k := 0; k <= n; k++ {
		r := float64(k) * h
		w := 1.0
		if k == 0 || k == n {
			w = 1
		} else if k%2 == 1 {
			w = 4
		} else {
			w = 2
		}
		val := b.Infl.Value(r/b.Horiz) * math.Pow(r, float64(i+b.Dim-1))
		sum += w * val
	}
	return sum * h / 3
}

// BondForceDirection returns the unit vector along the current (deformed)
// bond y = Δx_ref + Δu, falling back to the zero vector when the bond has
// zero current length (NumericDegenerate, spec §7, handled by fallback).
func (b *Base) BondForceDirection(dxRef, du []float64) []float64 {
	y := make([]float64, len(dxRef))
	la.VecAdd(y, 1, dxRef)
	for i := range y {
		y[i] += du[i]
	}
	n := la.VecNorm(y)
	if n < 1e-300 {
		return make([]float64, len(dxRef))
	}
	for i := range y {
		y[i] /= n
	}
	return y
}

// Strain is the bond-stretch s = (|Δx_ref+Δu| - |Δx_ref|) / |Δx_ref|, shared
// by PMB, Elastic, and State materials.
func (b *Base) Strain(dxRef, du []float64) float64 {
	r := la.VecNorm(dxRef)
	if r < 1e-300 {
		return 0
	}
	y := make([]float64, len(dxRef))
	la.VecAdd(y, 1, dxRef)
	for i := range y {
		y[i] += du[i]
	}
	return (la.VecNorm(y) - r) / r
}

func (b *Base) ComputeMaterialProperties(dim int) ElasticConstants {
	return ComputeMaterialProperties(dim, b.Params)
}

// allocators maps material-kind names to constructors, the same registry
// pattern gofem/msolid/elasticity.go uses for KGcalculator.
var allocators = map[string]func(Base, Prms) Material{
	"rnp":     func(base Base, p Prms) Material { return NewRNP(base, p) },
	"pmb":     func(base Base, p Prms) Material { return NewPMB(base, p) },
	"elastic": func(base Base, p Prms) Material { return NewElastic(base, p) },
	"state":   func(base Base, p Prms) Material { return NewState(base, p) },
}

// New builds a Material by kind name ("rnp", "pmb", "elastic", "state").
func New(kind string, base Base, prms Prms) Material {
	alloc, ok := allocators[kind]
	if !ok {
		chk.Panic("mdl: ConfigurationError: unknown material kind %q", kind)
	}
	return alloc(base, prms)
}

// Prm is a named scalar parameter, mirroring gosl/fun.Prm.
type Prm struct {
	N string
	V float64
}

// Prms is a named parameter list, mirroring gosl/fun.Prms.
type Prms []*Prm

// Get returns the value of the named parameter and whether it was present.
func (p Prms) Get(name string) (float64, bool) {
	for _, prm := range p {
		if prm.N == name {
			return prm.V, true
		}
	}
	return 0, false
}

// GetOr returns the named parameter's value, or def if absent.
func (p Prms) GetOr(name string, def float64) float64 {
	if v, ok := p.Get(name); ok {
		return v
	}
	return def
}
