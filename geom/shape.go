// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the geometrical primitives used to locate nodes
// and apply boundary conditions: points, boxes, and the named shape family
// {line, triangle, square, rectangle, hexagon, drum2d, cube, cuboid, circle,
// ellipse, sphere, cylinder, annulus, complex}.
package geom

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Point is a 3-component coordinate; unused components in 2D are zero.
type Point = []float64

// NewPoint allocates a zeroed 3-vector.
func NewPoint() Point { return make(Point, 3) }

// Box is an axis-aligned bounding box.
type Box struct {
	Lo, Hi Point // lower and upper corners
}

// Dilate returns a copy of this box grown by tol on every side.
func (b Box) Dilate(tol float64) Box {
	lo, hi := NewPoint(), NewPoint()
	for i := 0; i < 3; i++ {
		lo[i] = b.Lo[i] - tol
		hi[i] = b.Hi[i] + tol
	}
	return Box{Lo: lo, Hi: hi}
}

// Contains tells whether p lies within the box (inclusive).
func (b Box) Contains(p Point) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Lo[i] || p[i] > b.Hi[i] {
			return false
		}
	}
	return true
}

// Intersects tells whether this box overlaps another.
func (b Box) Intersects(o Box) bool {
	for i := 0; i < 3; i++ {
		if b.Hi[i] < o.Lo[i] || o.Hi[i] < b.Lo[i] {
			return false
		}
	}
	return true
}

// Shape is the capability set every geometry primitive implements.
// This replaces the deep inheritance hierarchy of the original C++ source
// (geom.h / geomObjects.cpp) with a small explicit interface, dispatched
// through a tagged variant (see factory.go and complex.go) rather than a
// class hierarchy.
type Shape interface {
	Volume() float64
	Center() Point
	BBox(tol float64) Box
	InscribedRadius() float64
	BoundingRadius() float64
	IsInside(p Point) bool
	IsOutside(p Point) bool
	IsNear(p Point, tol float64) bool
	IsNearBoundary(p Point, tol float64, within bool) bool
	DoesIntersect(p Point) bool
	BoxIsInside(b Box) bool
	BoxIsOutside(b Box) bool
	BoxDoesIntersect(b Box) bool
}

func dist(a, b Point) float64 {
	d := NewPoint()
	la.VecAdd(d, 1, a)
	la.VecAdd(d, -1, b)
	return la.VecNorm(d)
}

// panicBadParams mirrors the BadGeometryParams error kind (spec §7): raised
// when a primitive's parameter count does not match its documented arity.
func panicBadParams(name string, got, want int) {
	chk.Panic("geom: BadGeometryParams: primitive %q expects %d parameters, got %d", name, want, got)
}
