package geom

import "math"

// Triangle is a planar triangle in the z=zc plane (2D in-plane test only).
type Triangle struct {
	P0, P1, P2 Point
}

func sign2D(a, b, c Point) float64 {
	return (a[0]-c[0])*(b[1]-c[1]) - (b[0]-c[0])*(a[1]-c[1])
}

func (s *Triangle) Volume() float64 {
	return math.Abs(sign2D(s.P0, s.P1, s.P2)) / 2
}
func (s *Triangle) Center() Point {
	return Point{(s.P0[0] + s.P1[0] + s.P2[0]) / 3, (s.P0[1] + s.P1[1] + s.P2[1]) / 3, s.P0[2]}
}
func (s *Triangle) BBox(tol float64) Box {
	lo, hi := NewPoint(), NewPoint()
	for i := 0; i < 3; i++ {
		lo[i] = math.Min(s.P0[i], math.Min(s.P1[i], s.P2[i])) - tol
		hi[i] = math.Max(s.P0[i], math.Max(s.P1[i], s.P2[i])) + tol
	}
	return Box{lo, hi}
}
func (s *Triangle) InscribedRadius() float64 {
	a, b, c := dist(s.P1, s.P2), dist(s.P0, s.P2), dist(s.P0, s.P1)
	perim := a + b + c
	if perim < 1e-14 {
		return 0
	}
	return 2 * s.Volume() / perim
}
func (s *Triangle) BoundingRadius() float64 {
	c := s.Center()
	return math.Max(dist(c, s.P0), math.Max(dist(c, s.P1), dist(c, s.P2)))
}
func (s *Triangle) IsInside(p Point) bool {
	d1 := sign2D(p, s.P0, s.P1)
	d2 := sign2D(p, s.P1, s.P2)
	d3 := sign2D(p, s.P2, s.P0)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
func (s *Triangle) IsOutside(p Point) bool { return !s.IsInside(p) }
func (s *Triangle) IsNear(p Point, tol float64) bool {
	if s.IsInside(p) {
		return true
	}
	edges := [][2]Point{{s.P0, s.P1}, {s.P1, s.P2}, {s.P2, s.P0}}
	for _, e := range edges {
		l := &Line{P0: e[0], P1: e[1]}
		if l.distanceTo(p) <= tol {
			return true
		}
	}
	return false
}
func (s *Triangle) IsNearBoundary(p Point, tol float64, within bool) bool {
	if within && !s.IsInside(p) {
		return false
	}
	edges := [][2]Point{{s.P0, s.P1}, {s.P1, s.P2}, {s.P2, s.P0}}
	for _, e := range edges {
		l := &Line{P0: e[0], P1: e[1]}
		if l.distanceTo(p) <= tol {
			return true
		}
	}
	return false
}
func (s *Triangle) DoesIntersect(p Point) bool  { return s.IsInside(p) }
func (s *Triangle) BoxIsInside(b Box) bool      { return s.BBox(0).Contains(b.Lo) && s.BBox(0).Contains(b.Hi) }
func (s *Triangle) BoxIsOutside(b Box) bool     { return !s.BBox(0).Intersects(b) }
func (s *Triangle) BoxDoesIntersect(b Box) bool { return s.BBox(0).Intersects(b) }

// Hexagon is a regular hexagon in the z=zc plane with circumradius R.
type Hexagon struct {
	Cx, Cy, Zc, R float64
}

func (s *Hexagon) verts() [6]Point {
	var v [6]Point
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3
		v[i] = Point{s.Cx + s.R*math.Cos(a), s.Cy + s.R*math.Sin(a), s.Zc}
	}
	return v
}
func (s *Hexagon) Volume() float64 { return 3 * math.Sqrt(3) / 2 * s.R * s.R }
func (s *Hexagon) Center() Point   { return Point{s.Cx, s.Cy, s.Zc} }
func (s *Hexagon) BBox(tol float64) Box {
	return Box{Point{s.Cx - s.R - tol, s.Cy - s.R - tol, s.Zc - tol}, Point{s.Cx + s.R + tol, s.Cy + s.R + tol, s.Zc + tol}}
}
func (s *Hexagon) InscribedRadius() float64 { return s.R * math.Sqrt(3) / 2 }
func (s *Hexagon) BoundingRadius() float64  { return s.R }
func (s *Hexagon) IsInside(p Point) bool {
	v := s.verts()
	c := s.Center()
	for i := 0; i < 6; i++ {
		j := (i + 1) % 6
		if sign2D(p, v[i], v[j])*sign2D(c, v[i], v[j]) < 0 {
			return false
		}
	}
	return true
}
func (s *Hexagon) IsOutside(p Point) bool { return !s.IsInside(p) }
func (s *Hexagon) IsNear(p Point, tol float64) bool {
	e := &Hexagon{s.Cx, s.Cy, s.Zc, s.R + tol}
	return e.IsInside(p)
}
func (s *Hexagon) IsNearBoundary(p Point, tol float64, within bool) bool {
	inside := s.IsInside(p)
	if within && !inside {
		return false
	}
	outer := &Hexagon{s.Cx, s.Cy, s.Zc, s.R + tol}
	inner := &Hexagon{s.Cx, s.Cy, s.Zc, s.R - tol}
	return outer.IsInside(p) && !inner.IsInside(p)
}
func (s *Hexagon) DoesIntersect(p Point) bool  { return s.IsInside(p) }
func (s *Hexagon) BoxIsInside(b Box) bool      { return s.BBox(0).Contains(b.Lo) && s.BBox(0).Contains(b.Hi) }
func (s *Hexagon) BoxIsOutside(b Box) bool     { return !s.BBox(0).Intersects(b) }
func (s *Hexagon) BoxDoesIntersect(b Box) bool { return s.BBox(0).Intersects(b) }

// Drum2D is a 2D "drum" / stadium shape: a rectangle of half-length Lx capped
// by two half-circles of radius R, axis along x, grounded on the original
// PeriDEM "drum2d" particle geometry (geomObjects.cpp).
type Drum2D struct {
	Cx, Cy, Zc, Lx, R float64 // Lx is the half-length of the straight section
}

func (s *Drum2D) Volume() float64 { return 2*s.Lx*2*s.R + math.Pi*s.R*s.R }
func (s *Drum2D) Center() Point   { return Point{s.Cx, s.Cy, s.Zc} }
func (s *Drum2D) BBox(tol float64) Box {
	return Box{Point{s.Cx - s.Lx - s.R - tol, s.Cy - s.R - tol, s.Zc - tol}, Point{s.Cx + s.Lx + s.R + tol, s.Cy + s.R + tol, s.Zc + tol}}
}
func (s *Drum2D) InscribedRadius() float64 { return s.R }
func (s *Drum2D) BoundingRadius() float64  { return s.Lx + s.R }
func (s *Drum2D) IsInside(p Point) bool {
	dx := p[0] - s.Cx
	dy := p[1] - s.Cy
	if math.Abs(dx) <= s.Lx {
		return math.Abs(dy) <= s.R
	}
	cxEnd := s.Lx
	if dx < 0 {
		cxEnd = -s.Lx
	}
	ex, ey := dx-cxEnd, dy
	return ex*ex+ey*ey <= s.R*s.R
}
func (s *Drum2D) IsOutside(p Point) bool { return !s.IsInside(p) }
func (s *Drum2D) IsNear(p Point, tol float64) bool {
	e := &Drum2D{s.Cx, s.Cy, s.Zc, s.Lx, s.R + tol}
	return e.IsInside(p)
}
func (s *Drum2D) IsNearBoundary(p Point, tol float64, within bool) bool {
	inside := s.IsInside(p)
	if within && !inside {
		return false
	}
	outer := &Drum2D{s.Cx, s.Cy, s.Zc, s.Lx, s.R + tol}
	inner := &Drum2D{s.Cx, s.Cy, s.Zc, s.Lx, s.R - tol}
	return outer.IsInside(p) && !inner.IsInside(p)
}
func (s *Drum2D) DoesIntersect(p Point) bool  { return s.IsInside(p) }
func (s *Drum2D) BoxIsInside(b Box) bool      { return s.BBox(0).Contains(b.Lo) && s.BBox(0).Contains(b.Hi) }
func (s *Drum2D) BoxIsOutside(b Box) bool     { return !s.BBox(0).Intersects(b) }
func (s *Drum2D) BoxDoesIntersect(b Box) bool { return s.BBox(0).Intersects(b) }
