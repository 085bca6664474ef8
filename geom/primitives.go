package geom

import "math"

// Circle is a 2D disk in the z=zc plane.
type Circle struct {
	Cx, Cy, Zc, R float64
}

func (s *Circle) Volume() float64 { return math.Pi * s.R * s.R }
func (s *Circle) Center() Point   { return Point{s.Cx, s.Cy, s.Zc} }
func (s *Circle) BBox(tol float64) Box {
	return Box{Point{s.Cx - s.R - tol, s.Cy - s.R - tol, s.Zc - tol}, Point{s.Cx + s.R + tol, s.Cy + s.R + tol, s.Zc + tol}}
}
func (s *Circle) InscribedRadius() float64 { return s.R }
func (s *Circle) BoundingRadius() float64  { return s.R }
func (s *Circle) IsInside(p Point) bool {
	dx, dy := p[0]-s.Cx, p[1]-s.Cy
	return dx*dx+dy*dy <= s.R*s.R
}
func (s *Circle) IsOutside(p Point) bool { return !s.IsInside(p) }
func (s *Circle) IsNear(p Point, tol float64) bool {
	dx, dy := p[0]-s.Cx, p[1]-s.Cy
	r := math.Sqrt(dx*dx + dy*dy)
	return r <= s.R+tol
}
func (s *Circle) IsNearBoundary(p Point, tol float64, within bool) bool {
	dx, dy := p[0]-s.Cx, p[1]-s.Cy
	r := math.Sqrt(dx*dx + dy*dy)
	near := math.Abs(r-s.R) <= tol
	if within {
		return near && r <= s.R
	}
	return near
}
func (s *Circle) DoesIntersect(p Point) bool { return s.IsInside(p) }
func (s *Circle) BoxIsInside(b Box) bool     { return s.BBox(0).Contains(b.Lo) && s.BBox(0).Contains(b.Hi) }
func (s *Circle) BoxIsOutside(b Box) bool    { return !s.BBox(0).Intersects(b) }
func (s *Circle) BoxDoesIntersect(b Box) bool {
	return s.BBox(0).Intersects(b)
}

// Sphere is a 3D ball.
type Sphere struct {
	Cx, Cy, Cz, R float64
}

func (s *Sphere) Volume() float64 { return 4.0 / 3.0 * math.Pi * s.R * s.R * s.R }
func (s *Sphere) Center() Point   { return Point{s.Cx, s.Cy, s.Cz} }
func (s *Sphere) BBox(tol float64) Box {
	return Box{Point{s.Cx - s.R - tol, s.Cy - s.R - tol, s.Cz - s.R - tol}, Point{s.Cx + s.R + tol, s.Cy + s.R + tol, s.Cz + s.R + tol}}
}
func (s *Sphere) InscribedRadius() float64 { return s.R }
func (s *Sphere) BoundingRadius() float64  { return s.R }
func (s *Sphere) radiusOf(p Point) float64 {
	dx, dy, dz := p[0]-s.Cx, p[1]-s.Cy, p[2]-s.Cz
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
func (s *Sphere) IsInside(p Point) bool  { return s.radiusOf(p) <= s.R }
func (s *Sphere) IsOutside(p Point) bool { return !s.IsInside(p) }
func (s *Sphere) IsNear(p Point, tol float64) bool {
	return s.radiusOf(p) <= s.R+tol
}
func (s *Sphere) IsNearBoundary(p Point, tol float64, within bool) bool {
	r := s.radiusOf(p)
	near := math.Abs(r-s.R) <= tol
	if within {
		return near && r <= s.R
	}
	return near
}
func (s *Sphere) DoesIntersect(p Point) bool  { return s.IsInside(p) }
func (s *Sphere) BoxIsInside(b Box) bool      { return s.BBox(0).Contains(b.Lo) && s.BBox(0).Contains(b.Hi) }
func (s *Sphere) BoxIsOutside(b Box) bool     { return !s.BBox(0).Intersects(b) }
func (s *Sphere) BoxDoesIntersect(b Box) bool { return s.BBox(0).Intersects(b) }

// Rectangle is an axis-aligned 2D rectangle with corners (x0,y0)-(x1,y1) at z=zc.
type Rectangle struct {
	X0, Y0, X1, Y1, Zc float64
}

func (s *Rectangle) Volume() float64 { return math.Abs((s.X1 - s.X0) * (s.Y1 - s.Y0)) }
func (s *Rectangle) Center() Point {
	return Point{(s.X0 + s.X1) / 2, (s.Y0 + s.Y1) / 2, s.Zc}
}
func (s *Rectangle) BBox(tol float64) Box {
	xlo, xhi := math.Min(s.X0, s.X1)-tol, math.Max(s.X0, s.X1)+tol
	ylo, yhi := math.Min(s.Y0, s.Y1)-tol, math.Max(s.Y0, s.Y1)+tol
	return Box{Point{xlo, ylo, s.Zc - tol}, Point{xhi, yhi, s.Zc + tol}}
}
func (s *Rectangle) InscribedRadius() float64 {
	return math.Min(math.Abs(s.X1-s.X0), math.Abs(s.Y1-s.Y0)) / 2
}
func (s *Rectangle) BoundingRadius() float64 {
	c := s.Center()
	dx, dy := s.X1-c[0], s.Y1-c[1]
	return math.Sqrt(dx*dx + dy*dy)
}
func (s *Rectangle) IsInside(p Point) bool {
	xlo, xhi := math.Min(s.X0, s.X1), math.Max(s.X0, s.X1)
	ylo, yhi := math.Min(s.Y0, s.Y1), math.Max(s.Y0, s.Y1)
	return p[0] >= xlo && p[0] <= xhi && p[1] >= ylo && p[1] <= yhi
}
func (s *Rectangle) IsOutside(p Point) bool { return !s.IsInside(p) }
func (s *Rectangle) IsNear(p Point, tol float64) bool {
	return s.BBox(tol).Contains(p)
}
func (s *Rectangle) IsNearBoundary(p Point, tol float64, within bool) bool {
	inside := s.IsInside(p)
	if within && !inside {
		return false
	}
	return s.BBox(tol).Contains(p) && !s.BBox(-tol).Contains(p)
}
func (s *Rectangle) DoesIntersect(p Point) bool { return s.IsInside(p) }
func (s *Rectangle) BoxIsInside(b Box) bool     { return s.BBox(0).Contains(b.Lo) && s.BBox(0).Contains(b.Hi) }
func (s *Rectangle) BoxIsOutside(b Box) bool    { return !s.BBox(0).Intersects(b) }
func (s *Rectangle) BoxDoesIntersect(b Box) bool { return s.BBox(0).Intersects(b) }

// Square is a Rectangle specialization taking a center and side length.
func NewSquare(cx, cy, zc, side float64) *Rectangle {
	h := side / 2
	return &Rectangle{X0: cx - h, Y0: cy - h, X1: cx + h, Y1: cy + h, Zc: zc}
}

// Cuboid is an axis-aligned 3D box.
type Cuboid struct {
	X0, Y0, Z0, X1, Y1, Z1 float64
}

func (s *Cuboid) Volume() float64 {
	return math.Abs((s.X1 - s.X0) * (s.Y1 - s.Y0) * (s.Z1 - s.Z0))
}
func (s *Cuboid) Center() Point {
	return Point{(s.X0 + s.X1) / 2, (s.Y0 + s.Y1) / 2, (s.Z0 + s.Z1) / 2}
}
func (s *Cuboid) BBox(tol float64) Box {
	return Box{
		Point{math.Min(s.X0, s.X1) - tol, math.Min(s.Y0, s.Y1) - tol, math.Min(s.Z0, s.Z1) - tol},
		Point{math.Max(s.X0, s.X1) + tol, math.Max(s.Y0, s.Y1) + tol, math.Max(s.Z0, s.Z1) + tol},
	}
}
func (s *Cuboid) InscribedRadius() float64 {
	return math.Min(math.Min(math.Abs(s.X1-s.X0), math.Abs(s.Y1-s.Y0)), math.Abs(s.Z1-s.Z0)) / 2
}
func (s *Cuboid) BoundingRadius() float64 {
	c := s.Center()
	dx, dy, dz := s.X1-c[0], s.Y1-c[1], s.Z1-c[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
func (s *Cuboid) IsInside(p Point) bool { return s.BBox(0).Contains(p) }
func (s *Cuboid) IsOutside(p Point) bool { return !s.IsInside(p) }
func (s *Cuboid) IsNear(p Point, tol float64) bool { return s.BBox(tol).Contains(p) }
func (s *Cuboid) IsNearBoundary(p Point, tol float64, within bool) bool {
	inside := s.IsInside(p)
	if within && !inside {
		return false
	}
	return s.BBox(tol).Contains(p) && !s.BBox(-tol).Contains(p)
}
func (s *Cuboid) DoesIntersect(p Point) bool  { return s.IsInside(p) }
func (s *Cuboid) BoxIsInside(b Box) bool      { return s.BBox(0).Contains(b.Lo) && s.BBox(0).Contains(b.Hi) }
func (s *Cuboid) BoxIsOutside(b Box) bool     { return !s.BBox(0).Intersects(b) }
func (s *Cuboid) BoxDoesIntersect(b Box) bool { return s.BBox(0).Intersects(b) }

// NewCube builds a Cuboid specialization taking a center and side length.
func NewCube(cx, cy, cz, side float64) *Cuboid {
	h := side / 2
	return &Cuboid{X0: cx - h, Y0: cy - h, Z0: cz - h, X1: cx + h, Y1: cy + h, Z1: cz + h}
}

// Ellipse is a 2D ellipse in the z=zc plane with semi-axes a (x) and b (y).
type Ellipse struct {
	Cx, Cy, Zc, A, B float64
}

func (s *Ellipse) Volume() float64 { return math.Pi * s.A * s.B }
func (s *Ellipse) Center() Point   { return Point{s.Cx, s.Cy, s.Zc} }
func (s *Ellipse) BBox(tol float64) Box {
	return Box{Point{s.Cx - s.A - tol, s.Cy - s.B - tol, s.Zc - tol}, Point{s.Cx + s.A + tol, s.Cy + s.B + tol, s.Zc + tol}}
}
func (s *Ellipse) InscribedRadius() float64 { return math.Min(s.A, s.B) }
func (s *Ellipse) BoundingRadius() float64  { return math.Max(s.A, s.B) }
func (s *Ellipse) normalized(p Point) float64 {
	dx, dy := (p[0]-s.Cx)/s.A, (p[1]-s.Cy)/s.B
	return dx*dx + dy*dy
}
func (s *Ellipse) IsInside(p Point) bool  { return s.normalized(p) <= 1 }
func (s *Ellipse) IsOutside(p Point) bool { return !s.IsInside(p) }
func (s *Ellipse) IsNear(p Point, tol float64) bool {
	e := &Ellipse{s.Cx, s.Cy, s.Zc, s.A + tol, s.B + tol}
	return e.IsInside(p)
}
func (s *Ellipse) IsNearBoundary(p Point, tol float64, within bool) bool {
	n := s.normalized(p)
	near := math.Abs(n-1) <= tol*2/math.Min(s.A, s.B)
	if within {
		return near && n <= 1
	}
	return near
}
func (s *Ellipse) DoesIntersect(p Point) bool  { return s.IsInside(p) }
func (s *Ellipse) BoxIsInside(b Box) bool      { return s.BBox(0).Contains(b.Lo) && s.BBox(0).Contains(b.Hi) }
func (s *Ellipse) BoxIsOutside(b Box) bool     { return !s.BBox(0).Intersects(b) }
func (s *Ellipse) BoxDoesIntersect(b Box) bool { return s.BBox(0).Intersects(b) }

// Cylinder is a 3D cylinder with its axis parallel to z, centered at (cx,cy),
// spanning [z0,z1] with radius R.
type Cylinder struct {
	Cx, Cy, Z0, Z1, R float64
}

func (s *Cylinder) Volume() float64 { return math.Pi * s.R * s.R * math.Abs(s.Z1-s.Z0) }
func (s *Cylinder) Center() Point   { return Point{s.Cx, s.Cy, (s.Z0 + s.Z1) / 2} }
func (s *Cylinder) BBox(tol float64) Box {
	return Box{Point{s.Cx - s.R - tol, s.Cy - s.R - tol, math.Min(s.Z0, s.Z1) - tol},
		Point{s.Cx + s.R + tol, s.Cy + s.R + tol, math.Max(s.Z0, s.Z1) + tol}}
}
func (s *Cylinder) InscribedRadius() float64 { return math.Min(s.R, math.Abs(s.Z1-s.Z0)/2) }
func (s *Cylinder) BoundingRadius() float64 {
	h := math.Abs(s.Z1-s.Z0) / 2
	return math.Sqrt(s.R*s.R + h*h)
}
func (s *Cylinder) IsInside(p Point) bool {
	dx, dy := p[0]-s.Cx, p[1]-s.Cy
	zlo, zhi := math.Min(s.Z0, s.Z1), math.Max(s.Z0, s.Z1)
	return dx*dx+dy*dy <= s.R*s.R && p[2] >= zlo && p[2] <= zhi
}
func (s *Cylinder) IsOutside(p Point) bool { return !s.IsInside(p) }
func (s *Cylinder) IsNear(p Point, tol float64) bool {
	e := &Cylinder{s.Cx, s.Cy, s.Z0 - tol, s.Z1 + tol, s.R + tol}
	return e.IsInside(p)
}
func (s *Cylinder) IsNearBoundary(p Point, tol float64, within bool) bool {
	dx, dy := p[0]-s.Cx, p[1]-s.Cy
	r := math.Sqrt(dx*dx + dy*dy)
	near := math.Abs(r-s.R) <= tol
	if within {
		return near && s.IsInside(p)
	}
	return near
}
func (s *Cylinder) DoesIntersect(p Point) bool  { return s.IsInside(p) }
func (s *Cylinder) BoxIsInside(b Box) bool      { return s.BBox(0).Contains(b.Lo) && s.BBox(0).Contains(b.Hi) }
func (s *Cylinder) BoxIsOutside(b Box) bool     { return !s.BBox(0).Intersects(b) }
func (s *Cylinder) BoxDoesIntersect(b Box) bool { return s.BBox(0).Intersects(b) }

// Annulus is the region between two concentric circles (2D, z=zc plane).
type Annulus struct {
	Cx, Cy, Zc, Rin, Rout float64
}

func (s *Annulus) Volume() float64 { return math.Pi * (s.Rout*s.Rout - s.Rin*s.Rin) }
func (s *Annulus) Center() Point   { return Point{s.Cx, s.Cy, s.Zc} }
func (s *Annulus) BBox(tol float64) Box {
	return Box{Point{s.Cx - s.Rout - tol, s.Cy - s.Rout - tol, s.Zc - tol}, Point{s.Cx + s.Rout + tol, s.Cy + s.Rout + tol, s.Zc + tol}}
}
func (s *Annulus) InscribedRadius() float64 { return (s.Rout - s.Rin) / 2 }
func (s *Annulus) BoundingRadius() float64  { return s.Rout }
func (s *Annulus) radiusOf(p Point) float64 {
	dx, dy := p[0]-s.Cx, p[1]-s.Cy
	return math.Sqrt(dx*dx + dy*dy)
}
func (s *Annulus) IsInside(p Point) bool {
	r := s.radiusOf(p)
	return r >= s.Rin && r <= s.Rout
}
func (s *Annulus) IsOutside(p Point) bool { return !s.IsInside(p) }
func (s *Annulus) IsNear(p Point, tol float64) bool {
	r := s.radiusOf(p)
	return r >= s.Rin-tol && r <= s.Rout+tol
}
func (s *Annulus) IsNearBoundary(p Point, tol float64, within bool) bool {
	r := s.radiusOf(p)
	near := math.Abs(r-s.Rin) <= tol || math.Abs(r-s.Rout) <= tol
	if within {
		return near && s.IsInside(p)
	}
	return near
}
func (s *Annulus) DoesIntersect(p Point) bool  { return s.IsInside(p) }
func (s *Annulus) BoxIsInside(b Box) bool      { return s.BBox(0).Contains(b.Lo) && s.BBox(0).Contains(b.Hi) }
func (s *Annulus) BoxIsOutside(b Box) bool     { return !s.BBox(0).Intersects(b) }
func (s *Annulus) BoxDoesIntersect(b Box) bool { return s.BBox(0).Intersects(b) }

// Line is a 3D line segment between two points, treated as a thin shape with
// a near-tolerance for inside/near tests.
type Line struct {
	P0, P1 Point
}

func (s *Line) Volume() float64 { return 0 }
func (s *Line) Center() Point {
	return Point{(s.P0[0] + s.P1[0]) / 2, (s.P0[1] + s.P1[1]) / 2, (s.P0[2] + s.P1[2]) / 2}
}
func (s *Line) BBox(tol float64) Box {
	lo, hi := NewPoint(), NewPoint()
	for i := 0; i < 3; i++ {
		lo[i] = math.Min(s.P0[i], s.P1[i]) - tol
		hi[i] = math.Max(s.P0[i], s.P1[i]) + tol
	}
	return Box{lo, hi}
}
func (s *Line) length() float64 { return dist(s.P0, s.P1) }
func (s *Line) InscribedRadius() float64 { return 0 }
func (s *Line) BoundingRadius() float64  { return s.length() / 2 }
func (s *Line) closestParam(p Point) float64 {
	L := s.length()
	if L < 1e-14 {
		return 0
	}
	var t float64
	for i := 0; i < 3; i++ {
		t += (p[i] - s.P0[i]) * (s.P1[i] - s.P0[i])
	}
	t /= L * L
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t
}
func (s *Line) distanceTo(p Point) float64 {
	t := s.closestParam(p)
	q := NewPoint()
	for i := 0; i < 3; i++ {
		q[i] = s.P0[i] + t*(s.P1[i]-s.P0[i])
	}
	return dist(p, q)
}
func (s *Line) IsInside(p Point) bool  { return s.distanceTo(p) < 1e-10 }
func (s *Line) IsOutside(p Point) bool { return !s.IsInside(p) }
func (s *Line) IsNear(p Point, tol float64) bool { return s.distanceTo(p) <= tol }
func (s *Line) IsNearBoundary(p Point, tol float64, within bool) bool {
	return s.IsNear(p, tol)
}
func (s *Line) DoesIntersect(p Point) bool  { return s.IsInside(p) }
func (s *Line) BoxIsInside(b Box) bool      { return false }
func (s *Line) BoxIsOutside(b Box) bool     { return !s.BBox(0).Intersects(b) }
func (s *Line) BoxDoesIntersect(b Box) bool { return s.BBox(0).Intersects(b) }
