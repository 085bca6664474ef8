package geom

// Complex composes child shapes with a per-child sign: +1 fills, -1
// subtracts. IsInside is the union of fillers minus the subtractors.
// Volume and centroid follow the signed composite formula; if the net
// signed volume is zero, the centroid falls back to the largest filler's
// centroid (spec §4.A).
type Complex struct {
	Children []Shape
	Signs    []int8
}

// NewComplex builds a composite object. len(children) must equal len(signs).
func NewComplex(children []Shape, signs []int8) *Complex {
	if len(children) != len(signs) {
		panicBadParams("complex", len(signs), len(children))
	}
	return &Complex{Children: children, Signs: signs}
}

func (s *Complex) IsInside(p Point) bool {
	inAnyFiller := false
	for i, c := range s.Children {
		if s.Signs[i] > 0 && c.IsInside(p) {
			inAnyFiller = true
		}
	}
	if !inAnyFiller {
		return false
	}
	for i, c := range s.Children {
		if s.Signs[i] < 0 && c.IsInside(p) {
			return false
		}
	}
	return true
}
func (s *Complex) IsOutside(p Point) bool { return !s.IsInside(p) }

func (s *Complex) Volume() float64 {
	var fill, sub float64
	for i, c := range s.Children {
		if s.Signs[i] > 0 {
			fill += c.Volume()
		} else {
			sub += c.Volume()
		}
	}
	return fill - sub
}

func (s *Complex) Center() Point {
	v := s.Volume()
	if v > 1e-14 {
		c := NewPoint()
		for i, child := range s.Children {
			w := float64(s.Signs[i]) * child.Volume()
			cc := child.Center()
			for k := 0; k < 3; k++ {
				c[k] += w * cc[k]
			}
		}
		for k := 0; k < 3; k++ {
			c[k] /= v
		}
		return c
	}
	// net signed volume is zero: fall back to the largest filler's centroid.
	var best Shape
	bestVol := -1.0
	for i, c := range s.Children {
		if s.Signs[i] > 0 && c.Volume() > bestVol {
			bestVol = c.Volume()
			best = c
		}
	}
	if best == nil {
		return NewPoint()
	}
	return best.Center()
}

func (s *Complex) BBox(tol float64) Box {
	var box Box
	first := true
	for i, c := range s.Children {
		if s.Signs[i] < 0 {
			continue
		}
		b := c.BBox(tol)
		if first {
			box = b
			first = false
			continue
		}
		for k := 0; k < 3; k++ {
			if b.Lo[k] < box.Lo[k] {
				box.Lo[k] = b.Lo[k]
			}
			if b.Hi[k] > box.Hi[k] {
				box.Hi[k] = b.Hi[k]
			}
		}
	}
	return box
}

func (s *Complex) InscribedRadius() float64 {
	best := 0.0
	for i, c := range s.Children {
		if s.Signs[i] > 0 && c.InscribedRadius() > best {
			best = c.InscribedRadius()
		}
	}
	return best
}

func (s *Complex) BoundingRadius() float64 {
	c := s.Center()
	best := 0.0
	for i, child := range s.Children {
		if s.Signs[i] <= 0 {
			continue
		}
		cc := child.Center()
		d := dist(c, cc) + child.BoundingRadius()
		if d > best {
			best = d
		}
	}
	return best
}

func (s *Complex) IsNear(p Point, tol float64) bool {
	for i, c := range s.Children {
		if s.Signs[i] > 0 && c.IsNear(p, tol) {
			return true
		}
	}
	return false
}

func (s *Complex) IsNearBoundary(p Point, tol float64, within bool) bool {
	if within && !s.IsInside(p) {
		return false
	}
	for _, c := range s.Children {
		if c.IsNearBoundary(p, tol, false) {
			return true
		}
	}
	return false
}

func (s *Complex) DoesIntersect(p Point) bool { return s.IsInside(p) }
func (s *Complex) BoxIsInside(b Box) bool {
	box := s.BBox(0)
	return box.Contains(b.Lo) && box.Contains(b.Hi)
}
func (s *Complex) BoxIsOutside(b Box) bool     { return !s.BBox(0).Intersects(b) }
func (s *Complex) BoxDoesIntersect(b Box) bool { return s.BBox(0).Intersects(b) }
