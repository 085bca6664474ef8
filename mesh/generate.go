package mesh

import "github.com/cpmech/peridem/geom"

// Generate discretizes shape on a uniform Cartesian lattice of spacing h,
// keeping every lattice point that falls inside the shape and assigning it
// a tributary volume of h^dim, the same uniform-grid discretization
// original_source's particle generator uses before any mesh refinement.
func Generate(shape geom.Shape, dim int, h float64) *Mesh {
	box := shape.BBox(0)
	var nodes [][]float64
	if dim == 2 {
		for x := box.Lo[0] + h/2; x < box.Hi[0]; x += h {
			for y := box.Lo[1] + h/2; y < box.Hi[1]; y += h {
				p := geom.Point{x, y, 0}
				if shape.IsInside(p) {
					nodes = append(nodes, []float64{x, y, 0})
				}
			}
		}
	} else {
		for x := box.Lo[0] + h/2; x < box.Hi[0]; x += h {
			for y := box.Lo[1] + h/2; y < box.Hi[1]; y += h {
				for z := box.Lo[2] + h/2; z < box.Hi[2]; z += h {
					p := geom.Point{x, y, z}
					if shape.IsInside(p) {
						nodes = append(nodes, []float64{x, y, z})
					}
				}
			}
		}
	}
	vol := h * h
	if dim == 3 {
		vol *= h
	}
	vols := make([]float64, len(nodes))
	for i := range vols {
		vols[i] = vol
	}
	return New(dim, nodes, vols, h, ElemNone, nil)
}
