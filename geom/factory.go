package geom

// nparams documents, per primitive name, the exact parameter-vector length
// the factory requires, following the original PeriDEM geomObjectsUitl.cpp
// dispatch table.
var nparams = map[string]int{
	"line":      6, // x0,y0,z0,x1,y1,z1
	"triangle":  9, // three 3D points
	"square":    4, // cx,cy,zc,side
	"rectangle": 5, // x0,y0,x1,y1,zc
	"hexagon":   4, // cx,cy,zc,R
	"drum2d":    5, // cx,cy,zc,Lx,R
	"cube":      4, // cx,cy,cz,side
	"cuboid":    6, // x0,y0,z0,x1,y1,z1
	"circle":    4, // cx,cy,zc,R
	"ellipse":   5, // cx,cy,zc,A,B
	"sphere":    4, // cx,cy,cz,R
	"cylinder":  5, // cx,cy,z0,z1,R
	"annulus":   5, // cx,cy,zc,Rin,Rout
}

// NewShape builds a primitive from its name and parameter vector. It panics
// with BadGeometryParams (spec §7) when len(p) does not match the
// documented arity for name.
func NewShape(name string, p []float64) Shape {
	want, known := nparams[name]
	if !known {
		panicBadParams(name, len(p), -1)
	}
	if len(p) != want {
		panicBadParams(name, len(p), want)
	}
	switch name {
	case "line":
		return &Line{P0: Point{p[0], p[1], p[2]}, P1: Point{p[3], p[4], p[5]}}
	case "triangle":
		return &Triangle{P0: Point{p[0], p[1], p[2]}, P1: Point{p[3], p[4], p[5]}, P2: Point{p[6], p[7], p[8]}}
	case "square":
		return NewSquare(p[0], p[1], p[2], p[3])
	case "rectangle":
		return &Rectangle{X0: p[0], Y0: p[1], X1: p[2], Y1: p[3], Zc: p[4]}
	case "hexagon":
		return &Hexagon{Cx: p[0], Cy: p[1], Zc: p[2], R: p[3]}
	case "drum2d":
		return &Drum2D{Cx: p[0], Cy: p[1], Zc: p[2], Lx: p[3], R: p[4]}
	case "cube":
		return NewCube(p[0], p[1], p[2], p[3])
	case "cuboid":
		return &Cuboid{X0: p[0], Y0: p[1], Z0: p[2], X1: p[3], Y1: p[4], Z1: p[5]}
	case "circle":
		return &Circle{Cx: p[0], Cy: p[1], Zc: p[2], R: p[3]}
	case "ellipse":
		return &Ellipse{Cx: p[0], Cy: p[1], Zc: p[2], A: p[3], B: p[4]}
	case "sphere":
		return &Sphere{Cx: p[0], Cy: p[1], Cz: p[2], R: p[3]}
	case "cylinder":
		return &Cylinder{Cx: p[0], Cy: p[1], Z0: p[2], Z1: p[3], R: p[4]}
	case "annulus":
		return &Annulus{Cx: p[0], Cy: p[1], Zc: p[2], Rin: p[3], Rout: p[4]}
	}
	panicBadParams(name, len(p), want)
	return nil
}
