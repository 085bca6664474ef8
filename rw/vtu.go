// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rw

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// VtkCellType follows the standard VTK numbering named in the spec's
// external-interfaces section: line=3, triangle=5, quad=9, tetra=10.
type VtkCellType int

const (
	VtkLine     VtkCellType = 3
	VtkTriangle VtkCellType = 5
	VtkQuad     VtkCellType = 9
	VtkTetra    VtkCellType = 10
)

// Field is one named array attached to every node (or every cell) of a
// Grid: 1 component per node for a scalar, Dim for a vector, 6 (Voigt
// order) for a symmetric tensor. Grounded on
// original_source/src/rw/vtkWriter.h's named point/cell data arrays,
// hand-rolled over encoding/xml since no VTK-writing library appears
// anywhere in the example pack.
type Field struct {
	Name       string
	Components int
	Data       []float64 // length == NumPoints*Components (or NumCells*Components for cell data)
}

// Grid is the unstructured-grid payload one output step writes: current
// node coordinates, optional element connectivity, and arbitrary named
// point/cell arrays.
type Grid struct {
	Dim      int
	Points   [][]float64 // current-configuration coordinates
	CellType VtkCellType
	Cells    [][]int // connectivity, empty for a point-cloud-only dump (particle's own mesh may have none)
	Point    []Field // per-node arrays
	Cell     []Field // per-cell arrays
}

// WriteVTU hand-writes a minimal legacy-free VTK XML UnstructuredGrid
// (.vtu) file. It emits only the DataArray elements this engine needs —
// Points, connectivity/offsets/types when Cells is non-empty, and the
// caller-supplied Point/Cell arrays — not the full VTK XML schema.
func WriteVTU(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return chk.Err("rw: cannot create vtu file %q: %v", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	np := len(g.Points)
	nc := len(g.Cells)
	fmt.Fprintf(w, "<?xml version=\"1.0\"?>\n")
	fmt.Fprintf(w, "<VTKFile type=\"UnstructuredGrid\" version=\"0.1\">\n")
	fmt.Fprintf(w, "<UnstructuredGrid>\n")
	fmt.Fprintf(w, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", np, maxInt(nc, 0))

	fmt.Fprintf(w, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, p := range g.Points {
		writePoint3(w, p)
	}
	fmt.Fprintf(w, "</DataArray>\n</Points>\n")

	fmt.Fprintf(w, "<Cells>\n")
	if nc > 0 {
		fmt.Fprintf(w, "<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
		for _, c := range g.Cells {
			for _, id := range c {
				fmt.Fprintf(w, "%d ", id)
			}
		}
		fmt.Fprintf(w, "\n</DataArray>\n")
		fmt.Fprintf(w, "<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
		off := 0
		for _, c := range g.Cells {
			off += len(c)
			fmt.Fprintf(w, "%d ", off)
		}
		fmt.Fprintf(w, "\n</DataArray>\n")
		fmt.Fprintf(w, "<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
		for range g.Cells {
			fmt.Fprintf(w, "%d ", int(g.CellType))
		}
		fmt.Fprintf(w, "\n</DataArray>\n")
	} else {
		fmt.Fprintf(w, "<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\"></DataArray>\n")
		fmt.Fprintf(w, "<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\"></DataArray>\n")
		fmt.Fprintf(w, "<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\"></DataArray>\n")
	}
	fmt.Fprintf(w, "</Cells>\n")

	writeFieldSet(w, "PointData", g.Point)
	writeFieldSet(w, "CellData", g.Cell)

	fmt.Fprintf(w, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	if err := w.Flush(); err != nil {
		return chk.Err("rw: cannot flush vtu file %q: %v", path, err)
	}
	io.Pfblue2("rw: vtu written to <%s>\n", path)
	return nil
}

func writePoint3(w *bufio.Writer, p []float64) {
	for d := 0; d < 3; d++ {
		if d < len(p) {
			fmt.Fprintf(w, "%v ", p[d])
		} else {
			fmt.Fprintf(w, "0 ")
		}
	}
	fmt.Fprintf(w, "\n")
}

func writeFieldSet(w *bufio.Writer, tag string, fields []Field) {
	fmt.Fprintf(w, "<%s>\n", tag)
	for _, fld := range fields {
		fmt.Fprintf(w, "<DataArray type=\"Float64\" Name=%q NumberOfComponents=\"%d\" format=\"ascii\">\n", fld.Name, fld.Components)
		for _, v := range fld.Data {
			fmt.Fprintf(w, "%v ", v)
		}
		fmt.Fprintf(w, "\n</DataArray>\n")
	}
	fmt.Fprintf(w, "</%s>\n", tag)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
