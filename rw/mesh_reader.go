// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rw

import (
	"bufio"
	"encoding/xml"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/peridem/mesh"
)

// MeshData is the engine-neutral result of reading any of the three mesh
// input formats the spec names (VTU, MSH, CSV): node coordinates, per-node
// volume (when the format carries one; zero otherwise, left for the
// caller to derive), element type, and connectivity.
type MeshData struct {
	Dim     int
	Nodes   [][]float64
	Vols    []float64
	ElemT   mesh.ElemType
	Elems   [][]int
	Spacing float64
}

// ToMesh builds a mesh.Mesh from the parsed data.
func (d *MeshData) ToMesh() *mesh.Mesh {
	return mesh.New(d.Dim, d.Nodes, d.Vols, d.Spacing, d.ElemT, d.Elems)
}

// ReadMeshCSV reads a node list with one volume per node: one row per node,
// columns x,y,z,vol (2D rows omit z). Grounded on the spec's CSV mesh
// format (distinct from the From_File particle-cluster CSV read by
// ReadParticleClusterCSV, which lists whole-particle placements instead of
// per-node data).
func ReadMeshCSV(path string, dim int) (*MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("rw: cannot open mesh csv %q: %v", path, err)
	}
	defer f.Close()
	d := &MeshData{Dim: dim}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < dim+1 {
			return nil, chk.Err("rw: mesh csv row %q has too few columns for dim=%d", line, dim)
		}
		node := make([]float64, dim)
		for k := 0; k < dim; k++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(fields[k]), 64)
			if err != nil {
				return nil, chk.Err("rw: mesh csv bad coordinate %q: %v", fields[k], err)
			}
			node[k] = v
		}
		vol, err := strconv.ParseFloat(strings.TrimSpace(fields[dim]), 64)
		if err != nil {
			return nil, chk.Err("rw: mesh csv bad volume %q: %v", fields[dim], err)
		}
		d.Nodes = append(d.Nodes, node)
		d.Vols = append(d.Vols, vol)
	}
	if err := sc.Err(); err != nil {
		return nil, chk.Err("rw: error scanning mesh csv %q: %v", path, err)
	}
	return d, nil
}

// gmshElemType maps Gmsh 2.0's element-type code to this engine's ElemType
// and node count, for the element shapes this system generates particles
// with (line, triangle, quad, tetra, hex).
var gmshElemType = map[int]struct {
	kind  mesh.ElemType
	nodes int
}{
	1: {mesh.ElemNone, 2}, // 2-node line (kept as bare connectivity only)
	2: {mesh.Tri3, 3},
	3: {mesh.Quad4, 4},
	4: {mesh.Tet4, 4},
	5: {mesh.Hex8, 8},
}

// ReadMeshMSH parses a Gmsh 2.0 ASCII mesh ($MeshFormat/$Nodes/$Elements
// sections), assigning every node a uniform placeholder volume (Gmsh
// carries no per-node volume; the caller is expected to derive tributary
// volumes from the element set afterward, the same gap mesh/generate.go's
// uniform-lattice path does not have since it computes volume directly).
func ReadMeshMSH(path string, dim int) (*MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("rw: cannot open msh file %q: %v", path, err)
	}
	defer f.Close()
	d := &MeshData{Dim: dim}
	sc := bufio.NewScanner(f)
	section := ""
	var nodeIdx map[int]int
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "$") {
			section = strings.TrimPrefix(line, "$")
			if section == "Nodes" {
				nodeIdx = make(map[int]int)
			}
			continue
		}
		switch section {
		case "Nodes", "EndNodes":
			fields := strings.Fields(line)
			if len(fields) < 4 {
				continue // header count line
			}
			id, _ := strconv.Atoi(fields[0])
			node := make([]float64, dim)
			for k := 0; k < dim; k++ {
				v, _ := strconv.ParseFloat(fields[1+k], 64)
				node[k] = v
			}
			nodeIdx[id] = len(d.Nodes)
			d.Nodes = append(d.Nodes, node)
			d.Vols = append(d.Vols, 0)
		case "Elements", "EndElements":
			fields := strings.Fields(line)
			if len(fields) < 5 {
				continue // header count line
			}
			etypeCode, _ := strconv.Atoi(fields[1])
			info, ok := gmshElemType[etypeCode]
			if !ok {
				continue // unsupported element type; skip (e.g. points)
			}
			numTags, _ := strconv.Atoi(fields[2])
			start := 3 + numTags
			if len(fields) < start+info.nodes {
				continue
			}
			conn := make([]int, info.nodes)
			for k := 0; k < info.nodes; k++ {
				gmshID, _ := strconv.Atoi(fields[start+k])
				conn[k] = nodeIdx[gmshID]
			}
			if info.kind != mesh.ElemNone {
				d.ElemT = info.kind
				d.Elems = append(d.Elems, conn)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, chk.Err("rw: error scanning msh file %q: %v", path, err)
	}
	return d, nil
}

// vtuXML mirrors just enough of WriteVTU's own output shape to round-trip
// node coordinates and connectivity back in — this engine reads only the
// VTU files it (or a compatible writer) produced, not arbitrary
// third-party VTK XML.
type vtuXML struct {
	XMLName xml.Name `xml:"VTKFile"`
	Grid    struct {
		Piece struct {
			NumberOfPoints int `xml:"NumberOfPoints,attr"`
			NumberOfCells  int `xml:"NumberOfCells,attr"`
			Points         struct {
				DataArray struct {
					Text string `xml:",chardata"`
				} `xml:"DataArray"`
			} `xml:"Points"`
			Cells struct {
				DataArray []struct {
					Name string `xml:"Name,attr"`
					Text string `xml:",chardata"`
				} `xml:"DataArray"`
			} `xml:"Cells"`
		} `xml:"Piece"`
	} `xml:"UnstructuredGrid"`
}

// ReadMeshVTU parses a VTU file written by WriteVTU, recovering node
// coordinates and connectivity.
func ReadMeshVTU(path string, dim int) (*MeshData, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("rw: cannot read vtu file %q: %v", path, err)
	}
	var v vtuXML
	if err := xml.Unmarshal(b, &v); err != nil {
		return nil, chk.Err("rw: cannot parse vtu file %q: %v", path, err)
	}
	d := &MeshData{Dim: dim}
	coords := parseFloats(v.Grid.Piece.Points.DataArray.Text)
	for i := 0; i < v.Grid.Piece.NumberOfPoints; i++ {
		base := i * 3
		if base+2 >= len(coords) {
			break
		}
		node := make([]float64, dim)
		for k := 0; k < dim && k < 3; k++ {
			node[k] = coords[base+k]
		}
		d.Nodes = append(d.Nodes, node)
		d.Vols = append(d.Vols, 0)
	}
	var connectivity, offsets []int
	for _, da := range v.Grid.Piece.Cells.DataArray {
		switch da.Name {
		case "connectivity":
			connectivity = parseInts(da.Text)
		case "offsets":
			offsets = parseInts(da.Text)
		}
	}
	prev := 0
	for _, off := range offsets {
		d.Elems = append(d.Elems, connectivity[prev:off])
		prev = off
	}
	return d, nil
}

func parseFloats(s string) []float64 {
	fields := strings.Fields(s)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

func parseInts(s string) []int {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
