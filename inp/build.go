// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"fmt"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/peridem/force"
	"github.com/cpmech/peridem/geom"
	"github.com/cpmech/peridem/loading"
	"github.com/cpmech/peridem/mdl"
	"github.com/cpmech/peridem/mesh"
	"github.com/cpmech/peridem/model"
	"github.com/cpmech/peridem/neighbor"
	"github.com/cpmech/peridem/particle"
	"github.com/cpmech/peridem/rw"
	"github.com/cpmech/peridem/sim"
)

// rampFunc implements gosl/fun.Func as value + rate*t, the one temporal
// shape the spec's BC decks need beyond a bare constant (gosl/fun.Cte
// already covers the constant case).
type rampFunc struct {
	Value, Rate float64
}

func (r *rampFunc) F(t float64, x []float64) float64 { return r.Value + r.Rate*t }

func buildFunc(d BCDeck) fun.Func {
	switch d.FuncName {
	case "ramp":
		return &rampFunc{Value: d.Value, Rate: d.Rate}
	default:
		return &fun.Cte{C: d.Value}
	}
}

// buildMaterial constructs an mdl.Material from a zone's MaterialDeck.
func buildMaterial(dim int, d MaterialDeck) mdl.Material {
	infl := mdl.ConstantInfluence{}
	base := mdl.Base{
		Dim: dim, Rho: d.Density, Infl: infl, InflBeta: d.InflBeta,
		BreakIrrevers: true,
	}
	params := mdl.ParamSet{
		HasK: d.K != 0, HasG: d.G != 0, HasE: d.E != 0, HasNu: d.Nu != 0,
		K: d.K, G: d.G, E: d.E, Nu: d.Nu, Gc: d.Gc,
	}
	base.Params = params
	prms := mdl.Prms{
		{N: "beta", V: d.Beta}, {N: "kappa", V: d.Kappa}, {N: "s0", V: d.S0},
	}
	return mdl.New(d.Kind, base, prms)
}

// buildZoneMesh constructs the reference mesh for one zone, either by
// uniform lattice generation over its geometric primitive or by reading
// one of the three file-based mesh formats (component M).
func buildZoneMesh(z ZoneDeck, dim int) *mesh.Mesh {
	shape := geom.NewShape(z.Shape, z.ShapeParams)
	if z.MeshSource == "" || z.MeshSource == "generate" {
		spacing := z.MeshSpacing
		if spacing <= 0 {
			chk.Panic("inp: ConfigurationError: zone with shape %q needs a positive mesh_spacing to generate", z.Shape)
		}
		return mesh.Generate(shape, dim, spacing)
	}
	var data *rw.MeshData
	var err error
	switch {
	case hasSuffix(z.MeshSource, ".csv"):
		data, err = rw.ReadMeshCSV(z.MeshSource, dim)
	case hasSuffix(z.MeshSource, ".msh"):
		data, err = rw.ReadMeshMSH(z.MeshSource, dim)
	case hasSuffix(z.MeshSource, ".vtu"):
		data, err = rw.ReadMeshVTU(z.MeshSource, dim)
	default:
		chk.Panic("inp: ConfigurationError: unrecognized mesh_source extension %q", z.MeshSource)
	}
	if err != nil {
		chk.Panic("inp: MeshDataError: %v", err)
	}
	data.Dim = dim
	data.Spacing = z.MeshSpacing
	return data.ToMesh()
}

func hasSuffix(s, suf string) bool {
	return len(s) >= len(suf) && s[len(s)-len(suf):] == suf
}

// betaN converts a user-supplied restitution coefficient ε∈(0,1) into the
// normal-damping ratio β_n, the spec §4.L init() formula:
// β_n = −2·ln(ε) / sqrt(π² + ln²ε) · β_n_factor.
func betaN(eps, factor float64) float64 {
	if eps <= 0 || eps >= 1 {
		chk.Panic("inp: ConfigurationError: restitution must be in (0,1), got %v", eps)
	}
	lnEps := math.Log(eps)
	return -2 * lnEps / math.Sqrt(math.Pi*math.Pi+lnEps*lnEps) * factor
}

// placedParticle pairs a built particle instance with the zone deck index
// it was generated from (a zone may place more than one particle via a
// From_File cluster).
type placedParticle struct {
	p    *particle.Particle
	zone int
}

// Build constructs a fully wired sim.Sim from a parsed Deck: particles
// placed from their zones, materials, the model's node arrays, contact
// parameters (with the ε→β_n conversion), the neighbor schedule, and every
// zone's boundary conditions — the spec's init() sequence up to but not
// including Sim.Init's own neighbor/bond-store construction, which the
// caller still must invoke.
func Build(d *Deck) (*sim.Sim, error) {
	dim := d.Model.Dim
	var all []placedParticle
	globStart := 0
	nextID := 0
	for zi, z := range d.Zones {
		var mat mdl.Material
		kind := particle.KindDeformable
		if z.IsWall {
			kind = particle.KindWall
		} else {
			mat = buildMaterial(dim, z.Material)
		}

		if z.GenMethod == "From_File" && z.ClusterFile != "" {
			// From_File: one reference mesh (the zone's shape/mesh_source,
			// conventionally a unit-radius template centered at the origin)
			// instanced once per cluster-file row, each scaled to that row's
			// own radius and placed at its own center/orientation — the
			// spec §6 particle-cluster-file generation method.
			tmpl := buildZoneMesh(z, dim)
			entries, err := rw.ReadParticleClusterCSV(z.ClusterFile, d.Model.Seed)
			if err != nil {
				chk.Panic("inp: IOError: %v", err)
			}
			tmplR := tmpl.BoundingRadius()
			if tmplR <= 0 {
				chk.Panic("inp: ConfigurationError: zone %d cluster template has zero bounding radius", zi)
			}
			for _, e := range entries {
				t := particle.Identity()
				t.Scale = e.Radius / tmplR
				t.Rotation = particle.RotationZ(e.Orientation)
				t.Translation = [3]float64{e.X, e.Y, e.Z}
				p := particle.New(nextID, kind, tmpl, mat, t, globStart)
				nextID++
				p.Fixed = z.AllFixed
				all = append(all, placedParticle{p: p, zone: zi})
				globStart = p.GlobEnd
			}
			continue
		}

		ref := buildZoneMesh(z, dim)
		t := particle.Identity()
		if z.Scale > 0 {
			t.Scale = z.Scale
		}
		if z.RotationZ != 0 {
			t.Rotation = particle.RotationZ(z.RotationZ)
		}
		for k, v := range z.Translation {
			if k < 3 {
				t.Translation[k] = v
			}
		}
		p := particle.New(nextID, kind, ref, mat, t, globStart)
		nextID++
		p.Fixed = z.AllFixed
		all = append(all, placedParticle{p: p, zone: zi})
		globStart = p.GlobEnd
	}

	m := model.New(dim, globStart)
	tags := make([]int, globStart) // particle id per node, for contact same-particle exclusion
	for _, pl := range all {
		m.AddParticle(pl.p, pl.zone)
		for gi := pl.p.GlobStart; gi < pl.p.GlobEnd; gi++ {
			tags[gi] = pl.p.ID
		}
	}

	// initial conditions: apply to every particle instanced from zone ic.Zone
	// (a From_File cluster zone may have placed more than one).
	for _, ic := range d.Initial {
		for _, pl := range all {
			if pl.zone != ic.Zone {
				continue
			}
			for gi := pl.p.GlobStart; gi < pl.p.GlobEnd; gi++ {
				for k := 0; k < dim && k < len(ic.Velocity); k++ {
					m.Vel[gi][k] = ic.Velocity[k]
				}
			}
		}
	}

	// contact parameters: every deck entry registers its own zone-pair law
	// (spec §4.I step 4 / §6 key Kn/μ/β_n by the contacting zones, not
	// globally to the run); the first entry also doubles as the fallback
	// Default and sets the contact radius/skin-radius the neighbor search
	// uses (this engine's adaptive contact radius is per-node, keyed off
	// each node's own particle horizon, not per zone pair).
	var cp force.ContactParams
	skinRs := 0.0
	rcMax := 0.0 // R_c_max (spec §4.H): largest contact radius among tracked particle pairs
	if len(d.Contacts) > 0 {
		cp.Pairs = make(map[force.ZonePairKey]force.ContactLaw, len(d.Contacts))
		for i, c := range d.Contacts {
			bn := betaN(c.Restitution, c.BetaNFactor)
			law := force.ContactLaw{Kn: c.Kn, Mu: c.Friction, Cn: bn * c.Kn}
			cp.Pairs[force.NewZonePairKey(c.Zones[0], c.Zones[1])] = law
			if i == 0 {
				cp.Default = law
			}
		}
		c := d.Contacts[0]
		cp.Cwall = cp.Default.Cn
		radius := c.Radius
		cp.Radius = func(gi int) float64 {
			if radius > 0 {
				return radius
			}
			return m.ParticleOf(gi).Horizon * c.RadiusFactor
		}
		if radius > 0 {
			skinRs = 0.2 * radius
		} else if len(all) > 0 {
			skinRs = 0.2 * all[0].p.Rp
		}
		// R_c_max is the largest pairwise contact radius this run can produce:
		// the biggest single-node radius, doubled (rcij = Radius(gi)+Radius(gj)
		// in force.applyContactPair, maximized when both endpoints share it).
		for _, pl := range all {
			if r := cp.Radius(pl.p.GlobStart); r > rcMax {
				rcMax = r
			}
		}
		rcMax *= 2
	} else {
		cp.Radius = func(gi int) float64 { return 0 }
	}

	var bcs []sim.BC
	var external []force.ExternalForce
	for _, pl := range all {
		z := d.Zones[pl.zone]
		nodes := make([]int, pl.p.NumNodes())
		for k := range nodes {
			nodes[k] = pl.p.GlobStart + k
		}
		sel := loading.Selector{Nodes: nodes}
		for _, bc := range z.BCs {
			switch bc.Kind {
			case "displacement":
				dbc := &loading.DisplacementBC{Sel: sel, Component: bc.Component, Fcn: buildFunc(bc)}
				bcs = append(bcs, dbc)
			case "rotation":
				center := make([]float64, dim)
				for k := 0; k < dim && k < len(bc.Center); k++ {
					center[k] = bc.Center[k]
				}
				rbc := &loading.RotationBC{Sel: sel, Center: center, Fcn: buildFunc(bc)}
				bcs = append(bcs, rbc)
			case "force":
				fbc := &loading.ForceBC{Sel: sel, Component: bc.Component, Fcn: buildFunc(bc)}
				external = append(external, fbc)
			}
		}
	}

	scheme := "central-difference"
	if d.Model.Scheme == "velocity_verlet" {
		scheme = "velocity-verlet"
	}

	s := &sim.Sim{
		Model:  m,
		Scheme: scheme,
		Sched:  neighbor.NewSchedule(d.Neighbor.Interval, skinRs, rcMax, d.Neighbor.SFactor),
		Tags:   tags,
		Dt:     d.Model.Dt,
		NSteps: d.Model.Nt,
		DtOut:  d.Output.DtOut,
		BCs:    bcs,
		StepParm: force.StepParams{
			Contact:    cp,
			Gravity:    d.Model.Gravity,
			CenterDamp: cp.Default.Cn,
			WallDamp:   cp.Cwall,
		},
		Pipeline: force.Pipeline{NThreads: d.Model.NThreads},
	}
	s.StepParm.External = external
	s.OnOutput = buildOutputWriter(&d.Output, all)
	return s, nil
}

// flatten lays out a [][]float64 of per-node vectors row-major into a single
// []float64, the shape rw.Field.Data expects for a Components>1 array.
func flatten(vecs [][]float64) []float64 {
	if len(vecs) == 0 {
		return nil
	}
	dim := len(vecs[0])
	out := make([]float64, 0, len(vecs)*dim)
	for _, v := range vecs {
		out = append(out, v...)
	}
	return out
}

// flattenInts converts a per-node int array (Particle_ID, Zone_ID) to
// float64 for rw.Field.
func flattenInts(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// flattenFixMask converts the per-node 8-bit fixity mask to float64 so the
// VTU Fixity array carries the full per-dof bit pattern (bit 0=x, 1=y, 2=z),
// not just a whole-node fixed/free flag.
func flattenFixMask(v []uint8) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// buildOutputWriter wires component M's VTU writer into Sim.OnOutput,
// emitting exactly the arrays named in the output deck's Tags list (spec
// §6) into one numbered .vtu file per output step under Path. Returns nil
// (no-op output) when Path is unset, matching a deck that only drives
// post-processors/stop criteria without a results directory.
func buildOutputWriter(o *OutputDeck, all []placedParticle) func(m *model.Model, t float64, step int) error {
	if o.Path == "" {
		return nil
	}
	if err := os.MkdirAll(o.Path, 0o755); err != nil {
		chk.Panic("inp: IOError: cannot create output directory %q: %v", o.Path, err)
	}
	want := make(map[string]bool, len(o.Tags))
	for _, tag := range o.Tags {
		want[tag] = true
	}
	return func(m *model.Model, t float64, step int) error {
		g := &rw.Grid{Dim: m.Dim, Points: m.Pos}
		if want["Displacement"] {
			g.Point = append(g.Point, rw.Field{Name: "Displacement", Components: m.Dim, Data: flatten(m.Disp)})
		}
		if want["Velocity"] {
			g.Point = append(g.Point, rw.Field{Name: "Velocity", Components: m.Dim, Data: flatten(m.Vel)})
		}
		if want["Force"] {
			// m.Force holds a force density; the nodal force is density × volume
			fn := make([][]float64, len(m.Force))
			for i, f := range m.Force {
				fn[i] = make([]float64, len(f))
				for d := range f {
					fn[i][d] = f[d] * m.Vol[i]
				}
			}
			g.Point = append(g.Point, rw.Field{Name: "Force", Components: m.Dim, Data: flatten(fn)})
		}
		if want["Force_Density"] {
			g.Point = append(g.Point, rw.Field{Name: "Force_Density", Components: m.Dim, Data: flatten(m.Force)})
		}
		if want["Fixity"] {
			g.Point = append(g.Point, rw.Field{Name: "Fixity", Components: 1, Data: flattenFixMask(m.FixMask)})
		}
		if want["Particle_ID"] {
			g.Point = append(g.Point, rw.Field{Name: "Particle_ID", Components: 1, Data: flattenInts(m.ParticleID)})
		}
		if want["Zone_ID"] {
			g.Point = append(g.Point, rw.Field{Name: "Zone_ID", Components: 1, Data: flattenInts(m.ZoneID)})
		}
		if want["Nodal_Volume"] {
			g.Point = append(g.Point, rw.Field{Name: "Nodal_Volume", Components: 1, Data: append([]float64{}, m.Vol...)})
		}
		if want["Damage_Z"] {
			g.Point = append(g.Point, rw.Field{Name: "Damage_Z", Components: 1, Data: append([]float64{}, m.Damage...)})
		}
		if want["Theta"] {
			g.Point = append(g.Point, rw.Field{Name: "Theta", Components: 1, Data: append([]float64{}, m.Theta...)})
		}
		path := fmt.Sprintf("%s/step_%08d.vtu", o.Path, step)
		if err := rw.WriteVTU(path, g); err != nil {
			chk.Panic("%v", err) // IOError: a failed write panics and ends the run (cmd/peridem's recover reports it and exits 1)
		}
		if want["Particle_Locations"] {
			rows := make([]rw.ParticleLocation, len(all))
			for i, pl := range all {
				c := m.Pos[pl.p.CenterGlobalID()]
				rows[i] = rw.ParticleLocation{ZoneID: pl.zone, X: c[0], Y: c[1], BoundingRadius: pl.p.Rp}
				if len(c) > 2 {
					rows[i].Z = c[2]
				}
			}
			locPath := fmt.Sprintf("%s/step_%08d_particles.csv", o.Path, step)
			if err := rw.WriteParticleLocationsCSV(locPath, rows); err != nil {
				chk.Panic("%v", err)
			}
		}
		return nil
	}
}
