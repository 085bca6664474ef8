// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp reads the YAML input deck and builds a ready-to-run sim.Sim
// from it. Grounded on gofem/inp/sim.go's Data struct (a flat struct with
// one field per simulation-wide setting, a SetDefault method, and a
// PostProcess pass deriving fields after reading) — generalized from
// gofem's single JSON-tagged Data struct to this engine's nested
// YAML-tagged deck sections (model, particle zones, contact, neighbor,
// output, restart, initial conditions), since the spec's input format is
// YAML rather than gofem's own JSON .sim files. gopkg.in/yaml.v3 replaces
// encoding/json purely as the decoder; ReadDeck keeps the struct-tag-driven
// deserialize-then-SetDefault part of that shape and has no PostProcess pass
// (derived quantities are computed by Build).
package inp

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// ModelDeck is the spec's "Model" input section.
type ModelDeck struct {
	Dim            int     `yaml:"dim"`
	Nt             int     `yaml:"nt"`
	Tf             float64 `yaml:"tf"`
	Dt             float64 `yaml:"dt"`
	Scheme         string  `yaml:"scheme"` // "central_difference" or "velocity_verlet"
	QuadOrder      int     `yaml:"quad_order"`
	Horizon        float64 `yaml:"horizon"`
	Seed           int64   `yaml:"seed"`
	Restart        bool    `yaml:"restart"`
	Gravity        []float64 `yaml:"gravity"`
	TestName       string  `yaml:"test_name"` // e.g. "two_particle", "" for none
	NThreads       int     `yaml:"n_threads"`
}

// SetDefault fills in zero fields with the spec's defaults.
func (d *ModelDeck) SetDefault() {
	if d.Dim == 0 {
		d.Dim = 2
	}
	if d.Scheme == "" {
		d.Scheme = "central_difference"
	}
	if d.NThreads == 0 {
		d.NThreads = 2
	}
}

// BCDeck describes one boundary condition attached to a zone: a kind ∈
// {displacement,rotation,force}, the component it drives, and a named
// function with parameters (constant, ramp). It has no selector or region
// field: Build applies it to every node of every particle placed from the
// zone.
type BCDeck struct {
	Kind      string  `yaml:"kind"`
	Component int     `yaml:"component"`
	FuncName  string  `yaml:"func"` // "constant" or "ramp"
	Value     float64 `yaml:"value"`
	Rate      float64 `yaml:"rate"`
	Center    []float64 `yaml:"center"`
}

// ZoneDeck is one entry of the spec's "Particle zones" section.
type ZoneDeck struct {
	IsWall      bool      `yaml:"is_wall"`
	Shape       string    `yaml:"shape"`
	ShapeParams []float64 `yaml:"shape_params"`
	MeshSource  string    `yaml:"mesh_source"` // "generate" or a file path
	MeshSpacing float64   `yaml:"mesh_spacing"`
	Material    MaterialDeck `yaml:"material"`
	GenMethod   string    `yaml:"gen_method"` // "From_File" or "FromGeomObject"
	ClusterFile string    `yaml:"cluster_file"` // From_File: particle-cluster CSV {x,y,z,radius[,orientation],zone_id}
	Translation []float64 `yaml:"translation"`
	Scale       float64   `yaml:"scale"`
	RotationZ   float64   `yaml:"rotation_z"`
	BCs         []BCDeck  `yaml:"bcs"`
	AllFixed    bool      `yaml:"all_dofs_constrained"`
}

// MaterialDeck is one zone's material parameter set, flattened across
// every model kind this engine supports (unused fields for a given kind
// are simply left zero).
type MaterialDeck struct {
	Kind    string  `yaml:"kind"` // "rnp", "pmb", "elastic", "state"
	Density float64 `yaml:"density"`
	K       float64 `yaml:"K"`
	G       float64 `yaml:"G"`
	E       float64 `yaml:"E"`
	Nu      float64 `yaml:"nu"`
	Gc      float64 `yaml:"Gc"`
	Beta    float64 `yaml:"beta"`
	Kappa   float64 `yaml:"kappa"`
	S0      float64 `yaml:"s0"`
	InflBeta float64 `yaml:"influence_beta"`
}

// ContactDeck is one zone-pair's contact-law parameters.
type ContactDeck struct {
	Zones        [2]int  `yaml:"zones"` // the two zone indices this law applies between
	RadiusFactor float64 `yaml:"radius_factor"` // as a factor of horizon; 0 => use Radius
	Radius       float64 `yaml:"radius"`
	Kn           float64 `yaml:"Kn"`
	Restitution  float64 `yaml:"restitution"`
	Friction     float64 `yaml:"friction"`
	BetaNFactor  float64 `yaml:"beta_n_factor"`
}

// NeighborDeck is the spec's "Neighbor" input section.
type NeighborDeck struct {
	SFactor  float64 `yaml:"s_factor"`
	Interval int     `yaml:"update_interval"`
	Scheme   string  `yaml:"search_scheme"`
}

// OutputDeck is the spec's "Output" input section.
type OutputDeck struct {
	Path  string   `yaml:"path"`
	Tags  []string `yaml:"tags"`
	DtOut int      `yaml:"dt_out"`
	Zip   bool      `yaml:"compress"`
}

// RestartDeck is the spec's "Restart" input section.
type RestartDeck struct {
	Path        string `yaml:"path"`
	StartingStep int   `yaml:"starting_step"`
}

// InitialCondition is one {particle-selector, velocity} pair applied at
// t=0, before the first step.
type InitialCondition struct {
	Zone     int       `yaml:"zone"`
	Velocity []float64 `yaml:"velocity"`
}

// Deck is the full parsed input file.
type Deck struct {
	Model    ModelDeck          `yaml:"model"`
	Zones    []ZoneDeck         `yaml:"zones"`
	Contacts []ContactDeck      `yaml:"contacts"`
	Neighbor NeighborDeck       `yaml:"neighbor"`
	Output   OutputDeck         `yaml:"output"`
	Restart  RestartDeck        `yaml:"restart"`
	Initial  []InitialCondition `yaml:"initial"`
}

// SetDefault propagates defaults into every nested section.
func (d *Deck) SetDefault() {
	d.Model.SetDefault()
	if d.Neighbor.SFactor == 0 {
		d.Neighbor.SFactor = 0.5
	}
	if d.Neighbor.Interval == 0 {
		d.Neighbor.Interval = 10
	}
	if d.Output.DtOut == 0 {
		d.Output.DtOut = 100
	}
}

// ReadDeck reads and decodes a YAML input deck at path, applying defaults
// afterward (mirroring gofem/inp/sim.go's read-then-SetDefault sequence).
func ReadDeck(path string) (*Deck, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("inp: cannot read input deck %q: %v", path, err)
	}
	var d Deck
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, chk.Err("inp: ConfigurationError: cannot parse input deck %q: %v", path, err)
	}
	d.SetDefault()
	return &d, nil
}
