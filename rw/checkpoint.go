// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rw reads and writes every on-disk format this engine touches:
// restart checkpoints (encoding/gob, grounded on fem/fileio.go's
// SaveSol/ReadSol pair), unstructured-grid VTU output, Gmsh-2.0-style MSH
// mesh input, and the From_File particle-cluster CSV.
package rw

import (
	"bytes"
	"encoding/gob"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Checkpoint is the restart payload: grounded on fem/fileio.go's
// SaveSol, which gob-encodes the domain's T/Y/Dydt/D2ydt2 scalar-time and
// node-array state in sequence — generalized here to this engine's own
// per-node Pos/Vel arrays plus the step/time clock.
type Checkpoint struct {
	Step int
	Time float64
	Pos  [][]float64
	Vel  [][]float64
}

// WriteCheckpoint gob-encodes c to path, matching fem/fileio.go's
// buffer-then-single-Write save_file pattern.
func WriteCheckpoint(path string, c *Checkpoint) error {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return chk.Err("rw: cannot encode checkpoint: %v", err)
	}
	fil, err := os.Create(path)
	if err != nil {
		return chk.Err("rw: cannot create checkpoint file %q: %v", path, err)
	}
	defer fil.Close()
	if _, err = fil.Write(buf.Bytes()); err != nil {
		return chk.Err("rw: cannot write checkpoint file %q: %v", path, err)
	}
	io.Pfblue2("rw: checkpoint written to <%s>\n", path)
	return nil
}

// ReadCheckpoint gob-decodes a checkpoint previously written by
// WriteCheckpoint.
func ReadCheckpoint(path string) (*Checkpoint, error) {
	fil, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("rw: cannot open checkpoint file %q: %v", path, err)
	}
	defer fil.Close()
	var c Checkpoint
	dec := gob.NewDecoder(fil)
	if err := dec.Decode(&c); err != nil {
		return nil, chk.Err("rw: cannot decode checkpoint file %q: %v", path, err)
	}
	return &c, nil
}
