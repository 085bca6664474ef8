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

// ParticleLocation is one row of the optional Particle_Locations output CSV
// (spec §6 external interfaces): a particle's zone, current center, and
// bounding radius.
type ParticleLocation struct {
	ZoneID int
	X, Y, Z float64
	BoundingRadius float64
}

// WriteParticleLocationsCSV writes the header row {zone_id,x,y,z,bounding_radius}
// followed by one row per entry in rows. The column layout differs from
// the cluster CSV that ReadParticleClusterCSV reads.
func WriteParticleLocationsCSV(path string, rows []ParticleLocation) error {
	f, err := os.Create(path)
	if err != nil {
		return chk.Err("rw: cannot create particle-locations csv %q: %v", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "zone_id,x,y,z,bounding_radius\n")
	for _, r := range rows {
		fmt.Fprintf(w, "%d,%v,%v,%v,%v\n", r.ZoneID, r.X, r.Y, r.Z, r.BoundingRadius)
	}
	if err := w.Flush(); err != nil {
		return chk.Err("rw: cannot flush particle-locations csv %q: %v", path, err)
	}
	io.Pfblue2("rw: particle locations written to <%s>\n", path)
	return nil
}
