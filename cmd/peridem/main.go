// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command peridem runs a peridynamics + discrete-element granular mechanics
// simulation from a YAML input deck.
package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/peridem/inp"
	"github.com/cpmech/peridem/rw"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	var fnamepath string
	var nThreads int
	var verbose bool
	flag.StringVar(&fnamepath, "i", "./example/input_0.yaml", "input deck path (YAML)")
	flag.IntVar(&nThreads, "nThreads", 0, "number of worker threads (0 => the deck's n_threads, whose default is 2)")
	flag.BoolVar(&verbose, "verbose", true, "show messages")
	flag.Parse()

	// message
	if verbose {
		io.PfWhite("\nPeriDEM -- peridynamics + discrete-element granular mechanics\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable(
			"input deck path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"override n_threads (0 => deck value)", "nThreads", nThreads,
		))
	}

	// parse deck and build the simulation
	d, err := inp.ReadDeck(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	if nThreads > 0 {
		d.Model.NThreads = nThreads
	}
	s, err := inp.Build(d)
	if err != nil {
		chk.Panic("%v", err)
	}
	s.Verbose = verbose

	// run simulation
	if err := s.Init(); err != nil {
		chk.Panic("Init failed:\n%v", err)
	}
	if d.Model.Restart && d.Restart.Path != "" {
		cp, err := rw.ReadCheckpoint(d.Restart.Path)
		if err != nil {
			chk.Panic("Restart failed:\n%v", err)
		}
		s.Restart(cp.Pos, cp.Vel, cp.Step, cp.Time)
	}
	if _, err := s.Integrate(); err != nil {
		chk.Panic("Integrate failed:\n%v", err)
	}
	s.Close()
}
