// Copyright 2026 The Gobatt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cellmech/gobatt/inp"
	"github.com/cellmech/gobatt/model"
	"github.com/cellmech/gobatt/sub/thermal"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	_ "github.com/cellmech/gobatt/sub/current"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "inp/data/cell", ".json", false)
	lumped := io.ArgToBool(1, false)

	// message
	io.PfWhite("\nGobatt -- Go Battery Modelling\n")
	io.Pf("Copyright 2026 The Gobatt Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n")

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"parameters file path", "fnamepath", fnamepath,
		"lumped thermal variant", "lumped", lumped,
	))

	// cell parameters
	prm, err := inp.ReadParams(fnamepath)
	if err != nil {
		chk.Panic("cannot load parameters:\n%v", err)
	}

	// submodel pipeline
	m := model.New(prm)
	variant := thermal.Full
	if lumped {
		variant = thermal.XLumped
	}
	for _, name := range []string{"uniform-current", variant} {
		if err := m.AddByName(name); err != nil {
			chk.Panic("cannot add submodel:\n%v", err)
		}
	}

	// assemble equation system
	if err := m.Assemble(); err != nil {
		chk.Panic("assembly failed:\n%v", err)
	}
	m.Summary()
}
