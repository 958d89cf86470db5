// Copyright 2026 The Gobatt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sub

import (
	"sort"

	"github.com/cellmech/gobatt/inp"
	"github.com/cpmech/gosl/chk"
)

// Allocator creates one submodel instance bound to the shared parameters
type Allocator func(prm *inp.CellParams) Submodel

// allocators holds all available submodels
var allocators = map[string]Allocator{}

// SetAllocator adds a submodel to the database
func SetAllocator(name string, alloc Allocator) {
	allocators[name] = alloc
}

// New allocates a submodel by name
func New(name string, prm *inp.CellParams) (Submodel, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("submodel %q is not available in database", name)
	}
	return alloc(prm), nil
}

// Registered returns the sorted names of all available submodels
func Registered() (res []string) {
	for name := range allocators {
		res = append(res, name)
	}
	sort.Strings(res)
	return
}
