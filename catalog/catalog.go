// Package catalog is the compile-time variant registry: it maps the build's
// selection tags (category x sub-type x numeric test ID) to exactly one
// timing routine.
//
// Selection works through build constraints, not a runtime table. Every
// catalog ID has its own select_testNN.go file, tagged //go:build testNN,
// declaring the package-level `selected` entry. Activating two ID tags puts
// two declarations of `selected` in the build and the compiler rejects it,
// naming both files. Activating none compiles select_default.go instead,
// whose constraint is the negation of every ID tag; it declares the
// documented default, ID 1. The linker discards every routine the selected
// entry does not reference.
package catalog

import "picotest/core"

// Category is the test-family axis. Only single-GPIO tests exist so far; the
// axis is kept so new families slot into the same selection scheme.
type Category uint8

const CategorySingleGPIO Category = iota

func (c Category) String() string {
	if c == CategorySingleGPIO {
		return "single-gpio"
	}
	return "?"
}

// SubType is a reserved selection axis; only the default value exists.
type SubType uint8

const SubTypeDefault SubType = 0

// Selection identifies the one catalog entry linked into this build. Fixed at
// build time, never constructed at runtime.
type Selection struct {
	Category Category
	SubType  SubType
	ID       int
	Desc     string
}

type entry struct {
	sel     Selection
	routine core.Routine
}

func newEntry(id int, r core.Routine) entry {
	return entry{
		sel: Selection{
			Category: CategorySingleGPIO,
			SubType:  SubTypeDefault,
			ID:       id,
			Desc:     r.Spec().Name,
		},
		routine: r,
	}
}

// Selected returns the selection resolved at build time and the single
// routine bound into this executable.
func Selected() (Selection, core.Routine) {
	return selected.sel, selected.routine
}
