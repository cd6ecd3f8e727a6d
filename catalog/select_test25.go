//go:build test25

package catalog

var selected = newEntry(25, NewBaseline("baseline no-op, configure and return"))
