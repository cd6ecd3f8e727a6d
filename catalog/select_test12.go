//go:build test12

package catalog

var selected = newEntry(12, NewNopToggle("two-iteration nop-loop halves", 2))
