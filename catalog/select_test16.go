//go:build test16

package catalog

var selected = newEntry(16, NewRawPaddedToggle("raw register writes, nop-padded toward 80ns period", 2, 2))
