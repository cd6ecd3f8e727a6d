//go:build test15

package catalog

var selected = newEntry(15, NewRawPaddedToggle("raw register writes, nop-padded toward 200ns period", 10, 9))
