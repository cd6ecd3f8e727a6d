//go:build test17

package catalog

var selected = newEntry(17, NewRawUnpacedToggle("raw register writes back-to-back, minimum period"))
