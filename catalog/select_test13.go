//go:build test13

package catalog

var selected = newEntry(13, NewUnpacedToggle("no delay, pin interface as fast as possible"))
