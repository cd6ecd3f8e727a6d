//go:build !tinygo

package catalog

// Host builds have no device package; a counter store keeps the loop from
// being optimized away. Host tests assert toggle counts, not nop durations.
var nopSink uint64

func nop() {
	nopSink++
}
