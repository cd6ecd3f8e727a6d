//go:build test24

package catalog

import "time"

var selected = newEntry(24, NewBoundedToggle("one million toggles at 20us period, then stop", 1000000, 20*time.Microsecond))
