//go:build test10

package catalog

import "time"

var selected = newEntry(10, NewBusyYieldToggle("20us period toggle, busy-wait plus yield", 20*time.Microsecond))
