//go:build test11

package catalog

import "time"

var selected = newEntry(11, NewBusyYieldToggle("2us period toggle, busy-wait plus yield", 2*time.Microsecond))
