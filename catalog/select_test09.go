//go:build test9

package catalog

import "time"

var selected = newEntry(9, NewBusyYieldToggle("200us period toggle, busy-wait plus yield", 200*time.Microsecond))
