//go:build test5

package catalog

import "time"

var selected = newEntry(5, NewBusyToggle("20us period toggle, busy-wait halves", 20*time.Microsecond))
