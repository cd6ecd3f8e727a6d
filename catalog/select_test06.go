//go:build test6

package catalog

import "time"

var selected = newEntry(6, NewBusyToggle("4us period toggle, busy-wait halves", 4*time.Microsecond))
