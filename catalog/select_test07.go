//go:build test7

package catalog

import "time"

var selected = newEntry(7, NewBusyToggle("2us period toggle, busy-wait halves", 2*time.Microsecond))
