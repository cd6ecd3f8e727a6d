//go:build test4

package catalog

import "time"

var selected = newEntry(4, NewBusyToggle("200us period toggle, busy-wait halves", 200*time.Microsecond))
