//go:build test14

package catalog

import "time"

var selected = newEntry(14, NewRawPacedToggle("20us period toggle, raw register writes busy-paced", 20*time.Microsecond))
