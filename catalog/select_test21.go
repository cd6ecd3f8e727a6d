//go:build test21

package catalog

import "time"

var selected = newEntry(21, NewHardwareSquare("200ns period square wave, PIO generated", 200*time.Nanosecond))
