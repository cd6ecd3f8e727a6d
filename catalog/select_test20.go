//go:build test20

package catalog

import "time"

var selected = newEntry(20, NewHardwareSquare("20us period square wave, PIO generated", 20*time.Microsecond))
