//go:build test23

package catalog

import "time"

var selected = newEntry(23, NewPulseTrain("one 100ms pulse", 1, 100*time.Millisecond, 0))
