//go:build test22

package catalog

import "time"

var selected = newEntry(22, NewPulseTrain("10 pulses, 10us wide, 90us gap", 10, 10*time.Microsecond, 90*time.Microsecond))
