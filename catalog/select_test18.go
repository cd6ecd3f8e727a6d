//go:build test18

package catalog

import "time"

var selected = newEntry(18, NewCalibratedNopToggle("20us period toggle, calibrated nop-loop halves", 20*time.Microsecond))
