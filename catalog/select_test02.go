//go:build test2

package catalog

import "time"

var selected = newEntry(2, NewSleepToggle("20us period toggle, cooperative sleep halves", 20*time.Microsecond))
