//go:build test3

package catalog

import "time"

var selected = newEntry(3, NewSleepToggle("2us period toggle, cooperative sleep halves", 2*time.Microsecond))
