//go:build test1

package catalog

import "time"

var selected = newEntry(1, NewSleepToggle("200us period toggle, cooperative sleep halves", 200*time.Microsecond))
