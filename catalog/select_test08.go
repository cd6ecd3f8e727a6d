//go:build test8

package catalog

import "time"

var selected = newEntry(8, NewBusyToggle("200ns period attempt, busy-wait below timer resolution", 200*time.Nanosecond))
