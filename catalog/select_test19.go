//go:build test19

package catalog

import "time"

var selected = newEntry(19, NewDeadlineToggle("20us period toggle, absolute-deadline scheduling", 20*time.Microsecond))
