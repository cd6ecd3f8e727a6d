//go:build !test1 && !test2 && !test3 && !test4 && !test5 && !test6 && !test7 && !test8 && !test9 && !test10 && !test11 && !test12 && !test13 && !test14 && !test15 && !test16 && !test17 && !test18 && !test19 && !test20 && !test21 && !test22 && !test23 && !test24 && !test25

package catalog

import "time"

// Default catalog entry, used when no ID tag is active: identical to an
// explicit -tags test1 build.
var selected = newEntry(1, NewSleepToggle("200us period toggle, cooperative sleep halves", 200*time.Microsecond))
