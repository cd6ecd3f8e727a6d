//go:build tinygo

package catalog

import "device"

//go:inline
func nop() {
	device.Asm(`nop`)
}
