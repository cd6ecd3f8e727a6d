//go:build statusdisplay

// Package status drives an optional SSD1306 panel on I2C0 showing which
// catalog entry this build runs and a live batch counter. Enabled with
// -tags statusdisplay; without the tag a no-op stub links in.
//
// The panel refreshes from its own goroutine, never from inside a routine's
// toggle loop, but the I2C traffic still shares the core: leave the tag off
// when measuring the tightest timings.
package status

import (
	"fmt"
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Start configures the display and begins refreshing it in the background.
// batches is polled on every refresh.
func Start(desc string, id int, batches func() uint64) {
	machine.I2C0.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})
	// The display needs a moment after a cold boot before it accepts config.
	time.Sleep(time.Second)

	display := ssd1306.NewI2C(machine.I2C0)
	display.Configure(ssd1306.Config{
		Width:    128,
		Height:   64,
		Address:  0x3C,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	display.ClearDisplay()

	white := color.RGBA{255, 255, 255, 255}
	font := &proggy.TinySZ8pt7b

	go func() {
		for {
			display.ClearBuffer()
			tinyfont.WriteLine(&display, font, 0, 10, fmt.Sprintf("picotest #%d", id), white)
			tinyfont.WriteLine(&display, font, 0, 26, desc, white)
			tinyfont.WriteLine(&display, font, 0, 54, fmt.Sprintf("batches %d", batches()), white)
			display.Display()
			time.Sleep(500 * time.Millisecond)
		}
	}()
}
