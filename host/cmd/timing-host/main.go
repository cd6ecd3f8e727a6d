package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"picotest/host/monitor"
	"picotest/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	stall  = flag.Duration("stall", 3*time.Second, "Warn when heartbeats are further apart than this (0 disables)")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	fmt.Printf("picotest host - following log stream on %s\n", *device)
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	tracker := monitor.NewTracker(*stall)
	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		now := time.Now()
		ev := tracker.Observe(scanner.Text(), now)

		fmt.Printf("%s %s\n", now.Format("15:04:05.000"), ev.Line)
		if ev.Stalled {
			fmt.Printf("%s *** heartbeat gap %v exceeds %v\n", now.Format("15:04:05.000"), ev.Gap, *stall)
		}
		if ev.Fatal {
			fmt.Printf("%s *** board reported a fatal state; expect no waveform\n", now.Format("15:04:05.000"))
		}
		if ev.Parked {
			fmt.Printf("%s *** board parked; pins at safe level\n", now.Format("15:04:05.000"))
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stream: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("stream closed: %d heartbeats, %d fatal lines\n", tracker.Beats(), len(tracker.Fatals()))
}
