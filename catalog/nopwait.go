package catalog

import "time"

// Wait calibration constants: a nop loop of d * K / M iterations takes about
// d of wall time. Defaults measured on an rp2040 at the stock 125MHz system
// clock; SetWaitCalibration lets a target retune them after benchmarking.
var (
	waitCalibrationK time.Duration = 80339
	waitCalibrationM time.Duration = 1000000
)

// SetWaitCalibration installs k/m such that nopWait(int(d*k/m)) waits d.
func SetWaitCalibration(k, m time.Duration) {
	waitCalibrationK = k
	waitCalibrationM = m
}

// nopWait executes n single-nop iterations.
func nopWait(n int) {
	for ; n > 0; n-- {
		nop()
	}
}

// calibratedWait converts a duration to nop iterations using the calibration
// constants and spins for that long.
func calibratedWait(d time.Duration) {
	nopWait(int((d * waitCalibrationK) / waitCalibrationM))
}
