//go:build !linux
// +build !linux

package ntpts

import "time"

type systemClock struct{}

// SystemClock reads the Go runtime wall clock.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() (Timestamp, error) {
	return FromTime(time.Now()), nil
}
