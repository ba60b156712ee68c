package ntpts

import "golang.org/x/sys/unix"

type systemClock struct{}

// SystemClock reads CLOCK_REALTIME.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() (ts Timestamp, err error) {
	var t unix.Timespec
	err = unix.ClockGettime(unix.CLOCK_REALTIME, &t)
	if err != nil {
		return ts, &ClockError{Op: "clock_gettime", Err: err}
	}
	ts.Sec = int64(t.Sec)
	ts.Nsec = uint32(t.Nsec)
	return
}
