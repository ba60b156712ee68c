package ntpts

import (
	"fmt"
	"time"
)

const (
	nanoPerSec = 1000000000

	// seconds from 1900-01-01 to 1970-01-01
	ntpOffset = 2208988800
)

// Timestamp is an instant relative to the UNIX epoch.
// Nsec is always in [0, 1e9), also for negative Sec.
type Timestamp struct {
	Sec  int64
	Nsec uint32
}

func FromTime(t time.Time) Timestamp {
	return Timestamp{Sec: t.Unix(), Nsec: uint32(t.Nanosecond())}
}

func (ts Timestamp) Time() time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}

// NTPSeconds wraps around for instants before 1900.
func (ts Timestamp) NTPSeconds() uint64 {
	return uint64(ts.Sec) + ntpOffset
}

// NTPFraction is Nsec as a 32 bit binary fraction of a second.
func (ts Timestamp) NTPFraction() uint32 {
	return uint32(uint64(ts.Nsec) << 32 / nanoPerSec)
}

// NTP packs the timestamp into the 64 bit on-wire format
// (era seconds in the high word).
func (ts Timestamp) NTP() uint64 {
	return ts.NTPSeconds()<<32 | uint64(ts.NTPFraction())
}

// FromNTP decodes an on-wire timestamp of era 0.
func FromNTP(v uint64) Timestamp {
	frac := v & 0xffffffff
	return Timestamp{
		Sec:  int64(v>>32) - ntpOffset,
		Nsec: uint32(frac * nanoPerSec >> 32),
	}
}

func (ts Timestamp) String() string {
	return fmt.Sprintf("%d.%09d", ts.Sec, ts.Nsec)
}
