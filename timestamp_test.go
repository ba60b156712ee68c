package ntpts

import (
	"math"
	"testing"
	"time"
)

func TestNTPSeconds(t *testing.T) {
	gold := []struct {
		sec int64
		ntp uint64
	}{
		{0, 2208988800},
		{1000000000, 3208988800},
		{-2, 2208988798},
		{-2208988800, 0},
		{-2208988801, math.MaxUint64},
	}
	for _, g := range gold {
		ts := Timestamp{Sec: g.sec}
		if got := ts.NTPSeconds(); got != g.ntp {
			t.Errorf("sec=%d expect=%d got=%d", g.sec, g.ntp, got)
		}
	}
}

func TestNTPFraction(t *testing.T) {
	gold := []struct {
		nsec uint32
		frac uint32
	}{
		{0, 0},
		{500000000, 1 << 31},
		{250000000, 1 << 30},
		{1, 4},
		{999999999, 0xfffffffb},
	}
	for _, g := range gold {
		ts := Timestamp{Nsec: g.nsec}
		if got := ts.NTPFraction(); got != g.frac {
			t.Errorf("nsec=%d expect=%#x got=%#x", g.nsec, g.frac, got)
		}
	}
}

func TestNTPWire(t *testing.T) {
	ts := Timestamp{Sec: 1000000000, Nsec: 500000000}
	if got := ts.NTP(); got != 0xbf45488080000000 {
		t.Fatalf("%#x", got)
	}
	if back := FromNTP(ts.NTP()); back != ts {
		t.Fatal(back)
	}

	// truncation loses at most one nanosecond
	ts = Timestamp{Sec: 1, Nsec: 123456789}
	back := FromNTP(ts.NTP())
	if back.Sec != ts.Sec || ts.Nsec-back.Nsec > 1 {
		t.Fatal(ts, back)
	}
}

func TestTimeConversion(t *testing.T) {
	now := time.Unix(1000000000, 500000000)
	ts := FromTime(now)
	if ts.Sec != 1000000000 || ts.Nsec != 500000000 {
		t.Fatal(ts)
	}
	if !ts.Time().Equal(now) {
		t.Fatal(ts.Time())
	}

	epoch := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	if FromTime(epoch).NTPSeconds() != 0 {
		t.Fatal(FromTime(epoch))
	}
}

func TestTimestampString(t *testing.T) {
	if s := Parse("-1.5").String(); s != "-2.500000000" {
		t.Fatal(s)
	}
}
