package ntpts

import (
	"math/rand"
	"strconv"
	"testing"
)

func TestParse(t *testing.T) {
	gold := []struct {
		in   string
		sec  int64
		nsec uint32
	}{
		{"", 0, 0},
		{"abc", 0, 0},
		{"0", 0, 0},
		{"42", 42, 0},
		{" \t 42", 42, 0},
		{"12abc", 12, 0},
		{"0x1F", 31, 0},
		{"0X1f", 31, 0},
		{"0x", 0, 0},
		{"017", 15, 0},
		{"08", 0, 0},
		{"0b101", 5, 0},
		{"0B11", 3, 0},
		{"0.5", 0, 500000000},
		{"00.5", 0, 625000000},
		{"0.1", 0, 100000000},
		{"1.5.3", 1, 500000000},
		{"1000000000.5", 1000000000, 500000000},
		{"0x.8", 0, 500000000},
		{"0x1.1", 1, 62500000},
		{"0b1.1", 1, 500000000},
		{"01.1", 1, 125000000},
		{"0x0.123456789", 0, 71111110},
		{"0.1234567891", 0, 123456789},
		{"0.9999999999", 0, 999999999},
		{"7.", 7, 0},
		{"-1", -1, 0},
		{"-0", 0, 0},
		{"-1.5", -2, 500000000},
		{"-0.25", -1, 750000000},
		{"-0x10", -16, 0},
		{"+5", 0, 0},
		{"0xffffffffffffffff", -1, 0},
		{"18446744073709551617", 1, 0},
	}

	for _, g := range gold {
		ts := Parse(g.in)
		if ts.Sec != g.sec || ts.Nsec != g.nsec {
			t.Errorf("Parse(%q) expect=%d.%09d got=%s", g.in, g.sec, g.nsec, ts)
		}
	}
}

func TestParseBases(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := r.Int63()
		for _, g := range []struct {
			prefix string
			base   int
		}{
			{"", 10},
			{"0x", 16},
			{"0", 8},
			{"0b", 2},
		} {
			in := g.prefix + strconv.FormatInt(v, g.base)
			ts := Parse(in)
			if ts.Sec != v || ts.Nsec != 0 {
				t.Fatalf("Parse(%q) expect=%d got=%s", in, v, ts)
			}
		}
	}
}

func TestParseNsecInRange(t *testing.T) {
	for _, in := range []string{
		"-0.000000001", "-0.999999999", "-1", "-0x.ffffffff",
		"0b0.111111111111111111111111111111111", "-123.456",
	} {
		ts := Parse(in)
		if ts.Nsec >= nanoPerSec {
			t.Errorf("Parse(%q) nsec out of range: %d", in, ts.Nsec)
		}
	}
}

func TestParseTruncatesFraction(t *testing.T) {
	for _, g := range []struct {
		short, long string
	}{
		{"0.123456789", "0.123456789999"},
		{"0x0.abcdef12", "0x0.abcdef12ffff"},
		{"01.1234567012", "01.12345670127777"},
		{"0b1.101010101010101010101010101010", "0b1.1010101010101010101010101010101111"},
	} {
		if a, b := Parse(g.short), Parse(g.long); a != b {
			t.Errorf("%q=%s %q=%s", g.short, a, g.long, b)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Parse("-0x5f5e100.8")
	}
}
