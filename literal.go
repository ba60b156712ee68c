package ntpts

import "strings"

const digitAlphabet = "0123456789abcdef"

// fracDigits is the most fractional digits read for a base,
// keeping base^n * nanoPerSec inside a uint64.
func fracDigits(base uint64) int {
	switch base {
	case 2:
		return 30
	case 8:
		return 10
	case 16:
		return 8
	}
	return 9
}

// Parse reads a signed fixed-point literal into a Timestamp.
//
// A leading "0" selects octal, "0x" hex, "0b" binary and "0." decimal,
// anything else is decimal. Parsing stops at the first character that is
// not a digit of the selected base; malformed input never fails, it yields
// whatever prefix was recognized (possibly zero). Integer overflow wraps.
//
// Negative values keep Nsec positive: -1.5 is {Sec: -2, Nsec: 500000000}.
func Parse(s string) (ts Timestamp) {
	p := strings.TrimLeft(s, " \t\n\v\f\r")

	neg := false
	if len(p) > 0 && p[0] == '-' {
		neg = true
		p = p[1:]
	}

	base := uint64(10)
	if len(p) > 0 && p[0] == '0' {
		base = 8
		p = p[1:]
		if len(p) > 0 {
			switch p[0] {
			case 'x', 'X':
				base = 16
				p = p[1:]
			case 'b', 'B':
				base = 2
				p = p[1:]
			case '.':
				base = 10
			}
		}
	}
	digits := digitAlphabet[:base]

	var sec uint64
	for len(p) > 0 {
		d := digitValue(digits, p[0])
		if d < 0 {
			break
		}
		sec = sec*base + uint64(d)
		p = p[1:]
	}

	var nsec uint64
	if len(p) > 0 && p[0] == '.' {
		p = p[1:]
		var quot, div uint64 = 0, 1
		for i, top := 0, fracDigits(base); i < top && len(p) > 0; i++ {
			d := digitValue(digits, p[0])
			if d < 0 {
				break
			}
			quot = quot*base + uint64(d)
			div *= base
			p = p[1:]
		}
		nsec = quot * nanoPerSec / div
	}

	ts.Sec = int64(sec)
	if neg {
		ts.Sec = -1 - ts.Sec
		nsec = nanoPerSec - nsec
		if nsec >= nanoPerSec {
			nsec -= nanoPerSec
			ts.Sec++
		}
	}
	ts.Nsec = uint32(nsec)
	return
}

func digitValue(digits string, c byte) int {
	if 'A' <= c && c <= 'Z' {
		c += 'a' - 'A'
	}
	return strings.IndexByte(digits, c)
}
