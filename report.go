package ntpts

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
)

// Reporter prints one instant in every supported representation.
type Reporter struct {
	w      io.Writer
	locale *Locale

	// prefix each line with file:line:func
	trace bool
}

func NewReporter(w io.Writer, l *Locale, trace bool) *Reporter {
	return &Reporter{w: w, locale: l, trace: trace}
}

func (r *Reporter) Report(ts Timestamp) {
	ntpSec := ts.NTPSeconds()
	ntpFrac := ts.NTPFraction()

	r.line("NTP(dec)", "%d.%09d", ntpSec, ts.Nsec)
	r.line("NTP(hex)", "%#x.%08x", ntpSec, ntpFrac)
	r.line("UNIX(dec)", "%d.%09d", ts.Sec, ts.Nsec)
	r.line("UNIX(hex)", "%#x.%08x", uint64(ts.Sec), ntpFrac)
	r.line("UNIX", "%d/%#x", ts.Sec, uint64(ts.Sec))

	f := r.locale.UTC(ts.Sec)
	r.line("gmtime", "%d/%s/%d, %02d:%02d:%02d.%09d",
		f.Day, f.Month, f.Year, f.Hour, f.Min, f.Sec, ts.Nsec)

	f = r.locale.Local(ts.Sec)
	r.line("localtime", "%d/%s/%d, %02d:%02d:%02d.%09d %s",
		f.Day, f.Month, f.Year, f.Hour, f.Min, f.Sec, ts.Nsec, f.Zone)
}

func (r *Reporter) line(label, format string, args ...interface{}) {
	var b strings.Builder
	if r.trace {
		b.WriteString(caller(2))
	}
	fmt.Fprintf(&b, "%9s: ", label)
	fmt.Fprintf(&b, format, args...)
	b.WriteByte('\n')
	io.WriteString(r.w, b.String())
}

// caller renders "file:line:func: " for the frame skip levels up.
func caller(skip int) string {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???:0:???: "
	}
	name := "???"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			name = name[i+1:]
		}
	}
	return fmt.Sprintf("%s:%d:%s: ", filepath.Base(file), line, name)
}
