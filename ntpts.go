// Package ntpts converts between UNIX and NTP timestamps and prints an
// instant in both notations along with its calendar breakdown.
package ntpts

import (
	"io"

	"github.com/juju/errors"
)

type Runner struct {
	cfg *Config

	clock    Clock
	reporter *Reporter
	stat     *statistic
}

// New resolves the locale once and wires the clock and reporter.
func New(cfg *Config, w io.Writer) (r *Runner, err error) {
	locale, err := NewLocale(cfg.Locale, cfg.Zone)
	if err != nil {
		return nil, errors.Trace(err)
	}

	var clock Clock = SystemClock()
	if cfg.Server != "" {
		clock = NewServerClock(cfg.Server, cfg.Timeout)
	}

	r = &Runner{
		cfg:      cfg,
		clock:    clock,
		reporter: NewReporter(w, locale, cfg.Trace),
		stat:     newStatistic(cfg),
	}
	return
}

// Run prints one report per argument, in order, or a single report of the
// current time when there are no arguments. Only a clock read can fail.
func (r *Runner) Run(args []string) (err error) {
	defer func() {
		if ferr := r.stat.flush(); ferr != nil {
			Warn.Print(ferr)
		}
	}()

	if len(args) == 0 {
		ts, err := r.clock.Now()
		if err != nil {
			r.stat.clockErrors.Inc()
			return errors.Trace(err)
		}
		r.report(sourceClock, ts)
		return nil
	}

	for _, arg := range args {
		r.report(sourceArgument, Parse(arg))
	}
	return
}

func (r *Runner) report(source string, ts Timestamp) {
	if debug {
		Info.Printf("%s: %s", source, ts)
	}
	r.reporter.Report(ts)
	r.stat.logReport(source, ts)
}
