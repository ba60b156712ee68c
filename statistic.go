package ntpts

import (
	"github.com/juju/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	sourceClock    = "clock"
	sourceArgument = "argument"
)

type statistic struct {
	registry *prometheus.Registry
	textfile string

	reportCounter *prometheus.CounterVec
	clockErrors   prometheus.Counter
	ntpGauge      prometheus.Gauge
}

func newStatistic(cfg *Config) *statistic {

	reportCounter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ntpts",
		Name:      "reports_total",
		Help:      "The total number of printed reports",
	}, []string{"source"})

	clockErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ntpts",
		Name:      "clock_errors_total",
		Help:      "The total number of failed clock reads",
	})

	ntpGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ntpts",
		Name:      "last_ntp_seconds",
		Help:      "The NTP seconds of the last report",
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(reportCounter, clockErrors, ntpGauge)

	return &statistic{
		registry:      registry,
		textfile:      cfg.Textfile,
		reportCounter: reportCounter,
		clockErrors:   clockErrors,
		ntpGauge:      ntpGauge,
	}
}

func (s *statistic) logReport(source string, ts Timestamp) {
	s.reportCounter.WithLabelValues(source).Inc()
	s.ntpGauge.Set(float64(ts.NTPSeconds()))
}

// flush writes the registry for the textfile collector, if configured.
func (s *statistic) flush() error {
	if s.textfile == "" {
		return nil
	}
	err := prometheus.WriteToTextfile(s.textfile, s.registry)
	return errors.Annotatef(err, "write metrics: %s", s.textfile)
}
