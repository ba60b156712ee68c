package ntpts

import (
	"time"

	"github.com/beevik/ntp"
)

const defaultTimeout = 5 * time.Second

// ServerClock is the local clock corrected by the offset
// measured against an NTP server.
type ServerClock struct {
	Host    string
	Timeout time.Duration

	query func(host string, opt ntp.QueryOptions) (*ntp.Response, error)
	now   func() time.Time
}

func NewServerClock(host string, timeout time.Duration) *ServerClock {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ServerClock{
		Host:    host,
		Timeout: timeout,
		query:   ntp.QueryWithOptions,
		now:     time.Now,
	}
}

func (c *ServerClock) Now() (ts Timestamp, err error) {
	resp, err := c.query(c.Host, ntp.QueryOptions{Timeout: c.Timeout})
	if err != nil {
		return ts, &ClockError{Op: "ntp query " + c.Host, Err: err}
	}
	err = resp.Validate()
	if err != nil {
		return ts, &ClockError{Op: "ntp validate " + c.Host, Err: err}
	}
	if debug {
		Info.Printf("%s offset=%s rtt=%s stratum=%d",
			c.Host, resp.ClockOffset, resp.RTT, resp.Stratum)
	}
	return FromTime(c.now().Add(resp.ClockOffset)), nil
}
