package ntpts

import (
	"fmt"
	"syscall"

	"github.com/juju/errors"
)

// Clock samples the current wall clock time.
type Clock interface {
	Now() (Timestamp, error)
}

// ClockError is a failed clock read.
type ClockError struct {
	Op  string
	Err error
}

func (e *ClockError) Error() string {
	if code := e.Code(); code != 0 {
		return fmt.Sprintf("%s: %s(errno = %d)", e.Op, e.Err, code)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

// Code returns the OS errno behind the failure, 0 if there is none.
func (e *ClockError) Code() int {
	if errno, ok := errors.Cause(e.Err).(syscall.Errno); ok {
		return int(errno)
	}
	return 0
}
