//go:build debug
// +build debug

package ntpts

import "log"

const debug = true

func init() {
	for _, l := range []*log.Logger{Info, Warn, Error} {
		l.SetFlags(log.Lshortfile | log.LstdFlags)
	}
}
