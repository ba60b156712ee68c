//go:build !debug
// +build !debug

package ntpts

const debug = false
