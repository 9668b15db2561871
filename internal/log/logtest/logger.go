// Package logtest provides a logger that writes to a testing.TB.
package logtest

import (
	"testing"

	"github.com/abhinav/huffcode/internal/log"
	"go.abhg.dev/io/ioutil"
)

// NewLogger builds a debug-level logger that writes to t's log.
func NewLogger(t testing.TB) *log.Logger {
	return log.New(ioutil.TestLogWriter(t, ""), log.Debug)
}
