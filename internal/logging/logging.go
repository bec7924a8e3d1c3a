// Package logging sets up the logfmt logger shared by the command line tools.
package logging

import (
	"io"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// New returns a logfmt logger on w. Debug lines are only let through when
// verbose is set.
func New(w io.Writer, verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}

// Error logs err at error level. A joined error is split so that every
// offending row or pin gets its own line.
func Error(logger log.Logger, err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			Error(logger, e)
		}
		return
	}
	level.Error(logger).Log("err", err)
}
